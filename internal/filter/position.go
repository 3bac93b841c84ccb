package filter

import (
	"fmt"
	"strings"
)

// textPosition resolves a character offset into a human-readable locator.
// Paragraph lengths (plus one for each newline) are accumulated until the
// running total passes the offset; the 1-based paragraph index is
// reported. If the offset lies beyond every paragraph boundary the
// fallback is a 1-based word index over the whitespace-split prefix.
func textPosition(text string, offset int) string {
	charCount := 0
	for i, paragraph := range strings.Split(text, "\n") {
		charCount += len(paragraph) + 1
		if charCount > offset {
			return fmt.Sprintf("paragraph %d", i+1)
		}
	}
	return fmt.Sprintf("word %d", len(strings.Fields(text[:offset]))+1)
}
