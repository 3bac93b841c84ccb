package quality

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/content-qa/internal/domain"
)

// Structural adequacy thresholds, in characters except the word counts.
const (
	minWordCount          = 200
	minSectionWordCount   = 50
	minHeadlineLength     = 10
	minIntroductionLength = 100
	minConclusionLength   = 100
)

// headingPattern matches a markdown ATX heading at line start.
var headingPattern = regexp.MustCompile(`(?m)^#+\s`)

// checkStructure runs the boolean checklist over an article. The counts
// summarize the seven checks; AllChecksPassed means every one held.
func checkStructure(article *domain.Article) domain.StructureCheck {
	check := domain.StructureCheck{
		HasHeadline:         len(strings.TrimSpace(article.Headline)) >= minHeadlineLength,
		HasIntroduction:     len(strings.TrimSpace(article.Introduction)) >= minIntroductionLength,
		HasSections:         len(article.Sections) > 0,
		HasConclusion:       len(strings.TrimSpace(article.Conclusion)) >= minConclusionLength,
		MinWordCountMet:     article.WordCount >= minWordCount,
		SectionsHaveContent: sectionsHaveContent(article.Sections),
		ProperFormatting:    properFormatting(article.Markdown),
		TotalChecks:         7,
	}

	for _, passed := range []bool{
		check.HasHeadline,
		check.HasIntroduction,
		check.HasSections,
		check.HasConclusion,
		check.MinWordCountMet,
		check.SectionsHaveContent,
		check.ProperFormatting,
	} {
		if passed {
			check.PassedChecks++
		}
	}
	check.AllChecksPassed = check.PassedChecks == check.TotalChecks
	return check
}

// sectionsHaveContent holds when every section body meets the minimum
// length. An article without sections passes vacuously; the missing
// sections are HasSections' concern.
func sectionsHaveContent(sections []domain.ArticleSection) bool {
	for _, section := range sections {
		if len(strings.TrimSpace(section.Content)) < minSectionWordCount {
			return false
		}
	}
	return true
}

// properFormatting requires the markdown to carry at least one heading
// and at least one paragraph break.
func properFormatting(markdown string) bool {
	return headingPattern.MatchString(markdown) && strings.Contains(markdown, "\n\n")
}
