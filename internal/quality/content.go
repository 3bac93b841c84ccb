package quality

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonesrussell/content-qa/internal/domain"
)

const (
	// readabilityTarget is the Flesch reading-ease score considered
	// comfortable for a general audience.
	readabilityTarget = 60.0
	// neutralScore is returned when a text has too little signal to
	// score, for example no sentences or no sections.
	neutralScore = 50.0
)

// markupPattern strips the markdown syntax characters before the
// readability pass so they do not count as words or break sentences.
var markupPattern = regexp.MustCompile("[#*_\\[\\]()~`]")

// sentencePattern splits text into sentences on terminal punctuation runs.
var sentencePattern = regexp.MustCompile(`[.!?]+`)

// transitionWords are the connective terms whose presence signals flow
// between ideas. Each counts once regardless of repetition.
var transitionWords = []string{
	"however", "therefore", "moreover", "furthermore",
	"additionally", "consequently", "meanwhile", "similarly",
	"contrast", "example", "specifically", "likewise",
	"otherwise", "instead", "yet", "also",
}

// boilerplatePhrases are stock filler openings whose presence lowers the
// uniqueness score.
var boilerplatePhrases = []string{
	"in this article", "in this post", "this article will",
	"we will discuss", "let us explore", "there are several",
	"in conclusion", "to summarize", "final thoughts",
}

// scoreContent computes the five content-quality sub-scores and their mean.
func scoreContent(article *domain.Article, analysis *domain.ContentAnalysis) domain.ContentQualityScore {
	score := domain.ContentQualityScore{
		ReadabilityScore:  readabilityScore(article.Markdown),
		CoherenceScore:    coherenceScore(article),
		CompletenessScore: completenessScore(article),
		RelevanceScore:    relevanceScore(article, analysis),
		UniquenessScore:   uniquenessScore(article),
	}
	score.AverageScore = (score.ReadabilityScore + score.CoherenceScore +
		score.CompletenessScore + score.RelevanceScore + score.UniquenessScore) / 5
	return score
}

// readabilityScore is the Flesch reading-ease formula over the markdown
// with syntax characters stripped, clamped to [0,100]. Texts with no
// sentences or no words get the neutral score.
func readabilityScore(markdown string) float64 {
	clean := markupPattern.ReplaceAllString(markdown, "")

	sentences := 0
	for _, s := range sentencePattern.Split(clean, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	words := len(strings.Fields(clean))
	if sentences == 0 || words == 0 {
		return neutralScore
	}

	syllables := countSyllables(strings.ToLower(clean))
	score := 206.835 -
		1.015*(float64(words)/float64(sentences)) -
		84.6*(float64(syllables)/float64(words))
	return clamp(score, 0, 100)
}

// countSyllables approximates syllables by counting transitions into
// vowel runs, with the usual silent-e and -le adjustments. Never
// returns less than one.
func countSyllables(text string) int {
	count := 0
	prevVowel := false
	for _, r := range text {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(text, "e") {
		count--
	}
	if strings.HasSuffix(text, "le") {
		count++
	}
	if count < 1 {
		count = 1
	}
	return count
}

// coherenceScore blends transition-word usage with section structure.
// Articles without sections get the neutral score.
func coherenceScore(article *domain.Article) float64 {
	if len(article.Sections) == 0 {
		return neutralScore
	}

	text := strings.ToLower(article.BodyText())
	transitions := 0
	for _, word := range transitionWords {
		if strings.Contains(text, word) {
			transitions++
		}
	}

	structureScore := math.Min(100, float64(len(article.Sections))*15)
	return math.Min(100, (float64(transitions)*5+structureScore)/2)
}

// completenessScore sums banded points for word count, section count,
// introduction and conclusion length, plus a bonus for uniformly
// substantial sections, capped at 100.
func completenessScore(article *domain.Article) float64 {
	score := 0.0

	switch {
	case article.WordCount >= 300:
		score += 30
	case article.WordCount >= 200:
		score += 20
	default:
		score += 10
	}

	sections := len(article.Sections)
	switch {
	case sections >= 4 && sections <= 6:
		score += 30
	case sections >= 3:
		score += 20
	default:
		score += 10
	}

	score += lengthBand(article.Introduction)
	score += lengthBand(article.Conclusion)

	// Vacuously true for a sectionless article; the section-count band
	// already penalizes the missing structure.
	allSubstantial := true
	for _, section := range article.Sections {
		if len(section.Content) < 100 {
			allSubstantial = false
			break
		}
	}
	if allSubstantial {
		score += 10
	}

	return math.Min(100, score)
}

func lengthBand(text string) float64 {
	switch {
	case len(text) >= 200:
		return 15
	case len(text) >= 100:
		return 10
	default:
		return 5
	}
}

// relevanceScore rewards the main topic appearing in the article text
// plus the fraction of subtopics that do, capped at 100.
func relevanceScore(article *domain.Article, analysis *domain.ContentAnalysis) float64 {
	text := strings.ToLower(article.FullText())

	score := 0.0
	if strings.Contains(text, strings.ToLower(analysis.MainTopic)) {
		score += 50
	}

	if len(analysis.Subtopics) > 0 {
		matches := 0
		for _, subtopic := range analysis.Subtopics {
			if strings.Contains(text, strings.ToLower(subtopic)) {
				matches++
			}
		}
		score += float64(matches) / float64(len(analysis.Subtopics)) * 50
	}

	return math.Min(100, score)
}

// uniquenessScore penalizes boilerplate phrases proportionally, with a
// floor of 50.
func uniquenessScore(article *domain.Article) float64 {
	text := strings.ToLower(article.FullText())
	found := 0
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(text, phrase) {
			found++
		}
	}
	return math.Max(50, 100-float64(found)/float64(len(boilerplatePhrases))*100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
