package quality

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/content-qa/internal/domain"
)

// Penalized scores per policy family. A single match drops the family
// score from 100 to its penalty value; matches never stack.
const (
	profanityPenalty      = 70.0
	violencePenalty       = 75.0
	harassmentPenalty     = 70.0
	misinformationPenalty = 75.0
	promotionalPenalty    = 80.0
	sponsorPenalty        = 85.0
	cleanScore            = 100.0
)

// Policy verdict thresholds over the mean of the seven family scores.
const (
	policyCompliantThreshold = 95.0
	policyWarningThreshold   = 80.0
	policyFlaggedThreshold   = 50.0
)

// The per-family screening patterns. These are coarser than the
// transcript filter tables; article text has already been through the
// writer and only residual violations are checked for.
var (
	policyProfanityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:f[u*]ck|shit|ass(?:hole)?|damn|crap)\b`),
		regexp.MustCompile(`\b(?:bitch|bastard|arsehole)\b`),
	}
	policyViolencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:kill|murder|assault|attack|stabbing|shooting)\b`),
		regexp.MustCompile(`graphic(?:ally)? (?:violent|graphic)`),
	}
	policyHarassmentPatterns = []*regexp.Regexp{
		regexp.MustCompile(`should (?:die|be killed|burn|hang)`),
		regexp.MustCompile(`\b(?:hate|loser|dumb|stupid)\s+(?:all\s+)?(?:people|them)`),
	}
	// No automated hate-speech patterns exist yet; the family always
	// scores clean and is covered by manual review.
	policyHateSpeechPatterns []*regexp.Regexp

	policyMisinformationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`miracle (?:cure|solution)`),
		regexp.MustCompile(`(?:guaranteed|proven) to cure`),
		regexp.MustCompile(`this one weird trick`),
	}
)

// scorePolicy screens the article's full text against the seven policy
// families and derives the overall mean and verdict.
func scorePolicy(article *domain.Article, analysis *domain.ContentAnalysis) domain.PolicyComplianceScore {
	text := strings.ToLower(article.FullText())

	score := domain.PolicyComplianceScore{
		ProfanityFreeScore:      familyScore(text, policyProfanityPatterns, profanityPenalty),
		ViolenceFreeScore:       familyScore(text, policyViolencePatterns, violencePenalty),
		HarassmentFreeScore:     familyScore(text, policyHarassmentPatterns, harassmentPenalty),
		HateSpeechFreeScore:     familyScore(text, policyHateSpeechPatterns, cleanScore),
		PromotionalContentScore: promotionalScore(analysis),
		SponsorTransparency:     sponsorScore(analysis),
		MisinformationFreeScore: familyScore(text, policyMisinformationPatterns, misinformationPenalty),
	}

	score.OverallPolicyCompliance = (score.ProfanityFreeScore +
		score.ViolenceFreeScore +
		score.HarassmentFreeScore +
		score.HateSpeechFreeScore +
		score.PromotionalContentScore +
		score.SponsorTransparency +
		score.MisinformationFreeScore) / 7

	score.PolicyRating = policyRating(score.OverallPolicyCompliance)
	return score
}

func familyScore(text string, patterns []*regexp.Regexp, penalty float64) float64 {
	for _, pattern := range patterns {
		if pattern.MatchString(text) {
			return penalty
		}
	}
	return cleanScore
}

// promotionalScore penalizes articles the analysis stage flagged as
// promotional.
func promotionalScore(analysis *domain.ContentAnalysis) float64 {
	for _, flag := range analysis.ContentFlags {
		if strings.Contains(strings.ToLower(flag), "promotional") {
			return promotionalPenalty
		}
	}
	return cleanScore
}

// sponsorScore penalizes articles whose analysis carries a sponsor
// flag. Sponsor mentions in the article text itself are not screened
// here; the analysis stage owns that call, and disclosure review is a
// human step once the flag appears.
func sponsorScore(analysis *domain.ContentAnalysis) float64 {
	for _, flag := range analysis.ContentFlags {
		if strings.Contains(strings.ToLower(flag), "sponsor") {
			return sponsorPenalty
		}
	}
	return cleanScore
}

func policyRating(overall float64) domain.Compliance {
	switch {
	case overall >= policyCompliantThreshold:
		return domain.ComplianceCompliant
	case overall >= policyWarningThreshold:
		return domain.ComplianceWarning
	case overall >= policyFlaggedThreshold:
		return domain.ComplianceFlagged
	default:
		return domain.ComplianceBlocked
	}
}
