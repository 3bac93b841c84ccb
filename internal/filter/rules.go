package filter

import (
	"regexp"

	"github.com/jonesrussell/content-qa/internal/domain"
)

// Per-rule confidence constants. Each detection family carries a fixed
// confidence; nothing is derived from corpus statistics.
const (
	confidenceProfanity      = 0.95
	confidenceViolence       = 0.85
	confidenceHarassment     = 0.80
	confidenceMisinformation = 0.75
	confidenceSpam           = 0.80
	confidencePromotional    = 0.85
	confidenceSponsorHigh    = 0.9
	confidenceSponsorMedium  = 0.7
)

// patternRule pairs a compiled pattern with its fixed flag attributes.
// Keeping detection data-driven lets each rule be tested on its own and
// extended without touching control flow.
type patternRule struct {
	pattern    *regexp.Regexp
	category   domain.FlagCategory
	severity   domain.Severity
	message    string
	confidence float64
}

// sponsorKeyword pairs a keyword with its priority (1-3) and the
// word-boundary pattern used to match it. Priority 1 terms are recorded
// as mentions but never flagged.
type sponsorKeyword struct {
	keyword  string
	priority int
	pattern  *regexp.Regexp
}

// Rules is the frozen rule set a ContentFilter is constructed with.
// It is read-only after construction and safe for concurrent reuse.
type Rules struct {
	Profanity             []patternRule
	Violence              []patternRule
	Harassment            []patternRule
	Misinformation        []patternRule
	SponsorKeywords       []sponsorKeyword
	CallToAction          []*regexp.Regexp
	PromotionalIndicators []*regexp.Regexp
}

// DefaultRules builds the built-in detection tables. Input text is
// lowercased before matching, so the patterns are written lowercase.
func DefaultRules() *Rules {
	return &Rules{
		Profanity: []patternRule{
			profanityRule(`\b(?:f[u*]ck|shit|ass(?:hole)?|damn|crap)\b`, "Strong profanity detected"),
			profanityRule(`\b(?:bitch|bastard|arsehole)\b`, "Moderate profanity detected"),
			profanityRule(`\b(?:hell|piss(?:ed)?)\b`, "Mild profanity detected"),
			profanityRule(`\b(?:retard|stupid|idiot|moron)\b`, "Offensive language detected"),
		},
		Violence: []patternRule{
			violenceRule(`\bkill\b.*\b(?:person|people|victim|them)\b`, "Violence reference"),
			violenceRule(`\b(?:murder|assault|attack|stabbing|shooting)\b`, "Violence terminology"),
			violenceRule(`\b(?:rape|sexual assault)\b`, "Sexual violence reference"),
			violenceRule(`graphic(?:ally)? (?:violent|graphic)|brutal`, "Explicit violence description"),
		},
		Harassment: []patternRule{
			harassmentRule(`\b(?:hate|stupid|dumb|loser)\s+(?:all\s+)?(?:people|them|you|women|men)\b`, "Derogatory language"),
			harassmentRule(`should (?:die|be killed|burn|hang)`, "Threatening language"),
		},
		Misinformation: []patternRule{
			misinformationRule(`no scientific evidence|scientifically unproven|false claim`, "Disputed claim acknowledged"),
			misinformationRule(`conspiracy|illuminati|cover.?up|hidden truth`, "Conspiracy theory language"),
			misinformationRule(`cure(?:s|d)? (?:cancer|diabetes|autism|covid)`, "Unverified medical claims"),
			misinformationRule(`miracle|guaranteed cure|secret formula`, "Dubious health claims"),
			misinformationRule(`this one weird trick|doctors hate this`, "Clickbait health language"),
		},
		SponsorKeywords: []sponsorKeyword{
			newSponsorKeyword("sponsored", 3),
			newSponsorKeyword("sponsor", 3),
			newSponsorKeyword("ad", 2),
			newSponsorKeyword("advertisement", 3),
			newSponsorKeyword("partner", 2),
			newSponsorKeyword("partnership", 2),
			newSponsorKeyword("affiliate", 2),
			newSponsorKeyword("affiliate link", 3),
			newSponsorKeyword("discount code", 2),
			newSponsorKeyword("promo code", 2),
			newSponsorKeyword("use code", 2),
			newSponsorKeyword("promotion", 1),
			newSponsorKeyword("click link below", 2),
			newSponsorKeyword("buy now", 1),
			newSponsorKeyword("shop now", 1),
			newSponsorKeyword("purchase", 1),
			newSponsorKeyword("brand", 1),
			newSponsorKeyword("product placement", 3),
			newSponsorKeyword("in collaboration with", 2),
			newSponsorKeyword("brought to you by", 3),
			newSponsorKeyword("this video is brought", 3),
		},
		CallToAction: []*regexp.Regexp{
			regexp.MustCompile(`click (?:the )?link`),
			regexp.MustCompile(`subscribe|like|comment|share`),
			regexp.MustCompile(`hit the notification bell`),
			regexp.MustCompile(`follow (?:me|us)`),
		},
		PromotionalIndicators: []*regexp.Regexp{
			regexp.MustCompile(`buy|purchase|order|get yours|limited time|special offer`),
			regexp.MustCompile(`exclusive|only|today|now|don't miss|act now`),
			regexp.MustCompile(`save money|discount|sale|coupon|promo`),
			regexp.MustCompile(`free (?:shipping|delivery|trial|sample)`),
			regexp.MustCompile(`\$\d+|discount|% off|free offer`),
		},
	}
}

func profanityRule(pattern, message string) patternRule {
	return patternRule{
		pattern:    regexp.MustCompile(pattern),
		category:   domain.CategoryProfanity,
		severity:   domain.SeverityHigh,
		message:    message,
		confidence: confidenceProfanity,
	}
}

func violenceRule(pattern, message string) patternRule {
	return patternRule{
		pattern:    regexp.MustCompile(pattern),
		category:   domain.CategoryViolence,
		severity:   domain.SeverityHigh,
		message:    message,
		confidence: confidenceViolence,
	}
}

func harassmentRule(pattern, message string) patternRule {
	return patternRule{
		pattern:    regexp.MustCompile(pattern),
		category:   domain.CategoryHarassment,
		severity:   domain.SeverityHigh,
		message:    message,
		confidence: confidenceHarassment,
	}
}

func misinformationRule(pattern, message string) patternRule {
	return patternRule{
		pattern:    regexp.MustCompile(pattern),
		category:   domain.CategoryMisinformation,
		severity:   domain.SeverityMedium,
		message:    message,
		confidence: confidenceMisinformation,
	}
}

func newSponsorKeyword(keyword string, priority int) sponsorKeyword {
	return sponsorKeyword{
		keyword:  keyword,
		priority: priority,
		pattern:  regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`),
	}
}
