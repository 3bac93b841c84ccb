// Package filter implements the deterministic policy filter for
// transcript text. Detection is a fixed sequence of regex and keyword
// passes over the lowercased transcript; identical input always yields
// an identical result.
package filter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudflare/ahocorasick"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonesrussell/content-qa/internal/domain"
	"github.com/jonesrussell/content-qa/internal/logger"
	"github.com/jonesrussell/content-qa/internal/telemetry"
)

const (
	// snippetLimit bounds the matched text stored on a flag.
	snippetLimit = 50
	// maxFlaggedMentions suppresses sponsor flags when a keyword recurs
	// more often than this; heavy repetition reads as benign use of a
	// generic term, not a disclosure.
	maxFlaggedMentions = 3
	// spamCTAThreshold is the combined call-to-action count above which
	// a single spam flag is emitted.
	spamCTAThreshold = 10
	// promoFlagThreshold is the promotional score above which an
	// informational flag is emitted.
	promoFlagThreshold = 0.6
	// promoSummaryThreshold is the promotional score above which the
	// summary mentions it.
	promoSummaryThreshold = 0.4
	// promoCleanThreshold is the promotional score at or below which a
	// flagless pass still counts as all clear.
	promoCleanThreshold = 0.3
	// summarySponsorLimit caps how many sponsor mentions the summary lists.
	summarySponsorLimit = 3
)

// ContentFilter scans transcript text for policy violations and
// promotional signals. It is stateless; the rule tables are compiled at
// construction and never mutated, so a single instance is safe for
// concurrent reuse across goroutines.
type ContentFilter struct {
	rules *Rules
	// prescan is an Aho-Corasick matcher over the sponsor keywords.
	// One pass over the text decides whether the per-keyword regex scan
	// can be skipped entirely.
	prescan   *ahocorasick.Matcher
	telemetry *telemetry.Provider
	logger    logger.Logger
}

// New creates a ContentFilter with the built-in rule tables.
func New(log logger.Logger, tp *telemetry.Provider) *ContentFilter {
	return NewWithRules(log, tp, DefaultRules())
}

// NewWithRules creates a ContentFilter with a custom rule set. The rule
// set must not be mutated after this call.
func NewWithRules(log logger.Logger, tp *telemetry.Provider, rules *Rules) *ContentFilter {
	keywords := make([]string, len(rules.SponsorKeywords))
	for i, kw := range rules.SponsorKeywords {
		keywords[i] = kw.keyword
	}

	var prescan *ahocorasick.Matcher
	if len(keywords) > 0 {
		prescan = ahocorasick.NewStringMatcher(keywords)
	}

	return &ContentFilter{
		rules:     rules,
		prescan:   prescan,
		telemetry: tp,
		logger:    log,
	}
}

// Filter analyzes a transcript for policy violations and content issues.
// The result is a pure function of the transcript text: flags appear in
// detector execution order and the compliance verdict derives only from
// flag severities.
func (f *ContentFilter) Filter(ctx context.Context, transcript *domain.Transcript) (*domain.ContentFilterResult, error) {
	if err := transcript.Validate(); err != nil {
		return nil, fmt.Errorf("filter transcript: %w", err)
	}

	if f.telemetry != nil {
		var span trace.Span
		ctx, span = f.telemetry.StartSpan(ctx, "filter.transcript",
			attribute.String("video_id", transcript.VideoID))
		defer span.End()
	}

	start := time.Now()
	text := strings.ToLower(transcript.Transcript)

	flags := make([]domain.PolicyFlag, 0)
	flags = append(flags, f.scanPatterns(text, f.rules.Profanity)...)
	flags = append(flags, f.scanPatterns(text, f.rules.Violence)...)
	flags = append(flags, f.scanPatterns(text, f.rules.Harassment)...)

	sponsorFlags, sponsorMentions := f.detectSponsors(text)
	flags = append(flags, sponsorFlags...)

	flags = append(flags, f.scanPatterns(text, f.rules.Misinformation)...)
	flags = append(flags, f.detectSpam(text)...)

	promoScore, promoFlags := f.promotionalScore(text)
	flags = append(flags, promoFlags...)

	compliance := domain.ComplianceFor(flags)

	result := &domain.ContentFilterResult{
		Flags:             flags,
		HasCriticalIssues: hasSeverity(flags, domain.SeverityCritical),
		OverallCompliance: compliance,
		Summary:           f.summarize(flags, promoScore, sponsorMentions),
		IsSponsorContent:  len(sponsorMentions) > 0,
		SponsorMentions:   sponsorMentions,
		PromotionalScore:  promoScore,
		QualityIssues:     qualityIssues(flags),
	}

	duration := time.Since(start)
	if f.telemetry != nil {
		f.telemetry.RecordFilter(ctx, string(compliance), len(flags), duration)
	}

	f.logger.Debug("transcript filtered",
		logger.String("video_id", transcript.VideoID),
		logger.String("compliance", string(compliance)),
		logger.Int("flags", len(flags)),
		logger.Float64("promotional_score", promoScore),
		logger.Duration("duration", duration),
	)

	return result, nil
}

// scanPatterns runs one rule family over the text, emitting one flag per
// match. Flags from different rules are never merged or deduplicated.
func (f *ContentFilter) scanPatterns(text string, rules []patternRule) []domain.PolicyFlag {
	var flags []domain.PolicyFlag
	for _, rule := range rules {
		for _, loc := range rule.pattern.FindAllStringIndex(text, -1) {
			flags = append(flags, domain.PolicyFlag{
				Category:   rule.category,
				Severity:   rule.severity,
				Text:       snippet(text[loc[0]:loc[1]]),
				Position:   textPosition(text, loc[0]),
				Message:    rule.message,
				Confidence: rule.confidence,
			})
		}
	}
	return flags
}

// detectSponsors records every matched sponsor keyword as a mention and
// flags keywords of priority >= 2 that occur at most maxFlaggedMentions
// times. Only the first occurrence is flagged; a keyword repeated more
// than three times escapes flagging by design of the original rule set.
func (f *ContentFilter) detectSponsors(text string) ([]domain.PolicyFlag, []string) {
	mentions := make([]string, 0)
	if f.prescan != nil && len(f.prescan.Match([]byte(text))) == 0 {
		// No keyword occurs even as a substring; skip the boundary scan.
		return nil, mentions
	}

	var flags []domain.PolicyFlag
	for _, kw := range f.rules.SponsorKeywords {
		matches := kw.pattern.FindAllStringIndex(text, -1)
		if len(matches) == 0 {
			continue
		}
		mentions = append(mentions, kw.keyword)

		if kw.priority < 2 || len(matches) > maxFlaggedMentions {
			continue
		}
		confidence := confidenceSponsorMedium
		if kw.priority == 3 {
			confidence = confidenceSponsorHigh
		}
		flags = append(flags, domain.PolicyFlag{
			Category:   domain.CategorySponsor,
			Severity:   domain.SeverityLow,
			Text:       kw.keyword,
			Position:   textPosition(text, matches[0][0]),
			Message:    fmt.Sprintf("Sponsor/promotional keyword: '%s' mentioned", kw.keyword),
			Confidence: confidence,
		})
	}
	return flags, mentions
}

// detectSpam counts combined call-to-action matches across the four CTA
// families and emits a single positionless flag when the total exceeds
// the threshold.
func (f *ContentFilter) detectSpam(text string) []domain.PolicyFlag {
	count := 0
	for _, pattern := range f.rules.CallToAction {
		count += len(pattern.FindAllStringIndex(text, -1))
	}
	if count <= spamCTAThreshold {
		return nil
	}
	return []domain.PolicyFlag{{
		Category:   domain.CategorySpam,
		Severity:   domain.SeverityLow,
		Text:       "Multiple CTAs",
		Message:    fmt.Sprintf("Excessive calls-to-action detected (%d mentions) - indicates promotional content", count),
		Confidence: confidenceSpam,
	}}
}

// promotionalScore measures how many promotional-indicator families
// match at least once. The score saturates once half the families match.
func (f *ContentFilter) promotionalScore(text string) (float64, []domain.PolicyFlag) {
	found := 0
	for _, pattern := range f.rules.PromotionalIndicators {
		if pattern.MatchString(text) {
			found++
		}
	}

	denominator := float64(len(f.rules.PromotionalIndicators)) * 0.5
	if denominator < 1 {
		denominator = 1
	}
	score := float64(found) / denominator
	if score > 1 {
		score = 1
	}

	if score <= promoFlagThreshold {
		return score, nil
	}
	return score, []domain.PolicyFlag{{
		Category:   domain.CategoryPromotional,
		Severity:   domain.SeverityLow,
		Text:       fmt.Sprintf("Promotional score: %.2f", score),
		Message:    "Content contains multiple promotional indicators",
		Confidence: confidencePromotional,
	}}
}

// summarize builds the human-readable digest: a fixed all-clear line for
// clean passes, otherwise pipe-joined category counts, promotional score,
// and the first few sponsor mentions.
func (f *ContentFilter) summarize(flags []domain.PolicyFlag, promoScore float64, sponsors []string) string {
	if len(flags) == 0 && promoScore <= promoCleanThreshold && len(sponsors) == 0 {
		return "Content passed all policy checks. No issues detected."
	}

	var parts []string

	if len(flags) > 0 {
		counts := make(map[domain.FlagCategory]int)
		var order []domain.FlagCategory
		for _, flag := range flags {
			if _, seen := counts[flag.Category]; !seen {
				order = append(order, flag.Category)
			}
			counts[flag.Category]++
		}
		segments := make([]string, len(order))
		for i, category := range order {
			segments[i] = fmt.Sprintf("%d %s", counts[category], category)
		}
		parts = append(parts, "Issues detected: "+strings.Join(segments, ", "))
	}

	if promoScore > promoSummaryThreshold {
		parts = append(parts, fmt.Sprintf("Promotional content score: %.1f%%", promoScore*100))
	}

	if len(sponsors) > 0 {
		limit := len(sponsors)
		if limit > summarySponsorLimit {
			limit = summarySponsorLimit
		}
		parts = append(parts, "Sponsor mentions: "+strings.Join(sponsors[:limit], ", "))
	}

	if len(parts) == 0 {
		return "Content review completed."
	}
	return strings.Join(parts, " | ")
}

// qualityIssues extracts issue lines from high and critical flags.
// A Caser is stateful, so one is created per call rather than shared.
func qualityIssues(flags []domain.PolicyFlag) []string {
	titleCaser := cases.Title(language.English)
	issues := make([]string, 0)
	for _, flag := range flags {
		if flag.Severity != domain.SeverityHigh && flag.Severity != domain.SeverityCritical {
			continue
		}
		category := titleCaser.String(strings.ReplaceAll(string(flag.Category), "_", " "))
		issues = append(issues, category+": "+flag.Message)
	}
	return issues
}

func hasSeverity(flags []domain.PolicyFlag, severity domain.Severity) bool {
	for _, flag := range flags {
		if flag.Severity == severity {
			return true
		}
	}
	return false
}

func snippet(match string) string {
	if len(match) > snippetLimit {
		return match[:snippetLimit]
	}
	return match
}
