package filter_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/jonesrussell/content-qa/internal/domain"
	"github.com/jonesrussell/content-qa/internal/filter"
	"github.com/jonesrussell/content-qa/internal/logger"
	"github.com/jonesrussell/content-qa/internal/telemetry"
)

func newFilter() *filter.ContentFilter {
	return filter.New(logger.NewNop(), nil)
}

func transcript(text string) *domain.Transcript {
	return &domain.Transcript{
		VideoID:    "vid-123",
		Title:      "Test Video",
		Channel:    "Test Channel",
		Transcript: text,
		Source:     domain.SourceCaptions,
		Language:   "en",
	}
}

func TestFilter_CleanTranscript(t *testing.T) {
	f := newFilter()

	result, err := f.Filter(context.Background(), transcript(
		"The lake was calm in the morning. Fishermen gathered along the shore and talked about the season.",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Flags) != 0 {
		t.Errorf("expected no flags, got %d: %+v", len(result.Flags), result.Flags)
	}
	if result.OverallCompliance != domain.ComplianceCompliant {
		t.Errorf("expected compliant, got %s", result.OverallCompliance)
	}
	if result.Summary != "Content passed all policy checks. No issues detected." {
		t.Errorf("unexpected summary: %q", result.Summary)
	}
	if result.IsSponsorContent {
		t.Error("expected no sponsor content")
	}
	if result.HasCriticalIssues {
		t.Error("expected no critical issues")
	}
	if result.PromotionalScore != 0 {
		t.Errorf("expected promotional score 0, got %f", result.PromotionalScore)
	}
}

func TestFilter_SponsorAndPromotionalContent(t *testing.T) {
	f := newFilter()

	result, err := f.Filter(context.Background(), transcript(
		"Use the promo code SAVE20 to buy now and get a discount today only.",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.IsSponsorContent {
		t.Error("expected sponsor content")
	}
	if want := []string{"promo code", "buy now"}; !reflect.DeepEqual(result.SponsorMentions, want) {
		t.Errorf("expected sponsor mentions %v, got %v", want, result.SponsorMentions)
	}
	if result.PromotionalScore != 1 {
		t.Errorf("expected promotional score 1, got %f", result.PromotionalScore)
	}
	if result.OverallCompliance != domain.ComplianceWarning {
		t.Errorf("expected warning, got %s", result.OverallCompliance)
	}

	var sponsorFlag *domain.PolicyFlag
	for i := range result.Flags {
		if result.Flags[i].Category == domain.CategorySponsor {
			sponsorFlag = &result.Flags[i]
		}
	}
	if sponsorFlag == nil {
		t.Fatal("expected a sponsor flag")
	}
	if sponsorFlag.Text != "promo code" {
		t.Errorf("expected sponsor flag for 'promo code', got %q", sponsorFlag.Text)
	}
	if sponsorFlag.Confidence != 0.7 {
		t.Errorf("expected medium sponsor confidence 0.7, got %f", sponsorFlag.Confidence)
	}

	if !strings.Contains(result.Summary, "Promotional content score: 100.0%") {
		t.Errorf("expected promotional score in summary, got %q", result.Summary)
	}
	if !strings.Contains(result.Summary, "Sponsor mentions: promo code, buy now") {
		t.Errorf("expected sponsor mentions in summary, got %q", result.Summary)
	}
}

func TestFilter_ProfanityFlagged(t *testing.T) {
	f := newFilter()

	result, err := f.Filter(context.Background(), transcript(
		"Well damn, that was unexpected for everyone watching at home.",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Flags) != 1 {
		t.Fatalf("expected 1 flag, got %d", len(result.Flags))
	}
	flag := result.Flags[0]
	if flag.Category != domain.CategoryProfanity {
		t.Errorf("expected profanity flag, got %s", flag.Category)
	}
	if flag.Severity != domain.SeverityHigh {
		t.Errorf("expected high severity, got %s", flag.Severity)
	}
	if flag.Text != "damn" {
		t.Errorf("expected matched text 'damn', got %q", flag.Text)
	}
	if result.OverallCompliance != domain.ComplianceFlagged {
		t.Errorf("expected flagged, got %s", result.OverallCompliance)
	}
	if result.HasCriticalIssues {
		t.Error("high severity must not count as critical")
	}

	if want := "Profanity: Strong profanity detected"; len(result.QualityIssues) != 1 || result.QualityIssues[0] != want {
		t.Errorf("expected quality issue %q, got %v", want, result.QualityIssues)
	}
}

func TestFilter_RepeatedSponsorKeywordNotFlagged(t *testing.T) {
	f := newFilter()

	result, err := f.Filter(context.Background(), transcript(
		"sponsored segment one, sponsored segment two, sponsored segment three, sponsored segment four",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.IsSponsorContent {
		t.Error("expected sponsor content from recorded mentions")
	}
	if want := []string{"sponsored"}; !reflect.DeepEqual(result.SponsorMentions, want) {
		t.Errorf("expected mentions %v, got %v", want, result.SponsorMentions)
	}
	for _, flag := range result.Flags {
		if flag.Category == domain.CategorySponsor {
			t.Errorf("keyword with more than three occurrences must not be flagged, got %+v", flag)
		}
	}
	if !strings.Contains(result.Summary, "Sponsor mentions: sponsored") {
		t.Errorf("expected sponsor mentions in summary, got %q", result.Summary)
	}
}

func TestFilter_SpamCallToActionThreshold(t *testing.T) {
	f := newFilter()

	// Eleven CTA matches pushes past the threshold of ten.
	text := strings.Repeat("please subscribe to the channel. ", 11)
	result, err := f.Filter(context.Background(), transcript(text))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var spam *domain.PolicyFlag
	for i := range result.Flags {
		if result.Flags[i].Category == domain.CategorySpam {
			spam = &result.Flags[i]
		}
	}
	if spam == nil {
		t.Fatal("expected a spam flag")
	}
	if spam.Text != "Multiple CTAs" {
		t.Errorf("unexpected spam flag text: %q", spam.Text)
	}
	if !strings.Contains(spam.Message, "(11 mentions)") {
		t.Errorf("expected CTA count in message, got %q", spam.Message)
	}
}

func TestFilter_WithTelemetry(t *testing.T) {
	f := filter.New(logger.NewNop(), telemetry.NewProvider())

	result, err := f.Filter(context.Background(), transcript(
		"The lake was calm in the morning and the fishermen talked about the season.",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallCompliance != domain.ComplianceCompliant {
		t.Errorf("expected compliant, got %s", result.OverallCompliance)
	}
}

func TestFilter_EmptyRuleSet(t *testing.T) {
	f := filter.NewWithRules(logger.NewNop(), nil, &filter.Rules{})

	result, err := f.Filter(context.Background(), transcript("Use the promo code SAVE20 to buy now."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.PromotionalScore != 0 {
		t.Errorf("expected promotional score 0 with no indicator rules, got %f", result.PromotionalScore)
	}
	if len(result.Flags) != 0 {
		t.Errorf("expected no flags with empty rule tables, got %d", len(result.Flags))
	}
	if result.OverallCompliance != domain.ComplianceCompliant {
		t.Errorf("expected compliant, got %s", result.OverallCompliance)
	}
}

func TestFilter_Deterministic(t *testing.T) {
	f := newFilter()
	tr := transcript("This video is brought to you by our sponsor. Use code SAVE20 at checkout to buy now.")

	first, err := f.Filter(context.Background(), tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.Filter(context.Background(), tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical input must produce identical results")
	}
}

func TestFilter_Validation(t *testing.T) {
	f := newFilter()

	if _, err := f.Filter(context.Background(), nil); err == nil {
		t.Error("expected error for nil transcript")
	}

	missing := &domain.Transcript{Transcript: "some text"}
	if _, err := f.Filter(context.Background(), missing); err == nil {
		t.Error("expected error for missing video_id")
	}
}

func TestFilter_EmptyTranscriptAllClear(t *testing.T) {
	f := newFilter()

	result, err := f.Filter(context.Background(), transcript(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallCompliance != domain.ComplianceCompliant {
		t.Errorf("expected compliant for empty text, got %s", result.OverallCompliance)
	}
	if len(result.Flags) != 0 {
		t.Errorf("expected no flags for empty text, got %d", len(result.Flags))
	}
}
