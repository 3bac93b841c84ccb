package domain_test

import (
	"errors"
	"testing"

	"github.com/jonesrussell/content-qa/internal/domain"
)

func TestComplianceFor(t *testing.T) {
	flag := func(severity domain.Severity) domain.PolicyFlag {
		return domain.PolicyFlag{Category: domain.CategoryOther, Severity: severity}
	}

	testCases := []struct {
		name  string
		flags []domain.PolicyFlag
		want  domain.Compliance
	}{
		{
			name:  "no flags is compliant",
			flags: nil,
			want:  domain.ComplianceCompliant,
		},
		{
			name:  "low severity warns",
			flags: []domain.PolicyFlag{flag(domain.SeverityLow)},
			want:  domain.ComplianceWarning,
		},
		{
			name:  "medium severity warns",
			flags: []domain.PolicyFlag{flag(domain.SeverityMedium)},
			want:  domain.ComplianceWarning,
		},
		{
			name:  "high severity gets flagged",
			flags: []domain.PolicyFlag{flag(domain.SeverityLow), flag(domain.SeverityHigh)},
			want:  domain.ComplianceFlagged,
		},
		{
			name:  "critical blocks over everything",
			flags: []domain.PolicyFlag{flag(domain.SeverityHigh), flag(domain.SeverityCritical)},
			want:  domain.ComplianceBlocked,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.ComplianceFor(tc.flags); got != tc.want {
				t.Errorf("ComplianceFor() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestRatingFor(t *testing.T) {
	testCases := []struct {
		score float64
		want  domain.QualityRating
	}{
		{100, domain.RatingExcellent},
		{85, domain.RatingExcellent},
		{84.9, domain.RatingGood},
		{70, domain.RatingGood},
		{69.9, domain.RatingFair},
		{50, domain.RatingFair},
		{49.9, domain.RatingPoor},
		{0, domain.RatingPoor},
	}

	for _, tc := range testCases {
		if got := domain.RatingFor(tc.score); got != tc.want {
			t.Errorf("RatingFor(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestTranscriptValidate(t *testing.T) {
	var nilTranscript *domain.Transcript
	if err := nilTranscript.Validate(); !errors.Is(err, domain.ErrNilTranscript) {
		t.Errorf("expected ErrNilTranscript, got %v", err)
	}

	missing := &domain.Transcript{Transcript: "text"}
	if err := missing.Validate(); !errors.Is(err, domain.ErrMissingVideoID) {
		t.Errorf("expected ErrMissingVideoID, got %v", err)
	}

	empty := &domain.Transcript{VideoID: "vid-1"}
	if err := empty.Validate(); err != nil {
		t.Errorf("empty transcript text must be valid, got %v", err)
	}
}

func TestArticleTextHelpers(t *testing.T) {
	article := &domain.Article{
		Headline:     "Headline",
		Introduction: "Intro",
		Sections: []domain.ArticleSection{
			{Heading: "One", Content: "first"},
			{Heading: "Two", Content: "second"},
		},
		Conclusion: "End",
	}

	if got, want := article.BodyText(), "Intro first second End"; got != want {
		t.Errorf("BodyText() = %q, want %q", got, want)
	}
	if got, want := article.FullText(), "Headline Intro first second End"; got != want {
		t.Errorf("FullText() = %q, want %q", got, want)
	}
	if got, want := article.LeadText(), "Headline Intro first second"; got != want {
		t.Errorf("LeadText() = %q, want %q", got, want)
	}
}
