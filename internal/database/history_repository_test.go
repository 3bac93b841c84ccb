package database_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonesrussell/content-qa/internal/config"
	"github.com/jonesrussell/content-qa/internal/database"
	"github.com/jonesrussell/content-qa/internal/domain"
)

func newSQLiteRepo(t *testing.T) *database.HistoryRepository {
	t.Helper()

	db, err := database.New(config.DatabaseConfig{
		Driver:          "sqlite",
		SQLitePath:      filepath.Join(t.TempDir(), "contentqa_test.db"),
		MaxConnections:  1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return database.NewHistoryRepository(db)
}

func sampleResult(compliance domain.Compliance) *domain.ContentFilterResult {
	return &domain.ContentFilterResult{
		Flags: []domain.PolicyFlag{
			{Category: domain.CategorySponsor, Severity: domain.SeverityLow, Text: "promo code"},
		},
		OverallCompliance: compliance,
		Summary:           "Issues detected: 1 sponsor",
		IsSponsorContent:  true,
		SponsorMentions:   []string{"promo code"},
		PromotionalScore:  0.4,
	}
}

func TestHistoryRepository_FilterRoundTrip(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	if err := repo.RecordFilter(ctx, "vid-1", sampleResult(domain.ComplianceWarning)); err != nil {
		t.Fatalf("record filter: %v", err)
	}
	if err := repo.RecordFilter(ctx, "vid-1", sampleResult(domain.ComplianceCompliant)); err != nil {
		t.Fatalf("record filter: %v", err)
	}
	if err := repo.RecordFilter(ctx, "vid-2", sampleResult(domain.ComplianceWarning)); err != nil {
		t.Fatalf("record filter: %v", err)
	}

	records, err := repo.FilterHistory(ctx, "vid-1")
	if err != nil {
		t.Fatalf("filter history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records for vid-1, got %d", len(records))
	}
	for _, record := range records {
		if record.VideoID != "vid-1" {
			t.Errorf("unexpected video id %s", record.VideoID)
		}
		if record.FlagCount != 1 {
			t.Errorf("expected flag count 1, got %d", record.FlagCount)
		}
		if !record.IsSponsorContent {
			t.Error("expected sponsor content to round-trip")
		}
	}

	empty, err := repo.FilterHistory(ctx, "vid-unknown")
	if err != nil {
		t.Fatalf("filter history: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no records for unknown video, got %d", len(empty))
	}
}

func TestHistoryRepository_FilterStats(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	if err := repo.RecordFilter(ctx, "vid-1", sampleResult(domain.ComplianceWarning)); err != nil {
		t.Fatalf("record filter: %v", err)
	}
	if err := repo.RecordFilter(ctx, "vid-2", sampleResult(domain.ComplianceWarning)); err != nil {
		t.Fatalf("record filter: %v", err)
	}

	stats, err := repo.FilterStats(ctx)
	if err != nil {
		t.Fatalf("filter stats: %v", err)
	}
	if stats.TotalFiltered != 2 {
		t.Errorf("expected 2 filtered, got %d", stats.TotalFiltered)
	}
	if stats.SponsorContent != 2 {
		t.Errorf("expected 2 sponsor items, got %d", stats.SponsorContent)
	}
	if stats.ComplianceCounts["warning"] != 2 {
		t.Errorf("expected 2 warnings, got %v", stats.ComplianceCounts)
	}
}

func TestHistoryRepository_AssessmentRoundTrip(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	assessment := &domain.QualityAssessment{
		OverallScore:  82.5,
		QualityRating: domain.RatingGood,
		PolicyCompliance: domain.PolicyComplianceScore{
			OverallPolicyCompliance: 100,
			PolicyRating:            domain.ComplianceCompliant,
		},
		Recommendations: []domain.QualityRecommendation{
			{Category: domain.RecommendSEO, Severity: domain.RecommendInfo, Message: "m"},
		},
	}

	if err := repo.RecordAssessment(ctx, "vid-1", assessment); err != nil {
		t.Fatalf("record assessment: %v", err)
	}

	records, err := repo.AssessmentHistory(ctx, "vid-1")
	if err != nil {
		t.Fatalf("assessment history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].QualityRating != "good" {
		t.Errorf("expected rating good, got %s", records[0].QualityRating)
	}
	if records[0].RecommendationCount != 1 {
		t.Errorf("expected 1 recommendation, got %d", records[0].RecommendationCount)
	}

	stats, err := repo.AssessmentStats(ctx)
	if err != nil {
		t.Fatalf("assessment stats: %v", err)
	}
	if stats.TotalAssessed != 1 {
		t.Errorf("expected 1 assessed, got %d", stats.TotalAssessed)
	}
	if stats.RatingCounts["good"] != 1 {
		t.Errorf("expected rating count, got %v", stats.RatingCounts)
	}
}
