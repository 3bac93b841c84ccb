package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/content-qa/internal/domain"
)

// historyLimit caps how many rows a per-video history query returns.
const historyLimit = 50

// FilterRecord is one persisted filtering pass.
type FilterRecord struct {
	ID               int64     `db:"id"                 json:"id"`
	VideoID          string    `db:"video_id"           json:"video_id"`
	Compliance       string    `db:"compliance"         json:"compliance"`
	FlagCount        int       `db:"flag_count"         json:"flag_count"`
	IsSponsorContent bool      `db:"is_sponsor_content" json:"is_sponsor_content"`
	PromotionalScore float64   `db:"promotional_score"  json:"promotional_score"`
	Summary          string    `db:"summary"            json:"summary"`
	Result           string    `db:"result"             json:"result"`
	CreatedAt        time.Time `db:"created_at"         json:"created_at"`
}

// AssessmentRecord is one persisted quality assessment.
type AssessmentRecord struct {
	ID                  int64     `db:"id"                   json:"id"`
	VideoID             string    `db:"video_id"             json:"video_id"`
	QualityRating       string    `db:"quality_rating"       json:"quality_rating"`
	OverallScore        float64   `db:"overall_score"        json:"overall_score"`
	PolicyRating        string    `db:"policy_rating"        json:"policy_rating"`
	RecommendationCount int       `db:"recommendation_count" json:"recommendation_count"`
	Result              string    `db:"result"               json:"result"`
	CreatedAt           time.Time `db:"created_at"           json:"created_at"`
}

// FilterStats summarizes all persisted filtering passes.
type FilterStats struct {
	TotalFiltered       int            `json:"total_filtered"`
	SponsorContent      int            `json:"sponsor_content"`
	AvgPromotionalScore float64        `json:"avg_promotional_score"`
	AvgFlagCount        float64        `json:"avg_flag_count"`
	ComplianceCounts    map[string]int `json:"compliance_counts"`
}

// AssessmentStats summarizes all persisted assessments.
type AssessmentStats struct {
	TotalAssessed   int            `json:"total_assessed"`
	AvgOverallScore float64        `json:"avg_overall_score"`
	RatingCounts    map[string]int `json:"rating_counts"`
}

// HistoryRepository persists filter results and quality assessments.
// The full result payload is stored as JSON alongside the queryable
// summary columns.
type HistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a history repository.
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// RecordFilter inserts one filtering pass for a transcript.
func (r *HistoryRepository) RecordFilter(ctx context.Context, videoID string, result *domain.ContentFilterResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode filter result: %w", err)
	}

	query := r.db.Rebind(`
		INSERT INTO filter_history (
			video_id, compliance, flag_count, is_sponsor_content,
			promotional_score, summary, result, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err = r.db.ExecContext(
		ctx,
		query,
		videoID,
		string(result.OverallCompliance),
		len(result.Flags),
		result.IsSponsorContent,
		result.PromotionalScore,
		result.Summary,
		string(payload),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record filter result: %w", err)
	}

	return nil
}

// RecordAssessment inserts one quality assessment.
func (r *HistoryRepository) RecordAssessment(ctx context.Context, videoID string, assessment *domain.QualityAssessment) error {
	payload, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("failed to encode assessment: %w", err)
	}

	query := r.db.Rebind(`
		INSERT INTO assessment_history (
			video_id, quality_rating, overall_score, policy_rating,
			recommendation_count, result, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	_, err = r.db.ExecContext(
		ctx,
		query,
		videoID,
		string(assessment.QualityRating),
		assessment.OverallScore,
		string(assessment.PolicyCompliance.PolicyRating),
		len(assessment.Recommendations),
		string(payload),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record assessment: %w", err)
	}

	return nil
}

// FilterHistory returns the most recent filtering passes for a video,
// newest first.
func (r *HistoryRepository) FilterHistory(ctx context.Context, videoID string) ([]*FilterRecord, error) {
	var records []*FilterRecord

	query := r.db.Rebind(`
		SELECT id, video_id, compliance, flag_count, is_sponsor_content,
		       promotional_score, summary, result, created_at
		FROM filter_history
		WHERE video_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`)

	if err := r.db.SelectContext(ctx, &records, query, videoID, historyLimit); err != nil {
		return nil, fmt.Errorf("failed to get filter history: %w", err)
	}

	return records, nil
}

// AssessmentHistory returns the most recent assessments for a video,
// newest first.
func (r *HistoryRepository) AssessmentHistory(ctx context.Context, videoID string) ([]*AssessmentRecord, error) {
	var records []*AssessmentRecord

	query := r.db.Rebind(`
		SELECT id, video_id, quality_rating, overall_score, policy_rating,
		       recommendation_count, result, created_at
		FROM assessment_history
		WHERE video_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`)

	if err := r.db.SelectContext(ctx, &records, query, videoID, historyLimit); err != nil {
		return nil, fmt.Errorf("failed to get assessment history: %w", err)
	}

	return records, nil
}

// FilterStats aggregates all persisted filtering passes.
func (r *HistoryRepository) FilterStats(ctx context.Context) (*FilterStats, error) {
	stats := &FilterStats{ComplianceCounts: make(map[string]int)}

	query := `
		SELECT
			COUNT(*) AS total_filtered,
			COALESCE(SUM(CASE WHEN is_sponsor_content THEN 1 ELSE 0 END), 0) AS sponsor_content,
			COALESCE(AVG(promotional_score), 0) AS avg_promotional_score,
			COALESCE(AVG(flag_count), 0) AS avg_flag_count
		FROM filter_history
	`

	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalFiltered,
		&stats.SponsorContent,
		&stats.AvgPromotionalScore,
		&stats.AvgFlagCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get filter stats: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT compliance, COUNT(*) AS count
		FROM filter_history
		GROUP BY compliance
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get compliance distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var compliance string
		var count int
		if err := rows.Scan(&compliance, &count); err != nil {
			return nil, fmt.Errorf("failed to scan compliance count: %w", err)
		}
		stats.ComplianceCounts[compliance] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating compliance counts: %w", err)
	}

	return stats, nil
}

// AssessmentStats aggregates all persisted assessments.
func (r *HistoryRepository) AssessmentStats(ctx context.Context) (*AssessmentStats, error) {
	stats := &AssessmentStats{RatingCounts: make(map[string]int)}

	query := `
		SELECT
			COUNT(*) AS total_assessed,
			COALESCE(AVG(overall_score), 0) AS avg_overall_score
		FROM assessment_history
	`

	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalAssessed,
		&stats.AvgOverallScore,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment stats: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT quality_rating, COUNT(*) AS count
		FROM assessment_history
		GROUP BY quality_rating
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rating string
		var count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, fmt.Errorf("failed to scan rating count: %w", err)
		}
		stats.RatingCounts[rating] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rating counts: %w", err)
	}

	return stats, nil
}
