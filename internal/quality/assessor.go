// Package quality implements the deterministic article quality
// assessor. Scoring is a pure function of the article, analysis, and
// SEO package; identical inputs always produce identical assessments.
package quality

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonesrussell/content-qa/internal/domain"
	"github.com/jonesrussell/content-qa/internal/logger"
	"github.com/jonesrussell/content-qa/internal/telemetry"
)

// Overall score weights. Policy carries a fixed 10% taken evenly from
// the content and SEO shares; structure keeps its full 20%.
const (
	policyWeight    = 0.1
	contentWeight   = 0.5 - policyWeight/2
	seoWeight       = 0.3 - policyWeight/2
	structureWeight = 0.2
)

// Assessor scores generated articles. It is stateless and safe for
// concurrent reuse.
type Assessor struct {
	telemetry *telemetry.Provider
	logger    logger.Logger
}

// New creates an Assessor.
func New(log logger.Logger, tp *telemetry.Provider) *Assessor {
	return &Assessor{
		telemetry: tp,
		logger:    log,
	}
}

// Assess runs the full quality assessment over one article with its
// analysis and SEO package. Sub-scores all land in [0,100]; the overall
// score is their weighted blend plus the structure pass fraction.
func (a *Assessor) Assess(
	ctx context.Context,
	article *domain.Article,
	analysis *domain.ContentAnalysis,
	seo *domain.SEOPackage,
) (*domain.QualityAssessment, error) {
	if err := article.Validate(); err != nil {
		return nil, fmt.Errorf("assess article: %w", err)
	}
	if err := analysis.Validate(); err != nil {
		return nil, fmt.Errorf("assess article: %w", err)
	}
	if err := seo.Validate(); err != nil {
		return nil, fmt.Errorf("assess article: %w", err)
	}

	if a.telemetry != nil {
		var span trace.Span
		ctx, span = a.telemetry.StartSpan(ctx, "quality.assess",
			attribute.Int("word_count", article.WordCount))
		defer span.End()
	}

	start := time.Now()

	structure := checkStructure(article)
	content := scoreContent(article, analysis)
	seoScore := scoreSEO(article, seo)
	policy := scorePolicy(article, analysis)

	structureScore := float64(structure.PassedChecks) / float64(structure.TotalChecks) * 100
	overall := content.AverageScore*contentWeight +
		seoScore.AverageScore*seoWeight +
		structureScore*structureWeight +
		policy.OverallPolicyCompliance*policyWeight

	rating := domain.RatingFor(overall)

	assessment := &domain.QualityAssessment{
		StructureCheck:   structure,
		ContentQuality:   content,
		SEOQuality:       seoScore,
		PolicyCompliance: policy,
		OverallScore:     overall,
		QualityRating:    rating,
		Recommendations:  recommendations(article, structure, content, seoScore, policy),
	}

	duration := time.Since(start)
	if a.telemetry != nil {
		a.telemetry.RecordAssessment(ctx, string(rating), overall, duration)
	}

	a.logger.Debug("article assessed",
		logger.String("quality_rating", string(rating)),
		logger.Float64("overall_score", overall),
		logger.String("policy_rating", string(policy.PolicyRating)),
		logger.Int("recommendations", len(assessment.Recommendations)),
		logger.Duration("duration", duration),
	)

	return assessment, nil
}
