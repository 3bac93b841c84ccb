package quality

import (
	"fmt"
	"strings"

	"github.com/jonesrussell/content-qa/internal/domain"
)

// Sub-score thresholds below which a recommendation is emitted.
const (
	readabilityRecThreshold = 50.0
	coherenceRecThreshold   = 60.0
	relevanceRecThreshold   = 70.0
	uniquenessRecThreshold  = 60.0
	keywordRecThreshold     = 70.0
	metaTagRecThreshold     = 70.0
	schemaRecThreshold      = 80.0
	socialRecThreshold      = 80.0
)

// recommendations assembles the improvement list in a fixed order:
// structure problems first, then content quality, then SEO, then the
// policy verdict. Emission order is deterministic for identical inputs.
func recommendations(
	article *domain.Article,
	structure domain.StructureCheck,
	content domain.ContentQualityScore,
	seo domain.SEOQualityScore,
	policy domain.PolicyComplianceScore,
) []domain.QualityRecommendation {
	recs := make([]domain.QualityRecommendation, 0)

	add := func(category domain.RecommendationCategory, severity domain.RecommendationSeverity, message, action string) {
		recs = append(recs, domain.QualityRecommendation{
			Category: category,
			Severity: severity,
			Message:  message,
			Action:   action,
		})
	}

	if !structure.HasHeadline {
		add(domain.RecommendStructure, domain.RecommendCritical,
			"Article headline is missing or too short",
			"Add a compelling headline (minimum 10 characters)")
	}
	if !structure.HasIntroduction {
		add(domain.RecommendStructure, domain.RecommendCritical,
			"Introduction is missing or too short",
			"Add an introduction section (minimum 100 characters)")
	}
	if !structure.HasSections {
		add(domain.RecommendStructure, domain.RecommendCritical,
			"Article lacks body sections",
			"Add at least 3-4 main content sections")
	}
	if !structure.HasConclusion {
		add(domain.RecommendStructure, domain.RecommendCritical,
			"Conclusion is missing or too short",
			"Add a conclusion section (minimum 100 characters)")
	}
	if !structure.MinWordCountMet {
		add(domain.RecommendStructure, domain.RecommendWarning,
			fmt.Sprintf("Article word count (%d) is below minimum (%d)", article.WordCount, minWordCount),
			"Expand sections with more detailed information")
	}
	if !structure.SectionsHaveContent {
		add(domain.RecommendContent, domain.RecommendWarning,
			"Some sections lack sufficient content",
			"Ensure each section has at least 50 words of meaningful content")
	}
	if !structure.ProperFormatting {
		add(domain.RecommendStructure, domain.RecommendInfo,
			"Markdown formatting could be improved",
			"Ensure proper heading hierarchy and paragraph spacing")
	}

	if content.ReadabilityScore < readabilityRecThreshold {
		add(domain.RecommendStyle, domain.RecommendWarning,
			fmt.Sprintf("Readability score is low (%.0f)", content.ReadabilityScore),
			"Use shorter sentences and simpler vocabulary")
	}
	if content.CoherenceScore < coherenceRecThreshold {
		add(domain.RecommendContent, domain.RecommendWarning,
			fmt.Sprintf("Content coherence score is low (%.0f)", content.CoherenceScore),
			"Add transition words between sections for better flow")
	}
	if content.RelevanceScore < relevanceRecThreshold {
		add(domain.RecommendContent, domain.RecommendWarning,
			fmt.Sprintf("Content relevance to main topic is low (%.0f)", content.RelevanceScore),
			"Ensure content directly addresses the main topic and subtopics")
	}
	if content.UniquenessScore < uniquenessRecThreshold {
		add(domain.RecommendContent, domain.RecommendInfo,
			fmt.Sprintf("Content uniqueness score is moderate (%.0f)", content.UniquenessScore),
			"Add original insights, examples, and analysis")
	}

	if seo.KeywordOptimization < keywordRecThreshold {
		add(domain.RecommendSEO, domain.RecommendWarning,
			fmt.Sprintf("Keyword optimization score is low (%.0f)", seo.KeywordOptimization),
			"Ensure primary and secondary keywords appear naturally throughout the article")
	}
	if seo.MetaTagQuality < metaTagRecThreshold {
		add(domain.RecommendSEO, domain.RecommendWarning,
			fmt.Sprintf("Meta tag quality score is low (%.0f)", seo.MetaTagQuality),
			"Optimize meta title (50-60 chars) and description (150-160 chars)")
	}
	if seo.SchemaMarkupQuality < schemaRecThreshold {
		add(domain.RecommendSEO, domain.RecommendInfo,
			fmt.Sprintf("Schema markup could be more complete (%.0f)", seo.SchemaMarkupQuality),
			"Add more optional schema.org fields (image, articleBody, keywords)")
	}
	if seo.SocialMediaOptimization < socialRecThreshold {
		add(domain.RecommendSEO, domain.RecommendInfo,
			fmt.Sprintf("Social media optimization could be improved (%.0f)", seo.SocialMediaOptimization),
			"Ensure all Open Graph and Twitter Card tags are present")
	}

	if policy.PolicyRating != domain.ComplianceCompliant {
		severity := domain.RecommendCritical
		if policy.PolicyRating == domain.ComplianceWarning {
			severity = domain.RecommendWarning
		}
		add(domain.RecommendContent, severity,
			"Policy compliance rating: "+strings.ToUpper(string(policy.PolicyRating)),
			"Review content for policy violations and adjust as necessary")
	}

	return recs
}
