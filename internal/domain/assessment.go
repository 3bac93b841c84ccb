package domain

// QualityRating is the coarse bucket derived from the overall score.
type QualityRating string

// Quality ratings.
const (
	RatingExcellent QualityRating = "excellent"
	RatingGood      QualityRating = "good"
	RatingFair      QualityRating = "fair"
	RatingPoor      QualityRating = "poor"
)

// RecommendationCategory classifies an improvement recommendation.
type RecommendationCategory string

// Recommendation categories.
const (
	RecommendContent   RecommendationCategory = "content"
	RecommendSEO       RecommendationCategory = "seo"
	RecommendStructure RecommendationCategory = "structure"
	RecommendStyle     RecommendationCategory = "style"
)

// RecommendationSeverity grades how urgent a recommendation is.
type RecommendationSeverity string

// Recommendation severities.
const (
	RecommendInfo     RecommendationSeverity = "info"
	RecommendWarning  RecommendationSeverity = "warning"
	RecommendCritical RecommendationSeverity = "critical"
)

// StructureCheck is the boolean checklist validating an article's
// required parts are present and adequately sized.
type StructureCheck struct {
	HasHeadline         bool `json:"has_headline"`
	HasIntroduction     bool `json:"has_introduction"`
	HasSections         bool `json:"has_sections"`
	HasConclusion       bool `json:"has_conclusion"`
	MinWordCountMet     bool `json:"min_word_count_met"`
	SectionsHaveContent bool `json:"sections_have_content"`
	ProperFormatting    bool `json:"proper_formatting"`
	AllChecksPassed     bool `json:"all_checks_passed"`
	PassedChecks        int  `json:"passed_checks"`
	TotalChecks         int  `json:"total_checks"`
}

// ContentQualityScore holds the five content-quality sub-scores, each in
// [0,100], and their simple mean.
type ContentQualityScore struct {
	ReadabilityScore  float64 `json:"readability_score"`
	CoherenceScore    float64 `json:"coherence_score"`
	CompletenessScore float64 `json:"completeness_score"`
	RelevanceScore    float64 `json:"relevance_score"`
	UniquenessScore   float64 `json:"uniqueness_score"`
	AverageScore      float64 `json:"average_score"`
}

// SEOQualityScore holds the five SEO sub-scores, each in [0,100], and
// their simple mean.
type SEOQualityScore struct {
	KeywordOptimization     float64 `json:"keyword_optimization"`
	MetaTagQuality          float64 `json:"meta_tag_quality"`
	SlugQuality             float64 `json:"slug_quality"`
	SchemaMarkupQuality     float64 `json:"schema_markup_quality"`
	SocialMediaOptimization float64 `json:"social_media_optimization"`
	AverageScore            float64 `json:"average_score"`
}

// PolicyComplianceScore holds the seven policy sub-scores, their mean,
// and the derived rating. Ratings reuse the compliance verdict scale.
type PolicyComplianceScore struct {
	ProfanityFreeScore      float64    `json:"profanity_free_score"`
	ViolenceFreeScore       float64    `json:"violence_free_score"`
	HarassmentFreeScore     float64    `json:"harassment_free_score"`
	HateSpeechFreeScore     float64    `json:"hate_speech_free_score"`
	PromotionalContentScore float64    `json:"promotional_content_score"`
	SponsorTransparency     float64    `json:"sponsor_transparency_score"`
	MisinformationFreeScore float64    `json:"misinformation_free_score"`
	OverallPolicyCompliance float64    `json:"overall_policy_compliance"`
	PolicyRating            Compliance `json:"policy_rating"`
}

// QualityRecommendation is one improvement suggestion with a fixed
// category/severity and a message interpolating the observed score.
type QualityRecommendation struct {
	Category RecommendationCategory `json:"category"`
	Severity RecommendationSeverity `json:"severity"`
	Message  string                 `json:"message"`
	Action   string                 `json:"action,omitempty"`
}

// QualityAssessment aggregates scoring one article+seo pair. Produced
// fresh on every assessment call; identical inputs yield identical
// assessments.
type QualityAssessment struct {
	StructureCheck   StructureCheck          `json:"structure_check"`
	ContentQuality   ContentQualityScore     `json:"content_quality"`
	SEOQuality       SEOQualityScore         `json:"seo_quality"`
	PolicyCompliance PolicyComplianceScore   `json:"policy_compliance"`
	OverallScore     float64                 `json:"overall_score"`
	QualityRating    QualityRating           `json:"quality_rating"`
	Recommendations  []QualityRecommendation `json:"recommendations"`
}

// RatingFor derives the quality rating from an overall score using the
// fixed 85/70/50 thresholds.
func RatingFor(overallScore float64) QualityRating {
	switch {
	case overallScore >= 85:
		return RatingExcellent
	case overallScore >= 70:
		return RatingGood
	case overallScore >= 50:
		return RatingFair
	default:
		return RatingPoor
	}
}
