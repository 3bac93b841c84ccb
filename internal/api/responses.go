package api

import (
	"github.com/jonesrussell/content-qa/internal/database"
	"github.com/jonesrussell/content-qa/internal/domain"
	"github.com/jonesrussell/content-qa/internal/processor"
)

// FilterRequest is a single transcript filtering request.
type FilterRequest struct {
	Transcript *domain.Transcript `json:"transcript" binding:"required"`
}

// FilterResponse is a single transcript filtering response.
type FilterResponse struct {
	VideoID string                      `json:"video_id"`
	Result  *domain.ContentFilterResult `json:"result,omitempty"`
	Error   string                      `json:"error,omitempty"`
}

// BatchFilterRequest is a batch filtering request.
type BatchFilterRequest struct {
	Transcripts []*domain.Transcript `json:"transcripts" binding:"required,min=1,max=100"`
}

// BatchFilterItem is the outcome for one transcript in a batch.
type BatchFilterItem struct {
	VideoID string                      `json:"video_id"`
	Result  *domain.ContentFilterResult `json:"result,omitempty"`
	Error   string                      `json:"error,omitempty"`
}

// BatchFilterResponse is a batch filtering response. Results appear in
// request order.
type BatchFilterResponse struct {
	Results []BatchFilterItem `json:"results"`
	Total   int               `json:"total"`
	Success int               `json:"success"`
	Failed  int               `json:"failed"`
}

// AssessRequest is a quality assessment request. VideoID ties the
// assessment to its source video in the history store.
type AssessRequest struct {
	VideoID  string                  `json:"video_id" binding:"required"`
	Article  *domain.Article         `json:"article" binding:"required"`
	Analysis *domain.ContentAnalysis `json:"analysis" binding:"required"`
	SEO      *domain.SEOPackage      `json:"seo_package" binding:"required"`
}

// AssessResponse is a quality assessment response.
type AssessResponse struct {
	VideoID    string                    `json:"video_id"`
	Assessment *domain.QualityAssessment `json:"assessment,omitempty"`
	Error      string                    `json:"error,omitempty"`
}

// HistoryResponse bundles the persisted filtering passes and
// assessments for one video.
type HistoryResponse struct {
	VideoID     string                       `json:"video_id"`
	Filters     []*database.FilterRecord     `json:"filters"`
	Assessments []*database.AssessmentRecord `json:"assessments"`
}

// StatsResponse bundles service-wide aggregates.
type StatsResponse struct {
	Filters     *database.FilterStats     `json:"filters"`
	Assessments *database.AssessmentStats `json:"assessments"`
}

// toBatchItems converts processor results into response items.
func toBatchItems(results []*processor.ProcessResult) []BatchFilterItem {
	items := make([]BatchFilterItem, len(results))
	for i, result := range results {
		items[i] = BatchFilterItem{
			VideoID: result.VideoID,
			Result:  result.Result,
		}
		if result.Error != nil {
			items[i].Error = result.Error.Error()
		}
	}
	return items
}
