// Package api exposes the filtering and assessment engines over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/content-qa/internal/database"
	"github.com/jonesrussell/content-qa/internal/domain"
	"github.com/jonesrussell/content-qa/internal/filter"
	"github.com/jonesrussell/content-qa/internal/logger"
	"github.com/jonesrussell/content-qa/internal/processor"
	"github.com/jonesrussell/content-qa/internal/quality"
	"github.com/jonesrussell/content-qa/internal/telemetry"
)

// Handler handles HTTP requests for the content-qa API.
type Handler struct {
	filter         *filter.ContentFilter
	assessor       *quality.Assessor
	batchProcessor *processor.BatchProcessor
	history        *database.HistoryRepository
	telemetry      *telemetry.Provider
	logger         logger.Logger
}

// NewHandler creates an API handler. The history repository may be nil;
// filtering and assessment then run without persistence.
func NewHandler(
	contentFilter *filter.ContentFilter,
	assessor *quality.Assessor,
	batchProcessor *processor.BatchProcessor,
	history *database.HistoryRepository,
	tp *telemetry.Provider,
	log logger.Logger,
) *Handler {
	return &Handler{
		filter:         contentFilter,
		assessor:       assessor,
		batchProcessor: batchProcessor,
		history:        history,
		telemetry:      tp,
		logger:         log,
	}
}

// Filter handles POST /api/v1/filter
func (h *Handler) Filter(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid filter request", logger.Error(err))
		h.recordFailure(c, "filter", "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.filter.Filter(c.Request.Context(), req.Transcript)
	if err != nil {
		h.logger.Error("filtering failed",
			logger.String("video_id", req.Transcript.VideoID),
			logger.Error(err),
		)
		h.recordFailure(c, "filter", "invalid_transcript")
		c.JSON(http.StatusUnprocessableEntity, FilterResponse{
			VideoID: req.Transcript.VideoID,
			Error:   err.Error(),
		})
		return
	}

	h.persistFilter(c, req.Transcript.VideoID, result)

	c.JSON(http.StatusOK, FilterResponse{
		VideoID: req.Transcript.VideoID,
		Result:  result,
	})
}

// FilterBatch handles POST /api/v1/filter/batch
func (h *Handler) FilterBatch(c *gin.Context) {
	var req BatchFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid batch filter request", logger.Error(err))
		h.recordFailure(c, "filter_batch", "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.batchProcessor.Process(c.Request.Context(), req.Transcripts)
	if err != nil {
		h.logger.Error("batch filtering failed", logger.Error(err))
		h.recordFailure(c, "filter_batch", "canceled")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	success := 0
	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			continue
		}
		success++
		h.persistFilter(c, result.VideoID, result.Result)
	}

	c.JSON(http.StatusOK, BatchFilterResponse{
		Results: toBatchItems(results),
		Total:   len(results),
		Success: success,
		Failed:  failed,
	})
}

// Assess handles POST /api/v1/assess
func (h *Handler) Assess(c *gin.Context) {
	var req AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment request", logger.Error(err))
		h.recordFailure(c, "assess", "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessment, err := h.assessor.Assess(c.Request.Context(), req.Article, req.Analysis, req.SEO)
	if err != nil {
		h.logger.Error("assessment failed",
			logger.String("video_id", req.VideoID),
			logger.Error(err),
		)
		h.recordFailure(c, "assess", "invalid_input")
		c.JSON(http.StatusUnprocessableEntity, AssessResponse{
			VideoID: req.VideoID,
			Error:   err.Error(),
		})
		return
	}

	if h.history != nil {
		if err := h.history.RecordAssessment(c.Request.Context(), req.VideoID, assessment); err != nil {
			h.logger.Warn("failed to persist assessment",
				logger.String("video_id", req.VideoID),
				logger.Error(err),
			)
		}
	}

	c.JSON(http.StatusOK, AssessResponse{
		VideoID:    req.VideoID,
		Assessment: assessment,
	})
}

// History handles GET /api/v1/history/:video_id
func (h *Handler) History(c *gin.Context) {
	videoID := c.Param("video_id")
	if videoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video_id is required"})
		return
	}
	if h.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history store is not configured"})
		return
	}

	filters, err := h.history.FilterHistory(c.Request.Context(), videoID)
	if err != nil {
		h.logger.Error("failed to load filter history", logger.String("video_id", videoID), logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	assessments, err := h.history.AssessmentHistory(c.Request.Context(), videoID)
	if err != nil {
		h.logger.Error("failed to load assessment history", logger.String("video_id", videoID), logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{
		VideoID:     videoID,
		Filters:     filters,
		Assessments: assessments,
	})
}

// Stats handles GET /api/v1/stats
func (h *Handler) Stats(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history store is not configured"})
		return
	}

	filterStats, err := h.history.FilterStats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load filter stats", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	assessmentStats, err := h.history.AssessmentStats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load assessment stats", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		Filters:     filterStats,
		Assessments: assessmentStats,
	})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ReadyCheck handles GET /ready. The service is ready as soon as the
// engines are constructed; the history store is optional.
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"history": h.history != nil,
	})
}

func (h *Handler) persistFilter(c *gin.Context, videoID string, result *domain.ContentFilterResult) {
	if h.history == nil || result == nil {
		return
	}
	if err := h.history.RecordFilter(c.Request.Context(), videoID, result); err != nil {
		h.logger.Warn("failed to persist filter result",
			logger.String("video_id", videoID),
			logger.Error(err),
		)
	}
}

func (h *Handler) recordFailure(c *gin.Context, operation, errorCode string) {
	if h.telemetry != nil {
		h.telemetry.RecordFailure(c.Request.Context(), operation, errorCode)
	}
}
