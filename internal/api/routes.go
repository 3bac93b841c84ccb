package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/content-qa/internal/telemetry"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	if tp != nil {
		router.GET("/metrics", gin.WrapH(tp.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Filtering endpoints
		filterGroup := v1.Group("/filter")
		{
			filterGroup.POST("", handler.Filter)            // POST /api/v1/filter
			filterGroup.POST("/batch", handler.FilterBatch) // POST /api/v1/filter/batch
		}

		// Assessment endpoint
		v1.POST("/assess", handler.Assess) // POST /api/v1/assess

		// History and statistics endpoints
		v1.GET("/history/:video_id", handler.History) // GET /api/v1/history/:video_id
		v1.GET("/stats", handler.Stats)               // GET /api/v1/stats
	}
}
