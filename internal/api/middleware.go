package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jonesrussell/content-qa/internal/logger"
)

// RateLimit returns middleware that rejects requests above the
// configured rate with 429. A single shared limiter covers all clients;
// the service sits behind the pipeline orchestrator, not the open
// internet.
func RateLimit(rps float64, burst int, log logger.Logger) gin.HandlerFunc {
	if rps <= 0 {
		rps = 100
	}
	if burst <= 0 {
		burst = int(rps)
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.Warn("request rate limited",
				logger.String("path", c.Request.URL.Path),
				logger.String("client", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// RequestLogger returns middleware that logs completed requests at
// debug level.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Debug("request handled",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
		)
	}
}
