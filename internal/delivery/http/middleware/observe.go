package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// RequestMetrics records latency per route template.
func RequestMetrics(m *metrics.GigMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start).Seconds())
	}
}

func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", strconv.Itoa(status),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if identity, ok := Identity(c); ok {
			attrs = append(attrs, "user_id", identity.UserID)
		}
		switch {
		case status >= 500:
			log.Error("request", attrs...)
		case status >= 400:
			log.Warn("request", attrs...)
		default:
			log.Debug("request", attrs...)
		}
	}
}
