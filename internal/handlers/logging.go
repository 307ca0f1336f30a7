package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxKeyRequestID = "requestId"

// requestLogger tags each request with a generated id and emits one access
// log line after the handler chain finishes.
func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := uuid.NewString()
		c.Set(ctxKeyRequestID, reqID)

		c.Next()

		if h.log != nil {
			h.log.Infow("http_request",
				"request_id", reqID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", c.Writer.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		}
	}
}
