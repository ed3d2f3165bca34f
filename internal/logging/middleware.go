package logging

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// RequestLogger tags every request with an ID (reusing an incoming
// X-Request-Id), echoes it in the response and logs one line per request.
// Request bodies are never logged.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if strings.TrimSpace(rid) == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), rid))
		c.Writer.Header().Set(RequestIDHeader, rid)

		start := time.Now()
		c.Next()

		logger.Info("request",
			"request_id", rid,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// WithRequestID returns a copy of ctx carrying rid.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID returns the ID stored by RequestLogger, or "".
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}
