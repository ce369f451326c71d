package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "trial-monitor/pkg/log"
)

const TraceIDHeader = "X-Request-ID"

// Trace attaches a trace id to the request context, reusing the caller's
// X-Request-ID when present, and echoes it in the response.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := pkgLog.WithTraceID(c.Request.Context(), traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceIDHeader, traceID)
		c.Next()
	}
}
