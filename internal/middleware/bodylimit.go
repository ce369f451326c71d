package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trial-monitor/pkg/response"
)

// DefaultMaxBodyBytes is the request body cap when none is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// BodyLimit rejects bodies that declare a length above the cap and bounds
// the reader for the rest, so binding fails once the cap is crossed.
func (m Middleware) BodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > m.maxBodyBytes {
			m.l.Warnf(c.Request.Context(), "middleware.BodyLimit: %d byte body from %s", c.Request.ContentLength, c.ClientIP())
			response.RequestTooLarge(c)
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, m.maxBodyBytes)
		}
		c.Next()
	}
}
