package http

import (
	"github.com/gin-gonic/gin"

	"trial-monitor/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Message submission is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	monitor := rg.Group("/monitor")
	{
		monitor.POST("/messages", mw.RateLimit(nil), h.SendMessage)
		monitor.GET("/stats", h.Stats)
		monitor.DELETE("/conversations/:sender", h.ResetConversation)
	}
}
