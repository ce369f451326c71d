package test

import (
	"github.com/gin-gonic/gin"

	"trial-monitor/internal/monitor"
	pkgLog "trial-monitor/pkg/log"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleTestMessage(c *gin.Context)
	HandleResetSession(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, uc monitor.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
