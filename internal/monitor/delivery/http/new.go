package http

import (
	"github.com/gin-gonic/gin"

	"trial-monitor/internal/monitor"
	pkgLog "trial-monitor/pkg/log"
)

// Handler is the public interface for the monitor HTTP delivery layer.
type Handler interface {
	SendMessage(c *gin.Context)
	Stats(c *gin.Context)
	ResetConversation(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc monitor.UseCase
}

// New creates a new HTTP handler for the monitor domain.
func New(l pkgLog.Logger, uc monitor.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
