package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"trial-monitor/internal/monitor"
	pkgLog "trial-monitor/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Messenger is the subset of the Telegram bot the handler talks through.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
}

// Limiter throttles senders. A nil Limiter allows everything.
type Limiter interface {
	Allow(key string) error
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc monitor.UseCase, bot Messenger, limiter Limiter) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		limiter: limiter,
	}
}
