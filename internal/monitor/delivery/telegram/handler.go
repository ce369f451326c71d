package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"trial-monitor/internal/monitor"
	pkgLog "trial-monitor/pkg/log"
	pkgResponse "trial-monitor/pkg/response"
	pkgTelegram "trial-monitor/pkg/telegram"
)

const (
	startText = "👋 Welcome to the *Clinical Trial Monitor*!\n\n" +
		"Describe the monitoring task and I will route it to the right review:\n" +
		"• Rank eSource files against a CRF\n" +
		"• Extract data points and verify CRF data against eSource\n" +
		"• Review data quality, integrity and protocol compliance\n" +
		"• Analyze trial protocols and draft monitoring plans\n\n" +
		"Send /help for examples."

	helpText = "*Examples:*\n\n" +
		"`Rank files. CRF filename: demographics.pdf eSource files: [\"visit1.pdf\", \"labs.csv\"]`\n\n" +
		"`Extract data points. Data points: [\"heart rate\", \"weight\"] File content: HR 72, weight 80kg`\n\n" +
		"`Verify data. CRF data: BP 120/80 eSource data: BP 120/80`\n\n" +
		"`Data quality review. Source data: ... Quality criteria: completeness`\n\n" +
		"`Generate monitoring plan for trial protocol ABC-123`\n\n" +
		"Anything else is answered as general monitoring guidance. Send /reset to clear the conversation."

	resetText       = "Conversation history cleared."
	rateLimitedText = "You are sending requests too quickly. Please wait a moment and try again."
)

type handler struct {
	l       pkgLog.Logger
	uc      monitor.UseCase
	bot     Messenger
	limiter Limiter
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a background goroutine,
// since an oracle call can outlast the time Telegram waits for a webhook answer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates
	if update.Message == nil || update.Message.Text == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}
	if update.Message.Chat == nil {
		h.l.Warnf(ctx, "telegram handler: update %d: %v", update.UpdateID, errMissingChat)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message
	traceID := pkgLog.TraceID(ctx)

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := pkgLog.WithTraceID(context.Background(), traceID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, monitor.FallbackReply)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	sender := senderID(msg)

	switch strings.TrimSpace(msg.Text) {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, chatID, startText, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(ctx, chatID, helpText, "Markdown")
	case "/reset":
		if err := h.uc.ResetConversation(ctx, sender); err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, chatID, resetText)
	}

	if h.limiter != nil {
		if err := h.limiter.Allow(sender); err != nil {
			h.l.Warnf(ctx, "telegram handler: %v", err)
			return h.bot.SendMessage(ctx, chatID, rateLimitedText)
		}
	}

	if err := h.bot.SendChatAction(ctx, chatID, pkgTelegram.ChatActionTyping); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send chat action: %v", err)
	}

	output, err := h.uc.HandleMessage(ctx, monitor.HandleMessageInput{
		Sender: sender,
		Text:   msg.Text,
		OnProgress: func(ctx context.Context, notice string) {
			if err := h.bot.SendMessage(ctx, chatID, notice); err != nil {
				h.l.Warnf(ctx, "telegram handler: failed to send progress notice: %v", err)
			}
		},
	})
	if err != nil {
		return err
	}

	h.l.Infof(ctx, "telegram handler: chat %d handled as %s (success=%t)", chatID, output.RequestType, output.Success)
	return h.bot.SendMessage(ctx, chatID, output.Reply)
}

// senderID names a Telegram user for conversation history. Messages without
// a From fall back to the chat.
func senderID(msg *pkgTelegram.Message) string {
	if msg.From != nil {
		return fmt.Sprintf("telegram_%d", msg.From.ID)
	}
	return fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)
}
