package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"trial-monitor/pkg/response"
	pkgTelegram "trial-monitor/pkg/telegram"
)

// TelegramSecret rejects webhook calls that do not carry the secret token
// registered with setWebhook. It is a no-op when no secret is configured.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.telegramSecret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: invalid secret token from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
