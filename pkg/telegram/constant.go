package telegram

import "time"

const (
	// DefaultAPIURL is the Bot API host
	DefaultAPIURL = "https://api.telegram.org"

	// DefaultTimeout bounds every Bot API call
	DefaultTimeout = 15 * time.Second

	// MaxMessageLength is the sendMessage text limit in characters
	MaxMessageLength = 4096

	// SecretTokenHeader carries the webhook secret on incoming updates
	SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

	ChatActionTyping = "typing"
)
