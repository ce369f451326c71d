package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("%s/bot%s", DefaultAPIURL, token),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is
// echoed back by Telegram in the X-Telegram-Bot-Api-Secret-Token header.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	payload := SetWebhookRequest{
		URL:            webhookURL,
		SecretToken:    secret,
		AllowedUpdates: []string{"message"},
	}
	if err := b.call(ctx, "setWebhook", payload); err != nil {
		return fmt.Errorf("telegram setWebhook failed: %w", err)
	}
	return nil
}

// DeleteWebhook removes the registered webhook.
func (b *Bot) DeleteWebhook(ctx context.Context) error {
	if err := b.call(ctx, "deleteWebhook", struct{}{}); err != nil {
		return fmt.Errorf("telegram deleteWebhook failed: %w", err)
	}
	return nil
}

// SendChatAction shows a status such as "typing" in the chat.
func (b *Bot) SendChatAction(ctx context.Context, chatID int64, action string) error {
	payload := SendChatActionRequest{ChatID: chatID, Action: action}
	if err := b.call(ctx, "sendChatAction", payload); err != nil {
		return fmt.Errorf("telegram sendChatAction failed: %w", err)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
// Texts above MaxMessageLength are sent as several consecutive messages.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	for _, chunk := range SplitMessage(text, MaxMessageLength) {
		payload := SendMessageRequest{
			ChatID:    chatID,
			Text:      chunk,
			ParseMode: parseMode,
		}
		if err := b.call(ctx, "sendMessage", payload); err != nil {
			return fmt.Errorf("telegram sendMessage failed: %w", err)
		}
	}
	return nil
}

func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s", b.apiURL, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Description: strings.TrimSpace(string(raw))}
	}
	if !apiResp.OK || resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Description: apiResp.Description}
	}
	return nil
}

// SplitMessage cuts text into chunks of at most limit runes, preferring to
// break on a newline. An empty text yields a single empty chunk.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	rest := []rune(text)
	for len(rest) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if rest[i-1] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(rest[:cut]))
		rest = rest[cut:]
	}
	if len(rest) > 0 {
		chunks = append(chunks, string(rest))
	}
	return chunks
}

// APIError is a failed Bot API call.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Description)
}
