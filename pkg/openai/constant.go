package openai

import (
	"errors"
	"time"
)

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// QwenBaseURL is the OpenAI-compatible endpoint of Alibaba DashScope
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DeepSeekBaseURL is the DeepSeek API endpoint
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

var (
	// ErrNoChoices is returned when the API answers without any choice
	ErrNoChoices = errors.New("openai: response has no choices")
)

// BaseURLFor returns the default endpoint for a provider name.
func BaseURLFor(provider string) string {
	switch provider {
	case "qwen", "alibaba":
		return QwenBaseURL
	case "deepseek":
		return DeepSeekBaseURL
	default:
		return DefaultBaseURL
	}
}
