package llmprovider

import (
	"context"
	"errors"
	"net/http"

	"trial-monitor/pkg/gemini"
	"trial-monitor/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		TopP:              req.TopP,
		TopK:              req.TopK,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			err = errors.Join(ErrProviderRateLimited, err)
		}
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	return &Response{
		Content:      Message{Role: RoleModel, Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface. One
// adapter type serves every OpenAI-compatible vendor (qwen, deepseek, openai).
type OpenAIAdapter struct {
	name   string
	client openai.IClient
}

// NewOpenAIAdapter creates a new adapter reporting itself as name
func NewOpenAIAdapter(name string, client openai.IClient) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openaiReq := &openai.Request{
		Messages:    make([]openai.Message, 0, len(req.Messages)),
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		openaiReq.SystemInstruction = joinParts(req.SystemInstruction.Parts)
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == RoleModel {
			role = "assistant"
		}
		openaiReq.Messages = append(openaiReq.Messages, openai.Message{
			Role:    role,
			Content: joinParts(msg.Parts),
		})
	}

	resp, err := a.client.GenerateContent(ctx, openaiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Content:      TextMessage(RoleModel, resp.Content.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func joinParts(parts []Part) string {
	if len(parts) == 1 {
		return parts[0].Text
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "\n"
		}
		out += p.Text
	}
	return out
}
