package llmprovider

import (
	"context"
	"strings"
)

// Generator produces text for a request. *Manager implements it, which is what
// the rest of the service depends on.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Provider defines the interface for LLM providers
type Provider interface {
	Generator

	// Name returns the provider name (e.g., "gemini", "qwen")
	Name() string

	// Model returns the model being used
	Model() string
}

// Roles
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	TopP              float64
	TopK              int
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role  string // "user" or "model"
	Parts []Part
}

// Part is a text segment of a message
type Part struct {
	Text string
}

// TextMessage builds a single part message.
func TextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}

// SystemMessage builds a role-less system instruction.
func SystemMessage(text string) Message {
	return Message{Parts: []Part{{Text: text}}}
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text joins the text parts of the response.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
