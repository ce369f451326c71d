package test

import "trial-monitor/internal/extract"

// TestMessageRequest represents a test message request
type TestMessageRequest struct {
	Text   string `json:"text" binding:"required"`
	UserID int64  `json:"user_id"`
}

// TestMessageResponse shows how a message would be routed
type TestMessageResponse struct {
	Success     bool              `json:"success"`
	RequestType string            `json:"request_type"`
	Rule        string            `json:"rule,omitempty"`
	Arguments   extract.Arguments `json:"arguments,omitempty"`
	Text        string            `json:"text"`
	UserID      int64             `json:"user_id"`
}

// ResetSessionRequest represents a reset session request
type ResetSessionRequest struct {
	UserID int64 `json:"user_id"`
}

// ResetSessionResponse represents a reset session response
type ResetSessionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
