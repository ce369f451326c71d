package monitor

import (
	"context"
	"time"

	"trial-monitor/internal/extract"
	"trial-monitor/internal/model"
)

// FallbackReply is sent when processing fails in an unexpected way.
const FallbackReply = "I'm sorry, I encountered an error processing your request. Please try again."

// --- Handler Result ---

// HandlerResult is what one request handler produced. Exactly one of Payload
// and Error is meaningful, selected by Success.
type HandlerResult struct {
	Success bool
	Payload string
	Error   string
}

// Reply is the text sent back to the sender.
func (r HandlerResult) Reply() string {
	if r.Success {
		return r.Payload
	}
	return r.Error
}

// --- Request Log ---

type RequestStatus string

const (
	RequestStatusProcessed RequestStatus = "processed"
	RequestStatusFailed    RequestStatus = "failed"
)

// RequestRecord is one entry of the recent request log.
type RequestRecord struct {
	ID          string
	Sender      string
	RequestType model.RequestType
	Status      RequestStatus
	Timestamp   time.Time
}

// --- UseCase Inputs ---

// ProgressFunc is told what the service is working on before the oracle is called.
type ProgressFunc func(ctx context.Context, notice string)

type HandleMessageInput struct {
	Sender     string
	Text       string
	OnProgress ProgressFunc
}

// Message snapshots the inbound message.
func (in HandleMessageInput) Message() model.Message {
	return model.Message{Sender: in.Sender, Text: in.Text}
}

// --- UseCase Outputs ---

type HandleMessageOutput struct {
	RequestType model.RequestType
	Rule        string
	Success     bool
	Reply       string
}

type PreviewOutput struct {
	RequestType model.RequestType
	Rule        string
	Arguments   extract.Arguments
}

type StatsOutput struct {
	Total  int64
	Recent []RequestRecord
}
