package monitor

import (
	"context"

	"trial-monitor/internal/extract"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Message handling
	HandleMessage(ctx context.Context, input HandleMessageInput) (HandleMessageOutput, error)
	Dispatch(ctx context.Context, args extract.Arguments) HandlerResult
	Preview(ctx context.Context, text string) PreviewOutput

	// Bookkeeping
	Stats(ctx context.Context) (StatsOutput, error)
	ResetConversation(ctx context.Context, sender string) error
}
