package usecase

import (
	"context"

	"trial-monitor/internal/extract"
	"trial-monitor/internal/monitor"
)

// Preview shows how a message would be routed without calling the oracle.
func (uc *implUseCase) Preview(ctx context.Context, text string) monitor.PreviewOutput {
	cls := uc.router.Explain(text)
	uc.l.Debugf(ctx, "Preview: request_type=%s rule=%s", cls.Type, cls.Rule)
	return monitor.PreviewOutput{
		RequestType: cls.Type,
		Rule:        cls.Rule,
		Arguments:   extract.Extract(text, cls.Type),
	}
}
