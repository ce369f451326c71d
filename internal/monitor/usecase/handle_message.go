package usecase

import (
	"context"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"

	"trial-monitor/internal/extract"
	"trial-monitor/internal/model"
	"trial-monitor/internal/monitor"
	repo "trial-monitor/internal/monitor/repository"
	pkgLog "trial-monitor/pkg/log"
)

// HandleMessage classifies a message, extracts its arguments, runs the handler
// and returns the reply. Handler failures are part of the output; the error
// return is reserved for unusable input.
func (uc *implUseCase) HandleMessage(ctx context.Context, input monitor.HandleMessageInput) (out monitor.HandleMessageOutput, err error) {
	msg := input.Message()
	if strings.TrimSpace(msg.Text) == "" {
		return monitor.HandleMessageOutput{}, monitor.ErrEmptyMessage
	}
	if msg.Sender == "" {
		return monitor.HandleMessageOutput{}, monitor.ErrEmptySender
	}

	ctx = pkgLog.WithSender(ctx, msg.Sender)
	if pkgLog.TraceID(ctx) == "" {
		ctx = pkgLog.WithTraceID(ctx, uuid.NewString())
	}

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "HandleMessage: recovered from panic: %v\n%s", r, debug.Stack())
			out = monitor.HandleMessageOutput{
				RequestType: out.RequestType,
				Rule:        out.Rule,
				Reply:       monitor.FallbackReply,
			}
			err = nil
		}
	}()

	uc.l.Infof(ctx, "HandleMessage: sender=%s input_length=%d", msg.Sender, len(msg.Text))

	cls := uc.router.Explain(msg.Text)
	out.RequestType = cls.Type
	out.Rule = cls.Rule
	uc.l.Infof(ctx, "HandleMessage: request_type=%s rule=%s", cls.Type, cls.Rule)

	var res monitor.HandlerResult
	if cls.Type == model.RequestUnknown {
		res = uc.guide(ctx, msg.Sender, msg.Text)
	} else {
		if c, ok := uc.contracts[cls.Type]; ok && input.OnProgress != nil {
			input.OnProgress(ctx, c.notice)
		}
		res = uc.Dispatch(ctx, extract.Extract(msg.Text, cls.Type))
		uc.record(ctx, msg.Sender, cls.Type, res.Success)
	}

	out.Success = res.Success
	out.Reply = res.Reply()
	return out, nil
}

// record logs a handled request. A failing log never fails the request.
func (uc *implUseCase) record(ctx context.Context, sender string, t model.RequestType, success bool) {
	if uc.repo == nil {
		return
	}
	status := monitor.RequestStatusProcessed
	if !success {
		status = monitor.RequestStatusFailed
	}
	if _, err := uc.repo.CreateRecord(ctx, repo.CreateRecordOptions{
		Sender:      sender,
		RequestType: t,
		Status:      status,
	}); err != nil {
		uc.l.Warnf(ctx, "HandleMessage: failed to record request (non-fatal): %v", err)
	}
}
