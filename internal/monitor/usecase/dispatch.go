package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trial-monitor/internal/extract"
	"trial-monitor/internal/model"
	"trial-monitor/internal/monitor"
	"trial-monitor/pkg/llmprovider"
	pkgLog "trial-monitor/pkg/log"
)

// Dispatch runs the handler for args. Preconditions are checked before the
// oracle is called; failures come back as a result, never as a panic or error.
func (uc *implUseCase) Dispatch(ctx context.Context, args extract.Arguments) monitor.HandlerResult {
	if args == nil {
		return monitor.HandlerResult{Error: "Error: Invalid request format"}
	}

	t := args.RequestType()
	if t == model.RequestUnknown {
		g, ok := args.(extract.GuidanceArgs)
		if !ok {
			return monitor.HandlerResult{Error: "Error: Invalid request format"}
		}
		return uc.guide(ctx, pkgLog.Sender(ctx), g.Text)
	}

	c, ok := uc.contracts[t]
	if !ok {
		uc.l.Warnf(ctx, "Dispatch: no handler for request type %q", t)
		return monitor.HandlerResult{Error: "Error: Invalid request format"}
	}

	prompt, err := c.build(args)
	if err != nil {
		uc.l.Warnf(ctx, "Dispatch: %s precondition failed: %v", t, err)
		return monitor.HandlerResult{Error: err.Error()}
	}

	text, err := uc.generate(ctx, nil, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "Dispatch: %s: %v", t, fmt.Errorf("%w: %w", monitor.ErrOracleFailure, err))
		return monitor.HandlerResult{Error: fmt.Sprintf("Error %s: %s", c.errContext, err)}
	}

	payload := strings.TrimSpace(text)
	if err := c.shape.check(payload); err != nil {
		uc.l.Warnf(ctx, "Dispatch: %s response does not match the requested format: %v", t, err)
	}

	return monitor.HandlerResult{Success: true, Payload: c.header + payload}
}

// generate sends one prompt to the oracle, bounded by the oracle timeout.
func (uc *implUseCase) generate(ctx context.Context, system *llmprovider.Message, prompt string) (string, error) {
	if uc.oracle == nil {
		return "", llmprovider.ErrNoProvidersConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.OracleTimeout)
	defer cancel()

	resp, err := uc.oracle.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: system,
		Messages:          []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, prompt)},
		Temperature:       uc.cfg.Temperature,
		TopP:              uc.cfg.TopP,
		TopK:              uc.cfg.TopK,
		MaxTokens:         uc.cfg.MaxOutputTokens,
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", err, ctx.Err())
		}
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty response from oracle")
	}

	if resp.Usage != nil {
		uc.l.Debugf(ctx, "generate: provider=%s model=%s tokens=%d", resp.ProviderName, resp.ModelName, resp.Usage.TotalTokens)
	}
	return text, nil
}
