package usecase

import (
	"context"
	"fmt"
	"strings"

	"trial-monitor/internal/conversation"
	"trial-monitor/internal/monitor"
	"trial-monitor/pkg/llmprovider"
)

const maxTurnRunes = 500

// guide answers an unclassified message using the sender's recent turns as context.
// Only a successful answer is written back to the history. An empty sender
// gets an answer without history.
func (uc *implUseCase) guide(ctx context.Context, sender, text string) monitor.HandlerResult {
	var turns []conversation.Turn
	if sender != "" {
		unlock := uc.lockSender(sender)
		defer unlock()
		turns = uc.history.Recent(sender, uc.cfg.GuidanceContextTurns)
	}

	system := llmprovider.SystemMessage(systemPrompt)
	reply, err := uc.generate(ctx, &system, guidancePrompt(turns, text))
	if err != nil {
		uc.l.Errorf(ctx, "guide: sender=%s: %v", sender, err)
		return monitor.HandlerResult{Error: fmt.Sprintf("Error generating guidance: %s", err)}
	}
	reply = strings.TrimSpace(reply)

	if sender != "" {
		uc.history.Append(sender, conversation.UserTurn(text), conversation.ModelTurn(reply))
	}
	return monitor.HandlerResult{Success: true, Payload: reply}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
