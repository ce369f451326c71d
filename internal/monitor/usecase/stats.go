package usecase

import (
	"context"

	"trial-monitor/internal/monitor"
	repo "trial-monitor/internal/monitor/repository"
)

// Stats returns the running request total and the recent request log.
func (uc *implUseCase) Stats(ctx context.Context) (monitor.StatsOutput, error) {
	if uc.repo == nil {
		return monitor.StatsOutput{}, nil
	}

	total, err := uc.repo.CountRecords(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "Stats: CountRecords: %v", err)
		return monitor.StatsOutput{}, err
	}
	recent, err := uc.repo.ListRecords(ctx, repo.ListRecordsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "Stats: ListRecords: %v", err)
		return monitor.StatsOutput{}, err
	}
	return monitor.StatsOutput{Total: total, Recent: recent}, nil
}

// ResetConversation forgets the guidance history and the lock of one sender.
func (uc *implUseCase) ResetConversation(ctx context.Context, sender string) error {
	if sender == "" {
		return monitor.ErrEmptySender
	}
	unlock := uc.lockSender(sender)
	uc.history.Clear(sender)
	uc.senderLocks.Delete(sender)
	unlock()

	uc.l.Infof(ctx, "ResetConversation: sender=%s", sender)
	return nil
}
