package memory

import (
	"context"

	"github.com/google/uuid"

	"trial-monitor/internal/monitor"
	repo "trial-monitor/internal/monitor/repository"
)

// CreateRecord appends a record, evicting the oldest when the log is full.
// The running total is never reduced by eviction.
func (r *implRepository) CreateRecord(ctx context.Context, opt repo.CreateRecordOptions) (monitor.RequestRecord, error) {
	if opt.RequestType == "" || opt.Status == "" {
		r.l.Warnf(ctx, "%s: missing request type or status", r.dsn("CreateRecord"))
		return monitor.RequestRecord{}, repo.ErrInvalidRecord
	}

	id, err := uuid.NewRandom()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRecord"), err)
		return monitor.RequestRecord{}, repo.ErrFailedToInsert
	}

	rec := monitor.RequestRecord{
		ID:          id.String(),
		Sender:      opt.Sender,
		RequestType: opt.RequestType,
		Status:      opt.Status,
		Timestamp:   r.now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.records) == r.capacity {
		copy(r.records, r.records[1:])
		r.records = r.records[:len(r.records)-1]
	}
	r.records = append(r.records, rec)
	r.total++

	return rec, nil
}

// ListRecords returns matching records, newest first.
func (r *implRepository) ListRecords(ctx context.Context, opt repo.ListRecordsOptions) ([]monitor.RequestRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]monitor.RequestRecord, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if opt.Sender != "" && rec.Sender != opt.Sender {
			continue
		}
		out = append(out, rec)
		if opt.Limit > 0 && len(out) == opt.Limit {
			break
		}
	}
	return out, nil
}

// CountRecords returns how many records were ever created.
func (r *implRepository) CountRecords(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total, nil
}
