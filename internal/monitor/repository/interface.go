package repository

import (
	"context"

	"trial-monitor/internal/monitor"
)

// Repository is the composed interface for the monitor domain data store.
type Repository interface {
	RequestLogRepository
}

// RequestLogRepository keeps the most recent handled requests and a running total.
type RequestLogRepository interface {
	CreateRecord(ctx context.Context, opt CreateRecordOptions) (monitor.RequestRecord, error)
	ListRecords(ctx context.Context, opt ListRecordsOptions) ([]monitor.RequestRecord, error)
	CountRecords(ctx context.Context) (int64, error)
}
