package repository

import (
	"trial-monitor/internal/model"
	"trial-monitor/internal/monitor"
)

// CreateRecordOptions holds parameters for logging a handled request.
type CreateRecordOptions struct {
	Sender      string
	RequestType model.RequestType
	Status      monitor.RequestStatus
}

// ListRecordsOptions filters the recent request log. Records come back newest first.
type ListRecordsOptions struct {
	Sender string
	Limit  int
}
