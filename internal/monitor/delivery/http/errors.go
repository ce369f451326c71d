package http

import (
	"errors"

	"trial-monitor/internal/monitor"
)

var errEmptyText = errors.New("text must not be blank")

// isClientError reports whether err was caused by the request itself.
func isClientError(err error) bool {
	return errors.Is(err, monitor.ErrEmptyMessage) ||
		errors.Is(err, monitor.ErrEmptySender)
}
