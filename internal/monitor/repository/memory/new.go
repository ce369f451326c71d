package memory

import (
	"fmt"
	"sync"
	"time"

	"trial-monitor/internal/monitor"
	"trial-monitor/internal/monitor/repository"
	pkgLog "trial-monitor/pkg/log"
)

// DefaultCapacity is how many records the log keeps.
const DefaultCapacity = 10

type implRepository struct {
	mu       sync.Mutex
	records  []monitor.RequestRecord // oldest first
	capacity int
	total    int64
	now      func() time.Time
	l        pkgLog.Logger
}

// New creates an in-process request log keeping the last capacity records.
// Nothing survives a restart.
func New(capacity int, l pkgLog.Logger) repository.Repository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if l == nil {
		l = pkgLog.NewNop()
	}
	return &implRepository{
		records:  make([]monitor.RequestRecord, 0, capacity),
		capacity: capacity,
		now:      time.Now,
		l:        l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("monitor/repository/memory.%s", method)
}
