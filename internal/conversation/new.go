package conversation

import (
	"sync"
	"time"
)

// Store keeps a bounded FIFO of turns per sender for the process lifetime.
// Appends for one sender are serialised; different senders never contend.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	window  int
	now     func() time.Time
}

// New creates a Store that keeps the last window turns per sender.
// A non-positive window means DefaultWindow.
func New(window int) *Store {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Store{
		entries: make(map[string]*entry),
		window:  window,
		now:     time.Now,
	}
}

// Window returns the per-sender capacity.
func (s *Store) Window() int {
	return s.window
}
