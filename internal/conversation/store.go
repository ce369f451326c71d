package conversation

// Append adds turns to the sender's history as one batch, evicting the oldest
// turns beyond the window. Zero timestamps are set to the current time.
func (s *Store) Append(sender string, turns ...Turn) {
	if len(turns) == 0 {
		return
	}
	e := s.entry(sender)

	e.mu.Lock()
	defer e.mu.Unlock()

	now := s.now()
	for _, t := range turns {
		if t.At.IsZero() {
			t.At = now
		}
		e.turns = append(e.turns, t)
	}
	if over := len(e.turns) - s.window; over > 0 {
		kept := make([]Turn, s.window)
		copy(kept, e.turns[over:])
		e.turns = kept
	}
}

// Recent returns up to k of the sender's latest turns, oldest first.
// The result is a copy. k <= 0 returns the whole window.
func (s *Store) Recent(sender string, k int) []Turn {
	e := s.lookup(sender)
	if e == nil {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.turns)
	if k <= 0 || k > n {
		k = n
	}
	out := make([]Turn, k)
	copy(out, e.turns[n-k:])
	return out
}

// Len returns how many turns are held for sender.
func (s *Store) Len(sender string) int {
	e := s.lookup(sender)
	if e == nil {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.turns)
}

// Clear forgets the sender's history.
func (s *Store) Clear(sender string) {
	s.mu.Lock()
	delete(s.entries, sender)
	s.mu.Unlock()
}

// Senders returns how many senders have history.
func (s *Store) Senders() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) lookup(sender string) *entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[sender]
}

func (s *Store) entry(sender string) *entry {
	if e := s.lookup(sender); e != nil {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[sender]; ok {
		return e
	}
	e := &entry{}
	s.entries[sender] = e
	return e
}
