package channelconfig

// Replace swaps the selected-channel set for a context wholesale.
func (s *Store) Replace(contextID string, channelIDs []string) {
	set := make(map[string]struct{}, len(channelIDs))
	for _, id := range channelIDs {
		set[id] = struct{}{}
	}

	s.mu.Lock()
	s.selected[contextID] = set
	s.mu.Unlock()
}

// Allowed reports whether messages from the given channel should be
// kept for the context. A context without a configured entry accepts
// every channel (fail-open).
func (s *Store) Allowed(contextID, channelID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.selected[contextID]
	if !ok {
		return true
	}
	_, ok = set[channelID]
	return ok
}

// Selected returns a snapshot of the configured channel IDs for a
// context. The second result is false when no entry exists.
func (s *Store) Selected(contextID string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.selected[contextID]
	if !ok {
		return nil, false
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids, true
}
