package channelconfig

import "sync"

// Store maps a context to the set of channel IDs whose messages should
// be retained. A context with no entry means "no filter" — all
// channels are accepted. Process-memory only; lost on restart.
type Store struct {
	mu       sync.RWMutex
	selected map[string]map[string]struct{}
}

// New creates an empty channel config store.
func New() *Store {
	return &Store{
		selected: make(map[string]map[string]struct{}),
	}
}
