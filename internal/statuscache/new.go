package statuscache

import (
	"sync"
	"time"

	"ai-brain/pkg/log"
)

const (
	// DefaultTTL is applied when Set is called without an explicit TTL.
	DefaultTTL = 30 * time.Second
	// DefaultSweepInterval is how often the background sweep evicts
	// expired entries that were never re-read.
	DefaultSweepInterval = 60 * time.Second
)

type entry struct {
	value   any
	created time.Time
	expiry  time.Time
}

// Cache memoizes connection-status lookups keyed by (dataSource,
// contextID). Entries expire lazily on Get and proactively via the
// sweep started with Start. No persistence; rebuilt empty on restart.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry

	defaultTTL    time.Duration
	sweepInterval time.Duration

	stopOnce sync.Once
	done     chan struct{}

	l log.Logger

	// now is swappable for tests
	now func() time.Time
}

// New creates a status cache. Zero durations fall back to the defaults.
func New(defaultTTL, sweepInterval time.Duration, l log.Logger) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	return &Cache{
		entries:       make(map[string]entry),
		defaultTTL:    defaultTTL,
		sweepInterval: sweepInterval,
		done:          make(chan struct{}),
		l:             l,
		now:           time.Now,
	}
}
