package memory

import (
	"sync"

	"ai-brain/internal/message/repository"
	"ai-brain/internal/model"
	"ai-brain/pkg/log"
)

// implRepository is an in-process MessageRepository. Default backend
// when no database is configured; also used by tests.
type implRepository struct {
	mu       sync.Mutex
	messages []model.Message
	index    map[string]struct{} // dedup index keyed context|channel|ts
	l        log.Logger
}

var _ repository.MessageRepository = (*implRepository)(nil)

// New creates an empty in-memory message repository.
func New(l log.Logger) *implRepository {
	return &implRepository{
		index: make(map[string]struct{}),
		l:     l,
	}
}
