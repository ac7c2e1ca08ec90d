package memory

import (
	"context"
	"sort"

	repo "ai-brain/internal/message/repository"
	"ai-brain/internal/model"
)

func dedupKey(m model.Message) string {
	return m.ContextID + "|" + m.Channel.ID + "|" + m.SlackTS
}

// CreateMessage appends a message unless its dedup key already exists.
// The check and the insert happen under one lock, so concurrent
// duplicate deliveries store exactly one copy.
func (r *implRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (bool, error) {
	key := dedupKey(opt.Message)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[key]; exists {
		return false, nil
	}
	r.index[key] = struct{}{}
	r.messages = append(r.messages, opt.Message)
	return true, nil
}

// ListMessages filters by context and optional channel, orders by
// ascending TimestampMs, and pages with Offset/Limit.
func (r *implRepository) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]model.Message, int, error) {
	r.mu.Lock()
	var filtered []model.Message
	for _, m := range r.messages {
		if m.ContextID != opt.ContextID {
			continue
		}
		if opt.Channel != "" && m.Channel.ID != opt.Channel {
			continue
		}
		filtered = append(filtered, m)
	}
	r.mu.Unlock()

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].TimestampMs != filtered[j].TimestampMs {
			return filtered[i].TimestampMs < filtered[j].TimestampMs
		}
		return filtered[i].SlackTS < filtered[j].SlackTS
	})

	total := len(filtered)

	offset := opt.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return nil, total, nil
	}
	end := total
	if opt.Limit > 0 && offset+opt.Limit < end {
		end = offset + opt.Limit
	}

	page := make([]model.Message, end-offset)
	copy(page, filtered[offset:end])
	return page, total, nil
}
