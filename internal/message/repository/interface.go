package repository

import (
	"context"

	"ai-brain/internal/model"
)

// MessageRepository is the persistence contract for normalized messages.
// Implementations must make CreateMessage an atomic check-and-insert on
// the dedup key (ContextID, Channel.ID, SlackTS): concurrent duplicate
// deliveries yield exactly one stored row.
type MessageRepository interface {
	// CreateMessage appends a message. Returns created == false when a
	// message with the same dedup key already exists (no-op replay).
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (created bool, err error)

	// ListMessages returns messages for a context ordered by ascending
	// TimestampMs, plus the total count after filtering and before
	// pagination.
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.Message, int, error)
}
