package repository

import "ai-brain/internal/model"

// CreateMessageOptions holds the message to append.
type CreateMessageOptions struct {
	Message model.Message
}

// ListMessagesOptions holds filter and pagination parameters.
// Channel (when set) filters by channel ID; Offset/Limit apply after
// filtering.
type ListMessagesOptions struct {
	ContextID string
	Channel   string
	Limit     int
	Offset    int
}
