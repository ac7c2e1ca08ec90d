package message

import (
	"time"

	"ai-brain/internal/model"
)

// RawSlackEvent is the provider-shaped inner event of an event_callback
// envelope. Read-only; discarded after normalization.
type RawSlackEvent struct {
	Type     string `json:"type"`
	Subtype  string `json:"subtype,omitempty"`
	Channel  string `json:"channel"`
	User     string `json:"user"`
	Username string `json:"username,omitempty"` // display name, rarely present
	Text     string `json:"text"`
	TS       string `json:"ts"`
	EventTS  string `json:"event_ts,omitempty"`
}

// --- UseCase Inputs ---

type IngestInput struct {
	ContextID  string
	Event      RawSlackEvent
	ReceivedAt time.Time // zero value means "now"
}

type QueryInput struct {
	ContextID string
	Channel   string // optional channel ID filter
	Limit     int
	Offset    int
}

// --- UseCase Outputs ---

type IngestOutput struct {
	Stored  bool          // false when dropped or deduplicated
	Dropped bool          // event was unsupported or filtered out
	Message model.Message // populated when Stored
}

type QueryOutput struct {
	Messages []model.Message
	Total    int
	Limit    int
	Offset   int
}
