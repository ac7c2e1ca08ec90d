package model

import "time"

// ChannelRef identifies a Slack channel. Name may be empty when the
// provider payload did not carry it; it is never defaulted.
type ChannelRef struct {
	ID   string
	Name string
}

// UserRef identifies the Slack user that authored a message.
// Name is the display name when known, otherwise empty.
type UserRef struct {
	ID   string
	Name string
}

// Message is a normalized Slack message owned by the message store.
// Append-only: never mutated after creation.
//
// TimestampMs is ordered enough for display within a channel but the
// provider ts may collide under retries, so (ContextID, Channel.ID,
// SlackTS) is the dedup key.
type Message struct {
	ID          string     // internal UUID
	ContextID   string     // workspace/tenant the message belongs to
	Channel     ChannelRef // source channel
	User        UserRef    // author
	Text        string     // message body
	SlackTS     string     // provider timestamp, e.g. "1700000000.000100"
	TimestampMs int64      // SlackTS converted to epoch milliseconds
	ReceivedAt  time.Time  // when the webhook arrived
}
