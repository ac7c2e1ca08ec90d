package webhook

import "ai-brain/internal/message"

// SecurityConfig holds webhook security settings.
type SecurityConfig struct {
	SigningSecret   string // Slack signing secret for signature verification
	RateLimitPerMin int    // Max requests per minute per source
}

// Envelope is the outer JSON wrapper Slack sends on every webhook call.
// Transient; lives only for the duration of one request.
type Envelope struct {
	Type      string                 `json:"type"`
	Token     string                 `json:"token,omitempty"`
	Challenge string                 `json:"challenge,omitempty"`
	TeamID    string                 `json:"team_id,omitempty"`
	EventID   string                 `json:"event_id,omitempty"`
	EventTime int64                  `json:"event_time,omitempty"`
	Event     *message.RawSlackEvent `json:"event,omitempty"`
}

// Envelope types Slack delivers.
const (
	EnvelopeURLVerification = "url_verification"
	EnvelopeEventCallback   = "event_callback"
)

// Slack webhook headers.
const (
	HeaderSignature = "X-Slack-Signature"
	HeaderTimestamp = "X-Slack-Request-Timestamp"
)
