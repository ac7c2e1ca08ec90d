package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-brain/internal/message"
	"ai-brain/internal/model"
)

// supportedEvent reports whether the raw event is a plain user message.
// Subtyped events (edits, joins, bot posts) are not stored.
func supportedEvent(raw message.RawSlackEvent) bool {
	return raw.Type == "message" && raw.Subtype == ""
}

// normalize converts a raw Slack event into a Message, or nil when the
// event is unsupported or its channel is filtered out for the context.
// Missing optional fields (display names) stay empty.
func (uc *implUseCase) normalize(raw message.RawSlackEvent, contextID string, receivedAt time.Time) (*model.Message, error) {
	if !supportedEvent(raw) {
		return nil, nil
	}
	if !uc.channels.Allowed(contextID, raw.Channel) {
		return nil, nil
	}

	tsMs, err := slackTSToMillis(raw.TS)
	if err != nil {
		return nil, err
	}

	return &model.Message{
		ID:          uuid.NewString(),
		ContextID:   contextID,
		Channel:     model.ChannelRef{ID: raw.Channel},
		User:        model.UserRef{ID: raw.User, Name: raw.Username},
		Text:        raw.Text,
		SlackTS:     raw.TS,
		TimestampMs: tsMs,
		ReceivedAt:  receivedAt,
	}, nil
}

// slackTSToMillis converts a Slack ts like "1700000000.000100" into
// epoch milliseconds. The fraction is parsed digit-wise so values near
// the millisecond boundary never drift through float rounding.
func slackTSToMillis(ts string) (int64, error) {
	secPart, fracPart, _ := strings.Cut(ts, ".")

	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return 0, message.ErrInvalidTimestamp
	}

	var ms int64
	if fracPart != "" {
		// Take at most 3 fractional digits, right-padded with zeros.
		frac := fracPart
		if len(frac) > 3 {
			frac = frac[:3]
		}
		for len(frac) < 3 {
			frac += "0"
		}
		ms, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, message.ErrInvalidTimestamp
		}
	}

	return sec*1000 + ms, nil
}
