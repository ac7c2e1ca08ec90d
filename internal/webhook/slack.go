package webhook

import (
	"encoding/json"
	"fmt"
)

// SlackEventParser parses Slack webhook payloads.
type SlackEventParser struct{}

func NewSlackParser() *SlackEventParser {
	return &SlackEventParser{}
}

// ParseEnvelope decodes the outer webhook envelope.
func (p *SlackEventParser) ParseEnvelope(payload []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("failed to parse webhook envelope: %w", err)
	}
	return &env, nil
}
