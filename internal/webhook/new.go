package webhook

import (
	"ai-brain/internal/message"
	pkgLog "ai-brain/pkg/log"
)

// Handler terminates the Slack webhook endpoint.
type Handler struct {
	messageUC        message.UseCase
	security         *SecurityValidator
	parser           *SlackEventParser
	defaultContextID string
	l                pkgLog.Logger
}

func NewHandler(
	messageUC message.UseCase,
	securityConfig SecurityConfig,
	defaultContextID string,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		messageUC:        messageUC,
		security:         NewSecurityValidator(securityConfig),
		parser:           NewSlackParser(),
		defaultContextID: defaultContextID,
		l:                l,
	}
}
