package http

import (
	"ai-brain/internal/message"
	"ai-brain/pkg/log"
)

type handler struct {
	l  log.Logger
	uc message.UseCase
}

// New creates the HTTP handler for the message domain.
func New(l log.Logger, uc message.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
