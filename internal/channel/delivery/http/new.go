package http

import (
	"ai-brain/internal/channel"
	"ai-brain/pkg/log"
)

type handler struct {
	l  log.Logger
	uc channel.UseCase
}

// New creates the HTTP handler for the channel domain.
func New(l log.Logger, uc channel.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
