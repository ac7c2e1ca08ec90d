package usecase

import (
	"ai-brain/internal/channelconfig"
	"ai-brain/internal/message/repository"
	"ai-brain/pkg/log"
)

// implUseCase is the private implementation of message.UseCase.
type implUseCase struct {
	repo     repository.MessageRepository
	channels *channelconfig.Store
	l        log.Logger
}

// New creates a new message UseCase implementation.
func New(repo repository.MessageRepository, channels *channelconfig.Store, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		channels: channels,
		l:        l,
	}
}
