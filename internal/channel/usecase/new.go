package usecase

import (
	"context"

	"ai-brain/internal/channelconfig"
	"ai-brain/pkg/log"
	"ai-brain/pkg/slackapi"
)

// SlackAPI is the slice of the Slack client this usecase needs.
type SlackAPI interface {
	ListConversations(ctx context.Context) ([]slackapi.Channel, error)
}

// implUseCase is the private implementation of channel.UseCase.
type implUseCase struct {
	store *channelconfig.Store
	slack SlackAPI // nil when no bot token is configured
	l     log.Logger
}

// New creates a new channel UseCase implementation.
func New(store *channelconfig.Store, slack SlackAPI, l log.Logger) *implUseCase {
	return &implUseCase{
		store: store,
		slack: slack,
		l:     l,
	}
}
