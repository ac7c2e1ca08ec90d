package usecase

import (
	"context"

	"ai-brain/internal/message"
	repo "ai-brain/internal/message/repository"
	"ai-brain/internal/model"
)

// Query returns a filtered, paginated page of stored messages ordered
// by ascending timestamp. A repository failure degrades to an empty
// result so the dashboard still renders.
func (uc *implUseCase) Query(ctx context.Context, sc model.Scope, input message.QueryInput) (message.QueryOutput, error) {
	if input.ContextID == "" {
		return message.QueryOutput{}, message.ErrMissingContext
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	messages, total, err := uc.repo.ListMessages(ctx, repo.ListMessagesOptions{
		ContextID: input.ContextID,
		Channel:   input.Channel,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Query ListMessages: %v", err)
		return message.QueryOutput{Limit: limit, Offset: offset}, nil
	}

	return message.QueryOutput{
		Messages: messages,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}
