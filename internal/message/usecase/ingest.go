package usecase

import (
	"context"
	"time"

	"ai-brain/internal/message"
	repo "ai-brain/internal/message/repository"
	"ai-brain/internal/model"
)

// Ingest normalizes a raw Slack event and appends it to the store.
// Dropped events (unsupported type, filtered channel) are not errors;
// replayed deliveries dedup at the repository and report Stored=false.
func (uc *implUseCase) Ingest(ctx context.Context, sc model.Scope, input message.IngestInput) (message.IngestOutput, error) {
	if input.ContextID == "" {
		return message.IngestOutput{}, message.ErrMissingContext
	}

	receivedAt := input.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	normalized, err := uc.normalize(input.Event, input.ContextID, receivedAt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Ingest normalize: %v", err)
		return message.IngestOutput{}, err
	}
	if normalized == nil {
		uc.l.Debugf(ctx, "uc.Ingest: dropped event type=%s subtype=%s channel=%s",
			input.Event.Type, input.Event.Subtype, input.Event.Channel)
		return message.IngestOutput{Dropped: true}, nil
	}

	created, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{Message: *normalized})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Ingest CreateMessage: %v", err)
		return message.IngestOutput{}, err
	}
	if !created {
		uc.l.Infof(ctx, "uc.Ingest: duplicate delivery suppressed channel=%s ts=%s",
			normalized.Channel.ID, normalized.SlackTS)
		return message.IngestOutput{Stored: false}, nil
	}

	return message.IngestOutput{Stored: true, Message: *normalized}, nil
}
