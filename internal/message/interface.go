package message

import (
	"context"

	"ai-brain/internal/model"
)

// UseCase is the message domain API: webhook-side ingestion and
// dashboard-side querying.
type UseCase interface {
	// Ingest normalizes a raw Slack event and appends it to the store.
	// Unsupported or filtered-out events are dropped, not errors.
	Ingest(ctx context.Context, sc model.Scope, input IngestInput) (IngestOutput, error)

	// Query returns a filtered, paginated page of stored messages.
	// Storage failures degrade to an empty result, never an error.
	Query(ctx context.Context, sc model.Scope, input QueryInput) (QueryOutput, error)
}
