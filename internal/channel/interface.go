package channel

import "context"

// UseCase manages per-context channel selection and the channel picker.
type UseCase interface {
	// Configure replaces the selected-channel set for a context.
	Configure(ctx context.Context, input ConfigureInput) (ConfigureOutput, error)

	// List returns the workspace channels annotated with selection
	// state. Upstream failure degrades to the selected IDs only.
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
