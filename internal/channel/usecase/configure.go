package usecase

import (
	"context"

	"ai-brain/internal/channel"
)

// Configure replaces the selected-channel set for a context wholesale.
func (uc *implUseCase) Configure(ctx context.Context, input channel.ConfigureInput) (channel.ConfigureOutput, error) {
	if input.ContextID == "" {
		return channel.ConfigureOutput{}, channel.ErrMissingContext
	}

	uc.store.Replace(input.ContextID, input.SelectedChannels)
	uc.l.Infof(ctx, "uc.Configure: context=%s selected=%d channels", input.ContextID, len(input.SelectedChannels))

	selected, _ := uc.store.Selected(input.ContextID)
	return channel.ConfigureOutput{
		ContextID: input.ContextID,
		Selected:  selected,
	}, nil
}
