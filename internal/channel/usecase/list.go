package usecase

import (
	"context"
	"sort"

	"ai-brain/internal/channel"
)

// List returns workspace channels annotated with selection state.
// When the provider list cannot be fetched the output degrades to the
// already-selected IDs so the dashboard still renders.
func (uc *implUseCase) List(ctx context.Context, input channel.ListInput) (channel.ListOutput, error) {
	if input.ContextID == "" {
		return channel.ListOutput{}, channel.ErrMissingContext
	}

	selected, hasConfig := uc.store.Selected(input.ContextID)
	selectedSet := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		selectedSet[id] = struct{}{}
	}

	if uc.slack != nil {
		upstream, err := uc.slack.ListConversations(ctx)
		if err == nil {
			infos := make([]channel.Info, 0, len(upstream))
			for _, ch := range upstream {
				_, isSelected := selectedSet[ch.ID]
				infos = append(infos, channel.Info{
					ID:        ch.ID,
					Name:      ch.Name,
					IsPrivate: ch.IsPrivate,
					// No config entry means every channel is ingested
					Selected: isSelected || !hasConfig,
				})
			}
			sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
			return channel.ListOutput{Channels: infos}, nil
		}
		uc.l.Warnf(ctx, "uc.List: conversations.list failed, degrading: %v", err)
	}

	// Degraded: show what we know locally.
	sort.Strings(selected)
	infos := make([]channel.Info, 0, len(selected))
	for _, id := range selected {
		infos = append(infos, channel.Info{ID: id, Selected: true})
	}
	return channel.ListOutput{Channels: infos, Degraded: true}, nil
}
