package http

import "ai-brain/internal/channel"

// --- Request DTOs ---

// configureReq is the config update body. selected_channels must be a
// JSON array; any other shape fails binding and yields a 400.
type configureReq struct {
	ContextID        string    `json:"context_id" binding:"required"`
	SelectedChannels *[]string `json:"selected_channels" binding:"required"`
}

func (r configureReq) toInput() channel.ConfigureInput {
	return channel.ConfigureInput{
		ContextID:        r.ContextID,
		SelectedChannels: *r.SelectedChannels,
	}
}

type listReq struct {
	ContextID string `form:"context_id" binding:"required"`
}

func (r listReq) toInput() channel.ListInput {
	return channel.ListInput{ContextID: r.ContextID}
}

// --- Response DTOs ---

type channelResp struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	IsPrivate bool   `json:"isPrivate"`
	Selected  bool   `json:"selected"`
}

type configureResp struct {
	ContextID string   `json:"contextId"`
	Selected  []string `json:"selectedChannels"`
}

type listResp struct {
	Channels []channelResp `json:"channels"`
	Degraded bool          `json:"degraded,omitempty"`
}

func (h *handler) newConfigureResp(out channel.ConfigureOutput) configureResp {
	selected := out.Selected
	if selected == nil {
		selected = []string{}
	}
	return configureResp{ContextID: out.ContextID, Selected: selected}
}

func (h *handler) newListResp(out channel.ListOutput) listResp {
	channels := make([]channelResp, len(out.Channels))
	for i, ch := range out.Channels {
		channels[i] = channelResp{
			ID:        ch.ID,
			Name:      ch.Name,
			IsPrivate: ch.IsPrivate,
			Selected:  ch.Selected,
		}
	}
	return listResp{Channels: channels, Degraded: out.Degraded}
}
