package http

import (
	"ai-brain/internal/message"
	"ai-brain/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	ContextID string `form:"context_id"`
	Channel   string `form:"channel"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() message.QueryInput {
	return message.QueryInput{
		ContextID: r.ContextID,
		Channel:   r.Channel,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// --- Response DTOs ---

// Key names follow the dashboard contract, hence the camelCase tags.

type channelResp struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type userResp struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type messageResp struct {
	ID          string      `json:"id"`
	ContextID   string      `json:"contextId"`
	Channel     channelResp `json:"channel"`
	User        userResp    `json:"user"`
	Text        string      `json:"text"`
	TS          string      `json:"ts"`
	TimestampMs int64       `json:"timestampMs"`
}

type statsResp struct {
	Channels int `json:"channels"`
	Users    int `json:"users"`
}

type listResp struct {
	Messages          []messageResp            `json:"messages"`
	MessagesByChannel map[string][]messageResp `json:"messagesByChannel"`
	TotalCount        int                      `json:"totalCount"`
	Stats             statsResp                `json:"stats"`
	Limit             int                      `json:"limit"`
	Offset            int                      `json:"offset"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:          m.ID,
		ContextID:   m.ContextID,
		Channel:     channelResp{ID: m.Channel.ID, Name: m.Channel.Name},
		User:        userResp{ID: m.User.ID, Name: m.User.Name},
		Text:        m.Text,
		TS:          m.SlackTS,
		TimestampMs: m.TimestampMs,
	}
}

// newListResp shapes the query output for the dashboard. Grouping by
// channel is presentation-only and happens after retrieval; the flat
// list stays ordered by timestamp.
func (h *handler) newListResp(out message.QueryOutput) listResp {
	messages := make([]messageResp, len(out.Messages))
	byChannel := make(map[string][]messageResp)
	channels := make(map[string]struct{})
	users := make(map[string]struct{})

	for i, m := range out.Messages {
		resp := newMessageResp(m)
		messages[i] = resp

		groupKey := m.Channel.Name
		if groupKey == "" {
			groupKey = m.Channel.ID
		}
		byChannel[groupKey] = append(byChannel[groupKey], resp)

		channels[m.Channel.ID] = struct{}{}
		if m.User.ID != "" {
			users[m.User.ID] = struct{}{}
		}
	}

	return listResp{
		Messages:          messages,
		MessagesByChannel: byChannel,
		TotalCount:        out.Total,
		Stats:             statsResp{Channels: len(channels), Users: len(users)},
		Limit:             out.Limit,
		Offset:            out.Offset,
	}
}
