package usecase

import (
	"context"
	"errors"
	"testing"

	"ai-brain/internal/channel"
	"ai-brain/internal/channelconfig"
	"ai-brain/pkg/slackapi"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockSlack struct {
	channels []slackapi.Channel
	err      error
}

func (m *mockSlack) ListConversations(ctx context.Context) ([]slackapi.Channel, error) {
	return m.channels, m.err
}

func TestConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Context Error", func(t *testing.T) {
		uc := New(channelconfig.New(), nil, &mockLogger{})
		_, err := uc.Configure(ctx, channel.ConfigureInput{})
		if !errors.Is(err, channel.ErrMissingContext) {
			t.Errorf("expected ErrMissingContext, got %v", err)
		}
	})

	t.Run("Replace Updates Filter", func(t *testing.T) {
		store := channelconfig.New()
		uc := New(store, nil, &mockLogger{})

		out, err := uc.Configure(ctx, channel.ConfigureInput{
			ContextID:        "ctx-a",
			SelectedChannels: []string{"C1", "C2"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Selected) != 2 {
			t.Errorf("expected 2 selected, got %v", out.Selected)
		}
		if store.Allowed("ctx-a", "C3") {
			t.Errorf("filter not applied after Configure")
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Annotates Selection", func(t *testing.T) {
		store := channelconfig.New()
		store.Replace("ctx-a", []string{"C1"})
		slack := &mockSlack{channels: []slackapi.Channel{
			{ID: "C1", Name: "general"},
			{ID: "C2", Name: "random"},
		}}
		uc := New(store, slack, &mockLogger{})

		out, err := uc.List(ctx, channel.ListInput{ContextID: "ctx-a"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Channels) != 2 || out.Degraded {
			t.Fatalf("unexpected output: %+v", out)
		}
		for _, ch := range out.Channels {
			want := ch.ID == "C1"
			if ch.Selected != want {
				t.Errorf("channel %s: selected=%v, want %v", ch.ID, ch.Selected, want)
			}
		}
	})

	t.Run("No Config Marks All Selected", func(t *testing.T) {
		slack := &mockSlack{channels: []slackapi.Channel{{ID: "C1", Name: "general"}}}
		uc := New(channelconfig.New(), slack, &mockLogger{})

		out, _ := uc.List(ctx, channel.ListInput{ContextID: "ctx-a"})
		if !out.Channels[0].Selected {
			t.Errorf("fail-open context should present channels as selected")
		}
	})

	t.Run("Upstream Failure Degrades", func(t *testing.T) {
		store := channelconfig.New()
		store.Replace("ctx-a", []string{"C9"})
		uc := New(store, &mockSlack{err: errors.New("slack down")}, &mockLogger{})

		out, err := uc.List(ctx, channel.ListInput{ContextID: "ctx-a"})
		if err != nil {
			t.Fatalf("degraded list must not error: %v", err)
		}
		if !out.Degraded || len(out.Channels) != 1 || out.Channels[0].ID != "C9" {
			t.Errorf("unexpected degraded output: %+v", out)
		}
	})

	t.Run("No Client Degrades", func(t *testing.T) {
		uc := New(channelconfig.New(), nil, &mockLogger{})
		out, err := uc.List(ctx, channel.ListInput{ContextID: "ctx-a"})
		if err != nil || !out.Degraded {
			t.Errorf("expected degraded output without a client, got %+v err=%v", out, err)
		}
	})
}
