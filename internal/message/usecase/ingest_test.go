package usecase

import (
	"context"
	"errors"
	"testing"

	"ai-brain/internal/channelconfig"
	"ai-brain/internal/message"
	repo "ai-brain/internal/message/repository"
)

func rawMessage(channel, ts string) message.RawSlackEvent {
	return message.RawSlackEvent{
		Type:    "message",
		Channel: channel,
		User:    "U1",
		Text:    "hi",
		TS:      ts,
	}
}

func TestIngest(t *testing.T) {
	ctx := context.Background()
	sc := modelScope()

	t.Run("Missing Context Error", func(t *testing.T) {
		uc := New(&mockRepo{}, channelconfig.New(), &mockLogger{})
		_, err := uc.Ingest(ctx, sc, message.IngestInput{Event: rawMessage("C1", "1.0")})
		if !errors.Is(err, message.ErrMissingContext) {
			t.Errorf("expected ErrMissingContext, got %v", err)
		}
	})

	t.Run("Stores Supported Message", func(t *testing.T) {
		var stored repo.CreateMessageOptions
		r := &mockRepo{createFunc: func(opt repo.CreateMessageOptions) (bool, error) {
			stored = opt
			return true, nil
		}}
		uc := New(r, channelconfig.New(), &mockLogger{})

		out, err := uc.Ingest(ctx, sc, message.IngestInput{
			ContextID: "ctx-a",
			Event:     rawMessage("C1", "1700000000.000100"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Stored || out.Dropped {
			t.Errorf("expected stored output, got %+v", out)
		}
		if stored.Message.ContextID != "ctx-a" || stored.Message.Channel.ID != "C1" {
			t.Errorf("wrong message persisted: %+v", stored.Message)
		}
		if stored.Message.TimestampMs != 1700000000000 {
			t.Errorf("ts conversion wrong: %d", stored.Message.TimestampMs)
		}
		if stored.Message.ID == "" {
			t.Errorf("expected generated internal id")
		}
	})

	t.Run("Drops Filtered Channel", func(t *testing.T) {
		channels := channelconfig.New()
		channels.Replace("ctx-a", []string{"C1"})
		uc := New(&mockRepo{createFunc: func(repo.CreateMessageOptions) (bool, error) {
			t.Fatal("repository must not be called for filtered events")
			return false, nil
		}}, channels, &mockLogger{})

		out, err := uc.Ingest(ctx, sc, message.IngestInput{
			ContextID: "ctx-a",
			Event:     rawMessage("C2", "1.000000"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Dropped {
			t.Errorf("expected dropped event")
		}
	})

	t.Run("No Config Accepts Any Channel", func(t *testing.T) {
		channels := channelconfig.New()
		channels.Replace("ctx-a", []string{"C1"})
		uc := New(&mockRepo{}, channels, &mockLogger{})

		// ctx-b has no config entry: fail-open
		out, err := uc.Ingest(ctx, sc, message.IngestInput{
			ContextID: "ctx-b",
			Event:     rawMessage("C2", "1.000000"),
		})
		if err != nil || !out.Stored {
			t.Errorf("expected stored for unconfigured context, got %+v err=%v", out, err)
		}
	})

	t.Run("Drops Unsupported Types", func(t *testing.T) {
		uc := New(&mockRepo{}, channelconfig.New(), &mockLogger{})

		cases := []message.RawSlackEvent{
			{Type: "reaction_added", Channel: "C1", TS: "1.0"},
			{Type: "message", Subtype: "message_changed", Channel: "C1", TS: "1.0"},
			{Type: "message", Subtype: "bot_message", Channel: "C1", TS: "1.0"},
		}
		for _, raw := range cases {
			out, err := uc.Ingest(ctx, sc, message.IngestInput{ContextID: "ctx-a", Event: raw})
			if err != nil {
				t.Fatalf("unexpected error for %s/%s: %v", raw.Type, raw.Subtype, err)
			}
			if !out.Dropped {
				t.Errorf("expected drop for %s/%s", raw.Type, raw.Subtype)
			}
		}
	})

	t.Run("Duplicate Delivery Not Stored", func(t *testing.T) {
		r := &mockRepo{createFunc: func(repo.CreateMessageOptions) (bool, error) {
			return false, nil
		}}
		uc := New(r, channelconfig.New(), &mockLogger{})

		out, err := uc.Ingest(ctx, sc, message.IngestInput{
			ContextID: "ctx-a",
			Event:     rawMessage("C1", "1.000000"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Stored || out.Dropped {
			t.Errorf("duplicate should be neither stored nor dropped: %+v", out)
		}
	})

	t.Run("Bad Timestamp Error", func(t *testing.T) {
		uc := New(&mockRepo{}, channelconfig.New(), &mockLogger{})
		_, err := uc.Ingest(ctx, sc, message.IngestInput{
			ContextID: "ctx-a",
			Event:     rawMessage("C1", "not-a-ts"),
		})
		if !errors.Is(err, message.ErrInvalidTimestamp) {
			t.Errorf("expected ErrInvalidTimestamp, got %v", err)
		}
	})
}

func TestSlackTSToMillis(t *testing.T) {
	cases := []struct {
		ts   string
		want int64
	}{
		{"1700000000.000100", 1700000000000},
		{"1700000000.999999", 1700000000999},
		{"1700000000.5", 1700000000500},
		{"1700000000", 1700000000000},
	}
	for _, tc := range cases {
		got, err := slackTSToMillis(tc.ts)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.ts, err)
		}
		if got != tc.want {
			t.Errorf("%s: want %d, got %d", tc.ts, tc.want, got)
		}
	}

	if _, err := slackTSToMillis("abc.def"); err == nil {
		t.Errorf("expected error for garbage ts")
	}
}
