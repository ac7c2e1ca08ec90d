package usecase

import (
	"context"

	repo "ai-brain/internal/message/repository"
	"ai-brain/internal/model"
)

func modelScope() model.Scope {
	return model.Scope{UserID: "system_webhook"}
}

// Mock logger for testing
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

// mockRepo is a function-backed MessageRepository for testing.
type mockRepo struct {
	createFunc func(opt repo.CreateMessageOptions) (bool, error)
	listFunc   func(opt repo.ListMessagesOptions) ([]model.Message, int, error)
}

func (m *mockRepo) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (bool, error) {
	if m.createFunc == nil {
		return true, nil
	}
	return m.createFunc(opt)
}

func (m *mockRepo) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]model.Message, int, error) {
	if m.listFunc == nil {
		return nil, 0, nil
	}
	return m.listFunc(opt)
}
