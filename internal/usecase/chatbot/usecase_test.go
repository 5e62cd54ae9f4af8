package chatbot

import (
	"context"
	"errors"
	"testing"

	"github.com/shettyrawat/anjob-backend/internal/entity"
	"go.uber.org/zap"
)

type mockGateway struct {
	chatFn func(ctx context.Context, history []entity.ChatMessage, message string) (string, error)
}

func (m *mockGateway) Chat(ctx context.Context, history []entity.ChatMessage, message string) (string, error) {
	return m.chatFn(ctx, history, message)
}

func TestHandleMessageNormalizesAIRole(t *testing.T) {
	var captured []entity.ChatMessage
	uc := NewUsecase(&mockGateway{
		chatFn: func(_ context.Context, history []entity.ChatMessage, _ string) (string, error) {
			captured = history
			return "Sure, here is a tip.", nil
		},
	}, zap.NewNop())

	resp, err := uc.HandleMessage(context.Background(), &entity.ChatRequest{
		Message: "How do I prepare?",
		History: []entity.ChatHistoryDTO{
			{Role: "user", Content: "Hello"},
			{Role: "ai", Content: "Hi! How can I help?"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Reply != "Sure, here is a tip." {
		t.Fatalf("unexpected reply: %q", resp.Reply)
	}
	if len(captured) != 2 {
		t.Fatalf("expected 2 history turns, got %d", len(captured))
	}
	if captured[1].Role != entity.ChatRoleAssistant {
		t.Fatalf("expected ai alias normalized to assistant, got %s", captured[1].Role)
	}
}

func TestHandleMessageRejectsUnknownRole(t *testing.T) {
	uc := NewUsecase(&mockGateway{
		chatFn: func(_ context.Context, _ []entity.ChatMessage, _ string) (string, error) {
			t.Fatal("gateway must not be called for invalid history")
			return "", nil
		},
	}, zap.NewNop())

	_, err := uc.HandleMessage(context.Background(), &entity.ChatRequest{
		Message: "hello",
		History: []entity.ChatHistoryDTO{{Role: "moderator", Content: "x"}},
	})
	if !errors.Is(err, entity.ErrInvalidParameter) {
		t.Fatalf("expected invalid parameter error, got %v", err)
	}
}

func TestHandleMessagePropagatesGatewayError(t *testing.T) {
	uc := NewUsecase(&mockGateway{
		chatFn: func(_ context.Context, _ []entity.ChatMessage, _ string) (string, error) {
			return "", entity.ErrGeneration
		},
	}, zap.NewNop())

	_, err := uc.HandleMessage(context.Background(), &entity.ChatRequest{Message: "hello"})
	if !errors.Is(err, entity.ErrGeneration) {
		t.Fatalf("expected generation error, got %v", err)
	}
}
