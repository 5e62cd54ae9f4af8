package chatbot

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"go.uber.org/zap"
)

// AIGateway is the slice of the AI provider used by the portal assistant.
type AIGateway interface {
	Chat(ctx context.Context, history []entity.ChatMessage, message string) (string, error)
}

// ChatbotUsecase implements the stateless portal assistant. Conversation
// history lives with the client and is replayed on every request.
type ChatbotUsecase struct {
	aiGateway AIGateway
	logger    *zap.Logger
}

// NewUsecase creates a new chatbot use case
func NewUsecase(aiGateway AIGateway, logger *zap.Logger) *ChatbotUsecase {
	return &ChatbotUsecase{
		aiGateway: aiGateway,
		logger:    logger,
	}
}

// HandleMessage replays the client-held history and returns the assistant's
// reply.
func (uc *ChatbotUsecase) HandleMessage(ctx context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error) {
	history := make([]entity.ChatMessage, 0, len(req.History))
	for _, turn := range req.History {
		role, err := entity.NormalizeChatRole(turn.Role)
		if err != nil {
			return nil, err
		}
		history = append(history, entity.ChatMessage{Role: role, Content: turn.Content})
	}

	reply, err := uc.aiGateway.Chat(ctx, history, req.Message)
	if err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}

	ctxzap.Info(ctx, "chat message handled", zap.Int("history_len", len(history)))

	return &entity.ChatResponse{Reply: reply}, nil
}
