package interview

import (
	"context"

	"github.com/shettyrawat/anjob-backend/internal/entity"
)

// AIGateway is the slice of the AI provider used by interview flows.
// GenerateQuestionSet and NextAdaptiveStep fail fast; EvaluateAnswer never
// fails and degrades to a zero-score evaluation instead.
type AIGateway interface {
	GenerateQuestionSet(ctx context.Context, role string) ([]string, error)
	NextAdaptiveStep(ctx context.Context, role string, transcript []entity.TranscriptTurn) (*entity.AdaptiveStep, error)
	EvaluateAnswer(ctx context.Context, question, answer string) *entity.Evaluation
}
