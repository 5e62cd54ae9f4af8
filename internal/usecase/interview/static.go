package interview

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"go.uber.org/zap"
)

// StartInterview starts a static interview: the full question set is
// generated up front and answered slot by slot.
func (uc *InterviewUsecase) StartInterview(ctx context.Context, ownerID string, req *entity.StartInterviewRequest) (*entity.Interview, error) {
	mode := entity.InterviewMode(req.Mode)
	if mode == "" {
		mode = entity.InterviewModeText
	}

	questions, err := uc.aiGateway.GenerateQuestionSet(ctx, req.Role)
	if err != nil {
		return nil, fmt.Errorf("generate question set: %w", err)
	}

	exchanges := make([]entity.Exchange, 0, len(questions))
	for _, q := range questions {
		exchanges = append(exchanges, entity.Exchange{Question: q})
	}

	interview := entity.Interview{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		TargetRole: req.Role,
		Mode:       mode,
		Status:     entity.InterviewStatusOngoing,
		Exchanges:  exchanges,
	}

	created, err := uc.interviewRepo.Create(ctx, interview)
	if err != nil {
		return nil, fmt.Errorf("create interview: %w", err)
	}

	ctxzap.Info(ctx, "static interview started",
		zap.String("interview_id", created.ID),
		zap.String("role", created.TargetRole),
		zap.Int("question_count", len(created.Exchanges)),
	)

	return created, nil
}

// SubmitAnswer records the answer for one question slot, evaluates it, and
// completes the interview once every slot is answered. Re-submitting an
// answered slot overwrites it while the interview is ongoing.
func (uc *InterviewUsecase) SubmitAnswer(ctx context.Context, ownerID, id string, questionIndex int, answer string) (*entity.Interview, error) {
	interview, err := uc.ongoingInterview(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if questionIndex < 0 || questionIndex >= len(interview.Exchanges) {
		return nil, fmt.Errorf("%w: question index %d out of range", entity.ErrInvalidParameter, questionIndex)
	}

	exchange := &interview.Exchanges[questionIndex]
	evaluation := uc.aiGateway.EvaluateAnswer(ctx, exchange.Question, answer)

	exchange.Answer = answer
	exchange.Score = evaluation.Score
	exchange.Feedback = evaluation.Feedback
	exchange.Improvements = evaluation.Improvements
	exchange.ModelAnswer = evaluation.ModelAnswer

	interview.Status, interview.OverallScore = staticTransition(interview.Exchanges)

	updated, err := uc.interviewRepo.Update(ctx, interview)
	if err != nil {
		return nil, fmt.Errorf("update interview: %w", err)
	}

	ctxzap.Info(ctx, "answer submitted",
		zap.String("interview_id", updated.ID),
		zap.Int("question_index", questionIndex),
		zap.Int("score", evaluation.Score),
		zap.String("status", string(updated.Status)),
	)

	return updated, nil
}
