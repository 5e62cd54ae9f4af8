package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"go.uber.org/zap"
)

// StartAdaptiveInterview starts an adaptive interview: the opening question
// is the first of the generated question set, every question after it comes
// from the running transcript one step at a time.
func (uc *InterviewUsecase) StartAdaptiveInterview(ctx context.Context, ownerID string, req *entity.StartInterviewRequest) (*entity.Interview, error) {
	mode := entity.InterviewMode(req.Mode)
	if mode == "" {
		mode = entity.InterviewModeText
	}

	questions, err := uc.aiGateway.GenerateQuestionSet(ctx, req.Role)
	if err != nil {
		return nil, fmt.Errorf("generate opening question: %w", err)
	}

	interview := entity.Interview{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		TargetRole: req.Role,
		Mode:       mode,
		IsAdaptive: true,
		Status:     entity.InterviewStatusOngoing,
		Transcript: []entity.TranscriptTurn{{
			Speaker:   entity.SpeakerInterviewer,
			Text:      questions[0],
			Timestamp: time.Now().UTC(),
		}},
	}

	created, err := uc.interviewRepo.Create(ctx, interview)
	if err != nil {
		return nil, fmt.Errorf("create interview: %w", err)
	}

	ctxzap.Info(ctx, "adaptive interview started",
		zap.String("interview_id", created.ID),
		zap.String("role", created.TargetRole),
	)

	return created, nil
}

// SubmitAdaptiveAnswer answers the latest interviewer question, evaluates
// it, and asks the model for the next move. The interview completes when the
// model signals it is done or the exchange cap is reached; the completion
// signal itself is never stored in the transcript.
func (uc *InterviewUsecase) SubmitAdaptiveAnswer(ctx context.Context, ownerID, id, answer string) (*entity.Interview, error) {
	interview, err := uc.ongoingInterview(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	question, ok := interview.CurrentQuestion()
	if !ok {
		return nil, fmt.Errorf("%w: interview has no open question", entity.ErrInvalidParameter)
	}

	evaluation := uc.aiGateway.EvaluateAnswer(ctx, question, answer)

	interview.Transcript = append(interview.Transcript, entity.TranscriptTurn{
		Speaker:   entity.SpeakerCandidate,
		Text:      answer,
		Timestamp: time.Now().UTC(),
	})
	interview.Exchanges = append(interview.Exchanges, entity.Exchange{
		Question:     question,
		Answer:       answer,
		Score:        evaluation.Score,
		Feedback:     evaluation.Feedback,
		Improvements: evaluation.Improvements,
		ModelAnswer:  evaluation.ModelAnswer,
	})

	// The cap check runs before the next-step call so a capped interview
	// never spends another generation.
	interviewerDone := false
	if len(interview.Exchanges) < uc.cfg.MaxExchanges {
		step, err := uc.aiGateway.NextAdaptiveStep(ctx, interview.TargetRole, interview.Transcript)
		if err != nil {
			return nil, fmt.Errorf("generate next question: %w", err)
		}

		if step.Complete() {
			interviewerDone = true
		} else {
			interview.Transcript = append(interview.Transcript, entity.TranscriptTurn{
				Speaker:   entity.SpeakerInterviewer,
				Text:      step.Question,
				Timestamp: time.Now().UTC(),
			})
		}
	}

	interview.Status, interview.OverallScore = adaptiveTransition(interview.Exchanges, interviewerDone, uc.cfg.MaxExchanges)

	updated, err := uc.interviewRepo.Update(ctx, interview)
	if err != nil {
		return nil, fmt.Errorf("update interview: %w", err)
	}

	ctxzap.Info(ctx, "adaptive answer submitted",
		zap.String("interview_id", updated.ID),
		zap.Int("exchange_count", len(updated.Exchanges)),
		zap.Int("score", evaluation.Score),
		zap.String("status", string(updated.Status)),
	)

	return updated, nil
}
