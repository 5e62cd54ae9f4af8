package interview

import (
	"context"
	"fmt"

	"github.com/shettyrawat/anjob-backend/internal/config"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"github.com/shettyrawat/anjob-backend/internal/repository"
	"go.uber.org/zap"
)

// InterviewUsecase implements the mock interview flows
type InterviewUsecase struct {
	interviewRepo repository.InterviewRepository
	aiGateway     AIGateway
	cfg           config.InterviewConfig
	logger        *zap.Logger
}

// NewUsecase creates a new interview use case
func NewUsecase(
	interviewRepo repository.InterviewRepository,
	aiGateway AIGateway,
	cfg config.InterviewConfig,
	logger *zap.Logger,
) *InterviewUsecase {
	return &InterviewUsecase{
		interviewRepo: interviewRepo,
		aiGateway:     aiGateway,
		cfg:           cfg,
		logger:        logger,
	}
}

// GetInterview retrieves one of the caller's interviews
func (uc *InterviewUsecase) GetInterview(ctx context.Context, ownerID, id string) (*entity.Interview, error) {
	interview, err := uc.interviewRepo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get interview: %w", err)
	}

	return interview, nil
}

// ListInterviews retrieves the caller's interviews with pagination
func (uc *InterviewUsecase) ListInterviews(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Interview, error) {
	interviews, err := uc.interviewRepo.List(ctx, ownerID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}

	return interviews, nil
}

// ongoingInterview loads an interview and ensures it still accepts answers.
func (uc *InterviewUsecase) ongoingInterview(ctx context.Context, ownerID, id string) (*entity.Interview, error) {
	interview, err := uc.interviewRepo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get interview: %w", err)
	}

	if interview.Status == entity.InterviewStatusCompleted {
		return nil, entity.ErrInterviewCompleted
	}

	return interview, nil
}
