package interview

import (
	"context"

	"github.com/shettyrawat/anjob-backend/internal/entity"
)

type InterviewUsecase interface {
	StartInterview(ctx context.Context, ownerID string, req *entity.StartInterviewRequest) (*entity.Interview, error)
	StartAdaptiveInterview(ctx context.Context, ownerID string, req *entity.StartInterviewRequest) (*entity.Interview, error)
	SubmitAnswer(ctx context.Context, ownerID, id string, questionIndex int, answer string) (*entity.Interview, error)
	SubmitAdaptiveAnswer(ctx context.Context, ownerID, id, answer string) (*entity.Interview, error)
	GetInterview(ctx context.Context, ownerID, id string) (*entity.Interview, error)
	ListInterviews(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Interview, error)
}
