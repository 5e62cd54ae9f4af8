package job

import (
	"context"

	"github.com/shettyrawat/anjob-backend/internal/entity"
)

type JobUsecase interface {
	CreateJob(ctx context.Context, ownerID string, req *entity.CreateJobRequest) (*entity.Job, error)
	GetJob(ctx context.Context, ownerID, id string) (*entity.Job, error)
	ListJobs(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Job, error)
	UpdateJob(ctx context.Context, ownerID, id string, req *entity.UpdateJobRequest) (*entity.Job, error)
	DeleteJob(ctx context.Context, ownerID, id string) error
}
