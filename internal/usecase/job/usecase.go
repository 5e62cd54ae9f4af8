package job

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"github.com/shettyrawat/anjob-backend/internal/repository"
	"go.uber.org/zap"
)

// JobUsecase implements job application tracking
type JobUsecase struct {
	jobRepo repository.JobRepository
	logger  *zap.Logger
}

// NewUsecase creates a new job use case
func NewUsecase(jobRepo repository.JobRepository, logger *zap.Logger) *JobUsecase {
	return &JobUsecase{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// CreateJob records a new job application. The timeline opens with the
// initial status event.
func (uc *JobUsecase) CreateJob(ctx context.Context, ownerID string, req *entity.CreateJobRequest) (*entity.Job, error) {
	status := entity.JobStatus(req.Status)
	if status == "" {
		status = entity.JobStatusApplied
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	job := entity.Job{
		ID:       uuid.New().String(),
		OwnerID:  ownerID,
		Company:  req.Company,
		Position: req.Position,
		Location: req.Location,
		Salary:   req.Salary,
		Status:   status,
		Notes:    req.Notes,
		Timeline: []entity.TimelineEvent{{
			Event: fmt.Sprintf("Status set to %s", status),
			Date:  time.Now().UTC(),
		}},
	}

	created, err := uc.jobRepo.Create(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	ctxzap.Info(ctx, "job created",
		zap.String("job_id", created.ID),
		zap.String("company", created.Company),
		zap.String("status", string(created.Status)),
	)

	return created, nil
}

// GetJob retrieves one of the caller's job applications
func (uc *JobUsecase) GetJob(ctx context.Context, ownerID, id string) (*entity.Job, error) {
	job, err := uc.jobRepo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	return job, nil
}

// ListJobs retrieves the caller's job applications with pagination
func (uc *JobUsecase) ListJobs(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Job, error) {
	jobs, err := uc.jobRepo.List(ctx, ownerID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return jobs, nil
}

// UpdateJob applies a partial update. A status change appends a timeline
// event.
func (uc *JobUsecase) UpdateJob(ctx context.Context, ownerID, id string, req *entity.UpdateJobRequest) (*entity.Job, error) {
	job, err := uc.jobRepo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Position != nil {
		job.Position = *req.Position
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Notes != nil {
		job.Notes = *req.Notes
	}
	if req.Status != nil {
		status := entity.JobStatus(*req.Status)
		if err := status.Validate(); err != nil {
			return nil, err
		}

		if status != job.Status {
			job.Timeline = append(job.Timeline, entity.TimelineEvent{
				Event: fmt.Sprintf("Status changed to %s", status),
				Date:  time.Now().UTC(),
			})
		}
		job.Status = status
	}

	updated, err := uc.jobRepo.Update(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	ctxzap.Info(ctx, "job updated",
		zap.String("job_id", updated.ID),
		zap.String("status", string(updated.Status)),
	)

	return updated, nil
}

// DeleteJob removes one of the caller's job applications
func (uc *JobUsecase) DeleteJob(ctx context.Context, ownerID, id string) error {
	if err := uc.jobRepo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	ctxzap.Info(ctx, "job deleted", zap.String("job_id", id))
	return nil
}
