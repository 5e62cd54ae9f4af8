package resume

import (
	"context"

	"github.com/shettyrawat/anjob-backend/internal/entity"
	resumeuc "github.com/shettyrawat/anjob-backend/internal/usecase/resume"
)

type ResumeUsecase interface {
	AnalyzeResume(ctx context.Context, ownerID string, req *entity.AnalyzeResumeRequest) (*entity.Resume, error)
	GetResume(ctx context.Context, ownerID, id string) (*entity.Resume, error)
	ListResumes(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Resume, error)
	DeleteResume(ctx context.Context, ownerID, id string) error
	ExportResume(ctx context.Context, ownerID, id string, format entity.ResultFormat) (*resumeuc.ExportResult, error)
}
