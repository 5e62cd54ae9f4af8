package resume

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"github.com/shettyrawat/anjob-backend/internal/pkg/formatter"
	"github.com/shettyrawat/anjob-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ResumeUsecase implements resume analysis and export
type ResumeUsecase struct {
	resumeRepo       repository.ResumeRepository
	aiGateway        AIGateway
	formatterFactory *formatter.Factory
	logger           *zap.Logger
}

// NewUsecase creates a new resume use case
func NewUsecase(
	resumeRepo repository.ResumeRepository,
	aiGateway AIGateway,
	formatterFactory *formatter.Factory,
	logger *zap.Logger,
) *ResumeUsecase {
	return &ResumeUsecase{
		resumeRepo:       resumeRepo,
		aiGateway:        aiGateway,
		formatterFactory: formatterFactory,
		logger:           logger,
	}
}

// AnalyzeResume scores the resume text and generates its ATS-optimized
// restructuring in parallel, then persists the analysis. A failed
// optimization degrades to a score-only analysis.
func (uc *ResumeUsecase) AnalyzeResume(ctx context.Context, ownerID string, req *entity.AnalyzeResumeRequest) (*entity.Resume, error) {
	var (
		score     *entity.ResumeScore
		optimized *entity.OptimizedResume
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		score = uc.aiGateway.ScoreResume(gctx, req.Text, req.Role)
		return nil
	})
	g.Go(func() error {
		result, err := uc.aiGateway.OptimizeResume(gctx, req.Text, req.Role)
		if err != nil {
			ctxzap.Warn(gctx, "resume optimization failed, keeping score-only analysis", zap.Error(err))
			return nil
		}
		optimized = result
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyze resume: %w", err)
	}

	resume := entity.Resume{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		TargetRole: req.Role,
		Analysis: entity.ResumeAnalysis{
			ResumeScore: *score,
			Optimized:   optimized,
		},
	}

	created, err := uc.resumeRepo.Create(ctx, resume)
	if err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}

	ctxzap.Info(ctx, "resume analyzed",
		zap.String("resume_id", created.ID),
		zap.String("role", created.TargetRole),
		zap.Int("ats_score", created.Analysis.ATSScore),
		zap.Bool("optimized", created.Analysis.Optimized != nil),
	)

	return created, nil
}

// GetResume retrieves one of the caller's resume analyses
func (uc *ResumeUsecase) GetResume(ctx context.Context, ownerID, id string) (*entity.Resume, error) {
	resume, err := uc.resumeRepo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get resume: %w", err)
	}

	return resume, nil
}

// ListResumes retrieves the caller's resume analyses with pagination
func (uc *ResumeUsecase) ListResumes(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Resume, error) {
	resumes, err := uc.resumeRepo.List(ctx, ownerID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}

	return resumes, nil
}

// DeleteResume removes one of the caller's resume analyses
func (uc *ResumeUsecase) DeleteResume(ctx context.Context, ownerID, id string) error {
	if err := uc.resumeRepo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}

	ctxzap.Info(ctx, "resume deleted", zap.String("resume_id", id))
	return nil
}

// ExportResult is a rendered optimized resume ready for download.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ExportResume renders the optimized resume in the requested format.
func (uc *ResumeUsecase) ExportResume(ctx context.Context, ownerID, id string, format entity.ResultFormat) (*ExportResult, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, format)
	}

	resume, err := uc.resumeRepo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get resume: %w", err)
	}

	if resume.Analysis.Optimized == nil {
		return nil, entity.ErrNoOptimizedResume
	}

	if format == entity.FormatJSON {
		data, err := json.MarshalIndent(resume.Analysis.Optimized, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal optimized resume: %w", err)
		}

		return &ExportResult{
			Data:        data,
			ContentType: "application/json",
			Filename:    "optimized_resume.json",
		}, nil
	}

	fm, err := uc.formatterFactory.Create(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, format)
	}

	data, err := fm.Format(renderMarkdown(resume.Analysis.Optimized))
	if err != nil {
		return nil, fmt.Errorf("render resume: %w", err)
	}

	ctxzap.Info(ctx, "resume exported",
		zap.String("resume_id", resume.ID),
		zap.String("format", string(format)),
	)

	return &ExportResult{
		Data:        data,
		ContentType: fm.ContentType(),
		Filename:    "optimized_resume" + fm.FileExtension(),
	}, nil
}
