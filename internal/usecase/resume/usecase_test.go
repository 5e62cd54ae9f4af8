package resume

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shettyrawat/anjob-backend/internal/entity"
	"github.com/shettyrawat/anjob-backend/internal/pkg/formatter"
	"go.uber.org/zap"
)

type mockResumeRepo struct {
	createFn func(ctx context.Context, resume entity.Resume) (*entity.Resume, error)
	getFn    func(ctx context.Context, ownerID, id string) (*entity.Resume, error)
	listFn   func(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Resume, error)
	deleteFn func(ctx context.Context, ownerID, id string) error
}

func (m *mockResumeRepo) Create(ctx context.Context, resume entity.Resume) (*entity.Resume, error) {
	return m.createFn(ctx, resume)
}

func (m *mockResumeRepo) Get(ctx context.Context, ownerID, id string) (*entity.Resume, error) {
	return m.getFn(ctx, ownerID, id)
}

func (m *mockResumeRepo) List(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Resume, error) {
	return m.listFn(ctx, ownerID, skip, limit)
}

func (m *mockResumeRepo) Delete(ctx context.Context, ownerID, id string) error {
	return m.deleteFn(ctx, ownerID, id)
}

type mockGateway struct {
	scoreFn    func(ctx context.Context, text, role string) *entity.ResumeScore
	optimizeFn func(ctx context.Context, text, role string) (*entity.OptimizedResume, error)
}

func (m *mockGateway) ScoreResume(ctx context.Context, text, role string) *entity.ResumeScore {
	return m.scoreFn(ctx, text, role)
}

func (m *mockGateway) OptimizeResume(ctx context.Context, text, role string) (*entity.OptimizedResume, error) {
	return m.optimizeFn(ctx, text, role)
}

func sampleScore() *entity.ResumeScore {
	return &entity.ResumeScore{
		ATSScore:          80,
		KeywordScore:      75,
		FormattingScore:   85,
		CompletenessScore: 70,
		Skills:            []string{"Go"},
		Suggestions:       []string{"Add metrics to experience bullets"},
	}
}

func sampleOptimized() *entity.OptimizedResume {
	return &entity.OptimizedResume{
		PersonalInfo: entity.PersonalInfo{
			Name:  "Alex Doe",
			Email: "alex@example.com",
			Phone: "555-0100",
		},
		Summary: "Backend engineer with five years of Go experience.",
		Experience: []entity.ExperienceEntry{{
			Role:        "Backend Engineer",
			Company:     "Acme",
			Duration:    "2021-2026",
			Description: []string{"Built a payments service"},
		}},
		Education: []entity.EducationEntry{{
			Degree:      "BSc Computer Science",
			Institution: "State University",
		}},
		Skills: []string{"Go", "PostgreSQL"},
	}
}

func newTestUsecase(repo *mockResumeRepo, gw *mockGateway) *ResumeUsecase {
	return NewUsecase(repo, gw, formatter.NewFactory(), zap.NewNop())
}

func TestAnalyzeResumeStoresScoreAndOptimized(t *testing.T) {
	repo := &mockResumeRepo{
		createFn: func(_ context.Context, resume entity.Resume) (*entity.Resume, error) {
			return &resume, nil
		},
	}
	gw := &mockGateway{
		scoreFn: func(_ context.Context, _, _ string) *entity.ResumeScore {
			return sampleScore()
		},
		optimizeFn: func(_ context.Context, _, _ string) (*entity.OptimizedResume, error) {
			return sampleOptimized(), nil
		},
	}

	resume, err := newTestUsecase(repo, gw).AnalyzeResume(context.Background(), "owner-1", &entity.AnalyzeResumeRequest{
		Text: "resume text",
		Role: "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resume.Analysis.ATSScore != 80 {
		t.Fatalf("unexpected score: %+v", resume.Analysis.ResumeScore)
	}
	if resume.Analysis.Optimized == nil || resume.Analysis.Optimized.PersonalInfo.Name != "Alex Doe" {
		t.Fatalf("unexpected optimized section: %+v", resume.Analysis.Optimized)
	}
	if resume.OwnerID != "owner-1" || resume.TargetRole != "Backend Engineer" {
		t.Fatalf("unexpected resume identity: %+v", resume)
	}
}

func TestAnalyzeResumeProceedsWithoutOptimization(t *testing.T) {
	repo := &mockResumeRepo{
		createFn: func(_ context.Context, resume entity.Resume) (*entity.Resume, error) {
			return &resume, nil
		},
	}
	gw := &mockGateway{
		scoreFn: func(_ context.Context, _, _ string) *entity.ResumeScore {
			return sampleScore()
		},
		optimizeFn: func(_ context.Context, _, _ string) (*entity.OptimizedResume, error) {
			return nil, entity.ErrGeneration
		},
	}

	resume, err := newTestUsecase(repo, gw).AnalyzeResume(context.Background(), "owner-1", &entity.AnalyzeResumeRequest{
		Text: "resume text",
		Role: "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("expected score-only analysis, got error: %v", err)
	}
	if resume.Analysis.Optimized != nil {
		t.Fatal("expected no optimized section after failed optimization")
	}
	if resume.Analysis.ATSScore != 80 {
		t.Fatalf("unexpected score: %+v", resume.Analysis.ResumeScore)
	}
}

func storedResume(resume *entity.Resume) *mockResumeRepo {
	return &mockResumeRepo{
		getFn: func(_ context.Context, ownerID, id string) (*entity.Resume, error) {
			if ownerID != resume.OwnerID || id != resume.ID {
				return nil, entity.ErrResumeNotFound
			}
			return resume, nil
		},
	}
}

func TestExportResumeJSON(t *testing.T) {
	resume := &entity.Resume{
		ID:      "resume-1",
		OwnerID: "owner-1",
		Analysis: entity.ResumeAnalysis{
			ResumeScore: *sampleScore(),
			Optimized:   sampleOptimized(),
		},
	}
	uc := newTestUsecase(storedResume(resume), &mockGateway{})

	result, err := uc.ExportResume(context.Background(), "owner-1", "resume-1", entity.FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ContentType != "application/json" || result.Filename != "optimized_resume.json" {
		t.Fatalf("unexpected export metadata: %+v", result)
	}

	var decoded entity.OptimizedResume
	if err := json.Unmarshal(result.Data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if decoded.PersonalInfo.Name != "Alex Doe" {
		t.Fatalf("unexpected exported resume: %+v", decoded)
	}
}

func TestExportResumeMarkdown(t *testing.T) {
	resume := &entity.Resume{
		ID:      "resume-1",
		OwnerID: "owner-1",
		Analysis: entity.ResumeAnalysis{
			ResumeScore: *sampleScore(),
			Optimized:   sampleOptimized(),
		},
	}
	uc := newTestUsecase(storedResume(resume), &mockGateway{})

	result, err := uc.ExportResume(context.Background(), "owner-1", "resume-1", entity.FormatMarkdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Filename != "optimized_resume.md" {
		t.Fatalf("unexpected filename: %q", result.Filename)
	}

	body := string(result.Data)
	for _, want := range []string{"Alex Doe", "alex@example.com | 555-0100", "## Summary", "## Experience", "## Education", "## Skills"} {
		if !strings.Contains(body, want) {
			t.Errorf("export missing %q:\n%s", want, body)
		}
	}
}

func TestExportResumeRejectsUnknownFormat(t *testing.T) {
	uc := newTestUsecase(&mockResumeRepo{}, &mockGateway{})

	_, err := uc.ExportResume(context.Background(), "owner-1", "resume-1", entity.ResultFormat("xlsx"))
	if !errors.Is(err, entity.ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestExportResumeWithoutOptimizedSection(t *testing.T) {
	resume := &entity.Resume{
		ID:      "resume-1",
		OwnerID: "owner-1",
		Analysis: entity.ResumeAnalysis{
			ResumeScore: *sampleScore(),
		},
	}
	uc := newTestUsecase(storedResume(resume), &mockGateway{})

	_, err := uc.ExportResume(context.Background(), "owner-1", "resume-1", entity.FormatJSON)
	if !errors.Is(err, entity.ErrNoOptimizedResume) {
		t.Fatalf("expected no optimized resume error, got %v", err)
	}
}

func TestExportResumeForeignOwner(t *testing.T) {
	resume := &entity.Resume{
		ID:      "resume-1",
		OwnerID: "owner-1",
		Analysis: entity.ResumeAnalysis{
			ResumeScore: *sampleScore(),
			Optimized:   sampleOptimized(),
		},
	}
	uc := newTestUsecase(storedResume(resume), &mockGateway{})

	_, err := uc.ExportResume(context.Background(), "owner-2", "resume-1", entity.FormatJSON)
	if !errors.Is(err, entity.ErrResumeNotFound) {
		t.Fatalf("expected resume not found, got %v", err)
	}
}

func TestDeleteResumePropagatesError(t *testing.T) {
	repo := &mockResumeRepo{
		deleteFn: func(_ context.Context, _, _ string) error {
			return entity.ErrResumeNotFound
		},
	}
	uc := newTestUsecase(repo, &mockGateway{})

	err := uc.DeleteResume(context.Background(), "owner-1", "missing")
	if !errors.Is(err, entity.ErrResumeNotFound) {
		t.Fatalf("expected resume not found, got %v", err)
	}
}

func TestRenderMarkdownOmitsEmptySections(t *testing.T) {
	body := renderMarkdown(&entity.OptimizedResume{
		PersonalInfo: entity.PersonalInfo{Name: "Alex Doe"},
	})

	if !strings.HasPrefix(body, "# Alex Doe") {
		t.Fatalf("missing name heading: %q", body)
	}
	for _, heading := range []string{"## Summary", "## Experience", "## Education", "## Skills"} {
		if strings.Contains(body, heading) {
			t.Errorf("unexpected %q for empty resume", heading)
		}
	}
}
