package resume

import (
	"context"

	"github.com/shettyrawat/anjob-backend/internal/entity"
)

// AIGateway is the slice of the AI provider used by resume analysis.
// ScoreResume never fails and degrades to a conservative fallback;
// OptimizeResume reports its error so the analysis can proceed without the
// optimized section.
type AIGateway interface {
	ScoreResume(ctx context.Context, text, role string) *entity.ResumeScore
	OptimizeResume(ctx context.Context, text, role string) (*entity.OptimizedResume, error)
}
