package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shettyrawat/anjob-backend/internal/entity"
	"github.com/shettyrawat/anjob-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// weeklyWindow is the number of trailing weeks shown on the dashboard.
const weeklyWindow = 4

// AnalyticsUsecase aggregates per-user activity for the dashboard. Results
// are cached per owner for a short TTL since the dashboard is polled far more
// often than the underlying data changes.
type AnalyticsUsecase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         *gocache.Cache
	logger        *zap.Logger
}

// NewUsecase creates a new analytics use case
func NewUsecase(analyticsRepo repository.AnalyticsRepository, cacheTTL time.Duration, logger *zap.Logger) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		analyticsRepo: analyticsRepo,
		cache:         gocache.New(cacheTTL, 2*cacheTTL),
		logger:        logger,
	}
}

// Dashboard returns the caller's aggregated stats, from cache when fresh.
func (uc *AnalyticsUsecase) Dashboard(ctx context.Context, ownerID string) (*entity.DashboardStats, error) {
	if cached, ok := uc.cache.Get(ownerID); ok {
		ctxzap.Debug(ctx, "dashboard stats served from cache")
		return cached.(*entity.DashboardStats), nil
	}

	stats := &entity.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobStats, err := uc.analyticsRepo.JobStats(gctx, ownerID)
		if err != nil {
			return err
		}
		stats.Jobs = *jobStats
		return nil
	})
	g.Go(func() error {
		buckets, err := uc.analyticsRepo.WeeklyApplications(gctx, ownerID, weeklyWindow)
		if err != nil {
			return err
		}
		stats.WeeklyApplications = fillWeeklyGaps(buckets, weeklyWindow, time.Now().UTC())
		return nil
	})
	g.Go(func() error {
		agg, err := uc.analyticsRepo.InterviewAggregate(gctx, ownerID)
		if err != nil {
			return err
		}
		stats.Interviews = *agg
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	uc.cache.SetDefault(ownerID, stats)

	ctxzap.Info(ctx, "dashboard stats computed",
		zap.Int("total_jobs", stats.Jobs.Total),
		zap.Int("completed_interviews", stats.Interviews.Count),
	)

	return stats, nil
}

// fillWeeklyGaps expands the sparse week buckets from the database into a
// dense window of consecutive weeks, zero counts included, oldest first.
func fillWeeklyGaps(buckets []entity.WeeklyBucket, weeks int, now time.Time) []entity.WeeklyBucket {
	currentWeek := startOfWeek(now)

	counts := make(map[time.Time]int, len(buckets))
	for _, b := range buckets {
		counts[startOfWeek(b.WeekStart)] = b.Count
	}

	dense := make([]entity.WeeklyBucket, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		week := currentWeek.AddDate(0, 0, -7*i)
		dense = append(dense, entity.WeeklyBucket{
			WeekStart: week,
			Count:     counts[week],
		})
	}

	return dense
}

// startOfWeek truncates to the Monday of t's week, matching Postgres
// date_trunc('week', ...).
func startOfWeek(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
