package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shettyrawat/anjob-backend/internal/entity"
)

// AnalyticsRepository aggregates per-user activity for the dashboard
type AnalyticsRepository interface {
	JobStats(ctx context.Context, ownerID string) (*entity.JobStats, error)
	WeeklyApplications(ctx context.Context, ownerID string, weeks int) ([]entity.WeeklyBucket, error)
	InterviewAggregate(ctx context.Context, ownerID string) (*entity.InterviewAggregate, error)
}

var _ AnalyticsRepository = &AnalyticsPostgres{}

type AnalyticsPostgres struct {
	db *pgxpool.Pool
}

func NewAnalyticsPostgres(db *pgxpool.Pool) *AnalyticsPostgres {
	return &AnalyticsPostgres{db: db}
}

func (r *AnalyticsPostgres) JobStats(ctx context.Context, ownerID string) (*entity.JobStats, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*)
		FROM jobs
		WHERE owner_id = $1
		GROUP BY status`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("job stats: %w", err)
	}
	defer rows.Close()

	stats := &entity.JobStats{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("job stats: %w", err)
		}

		switch entity.JobStatus(status) {
		case entity.JobStatusApplied:
			stats.Applied = count
		case entity.JobStatusInterviewing:
			stats.Interviewing = count
		case entity.JobStatusOffered:
			stats.Offered = count
		case entity.JobStatusRejected:
			stats.Rejected = count
		case entity.JobStatusAccepted:
			stats.Accepted = count
		}
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("job stats: %w", err)
	}

	return stats, nil
}

// WeeklyApplications buckets job applications by week start over the trailing
// window, most recent week last. Empty weeks are filled in by the usecase.
func (r *AnalyticsPostgres) WeeklyApplications(ctx context.Context, ownerID string, weeks int) ([]entity.WeeklyBucket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date_trunc('week', created_at) AS week_start, COUNT(*)
		FROM jobs
		WHERE owner_id = $1
		  AND created_at >= date_trunc('week', now()) - ($2 - 1) * interval '1 week'
		GROUP BY week_start
		ORDER BY week_start`,
		ownerID, weeks,
	)
	if err != nil {
		return nil, fmt.Errorf("weekly applications: %w", err)
	}
	defer rows.Close()

	buckets := make([]entity.WeeklyBucket, 0, weeks)
	for rows.Next() {
		var bucket entity.WeeklyBucket
		if err := rows.Scan(&bucket.WeekStart, &bucket.Count); err != nil {
			return nil, fmt.Errorf("weekly applications: %w", err)
		}
		buckets = append(buckets, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("weekly applications: %w", err)
	}

	return buckets, nil
}

func (r *AnalyticsPostgres) InterviewAggregate(ctx context.Context, ownerID string) (*entity.InterviewAggregate, error) {
	var agg entity.InterviewAggregate
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(AVG(overall_score), 0)
		FROM interviews
		WHERE owner_id = $1 AND status = 'completed'`,
		ownerID,
	).Scan(&agg.Count, &agg.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("interview aggregate: %w", err)
	}

	return &agg, nil
}
