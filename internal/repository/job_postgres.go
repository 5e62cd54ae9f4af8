package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shettyrawat/anjob-backend/internal/entity"
)

// JobRepository defines the interface for job application persistence
type JobRepository interface {
	Create(ctx context.Context, job entity.Job) (*entity.Job, error)
	Get(ctx context.Context, ownerID, id string) (*entity.Job, error)
	List(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) (*entity.Job, error)
	Delete(ctx context.Context, ownerID, id string) error
}

var _ JobRepository = &JobPostgres{}

// JobPostgres implements JobRepository using PostgreSQL
type JobPostgres struct {
	db *pgxpool.Pool
}

func NewJobPostgres(db *pgxpool.Pool) *JobPostgres {
	return &JobPostgres{db: db}
}

const jobColumns = `id, owner_id, company, position, location, salary, status, notes, timeline, created_at, updated_at`

func (r *JobPostgres) Create(ctx context.Context, job entity.Job) (*entity.Job, error) {
	jobID, err := uuid.Parse(job.ID)
	if err != nil {
		return nil, fmt.Errorf("parse job ID: %w", err)
	}

	timeline, err := marshalTimeline(job.Timeline)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO jobs (id, owner_id, company, position, location, salary, status, notes, timeline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+jobColumns,
		pgtype.UUID{Bytes: jobID, Valid: true},
		job.OwnerID,
		job.Company,
		job.Position,
		pgtype.Text{String: job.Location, Valid: job.Location != ""},
		pgtype.Text{String: job.Salary, Valid: job.Salary != ""},
		string(job.Status),
		pgtype.Text{String: job.Notes, Valid: job.Notes != ""},
		timeline,
	)

	created, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	return created, nil
}

func (r *JobPostgres) Get(ctx context.Context, ownerID, id string) (*entity.Job, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, entity.ErrJobNotFound
	}

	row := r.db.QueryRow(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE id = $1 AND owner_id = $2`,
		pgtype.UUID{Bytes: jobID, Valid: true},
		ownerID,
	)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrJobNotFound
		}
		return nil, fmt.Errorf("get job: %w", err)
	}

	return job, nil
}

func (r *JobPostgres) List(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		ownerID, int32(limit), int32(skip),
	)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]*entity.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("list jobs: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return jobs, nil
}

func (r *JobPostgres) Update(ctx context.Context, job *entity.Job) (*entity.Job, error) {
	jobID, err := uuid.Parse(job.ID)
	if err != nil {
		return nil, fmt.Errorf("parse job ID: %w", err)
	}

	timeline, err := marshalTimeline(job.Timeline)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		UPDATE jobs
		SET company = $1,
		    position = $2,
		    location = $3,
		    salary = $4,
		    status = $5,
		    notes = $6,
		    timeline = $7,
		    updated_at = now()
		WHERE id = $8 AND owner_id = $9
		RETURNING `+jobColumns,
		job.Company,
		job.Position,
		pgtype.Text{String: job.Location, Valid: job.Location != ""},
		pgtype.Text{String: job.Salary, Valid: job.Salary != ""},
		string(job.Status),
		pgtype.Text{String: job.Notes, Valid: job.Notes != ""},
		timeline,
		pgtype.UUID{Bytes: jobID, Valid: true},
		job.OwnerID,
	)

	updated, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}

	return updated, nil
}

func (r *JobPostgres) Delete(ctx context.Context, ownerID, id string) error {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return entity.ErrJobNotFound
	}

	tag, err := r.db.Exec(ctx, `
		DELETE FROM jobs
		WHERE id = $1 AND owner_id = $2`,
		pgtype.UUID{Bytes: jobID, Valid: true},
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrJobNotFound
	}

	return nil
}
