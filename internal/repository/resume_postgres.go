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

// ResumeRepository defines the interface for resume analysis persistence
type ResumeRepository interface {
	Create(ctx context.Context, resume entity.Resume) (*entity.Resume, error)
	Get(ctx context.Context, ownerID, id string) (*entity.Resume, error)
	List(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Resume, error)
	Delete(ctx context.Context, ownerID, id string) error
}

var _ ResumeRepository = &ResumePostgres{}

// ResumePostgres implements ResumeRepository using PostgreSQL
type ResumePostgres struct {
	db *pgxpool.Pool
}

func NewResumePostgres(db *pgxpool.Pool) *ResumePostgres {
	return &ResumePostgres{db: db}
}

const resumeColumns = `id, owner_id, role, analysis, created_at`

func (r *ResumePostgres) Create(ctx context.Context, resume entity.Resume) (*entity.Resume, error) {
	resumeID, err := uuid.Parse(resume.ID)
	if err != nil {
		return nil, fmt.Errorf("parse resume ID: %w", err)
	}

	analysis, err := marshalAnalysis(resume.Analysis)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO resumes (id, owner_id, role, analysis)
		VALUES ($1, $2, $3, $4)
		RETURNING `+resumeColumns,
		pgtype.UUID{Bytes: resumeID, Valid: true},
		resume.OwnerID,
		resume.TargetRole,
		analysis,
	)

	created, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}

	return created, nil
}

func (r *ResumePostgres) Get(ctx context.Context, ownerID, id string) (*entity.Resume, error) {
	resumeID, err := uuid.Parse(id)
	if err != nil {
		return nil, entity.ErrResumeNotFound
	}

	row := r.db.QueryRow(ctx, `
		SELECT `+resumeColumns+`
		FROM resumes
		WHERE id = $1 AND owner_id = $2`,
		pgtype.UUID{Bytes: resumeID, Valid: true},
		ownerID,
	)

	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrResumeNotFound
		}
		return nil, fmt.Errorf("get resume: %w", err)
	}

	return resume, nil
}

func (r *ResumePostgres) List(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Resume, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+resumeColumns+`
		FROM resumes
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		ownerID, int32(limit), int32(skip),
	)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	resumes := make([]*entity.Resume, 0)
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("list resumes: %w", err)
		}
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}

	return resumes, nil
}

func (r *ResumePostgres) Delete(ctx context.Context, ownerID, id string) error {
	resumeID, err := uuid.Parse(id)
	if err != nil {
		return entity.ErrResumeNotFound
	}

	tag, err := r.db.Exec(ctx, `
		DELETE FROM resumes
		WHERE id = $1 AND owner_id = $2`,
		pgtype.UUID{Bytes: resumeID, Valid: true},
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrResumeNotFound
	}

	return nil
}
