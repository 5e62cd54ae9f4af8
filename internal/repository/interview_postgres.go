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

// InterviewRepository defines the interface for interview persistence
type InterviewRepository interface {
	Create(ctx context.Context, interview entity.Interview) (*entity.Interview, error)
	Get(ctx context.Context, ownerID, id string) (*entity.Interview, error)
	List(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Interview, error)
	Update(ctx context.Context, interview *entity.Interview) (*entity.Interview, error)
}

var _ InterviewRepository = &InterviewPostgres{}

// InterviewPostgres implements InterviewRepository using PostgreSQL
type InterviewPostgres struct {
	db *pgxpool.Pool
}

func NewInterviewPostgres(db *pgxpool.Pool) *InterviewPostgres {
	return &InterviewPostgres{db: db}
}

const interviewColumns = `id, owner_id, role, mode, is_adaptive, status, transcript, exchanges, overall_score, revision, created_at, updated_at`

func (r *InterviewPostgres) Create(ctx context.Context, interview entity.Interview) (*entity.Interview, error) {
	interviewID, err := uuid.Parse(interview.ID)
	if err != nil {
		return nil, fmt.Errorf("parse interview ID: %w", err)
	}

	transcript, exchanges, err := marshalInterviewDocs(&interview)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO interviews (id, owner_id, role, mode, is_adaptive, status, transcript, exchanges)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+interviewColumns,
		pgtype.UUID{Bytes: interviewID, Valid: true},
		interview.OwnerID,
		interview.TargetRole,
		string(interview.Mode),
		interview.IsAdaptive,
		string(interview.Status),
		transcript,
		exchanges,
	)

	created, err := scanInterview(row)
	if err != nil {
		return nil, fmt.Errorf("create interview: %w", err)
	}

	return created, nil
}

func (r *InterviewPostgres) Get(ctx context.Context, ownerID, id string) (*entity.Interview, error) {
	interviewID, err := uuid.Parse(id)
	if err != nil {
		return nil, entity.ErrInterviewNotFound
	}

	row := r.db.QueryRow(ctx, `
		SELECT `+interviewColumns+`
		FROM interviews
		WHERE id = $1 AND owner_id = $2`,
		pgtype.UUID{Bytes: interviewID, Valid: true},
		ownerID,
	)

	interview, err := scanInterview(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrInterviewNotFound
		}
		return nil, fmt.Errorf("get interview: %w", err)
	}

	return interview, nil
}

func (r *InterviewPostgres) List(ctx context.Context, ownerID string, skip, limit int) ([]*entity.Interview, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+interviewColumns+`
		FROM interviews
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		ownerID, int32(limit), int32(skip),
	)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	defer rows.Close()

	interviews := make([]*entity.Interview, 0)
	for rows.Next() {
		interview, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("list interviews: %w", err)
		}
		interviews = append(interviews, interview)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}

	return interviews, nil
}

// Update writes the interview back guarded by its revision. A zero-row update
// means a concurrent writer advanced the revision first.
func (r *InterviewPostgres) Update(ctx context.Context, interview *entity.Interview) (*entity.Interview, error) {
	interviewID, err := uuid.Parse(interview.ID)
	if err != nil {
		return nil, fmt.Errorf("parse interview ID: %w", err)
	}

	transcript, exchanges, err := marshalInterviewDocs(interview)
	if err != nil {
		return nil, err
	}

	var overallScore pgtype.Int4
	if interview.OverallScore != nil {
		overallScore = pgtype.Int4{Int32: int32(*interview.OverallScore), Valid: true}
	}

	row := r.db.QueryRow(ctx, `
		UPDATE interviews
		SET status = $1,
		    transcript = $2,
		    exchanges = $3,
		    overall_score = $4,
		    revision = revision + 1,
		    updated_at = now()
		WHERE id = $5 AND owner_id = $6 AND revision = $7
		RETURNING `+interviewColumns,
		string(interview.Status),
		transcript,
		exchanges,
		overallScore,
		pgtype.UUID{Bytes: interviewID, Valid: true},
		interview.OwnerID,
		interview.Revision,
	)

	updated, err := scanInterview(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrInterviewConflict
		}
		return nil, fmt.Errorf("update interview: %w", err)
	}

	return updated, nil
}

