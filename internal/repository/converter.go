package repository

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shettyrawat/anjob-backend/internal/entity"
)

func marshalInterviewDocs(interview *entity.Interview) (transcript, exchanges []byte, err error) {
	if interview.Transcript == nil {
		interview.Transcript = []entity.TranscriptTurn{}
	}
	if interview.Exchanges == nil {
		interview.Exchanges = []entity.Exchange{}
	}

	transcript, err = json.Marshal(interview.Transcript)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal transcript: %w", err)
	}
	exchanges, err = json.Marshal(interview.Exchanges)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal exchanges: %w", err)
	}

	return transcript, exchanges, nil
}

func marshalTimeline(timeline []entity.TimelineEvent) ([]byte, error) {
	if timeline == nil {
		timeline = []entity.TimelineEvent{}
	}

	data, err := json.Marshal(timeline)
	if err != nil {
		return nil, fmt.Errorf("marshal timeline: %w", err)
	}

	return data, nil
}

func marshalAnalysis(analysis entity.ResumeAnalysis) ([]byte, error) {
	data, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}

	return data, nil
}

func scanInterview(row pgx.Row) (*entity.Interview, error) {
	var (
		id           pgtype.UUID
		transcript   []byte
		exchanges    []byte
		overallScore pgtype.Int4
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
		interview    entity.Interview
	)

	err := row.Scan(
		&id,
		&interview.OwnerID,
		&interview.TargetRole,
		&interview.Mode,
		&interview.IsAdaptive,
		&interview.Status,
		&transcript,
		&exchanges,
		&overallScore,
		&interview.Revision,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	interview.ID = uuid.UUID(id.Bytes).String()
	interview.CreatedAt = createdAt.Time
	interview.UpdatedAt = updatedAt.Time

	if overallScore.Valid {
		score := int(overallScore.Int32)
		interview.OverallScore = &score
	}

	if err := json.Unmarshal(transcript, &interview.Transcript); err != nil {
		return nil, fmt.Errorf("unmarshal transcript: %w", err)
	}
	if err := json.Unmarshal(exchanges, &interview.Exchanges); err != nil {
		return nil, fmt.Errorf("unmarshal exchanges: %w", err)
	}

	return &interview, nil
}

func scanJob(row pgx.Row) (*entity.Job, error) {
	var (
		id        pgtype.UUID
		location  pgtype.Text
		salary    pgtype.Text
		notes     pgtype.Text
		timeline  []byte
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
		job       entity.Job
	)

	err := row.Scan(
		&id,
		&job.OwnerID,
		&job.Company,
		&job.Position,
		&location,
		&salary,
		&job.Status,
		&notes,
		&timeline,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	job.ID = uuid.UUID(id.Bytes).String()
	job.Location = location.String
	job.Salary = salary.String
	job.Notes = notes.String
	job.CreatedAt = createdAt.Time
	job.UpdatedAt = updatedAt.Time

	if err := json.Unmarshal(timeline, &job.Timeline); err != nil {
		return nil, fmt.Errorf("unmarshal timeline: %w", err)
	}

	return &job, nil
}

func scanResume(row pgx.Row) (*entity.Resume, error) {
	var (
		id        pgtype.UUID
		analysis  []byte
		createdAt pgtype.Timestamptz
		resume    entity.Resume
	)

	err := row.Scan(
		&id,
		&resume.OwnerID,
		&resume.TargetRole,
		&analysis,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	resume.ID = uuid.UUID(id.Bytes).String()
	resume.CreatedAt = createdAt.Time

	if err := json.Unmarshal(analysis, &resume.Analysis); err != nil {
		return nil, fmt.Errorf("unmarshal analysis: %w", err)
	}

	return &resume, nil
}
