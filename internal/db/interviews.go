package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateInterview persists a generated question set and returns its ID.
func (db *DB) CreateInterview(ctx context.Context, input *InterviewInput) (uuid.UUID, error) {
	typesJSON, err := json.Marshal(input.InterviewType)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal interview types: %w", err)
	}
	questionsJSON, err := json.Marshal(input.Questions)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal questions: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO interviews (job_position, job_description, question_count, interview_type, questions)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5)
		 RETURNING id`,
		input.JobPosition, input.JobDescription, input.QuestionCount, typesJSON, questionsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return id, nil
}

// scanInterview scans an interview row with JSONB columns.
func scanInterview(row pgx.Row) (*Interview, error) {
	var iv Interview
	var typesJSON, questionsJSON []byte
	err := row.Scan(&iv.ID, &iv.JobPosition, &iv.JobDescription, &iv.QuestionCount,
		&typesJSON, &questionsJSON, &iv.CreatedAt)
	if err != nil {
		return nil, err
	}
	if typesJSON != nil {
		_ = json.Unmarshal(typesJSON, &iv.InterviewType)
	}
	if questionsJSON != nil {
		_ = json.Unmarshal(questionsJSON, &iv.Questions)
	}
	return &iv, nil
}

const interviewColumns = `id, job_position, COALESCE(job_description, ''), question_count,
	interview_type, questions, created_at`

// GetInterview retrieves an interview by ID. Returns nil without error when
// no record matches.
func (db *DB) GetInterview(ctx context.Context, id uuid.UUID) (*Interview, error) {
	iv, err := scanInterview(db.pool.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return iv, nil
}

// ListInterviews retrieves the most recent interviews, newest first.
func (db *DB) ListInterviews(ctx context.Context, limit int) ([]Interview, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+interviewColumns+` FROM interviews ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var interviews []Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, *iv)
	}
	return interviews, nil
}

// DeleteInterview deletes an interview by ID.
func (db *DB) DeleteInterview(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete interview: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview not found: %s", id)
	}
	return nil
}
