package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const applicantColumns = `id, student_name, skills_selected, quiz_score, quiz_total_questions,
	confidence_score, COALESCE(final_rank, ''), COALESCE(average_score, 0), submitted_at`

// scanApplicant scans an applicant row in applicantColumns order.
func scanApplicant(row pgx.Row) (*Applicant, error) {
	var a Applicant
	var skillsJSON []byte
	err := row.Scan(&a.ID, &a.StudentName, &skillsJSON, &a.QuizScore, &a.QuizTotalQuestions,
		&a.ConfidenceScore, &a.FinalRank, &a.AverageScore, &a.SubmittedAt)
	if err != nil {
		return nil, err
	}
	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &a.SkillsSelected)
	}
	return &a, nil
}

// CreateApplicant persists an assessment result and returns the stored
// record. There is no update or delete path.
func (db *DB) CreateApplicant(ctx context.Context, input *ApplicantInput) (*Applicant, error) {
	skillsJSON, err := json.Marshal(input.SkillsSelected)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	a, err := scanApplicant(db.pool.QueryRow(ctx,
		`INSERT INTO applicants
		        (student_name, skills_selected, quiz_score, quiz_total_questions,
		         confidence_score, final_rank, average_score)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		 RETURNING `+applicantColumns,
		input.StudentName, skillsJSON, input.QuizScore, input.QuizTotalQuestions,
		input.ConfidenceScore, input.FinalRank, input.AverageScore,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create applicant: %w", err)
	}
	return a, nil
}

// ListApplicants retrieves assessment results, newest first.
func (db *DB) ListApplicants(ctx context.Context, limit int) ([]Applicant, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicantColumns+` FROM applicants ORDER BY submitted_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	defer rows.Close()

	var applicants []Applicant
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan applicant: %w", err)
		}
		applicants = append(applicants, *a)
	}
	return applicants, nil
}
