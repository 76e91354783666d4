package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const scheduleColumns = `id, title, candidate_name, candidate_email, date, time, duration,
	COALESCE(meeting_link, ''), COALESCE(notes, ''), status, user_id, created_at, updated_at`

// scanSchedule scans a scheduled interview row in scheduleColumns order.
func scanSchedule(row pgx.Row) (*ScheduledInterview, error) {
	var si ScheduledInterview
	err := row.Scan(&si.ID, &si.Title, &si.CandidateName, &si.CandidateEmail,
		&si.Date, &si.Time, &si.Duration, &si.MeetingLink, &si.Notes,
		&si.Status, &si.UserID, &si.CreatedAt, &si.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &si, nil
}

// CreateScheduledInterview persists a new scheduled interview with
// status=scheduled and returns the stored record.
func (db *DB) CreateScheduledInterview(ctx context.Context, input *ScheduleInput) (*ScheduledInterview, error) {
	si, err := scanSchedule(db.pool.QueryRow(ctx,
		`INSERT INTO scheduled_interviews
		        (title, candidate_name, candidate_email, date, time, duration,
		         meeting_link, notes, status, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), 'scheduled', $9)
		 RETURNING `+scheduleColumns,
		input.Title, input.CandidateName, input.CandidateEmail, &input.Date,
		input.Time, input.Duration, input.MeetingLink, input.Notes, input.UserID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduled interview: %w", err)
	}
	return si, nil
}

// GetScheduledInterview retrieves a scheduled interview by ID. Returns nil
// without error when no record matches.
func (db *DB) GetScheduledInterview(ctx context.Context, id uuid.UUID) (*ScheduledInterview, error) {
	si, err := scanSchedule(db.pool.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM scheduled_interviews WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get scheduled interview: %w", err)
	}
	return si, nil
}

// listSchedules runs a query expected to yield scheduleColumns rows.
func (db *DB) listSchedules(ctx context.Context, query string, args ...any) ([]ScheduledInterview, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled interviews: %w", err)
	}
	defer rows.Close()

	var interviews []ScheduledInterview
	for rows.Next() {
		si, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheduled interview: %w", err)
		}
		interviews = append(interviews, *si)
	}
	return interviews, nil
}

// ListScheduledInterviews retrieves all records ordered by date then time,
// ascending.
func (db *DB) ListScheduledInterviews(ctx context.Context) ([]ScheduledInterview, error) {
	return db.listSchedules(ctx,
		`SELECT `+scheduleColumns+` FROM scheduled_interviews ORDER BY date ASC, time ASC`)
}

// ListUpcomingInterviews retrieves records still in the scheduled state with
// a date on or after today, ascending.
func (db *DB) ListUpcomingInterviews(ctx context.Context, today time.Time) ([]ScheduledInterview, error) {
	return db.listSchedules(ctx,
		`SELECT `+scheduleColumns+` FROM scheduled_interviews
		 WHERE date >= $1 AND status = 'scheduled'
		 ORDER BY date ASC, time ASC`,
		today)
}

// ListPastInterviews retrieves records dated before today, descending.
func (db *DB) ListPastInterviews(ctx context.Context, today time.Time) ([]ScheduledInterview, error) {
	return db.listSchedules(ctx,
		`SELECT `+scheduleColumns+` FROM scheduled_interviews
		 WHERE date < $1
		 ORDER BY date DESC, time DESC`,
		today)
}

// UpdateScheduledInterview applies the non-nil fields of input, refreshes
// updated_at and returns the updated row. Returns nil without error when no
// record matches.
func (db *DB) UpdateScheduledInterview(ctx context.Context, id uuid.UUID, input *ScheduleUpdateInput) (*ScheduledInterview, error) {
	query := `UPDATE scheduled_interviews SET updated_at = NOW()`
	args := []any{}
	argNum := 1

	set := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, argNum)
		args = append(args, value)
		argNum++
	}

	if input.Title != nil {
		set("title", *input.Title)
	}
	if input.CandidateName != nil {
		set("candidate_name", *input.CandidateName)
	}
	if input.CandidateEmail != nil {
		set("candidate_email", *input.CandidateEmail)
	}
	if input.Date != nil {
		set("date", input.Date)
	}
	if input.Time != nil {
		set("time", *input.Time)
	}
	if input.Duration != nil {
		set("duration", *input.Duration)
	}
	if input.MeetingLink != nil {
		// Empty string clears the link
		set("meeting_link", nullIfEmpty(*input.MeetingLink))
	}
	if input.Notes != nil {
		set("notes", nullIfEmpty(*input.Notes))
	}
	if input.Status != nil {
		set("status", *input.Status)
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argNum, scheduleColumns)
	args = append(args, id)

	si, err := scanSchedule(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update scheduled interview: %w", err)
	}
	return si, nil
}

// DeleteScheduledInterview deletes a record and returns it. Returns nil
// without error when no record matches.
func (db *DB) DeleteScheduledInterview(ctx context.Context, id uuid.UUID) (*ScheduledInterview, error) {
	si, err := scanSchedule(db.pool.QueryRow(ctx,
		`DELETE FROM scheduled_interviews WHERE id = $1 RETURNING `+scheduleColumns, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete scheduled interview: %w", err)
	}
	return si, nil
}

// UpdateScheduleStatus sets the status and refreshes updated_at. Returns nil
// without error when no record matches. Status validity is checked by the
// caller.
func (db *DB) UpdateScheduleStatus(ctx context.Context, id uuid.UUID, status string) (*ScheduledInterview, error) {
	si, err := scanSchedule(db.pool.QueryRow(ctx,
		`UPDATE scheduled_interviews SET status = $1, updated_at = NOW()
		 WHERE id = $2 RETURNING `+scheduleColumns,
		status, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update interview status: %w", err)
	}
	return si, nil
}

// UpdateMeetingLink overwrites the meeting link and refreshes updated_at.
// Returns nil without error when no record matches.
func (db *DB) UpdateMeetingLink(ctx context.Context, id uuid.UUID, meetingLink string) (*ScheduledInterview, error) {
	si, err := scanSchedule(db.pool.QueryRow(ctx,
		`UPDATE scheduled_interviews SET meeting_link = $1, updated_at = NOW()
		 WHERE id = $2 RETURNING `+scheduleColumns,
		meetingLink, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update meeting link: %w", err)
	}
	return si, nil
}

// nullIfEmpty maps "" to NULL for nullable text columns.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
