package server

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/sandun/career-guide/internal/db"
	"github.com/sandun/career-guide/internal/schedule"
	"github.com/sandun/career-guide/internal/types"
)

// emailPattern is the candidate-email shape check (local@domain.tld). It is
// deliberately loose; deliverability is not this system's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ScheduleService provides business logic for the scheduled-interview
// lifecycle: creation validation, status transitions and meeting links.
type ScheduleService struct {
	db ScheduleStore
}

// NewScheduleService creates a new ScheduleService backed by the given store.
func NewScheduleService(db ScheduleStore) *ScheduleService {
	return &ScheduleService{db: db}
}

// todayLocalMidnight returns today's date at 00:00 local time. Scheduling
// date comparisons are against this boundary.
func todayLocalMidnight() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Create validates and persists a new scheduled interview. A missing
// meeting link is synthesized; the record always starts in the scheduled
// state.
func (s *ScheduleService) Create(ctx context.Context, req *types.CreateScheduleRequest, userID *uuid.UUID) (*db.ScheduledInterview, error) {
	if !emailPattern.MatchString(req.CandidateEmail) {
		return nil, &ErrValidation{Field: "candidateEmail", Message: "must be a valid email address"}
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, &ErrValidation{Field: "date", Message: "must be YYYY-MM-DD"}
	}
	if date.Before(todayLocalMidnight()) {
		return nil, &ErrPastDate{}
	}

	duration := req.Duration
	if duration == 0 {
		duration = 60
	}

	meetingLink := req.MeetingLink
	if meetingLink == "" {
		meetingLink = schedule.NewMeetLink()
	}

	input := &db.ScheduleInput{
		Title:          req.Title,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		Date:           db.Date{Time: date},
		Time:           req.Time,
		Duration:       duration,
		MeetingLink:    meetingLink,
		Notes:          req.Notes,
		UserID:         userID,
	}
	return s.db.CreateScheduledInterview(ctx, input)
}

// List returns all scheduled interviews ordered by date then time.
func (s *ScheduleService) List(ctx context.Context) ([]db.ScheduledInterview, error) {
	return s.db.ListScheduledInterviews(ctx)
}

// ListUpcoming returns records still scheduled for today or later.
func (s *ScheduleService) ListUpcoming(ctx context.Context) ([]db.ScheduledInterview, error) {
	return s.db.ListUpcomingInterviews(ctx, todayLocalMidnight())
}

// ListPast returns records dated before today, most recent first.
func (s *ScheduleService) ListPast(ctx context.Context) ([]db.ScheduledInterview, error) {
	return s.db.ListPastInterviews(ctx, todayLocalMidnight())
}

// Get retrieves one record.
func (s *ScheduleService) Get(ctx context.Context, id uuid.UUID) (*db.ScheduledInterview, error) {
	si, err := s.db.GetScheduledInterview(ctx, id)
	if err != nil {
		return nil, err
	}
	if si == nil {
		return nil, &ErrNotFound{Resource: "scheduled interview", ID: id}
	}
	return si, nil
}

// Update applies a partial update. Fields absent from the request stay
// untouched; a changed email is re-validated; updated_at always refreshes.
func (s *ScheduleService) Update(ctx context.Context, id uuid.UUID, req *types.UpdateScheduleRequest) (*db.ScheduledInterview, error) {
	if req.CandidateEmail != nil && !emailPattern.MatchString(*req.CandidateEmail) {
		return nil, &ErrValidation{Field: "candidateEmail", Message: "must be a valid email address"}
	}
	if req.Status != nil && !types.ValidStatus(*req.Status) {
		return nil, &ErrInvalidStatus{Status: *req.Status}
	}
	if req.Duration != nil && *req.Duration < 1 {
		return nil, &ErrValidation{Field: "duration", Message: "must be at least 1 minute"}
	}

	input := &db.ScheduleUpdateInput{
		Title:          req.Title,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		Time:           req.Time,
		Duration:       req.Duration,
		Status:         req.Status,
	}
	// Present-but-null and "" both clear these; absent leaves them alone.
	if req.MeetingLink.Set {
		input.MeetingLink = &req.MeetingLink.Value
	}
	if req.Notes.Set {
		input.Notes = &req.Notes.Value
	}
	if req.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *req.Date, time.Local)
		if err != nil {
			return nil, &ErrValidation{Field: "date", Message: "must be YYYY-MM-DD"}
		}
		input.Date = &db.Date{Time: date}
	}

	si, err := s.db.UpdateScheduledInterview(ctx, id, input)
	if err != nil {
		return nil, err
	}
	if si == nil {
		return nil, &ErrNotFound{Resource: "scheduled interview", ID: id}
	}
	return si, nil
}

// Delete removes a record and returns it.
func (s *ScheduleService) Delete(ctx context.Context, id uuid.UUID) (*db.ScheduledInterview, error) {
	si, err := s.db.DeleteScheduledInterview(ctx, id)
	if err != nil {
		return nil, err
	}
	if si == nil {
		return nil, &ErrNotFound{Resource: "scheduled interview", ID: id}
	}
	return si, nil
}

// SetStatus performs an explicit status transition. Any state may move to
// any other; only the status value itself is checked.
func (s *ScheduleService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*db.ScheduledInterview, error) {
	if !types.ValidStatus(status) {
		return nil, &ErrInvalidStatus{Status: status}
	}

	si, err := s.db.UpdateScheduleStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if si == nil {
		return nil, &ErrNotFound{Resource: "scheduled interview", ID: id}
	}
	return si, nil
}

// RegenerateMeetLink overwrites the meeting link with a fresh one.
func (s *ScheduleService) RegenerateMeetLink(ctx context.Context, id uuid.UUID) (*db.ScheduledInterview, error) {
	si, err := s.db.UpdateMeetingLink(ctx, id, schedule.NewMeetLink())
	if err != nil {
		return nil, err
	}
	if si == nil {
		return nil, &ErrNotFound{Resource: "scheduled interview", ID: id}
	}
	return si, nil
}
