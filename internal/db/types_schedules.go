package db

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledInterview represents a scheduled live interview session.
type ScheduledInterview struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	CandidateName  string     `json:"candidateName"`
	CandidateEmail string     `json:"candidateEmail"`
	Date           Date       `json:"date"`
	Time           string     `json:"time"`
	Duration       int        `json:"duration"`
	MeetingLink    string     `json:"meetingLink,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Status         string     `json:"status"`
	UserID         *uuid.UUID `json:"userId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// ScheduleInput holds the fields persisted when scheduling an interview.
type ScheduleInput struct {
	Title          string
	CandidateName  string
	CandidateEmail string
	Date           Date
	Time           string
	Duration       int
	MeetingLink    string
	Notes          string
	UserID         *uuid.UUID
}

// ScheduleUpdateInput holds a partial update. Nil fields are left untouched;
// MeetingLink and Notes may be set to the empty string explicitly.
type ScheduleUpdateInput struct {
	Title          *string
	CandidateName  *string
	CandidateEmail *string
	Date           *Date
	Time           *string
	Duration       *int
	MeetingLink    *string
	Notes          *string
	Status         *string
}
