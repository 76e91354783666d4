package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sandun/career-guide/internal/db"
)

// The store interfaces below are satisfied by *db.DB; handlers and services
// depend on them so tests can substitute fakes.

// UserStore is the persistence surface for user records.
type UserStore interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, input *db.UserInput) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	UpdateUserProfile(ctx context.Context, userID uuid.UUID, input *db.ProfileUpdateInput) (*db.User, error)
}

// InterviewStore is the persistence surface for generated question sets.
type InterviewStore interface {
	CreateInterview(ctx context.Context, input *db.InterviewInput) (uuid.UUID, error)
	GetInterview(ctx context.Context, id uuid.UUID) (*db.Interview, error)
	ListInterviews(ctx context.Context, limit int) ([]db.Interview, error)
	DeleteInterview(ctx context.Context, id uuid.UUID) error
}

// ScheduleStore is the persistence surface for scheduled interviews.
type ScheduleStore interface {
	CreateScheduledInterview(ctx context.Context, input *db.ScheduleInput) (*db.ScheduledInterview, error)
	GetScheduledInterview(ctx context.Context, id uuid.UUID) (*db.ScheduledInterview, error)
	ListScheduledInterviews(ctx context.Context) ([]db.ScheduledInterview, error)
	ListUpcomingInterviews(ctx context.Context, today time.Time) ([]db.ScheduledInterview, error)
	ListPastInterviews(ctx context.Context, today time.Time) ([]db.ScheduledInterview, error)
	UpdateScheduledInterview(ctx context.Context, id uuid.UUID, input *db.ScheduleUpdateInput) (*db.ScheduledInterview, error)
	DeleteScheduledInterview(ctx context.Context, id uuid.UUID) (*db.ScheduledInterview, error)
	UpdateScheduleStatus(ctx context.Context, id uuid.UUID, status string) (*db.ScheduledInterview, error)
	UpdateMeetingLink(ctx context.Context, id uuid.UUID, meetingLink string) (*db.ScheduledInterview, error)
}

// AssessmentStore is the persistence surface for assessment results.
type AssessmentStore interface {
	CreateApplicant(ctx context.Context, input *db.ApplicantInput) (*db.Applicant, error)
	ListApplicants(ctx context.Context, limit int) ([]db.Applicant, error)
}
