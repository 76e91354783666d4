package types

// Scheduled interview status values. Transitions between them are always
// externally driven; any state may move to any other.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the recognized statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CreateScheduleRequest represents a request to schedule an interview.
// Date is a calendar date (YYYY-MM-DD); Time is an opaque display string.
type CreateScheduleRequest struct {
	Title          string `json:"title" validate:"required,min=1"`
	CandidateName  string `json:"candidateName" validate:"required,min=1"`
	CandidateEmail string `json:"candidateEmail" validate:"required"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string `json:"time" validate:"required,min=1"`
	Duration       int    `json:"duration,omitempty" validate:"omitempty,min=1"`
	MeetingLink    string `json:"meetingLink,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// UpdateScheduleRequest represents a partial update. Absent fields are left
// untouched. MeetingLink and Notes accept an explicit null or "" to clear
// the stored value, so they carry presence separately from the value.
type UpdateScheduleRequest struct {
	Title          *string        `json:"title,omitempty"`
	CandidateName  *string        `json:"candidateName,omitempty"`
	CandidateEmail *string        `json:"candidateEmail,omitempty"`
	Date           *string        `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time           *string        `json:"time,omitempty"`
	Duration       *int           `json:"duration,omitempty"`
	MeetingLink    OptionalString `json:"meetingLink"`
	Notes          OptionalString `json:"notes"`
	Status         *string        `json:"status,omitempty"`
}

// UpdateStatusRequest represents an explicit status transition instruction.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
