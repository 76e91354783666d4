package db

import (
	"time"

	"github.com/google/uuid"
)

// Interview represents a generated interview question set. Immutable after
// creation except deletion.
type Interview struct {
	ID             uuid.UUID `json:"id"`
	JobPosition    string    `json:"jobPosition"`
	JobDescription string    `json:"jobDescription,omitempty"`
	QuestionCount  int       `json:"questionCount"`
	InterviewType  []string  `json:"interviewType"`
	Questions      []string  `json:"questions"`
	CreatedAt      time.Time `json:"createdAt"`
}

// InterviewInput holds the fields persisted after question generation.
type InterviewInput struct {
	JobPosition    string
	JobDescription string
	QuestionCount  int
	InterviewType  []string
	Questions      []string
}
