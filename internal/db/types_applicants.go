package db

import (
	"time"

	"github.com/google/uuid"
)

// Applicant represents an assessment result. Append-only.
type Applicant struct {
	ID                 uuid.UUID `json:"id"`
	StudentName        string    `json:"studentName"`
	SkillsSelected     []string  `json:"skillsSelected"`
	QuizScore          int       `json:"quizScore"`
	QuizTotalQuestions int       `json:"quizTotalQuestions"`
	ConfidenceScore    float64   `json:"confidenceScore"`
	FinalRank          string    `json:"finalRank,omitempty"`
	AverageScore       float64   `json:"averageScore"`
	SubmittedAt        time.Time `json:"submittedAt"`
}

// ApplicantInput holds the fields persisted for an assessment submission.
type ApplicantInput struct {
	StudentName        string
	SkillsSelected     []string
	QuizScore          int
	QuizTotalQuestions int
	ConfidenceScore    float64
	FinalRank          string
	AverageScore       float64
}
