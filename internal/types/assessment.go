package types

// SubmitAssessmentRequest represents an assessment result submission.
// Scores are pointers so that a legitimate zero survives the required check.
type SubmitAssessmentRequest struct {
	StudentName        string   `json:"studentName,omitempty"`
	SkillsSelected     []string `json:"skillsSelected,omitempty"`
	QuizScore          *int     `json:"quizScore" validate:"required,min=0"`
	QuizTotalQuestions int      `json:"quizTotalQuestions,omitempty" validate:"omitempty,min=1"`
	ConfidenceScore    *float64 `json:"confidenceScore" validate:"required,min=0,max=100"`
}
