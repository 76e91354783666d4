package types

// GenerateInterviewRequest represents a request to generate a question set
// for a job position.
type GenerateInterviewRequest struct {
	JobPosition    string   `json:"jobPosition" validate:"required,min=1"`
	JobDescription string   `json:"jobDescription"`
	QuestionCount  int      `json:"questionCount" validate:"required,min=1,max=50"`
	Type           []string `json:"type" validate:"required,min=1,dive,min=1"`
}

// GenerateQuizRequest represents a request to the external quiz service.
type GenerateQuizRequest struct {
	Topics []string `json:"topics" validate:"required,min=1"`
}
