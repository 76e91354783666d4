package llm

import (
	"fmt"
	"strings"
)

// InterviewPrompt builds the generation prompt for an interview question
// set. The model is instructed to return a bare JSON array of strings; the
// normalizer copes when it does not comply.
func InterviewPrompt(jobPosition, jobDescription string, questionCount int, interviewTypes []string) string {
	return fmt.Sprintf(`Generate exactly %d interview questions for the position of %s.

Job Description: %s

Interview Types to focus on: %s

IMPORTANT: Return ONLY a valid JSON array of strings (questions). No markdown, no code blocks, no explanations.
Format: ["Question 1?", "Question 2?", ...]

Example:
["What is your experience with React?", "How do you handle state management?"]
`, questionCount, jobPosition, jobDescription, strings.Join(interviewTypes, ", "))
}
