package server

import (
	"encoding/json"
	"net/http"

	"github.com/sandun/career-guide/internal/db"
	"github.com/sandun/career-guide/internal/types"
)

// assessmentListLimit caps the assessment list endpoint.
const assessmentListLimit = 100

// Final rank thresholds over the combined average score.
const (
	rankAThreshold = 75.0
	rankBThreshold = 50.0
)

// computeAssessment derives the average score and final rank from the quiz
// and confidence results. The quiz score is normalized to a percentage
// before averaging.
func computeAssessment(quizScore, quizTotal int, confidenceScore float64) (average float64, rank string) {
	quizPercent := 0.0
	if quizTotal > 0 {
		quizPercent = float64(quizScore) / float64(quizTotal) * 100
	}
	average = (quizPercent + confidenceScore) / 2

	switch {
	case average >= rankAThreshold:
		rank = "A"
	case average >= rankBThreshold:
		rank = "B"
	default:
		rank = "C"
	}
	return average, rank
}

// ---------------------------------------------------------------------
// Assessment Handlers
// ---------------------------------------------------------------------

func (s *Server) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	var req types.SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	studentName := req.StudentName
	if studentName == "" {
		studentName = "Unknown Candidate"
	}
	quizTotal := req.QuizTotalQuestions
	if quizTotal == 0 {
		quizTotal = 10
	}

	average, rank := computeAssessment(*req.QuizScore, quizTotal, *req.ConfidenceScore)

	applicant, err := s.assessments.CreateApplicant(r.Context(), &db.ApplicantInput{
		StudentName:        studentName,
		SkillsSelected:     req.SkillsSelected,
		QuizScore:          *req.QuizScore,
		QuizTotalQuestions: quizTotal,
		ConfidenceScore:    *req.ConfidenceScore,
		FinalRank:          rank,
		AverageScore:       average,
	})
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"success":   true,
		"applicant": applicant,
	})
}

func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	applicants, err := s.assessments.ListApplicants(r.Context(), assessmentListLimit)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to fetch assessments")
		return
	}
	if applicants == nil {
		applicants = []db.Applicant{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success":    true,
		"count":      len(applicants),
		"applicants": applicants,
	})
}
