package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sandun/career-guide/internal/db"
	"github.com/sandun/career-guide/internal/llm"
	"github.com/sandun/career-guide/internal/types"
)

// interviewListLimit caps the list endpoint at the most recent records.
const interviewListLimit = 100

// generateTimeout bounds the outbound AI call so a stalled provider cannot
// hold a request open indefinitely.
const generateTimeout = 2 * time.Minute

// ---------------------------------------------------------------------
// Interview Handlers
// ---------------------------------------------------------------------

func (s *Server) handleGenerateInterview(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if s.llmClient == nil {
		errorResponse(w, http.StatusInternalServerError, "AI provider is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	prompt := llm.InterviewPrompt(req.JobPosition, req.JobDescription, req.QuestionCount, req.Type)
	text, err := s.llmClient.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("Error generating interview questions: %v", err)
		errorResponse(w, http.StatusBadGateway, "Failed to generate questions")
		return
	}

	questions := llm.NormalizeQuestions(text, req.QuestionCount)
	if len(questions) < req.QuestionCount {
		// Under-fulfilment is not an error; the set persists as-is.
		log.Printf("Generated %d questions, expected %d", len(questions), req.QuestionCount)
	}

	id, err := s.interviews.CreateInterview(r.Context(), &db.InterviewInput{
		JobPosition:    req.JobPosition,
		JobDescription: req.JobDescription,
		QuestionCount:  req.QuestionCount,
		InterviewType:  req.Type,
		Questions:      questions,
	})
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      id,
		"message": "Interview created successfully",
	})
}

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	interviews, err := s.interviews.ListInterviews(r.Context(), interviewListLimit)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to fetch interviews")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success":    true,
		"interviews": interviews,
	})
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	interview, err := s.interviews.GetInterview(r.Context(), id)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to fetch interview")
		return
	}
	if interview == nil {
		errorResponse(w, http.StatusNotFound, "Interview not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"interview": interview,
	})
}

func (s *Server) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	interview, err := s.interviews.GetInterview(r.Context(), id)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to delete interview")
		return
	}
	if interview == nil {
		errorResponse(w, http.StatusNotFound, "Interview not found")
		return
	}

	if err := s.interviews.DeleteInterview(r.Context(), id); err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to delete interview")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Interview deleted successfully",
	})
}
