package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/sandun/career-guide/internal/quiz"
	"github.com/sandun/career-guide/internal/types"
)

// quizTimeout bounds the outbound quiz-service call.
const quizTimeout = 90 * time.Second

// handleGenerateQuiz proxies quiz generation to the external service.
func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Topics) == 0 {
		errorResponse(w, http.StatusBadRequest, "No topics provided")
		return
	}

	if s.quizClient == nil {
		errorResponse(w, http.StatusInternalServerError, "Server configuration error. Quiz service URL missing.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), quizTimeout)
	defer cancel()

	questions, err := s.quizClient.GenerateQuiz(ctx, req.Topics)
	if err != nil {
		log.Printf("Error generating quiz: %v", err)
		var quizErr *quiz.Error
		if errors.As(err, &quizErr) && quizErr.Unreachable {
			errorResponse(w, http.StatusBadGateway,
				"Cannot connect to AI Model. Please ensure the quiz service is running.")
			return
		}
		errorResponse(w, http.StatusInternalServerError, "Failed to generate questions.")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{"questions": questions})
}

// handleAnalyze is a placeholder for the answer-analysis feature.
func (s *Server) handleAnalyze(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Analysis feature coming soon"})
}
