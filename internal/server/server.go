// Package server provides the HTTP REST API for the career-guide backend.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sandun/career-guide/internal/config"
	"github.com/sandun/career-guide/internal/db"
	"github.com/sandun/career-guide/internal/llm"
	"github.com/sandun/career-guide/internal/quiz"
	"github.com/sandun/career-guide/internal/server/middleware"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	validator  *validator.Validate

	llmClient  llm.Client
	quizClient *quiz.Client

	jwtService      *JWTService
	userService     *UserService
	scheduleService *ScheduleService
	authHandler     *AuthHandler

	interviews  InterviewStore
	assessments AssessmentStore
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	GeminiKey   string
	QuizAPIURL  string
}

// New creates a new server instance. The store handle is opened here and
// closed on shutdown; every component receives it explicitly.
func New(ctx context.Context, cfg Config) (*Server, error) {
	if err := db.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		return nil, err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:          database,
		validator:   validator.New(),
		interviews:  database,
		assessments: database,
	}

	// Missing AI configuration degrades the affected endpoints at request
	// time instead of preventing startup.
	if cfg.GeminiKey != "" {
		llmClient, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = llmClient
	} else {
		log.Println("GEMINI_API_KEY not set; interview generation disabled")
	}
	if cfg.QuizAPIURL != "" {
		s.quizClient = quiz.NewClient(cfg.QuizAPIURL)
	} else {
		log.Println("QUIZ_API_URL not set; quiz generation disabled")
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	s.authHandler = NewAuthHandler(s.userService, s.jwtService)
	s.scheduleService = NewScheduleService(database)

	// Setup router
	mux := http.NewServeMux()
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)

	// Auth endpoints
	mux.HandleFunc("POST /api/auth/signup", s.authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", s.authHandler.Login)
	mux.Handle("GET /api/auth/profile", auth(http.HandlerFunc(s.authHandler.GetProfile)))
	mux.Handle("PUT /api/auth/profile", auth(http.HandlerFunc(s.authHandler.UpdateProfile)))

	// AI endpoints
	mux.HandleFunc("POST /api/generate-quiz", s.handleGenerateQuiz)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)

	// Interview endpoints
	mux.HandleFunc("GET /api/interviews", s.handleListInterviews)
	mux.HandleFunc("POST /api/interviews/generate", s.handleGenerateInterview)
	mux.HandleFunc("GET /api/interviews/{id}", s.handleGetInterview)
	mux.HandleFunc("DELETE /api/interviews/{id}", s.handleDeleteInterview)

	// Scheduled interview endpoints
	mux.HandleFunc("GET /api/scheduled-interviews", s.handleListSchedules)
	mux.HandleFunc("POST /api/scheduled-interviews", s.handleCreateSchedule)
	mux.HandleFunc("GET /api/scheduled-interviews/upcoming/list", s.handleListUpcomingSchedules)
	mux.HandleFunc("GET /api/scheduled-interviews/past/list", s.handleListPastSchedules)
	mux.HandleFunc("GET /api/scheduled-interviews/{id}", s.handleGetSchedule)
	mux.HandleFunc("PUT /api/scheduled-interviews/{id}", s.handleUpdateSchedule)
	mux.HandleFunc("DELETE /api/scheduled-interviews/{id}", s.handleDeleteSchedule)
	mux.HandleFunc("PATCH /api/scheduled-interviews/{id}/status", s.handleSetScheduleStatus)
	mux.HandleFunc("POST /api/scheduled-interviews/{id}/generate-meet-link", s.handleRegenerateMeetLink)

	// Assessment endpoints
	mux.HandleFunc("POST /api/assessments", s.handleSubmitAssessment)
	mux.HandleFunc("GET /api/assessments", s.handleListAssessments)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second, // Long timeout for AI generation
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRoot is a plain liveness banner.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "AI Career Guide Backend is Running...")
}
