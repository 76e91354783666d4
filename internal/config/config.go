// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// AppConfig holds the process-level configuration read at startup.
// DatabaseURL is required; the AI and quiz settings may be empty, in which
// case the affected endpoints fail per-request instead of blocking startup.
type AppConfig struct {
	Port        int
	DatabaseURL string
	GeminiKey   string
	QuizAPIURL  string
}

// NewAppConfig creates the application configuration from environment
// variables: PORT (default: 5000), DATABASE_URL (required), GEMINI_API_KEY,
// QUIZ_API_URL.
func NewAppConfig() (*AppConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "5000" // default
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", port)
	}

	return &AppConfig{
		Port:        port,
		DatabaseURL: databaseURL,
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		QuizAPIURL:  os.Getenv("QUIZ_API_URL"),
	}, nil
}
