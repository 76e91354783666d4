// Package main provides the entry point for the AI Career Guide HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_guide",
	Short: "AI Career Guide HTTP API Server",
	Long:  "AI Career Guide serves interview preparation APIs: accounts, AI-generated interview questions, quizzes and scheduled interview management via REST.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
