package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/generative-ai-go/genai"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"github.com/sandun/career-guide/internal/llm"
)

var checkModelsCmd = &cobra.Command{
	Use:   "check-models",
	Short: "Probe the candidate Gemini models",
	Long:  `Send a trivial prompt to each candidate Gemini model and report which ones the configured API key can reach.`,
	RunE:  runCheckModels,
}

func init() {
	rootCmd.AddCommand(checkModelsCmd)
}

func runCheckModels(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := cmd.Context()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	color.Cyan("Testing available AI models...")
	fmt.Println("-----------------------------------")

	for _, name := range llm.DefaultGeminiConfig().Candidates {
		fmt.Printf("Testing %q... ", name)

		model := client.GenerativeModel(name)
		_, err := model.GenerateContent(ctx, genai.Text("Say hello"))
		if err != nil {
			if strings.Contains(err.Error(), "404") {
				color.Red("Not Found (404)")
			} else {
				color.Red("Error: %v", err)
			}
			continue
		}
		color.Green("SUCCESS")
	}

	fmt.Println("-----------------------------------")
	return nil
}
