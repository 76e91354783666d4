// Package quiz provides the client for the external quiz-generation service.
// The service is an opaque text-completion endpoint; its output gets the
// same fence-stripping treatment as the interview generator's.
package quiz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP request timeout for quiz generation.
const DefaultTimeout = 60 * time.Second

// Error represents a failure talking to the quiz service. Unreachable
// reports whether the service itself could not be reached, which maps to
// 502 at the handler boundary.
type Error struct {
	Message     string
	Unreachable bool
	Cause       error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("quiz service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("quiz service error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client calls the external quiz-generation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a quiz service client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// generateResponse is the service's response envelope.
type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// GenerateQuiz posts the topics to the service and returns the parsed
// question payload. The service returns free text that usually contains a
// JSON array; markdown fences are stripped and the outermost [...] is
// extracted before parsing.
func (c *Client) GenerateQuiz(ctx context.Context, topics []string) (any, error) {
	body, err := json.Marshal(map[string][]string{"topics": topics})
	if err != nil {
		return nil, &Error{Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/generate-quiz", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: "service unreachable", Unreachable: true, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// A tunnel that answers 404 means the notebook behind it is gone.
		return nil, &Error{Message: "service endpoint not found", Unreachable: true}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: "failed to read response", Cause: err}
	}

	var envelope generateResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, &Error{Message: "invalid response envelope", Cause: err}
	}

	return parseQuizText(envelope.GeneratedText)
}

// parseQuizText strips markdown fences, slices out the outermost JSON array
// and parses it.
func parseQuizText(text string) (any, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start != -1 && end != -1 && end > start {
		cleaned = cleaned[start : end+1]
	}

	var questions any
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, &Error{Message: "failed to parse generated questions", Cause: err}
	}
	return questions, nil
}
