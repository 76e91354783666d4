package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// minLineLength is the noise filter for fallback extraction: lines this
// short are headings, blank separators or prose fragments, not questions.
const minLineLength = 10

var (
	leadingNumbering = regexp.MustCompile(`^\d+\.\s*`)
	leadingBullet    = regexp.MustCompile(`^[-•]\s*`)
)

// NormalizeQuestions converts a free-text model completion into an ordered
// list of question strings. The primary path parses the fence-stripped text
// as a JSON array of strings; anything else falls back to line-by-line
// heuristic extraction truncated to questionCount. Coming up short of
// questionCount is not an error; the caller may log it.
func NormalizeQuestions(raw string, questionCount int) []string {
	cleaned := CleanJSONBlock(raw)

	var questions []string
	if err := json.Unmarshal([]byte(cleaned), &questions); err == nil {
		return questions
	}

	return extractQuestionLines(raw, questionCount)
}

// extractQuestionLines is the fallback path: keep substantial lines, strip
// numbering, bullets and surrounding quotes, and truncate to the requested
// count.
func extractQuestionLines(text string, questionCount int) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= minLineLength {
			continue
		}

		trimmed = leadingNumbering.ReplaceAllString(trimmed, "")
		trimmed = leadingBullet.ReplaceAllString(trimmed, "")
		trimmed = strings.Trim(trimmed, `"`)
		trimmed = strings.TrimSpace(trimmed)
		if trimmed == "" {
			continue
		}

		questions = append(questions, trimmed)
		if len(questions) == questionCount {
			break
		}
	}
	return questions
}

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}
