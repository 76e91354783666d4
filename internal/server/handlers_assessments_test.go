package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAssessment(t *testing.T) {
	tests := []struct {
		name            string
		quizScore       int
		quizTotal       int
		confidence      float64
		expectedAverage float64
		expectedRank    string
	}{
		{
			name:      "perfect scores rank A",
			quizScore: 10, quizTotal: 10, confidence: 100,
			expectedAverage: 100, expectedRank: "A",
		},
		{
			name:      "exactly at A threshold",
			quizScore: 7, quizTotal: 10, confidence: 80,
			expectedAverage: 75, expectedRank: "A",
		},
		{
			name:      "middle of the road ranks B",
			quizScore: 5, quizTotal: 10, confidence: 60,
			expectedAverage: 55, expectedRank: "B",
		},
		{
			name:      "exactly at B threshold",
			quizScore: 4, quizTotal: 10, confidence: 60,
			expectedAverage: 50, expectedRank: "B",
		},
		{
			name:      "weak result ranks C",
			quizScore: 2, quizTotal: 10, confidence: 30,
			expectedAverage: 25, expectedRank: "C",
		},
		{
			name:      "zero everything ranks C",
			quizScore: 0, quizTotal: 10, confidence: 0,
			expectedAverage: 0, expectedRank: "C",
		},
		{
			name:      "zero total avoids division by zero",
			quizScore: 5, quizTotal: 0, confidence: 80,
			expectedAverage: 40, expectedRank: "C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			average, rank := computeAssessment(tt.quizScore, tt.quizTotal, tt.confidence)
			assert.InDelta(t, tt.expectedAverage, average, 0.001)
			assert.Equal(t, tt.expectedRank, rank)
		})
	}
}

func submitAssessment(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/assessments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handleSubmitAssessment(rec, req)
	return rec
}

func TestHandleSubmitAssessment(t *testing.T) {
	s, _ := testServer()

	rec := submitAssessment(t, s, `{
		"studentName": "Jane Doe",
		"skillsSelected": ["go", "sql"],
		"quizScore": 8,
		"quizTotalQuestions": 10,
		"confidenceScore": 90
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success   bool `json:"success"`
		Applicant struct {
			StudentName  string   `json:"studentName"`
			Skills       []string `json:"skillsSelected"`
			AverageScore float64  `json:"averageScore"`
			FinalRank    string   `json:"finalRank"`
		} `json:"applicant"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Jane Doe", resp.Applicant.StudentName)
	assert.Equal(t, []string{"go", "sql"}, resp.Applicant.Skills)
	assert.InDelta(t, 85, resp.Applicant.AverageScore, 0.001)
	assert.Equal(t, "A", resp.Applicant.FinalRank)
}

func TestHandleSubmitAssessment_Defaults(t *testing.T) {
	s, _ := testServer()

	// Name and quiz total fall back; zero scores are legitimate values.
	rec := submitAssessment(t, s, `{"quizScore": 0, "confidenceScore": 0}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Applicant struct {
			StudentName        string  `json:"studentName"`
			QuizTotalQuestions int     `json:"quizTotalQuestions"`
			AverageScore       float64 `json:"averageScore"`
			FinalRank          string  `json:"finalRank"`
		} `json:"applicant"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Unknown Candidate", resp.Applicant.StudentName)
	assert.Equal(t, 10, resp.Applicant.QuizTotalQuestions)
	assert.Equal(t, 0.0, resp.Applicant.AverageScore)
	assert.Equal(t, "C", resp.Applicant.FinalRank)
}

func TestHandleSubmitAssessment_Validation(t *testing.T) {
	s, _ := testServer()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing quiz score", body: `{"confidenceScore": 50}`},
		{name: "missing confidence score", body: `{"quizScore": 5}`},
		{name: "negative quiz score", body: `{"quizScore": -1, "confidenceScore": 50}`},
		{name: "confidence over 100", body: `{"quizScore": 5, "confidenceScore": 101}`},
		{name: "not json", body: `quizScore=5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := submitAssessment(t, s, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleListAssessments(t *testing.T) {
	s, _ := testServer()

	req := httptest.NewRequest(http.MethodGet, "/api/assessments", nil)
	rec := httptest.NewRecorder()
	s.handleListAssessments(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"applicants":[]`)

	submitAssessment(t, s, `{"quizScore": 8, "confidenceScore": 90}`)

	rec = httptest.NewRecorder()
	s.handleListAssessments(rec, httptest.NewRequest(http.MethodGet, "/api/assessments", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success    bool             `json:"success"`
		Count      int              `json:"count"`
		Applicants []map[string]any `json:"applicants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)
	assert.Len(t, resp.Applicants, 1)
}
