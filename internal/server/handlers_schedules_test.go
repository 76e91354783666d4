package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() (*Server, *fakeScheduleStore) {
	store := newFakeScheduleStore()
	return &Server{
		validator:       validator.New(),
		scheduleService: NewScheduleService(store),
		interviews:      newFakeInterviewStore(),
		assessments:     &fakeAssessmentStore{},
	}, store
}

// testMux registers the same route patterns the live server uses, minus the
// middleware stack.
func testMux(s *Server) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/scheduled-interviews", s.handleListSchedules)
	mux.HandleFunc("POST /api/scheduled-interviews", s.handleCreateSchedule)
	mux.HandleFunc("GET /api/scheduled-interviews/upcoming/list", s.handleListUpcomingSchedules)
	mux.HandleFunc("GET /api/scheduled-interviews/past/list", s.handleListPastSchedules)
	mux.HandleFunc("GET /api/scheduled-interviews/{id}", s.handleGetSchedule)
	mux.HandleFunc("PUT /api/scheduled-interviews/{id}", s.handleUpdateSchedule)
	mux.HandleFunc("DELETE /api/scheduled-interviews/{id}", s.handleDeleteSchedule)
	mux.HandleFunc("PATCH /api/scheduled-interviews/{id}/status", s.handleSetScheduleStatus)
	mux.HandleFunc("POST /api/scheduled-interviews/{id}/generate-meet-link", s.handleRegenerateMeetLink)
	return mux
}

func doRequest(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func createScheduleBody() string {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	return `{
		"title": "Backend Engineer Screening",
		"candidateName": "Jane Doe",
		"candidateEmail": "jane@example.com",
		"date": "` + tomorrow + `",
		"time": "10:30 AM"
	}`
}

func TestHandleCreateSchedule(t *testing.T) {
	s, _ := testServer()
	mux := testMux(s)

	rec := doRequest(mux, http.MethodPost, "/api/scheduled-interviews", createScheduleBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success   bool           `json:"success"`
		Message   string         `json:"message"`
		Interview map[string]any `json:"interview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Interview scheduled successfully", resp.Message)
	assert.Equal(t, "scheduled", resp.Interview["status"])
	assert.Regexp(t, meetLinkRe, resp.Interview["meetingLink"])
	assert.Equal(t, float64(60), resp.Interview["duration"])
}

func TestHandleCreateSchedule_Validation(t *testing.T) {
	s, _ := testServer()
	mux := testMux(s)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"candidateName":"J","candidateEmail":"j@e.co","date":"2030-01-01","time":"9 AM"}`},
		{name: "bad date shape", body: `{"title":"T","candidateName":"J","candidateEmail":"j@e.co","date":"01-01-2030","time":"9 AM"}`},
		{name: "not json", body: `title=T`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(mux, http.MethodPost, "/api/scheduled-interviews", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleListSchedules_Envelope(t *testing.T) {
	s, _ := testServer()
	mux := testMux(s)

	// Empty store still yields a well-formed envelope with an array.
	rec := doRequest(mux, http.MethodGet, "/api/scheduled-interviews", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success    bool             `json:"success"`
		Count      int              `json:"count"`
		Interviews []map[string]any `json:"interviews"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Count)
	require.NotNil(t, resp.Interviews)
	assert.Contains(t, rec.Body.String(), `"interviews":[]`)

	doRequest(mux, http.MethodPost, "/api/scheduled-interviews", createScheduleBody())

	rec = doRequest(mux, http.MethodGet, "/api/scheduled-interviews", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Interviews, 1)
}

func TestHandleGetSchedule(t *testing.T) {
	s, _ := testServer()
	mux := testMux(s)

	rec := doRequest(mux, http.MethodPost, "/api/scheduled-interviews", createScheduleBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Interview struct {
			ID string `json:"id"`
		} `json:"interview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(mux, http.MethodGet, "/api/scheduled-interviews/"+created.Interview.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(mux, http.MethodGet, "/api/scheduled-interviews/8e698a61-0000-0000-0000-000000000000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(mux, http.MethodGet, "/api/scheduled-interviews/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpdateSchedule(t *testing.T) {
	s, _ := testServer()
	mux := testMux(s)

	rec := doRequest(mux, http.MethodPost, "/api/scheduled-interviews", createScheduleBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Interview struct {
			ID          string `json:"id"`
			MeetingLink string `json:"meetingLink"`
		} `json:"interview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(mux, http.MethodPut, "/api/scheduled-interviews/"+created.Interview.ID,
		`{"time":"3:00 PM","duration":30}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated struct {
		Interview map[string]any `json:"interview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "3:00 PM", updated.Interview["time"])
	assert.Equal(t, float64(30), updated.Interview["duration"])
	assert.Equal(t, created.Interview.MeetingLink, updated.Interview["meetingLink"],
		"fields absent from the body stay untouched")
}

func TestHandleUpdateSchedule_NullClearsFields(t *testing.T) {
	s, _ := testServer()
	mux := testMux(s)

	rec := doRequest(mux, http.MethodPost, "/api/scheduled-interviews",
		`{"title":"Backend Engineer Screening","candidateName":"Jane Doe",
		  "candidateEmail":"jane@example.com","date":"2099-06-01","time":"10:30 AM",
		  "meetingLink":"https://zoom.example.com/j/123456","notes":"bring portfolio"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Interview struct {
			ID string `json:"id"`
		} `json:"interview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(mux, http.MethodPut, "/api/scheduled-interviews/"+created.Interview.ID,
		`{"meetingLink": null, "notes": null}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated struct {
		Interview map[string]any `json:"interview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "", updated.Interview["meetingLink"], "explicit null clears the link")
	assert.Equal(t, "", updated.Interview["notes"], "explicit null clears the notes")
}

func TestHandleUpdateSchedule_ZeroDurationRejected(t *testing.T) {
	s, _ := testServer()
	mux := testMux(s)

	rec := doRequest(mux, http.MethodPost, "/api/scheduled-interviews", createScheduleBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Interview struct {
			ID string `json:"id"`
		} `json:"interview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(mux, http.MethodPut, "/api/scheduled-interviews/"+created.Interview.ID,
		`{"duration": 0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSetScheduleStatus(t *testing.T) {
	s, _ := testServer()
	mux := testMux(s)

	rec := doRequest(mux, http.MethodPost, "/api/scheduled-interviews", createScheduleBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Interview struct {
			ID string `json:"id"`
		} `json:"interview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	path := "/api/scheduled-interviews/" + created.Interview.ID + "/status"

	rec = doRequest(mux, http.MethodPatch, path, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Interview map[string]any `json:"interview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Interview["status"])

	rec = doRequest(mux, http.MethodPatch, path, `{"status":"postponed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRegenerateMeetLink(t *testing.T) {
	s, _ := testServer()
	mux := testMux(s)

	rec := doRequest(mux, http.MethodPost, "/api/scheduled-interviews", createScheduleBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Interview struct {
			ID string `json:"id"`
		} `json:"interview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(mux, http.MethodPost,
		"/api/scheduled-interviews/"+created.Interview.ID+"/generate-meet-link", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success     bool   `json:"success"`
		MeetingLink string `json:"meetingLink"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Regexp(t, meetLinkRe, resp.MeetingLink)
}

func TestHandleDeleteSchedule(t *testing.T) {
	s, _ := testServer()
	mux := testMux(s)

	rec := doRequest(mux, http.MethodPost, "/api/scheduled-interviews", createScheduleBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Interview struct {
			ID string `json:"id"`
		} `json:"interview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(mux, http.MethodDelete, "/api/scheduled-interviews/"+created.Interview.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(mux, http.MethodDelete, "/api/scheduled-interviews/"+created.Interview.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
