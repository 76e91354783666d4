package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sandun/career-guide/internal/db"
	"github.com/sandun/career-guide/internal/types"
)

// ---------------------------------------------------------------------
// Scheduled Interview Handlers
// ---------------------------------------------------------------------

// scheduleListResponse is the envelope for list endpoints.
func scheduleListResponse(interviews []db.ScheduledInterview) map[string]any {
	if interviews == nil {
		interviews = []db.ScheduledInterview{}
	}
	return map[string]any{
		"success":    true,
		"count":      len(interviews),
		"interviews": interviews,
	}
}

func (s *Server) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	interviews, err := s.scheduleService.List(r.Context())
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to fetch scheduled interviews")
		return
	}
	jsonResponse(w, http.StatusOK, scheduleListResponse(interviews))
}

func (s *Server) handleListUpcomingSchedules(w http.ResponseWriter, r *http.Request) {
	interviews, err := s.scheduleService.ListUpcoming(r.Context())
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to fetch upcoming interviews")
		return
	}
	jsonResponse(w, http.StatusOK, scheduleListResponse(interviews))
}

func (s *Server) handleListPastSchedules(w http.ResponseWriter, r *http.Request) {
	interviews, err := s.scheduleService.ListPast(r.Context())
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to fetch past interviews")
		return
	}
	jsonResponse(w, http.StatusOK, scheduleListResponse(interviews))
}

func (s *Server) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	interview, err := s.scheduleService.Get(r.Context(), id)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"interview": interview,
	})
}

func (s *Server) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req types.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	interview, err := s.scheduleService.Create(r.Context(), &req, nil)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"success":   true,
		"message":   "Interview scheduled successfully",
		"interview": interview,
	})
}

func (s *Server) handleUpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	var req types.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	interview, err := s.scheduleService.Update(r.Context(), id, &req)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Interview updated successfully",
		"interview": interview,
	})
}

func (s *Server) handleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	interview, err := s.scheduleService.Delete(r.Context(), id)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Interview deleted successfully",
		"interview": interview,
	})
}

func (s *Server) handleSetScheduleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	var req types.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	interview, err := s.scheduleService.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Interview status updated successfully",
		"interview": interview,
	})
}

func (s *Server) handleRegenerateMeetLink(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	interview, err := s.scheduleService.RegenerateMeetLink(r.Context(), id)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     "Google Meet link generated successfully",
		"meetingLink": interview.MeetingLink,
		"interview":   interview,
	})
}
