// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/roster"
	"github.com/mergington/activities/internal/service"
)

// ActivityHandler holds all HTTP handlers for the activity signup API.
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

// emailParam extracts the email query parameter shared by signup and
// unregister requests.
func emailParam(r *http.Request) (string, bool) {
	email := r.URL.Query().Get("email")
	return email, strings.TrimSpace(email) != ""
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// ListActivities handles GET /activities
// Returns the full roster as a JSON object keyed by activity name.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListActivities())
}

// Signup handles POST /activities/{name}/signup?email=E
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	email, ok := emailParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	message, err := h.svc.Signup(name, email)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, roster.ErrAlreadyRegistered):
			writeError(w, http.StatusBadRequest, "Student is already signed up for this activity")
		case errors.Is(err, roster.ErrActivityFull):
			writeError(w, http.StatusBadRequest, "Activity is full")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: message})
}

// Unregister handles DELETE /activities/{name}/signup?email=E
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	email, ok := emailParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	message, err := h.svc.Unregister(name, email)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, roster.ErrNotRegistered):
			writeError(w, http.StatusBadRequest, "Student is not signed up for this activity")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: message})
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
