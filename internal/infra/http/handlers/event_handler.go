package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bensapovits/studiously/internal/usecase"
)

type EventHandler struct {
	Events *usecase.EventUseCase
}

func NewEventHandler(events *usecase.EventUseCase) *EventHandler {
	return &EventHandler{Events: events}
}

func (h *EventHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateEventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	event, err := h.Events.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// HandleList (GET /events?start=...&end=...) serves the calendar view.
// Both bounds are required RFC 3339 timestamps.
func (h *EventHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "start must be an RFC 3339 timestamp"})
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "end must be an RFC 3339 timestamp"})
		return
	}

	events, err := h.Events.ListRange(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateEventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	event, err := h.Events.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Events.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
