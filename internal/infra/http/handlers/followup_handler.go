package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bensapovits/studiously/internal/entity"
	"github.com/bensapovits/studiously/internal/usecase"
)

type FollowUpHandler struct {
	Scheduler *usecase.FollowUpSchedulerUseCase
}

func NewFollowUpHandler(scheduler *usecase.FollowUpSchedulerUseCase) *FollowUpHandler {
	return &FollowUpHandler{Scheduler: scheduler}
}

// HandleGetByContact (GET /contacts/{id}/follow-up)
func (h *FollowUpHandler) HandleGetByContact(w http.ResponseWriter, r *http.Request) {
	followUp, err := h.Scheduler.FindByContact(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, followUp)
}

type FrequencyRequest struct {
	Frequency string `json:"frequency"`
}

// HandleComplete (POST /follow-ups/{id}/complete)
func (h *FollowUpHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	var req FrequencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	frequency := entity.Frequency(req.Frequency)
	if !frequency.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown frequency"})
		return
	}

	followUp, err := h.Scheduler.Complete(r.Context(), chi.URLParam(r, "id"), frequency)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, followUp)
}

type SnoozeRequest struct {
	Days int `json:"days"`
}

// HandleSnooze (POST /follow-ups/{id}/snooze)
func (h *FollowUpHandler) HandleSnooze(w http.ResponseWriter, r *http.Request) {
	var req SnoozeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if req.Days <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "days must be positive"})
		return
	}

	followUp, err := h.Scheduler.Snooze(r.Context(), chi.URLParam(r, "id"), req.Days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, followUp)
}

// HandleUpdateFrequency (PUT /follow-ups/{id}/frequency)
func (h *FollowUpHandler) HandleUpdateFrequency(w http.ResponseWriter, r *http.Request) {
	var req FrequencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	frequency := entity.Frequency(req.Frequency)
	if !frequency.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown frequency"})
		return
	}

	followUp, err := h.Scheduler.UpdateFrequency(r.Context(), chi.URLParam(r, "id"), frequency)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, followUp)
}
