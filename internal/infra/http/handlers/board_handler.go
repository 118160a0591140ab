package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bensapovits/studiously/internal/entity"
	"github.com/bensapovits/studiously/internal/infra/http/middleware"
	"github.com/bensapovits/studiously/internal/usecase"
)

type BoardHandler struct {
	Board    *usecase.BoardUseCase
	Contacts *usecase.ContactUseCase
}

func NewBoardHandler(board *usecase.BoardUseCase, contacts *usecase.ContactUseCase) *BoardHandler {
	return &BoardHandler{Board: board, Contacts: contacts}
}

// HandleColumns (GET /board/{track}) returns the track's columns with the
// caller's contacts bucketed into them.
func (h *BoardHandler) HandleColumns(w http.ResponseWriter, r *http.Request) {
	track := entity.Track(chi.URLParam(r, "track"))
	if !entity.ValidTrack(track) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "track must be connect or grow"})
		return
	}

	contacts, err := h.Contacts.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.Board.Columns(track, contacts))
}

type DropRequest struct {
	ContactID string `json:"contact_id"`
	Stage     string `json:"stage"`
}

// HandleDrop (POST /board/drop) applies a drag-drop stage change. When the
// drop lands on Call Completed the response carries the follow-up prompt
// the client must surface.
func (h *BoardHandler) HandleDrop(w http.ResponseWriter, r *http.Request) {
	var req DropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	result, err := h.Board.Drop(r.Context(), req.ContactID, req.Stage)
	if err != nil {
		writeError(w, err)
		return
	}

	if result.Changed {
		middleware.RecordStageTransition(req.Stage)
	}

	writeJSON(w, http.StatusOK, result)
}

type ConfirmFollowUpRequest struct {
	ContactID string `json:"contact_id"`
	Frequency string `json:"frequency"`
	Notes     string `json:"notes"`
}

// HandleConfirmFollowUp (POST /board/follow-up) completes the prompt: it
// schedules the follow-up and moves the contact onto the grow track.
func (h *BoardHandler) HandleConfirmFollowUp(w http.ResponseWriter, r *http.Request) {
	var req ConfirmFollowUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	frequency := entity.Frequency(req.Frequency)
	if !frequency.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown frequency"})
		return
	}

	followUp, err := h.Board.ConfirmFollowUp(r.Context(), req.ContactID, frequency, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordFollowUpScheduled()
	middleware.RecordStageTransition(frequency.Stage())

	writeJSON(w, http.StatusOK, followUp)
}
