package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bensapovits/studiously/internal/usecase"
)

type NoteHandler struct {
	Notes *usecase.NoteUseCase
}

func NewNoteHandler(notes *usecase.NoteUseCase) *NoteHandler {
	return &NoteHandler{Notes: notes}
}

func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateNoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	note, err := h.Notes.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// HandleListByContact (GET /contacts/{id}/notes)
func (h *NoteHandler) HandleListByContact(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Notes.ListByContact(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

type UpdateNoteRequest struct {
	Content string `json:"content"`
}

func (h *NoteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	note, err := h.Notes.UpdateContent(r.Context(), chi.URLParam(r, "id"), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Notes.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
