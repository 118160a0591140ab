package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bensapovits/studiously/internal/usecase"
)

type TaskHandler struct {
	Tasks *usecase.TaskUseCase
}

func NewTaskHandler(tasks *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{Tasks: tasks}
}

func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	task, err := h.Tasks.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if contactID := r.URL.Query().Get("contact_id"); contactID != "" {
		tasks, err := h.Tasks.ListByContact(r.Context(), contactID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, tasks)
		return
	}

	tasks, err := h.Tasks.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	task, err := h.Tasks.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Tasks.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
