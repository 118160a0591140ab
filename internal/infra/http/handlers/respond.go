package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/bensapovits/studiously/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the use case error taxonomy onto HTTP statuses. Store
// errors are logged server-side and returned opaque.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *usecase.ValidationError

	switch {
	case usecase.IsNotAuthenticated(err):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case usecase.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case usecase.IsInvalidStage(err):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		logrus.WithError(err).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
