package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bensapovits/studiously/internal/entity"
	"github.com/bensapovits/studiously/internal/infra/auth"
)

const bearerPrefix = "bearer "

// Auth validates the Bearer token on every request and puts the resolved
// user on the context. Requests without a valid token get 401; downstream
// handlers can assume an identity is present.
func Auth(validator *auth.TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearer(r)
			if token == "" {
				unauthorized(w)
				return
			}

			userID, email, err := validator.Validate(token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := auth.WithUser(r.Context(), &entity.User{ID: userID, Email: email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearer(r *http.Request) string {
	v := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "missing or invalid authorization"})
}
