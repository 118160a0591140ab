package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bensapovits/studiously/internal/infra/http/middleware"
	"github.com/bensapovits/studiously/internal/usecase"
)

type ContactHandler struct {
	Contacts    *usecase.ContactUseCase
	rateLimiter *RateLimiter
}

func NewContactHandler(contacts *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		Contacts:    contacts,
		rateLimiter: NewRateLimiter(30, time.Minute), // capture: 30 req/min per IP
	}
}

func (h *ContactHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	contact, err := h.Contacts.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

func (h *ContactHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	contact, err := h.Contacts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Contacts.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	contact, err := h.Contacts.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Contacts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCapture (POST /capture) ingests contacts scraped by the browser
// extension. Rate limited per client IP because the extension can fire a
// sync per opened page.
func (h *ContactHandler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many requests, please try again later"})
		return
	}

	var input usecase.CaptureContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	contact, err := h.Contacts.Capture(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	source := input.Source
	if source == "" {
		source = "unknown"
	}
	middleware.RecordContactCaptured(source)

	writeJSON(w, http.StatusOK, contact)
}

// getClientIP prefers the first X-Forwarded-For hop: the header may carry a
// comma-separated chain, and everything after the first entry is appended by
// proxies the client does not control.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			xff = xff[:i]
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
