package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"galatea/pkg/engine"
	"galatea/pkg/persona"
	"galatea/pkg/session"
)

// SleepFunc suspends delivery for the typing delay. Tests inject a no-op.
type SleepFunc func(ctx context.Context, d time.Duration)

// Server exposes the escalation engine over HTTP.
type Server struct {
	engine         *engine.Engine
	catalog        *persona.Catalog
	defaultPersona string
	sleep          SleepFunc
	started        time.Time
}

// New creates a Server. defaultPersona handles chat requests that omit a
// persona id.
func New(eng *engine.Engine, catalog *persona.Catalog, defaultPersona string) *Server {
	return &Server{
		engine:         eng,
		catalog:        catalog,
		defaultPersona: defaultPersona,
		sleep:          sleepWithContext,
		started:        time.Now(),
	}
}

// WithSleep overrides the typing-delay suspension, for tests.
func (s *Server) WithSleep(fn SleepFunc) *Server {
	s.sleep = fn
	return s
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Post("/purchase/confirm", s.handlePurchaseConfirm)
		r.Get("/personas", s.handlePersonas)
		r.Get("/sessions/{sessionID}", s.handleSession)
	})
	return r
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	PersonaID string `json:"persona_id"`
	Message   string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PersonaID == "" {
		req.PersonaID = s.defaultPersona
	}

	result, err := s.engine.ProcessTurn(r.Context(), req.PersonaID, req.SessionID, req.Message)
	if err != nil {
		s.writeChatError(w, req.PersonaID, err)
		return
	}

	// The typing delay is the one artificial suspension point per turn.
	// It blocks only this request, never other sessions.
	s.sleep(r.Context(), result.TypingDelay)

	writeJSON(w, http.StatusOK, result)
}

// writeChatError maps engine failures to status codes. Store outages return
// a persona-flavored fallback the client can render without discarding the
// conversation history; no state was mutated.
func (s *Server) writeChatError(w http.ResponseWriter, personaID string, err error) {
	switch {
	case engine.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, engine.ErrPersonaNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case engine.IsStoreUnavailable(err):
		log.Printf("Chat turn aborted: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":    "temporarily unavailable",
			"fallback": s.fallbackReply(personaID),
		})
	default:
		log.Printf("Chat turn failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// fallbackReply keeps the persona's voice even when the turn could not run.
func (s *Server) fallbackReply(personaID string) string {
	p, err := s.catalog.Get(personaID)
	if err != nil {
		return "I'm having trouble hearing you right now... say that again in a moment? 💭"
	}
	return fmt.Sprintf("%s My connection is acting up, but I'm still here... tell me again in a moment?", p.Avatar)
}

type purchaseRequest struct {
	SessionID string `json:"session_id"`
	OfferType string `json:"offer_type"`
}

func (s *Server) handlePurchaseConfirm(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ack, err := s.engine.ConfirmPurchase(r.Context(), req.SessionID, req.OfferType)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"reply": ack})
	case engine.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	case engine.IsStoreUnavailable(err):
		writeError(w, http.StatusServiceUnavailable, "temporarily unavailable")
	default:
		log.Printf("Purchase confirm failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// personaCard is the public shape of a persona: display data only, no
// triggers or scoring internals.
type personaCard struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Type    string        `json:"type"`
	Avatar  string        `json:"avatar"`
	Tagline string        `json:"tagline"`
	Theme   persona.Theme `json:"theme"`
}

func (s *Server) handlePersonas(w http.ResponseWriter, r *http.Request) {
	personas := s.catalog.All()
	cards := make([]personaCard, 0, len(personas))
	for _, p := range personas {
		cards = append(cards, personaCard{
			ID:      p.ID,
			Name:    p.Name,
			Type:    p.Type,
			Avatar:  p.Avatar,
			Tagline: p.Tagline,
			Theme:   p.Theme,
		})
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	sess, err := s.engine.Session(r.Context(), sessionID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, sess)
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	default:
		writeError(w, http.StatusServiceUnavailable, "temporarily unavailable")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"uptime":   time.Since(s.started).Round(time.Second).String(),
		"personas": s.catalog.IDs(),
	})
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
