package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galatea/pkg/engine"
	"galatea/pkg/persona"
	"galatea/pkg/session"
)

type recordedSleep struct {
	calls []time.Duration
}

func (r *recordedSleep) sleep(ctx context.Context, d time.Duration) {
	r.calls = append(r.calls, d)
}

func newTestServer(t *testing.T, store session.Store) (*Server, *recordedSleep) {
	t.Helper()
	catalog := persona.NewCatalog()
	eng := engine.New(catalog, store, engine.WithRandSource(rand.NewSource(1)))
	rec := &recordedSleep{}
	srv := New(eng, catalog, "bonnie").WithSleep(rec.sleep)
	return srv, rec
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestChatEndpoint(t *testing.T) {
	srv, rec := newTestServer(t, session.NewMemoryStore())
	router := srv.Router()

	w := postJSON(t, router, "/api/chat", map[string]string{
		"session_id": "s1",
		"message":    "you're so beautiful",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result engine.TurnResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, persona.TierFlirty, result.Tier)
	assert.NotEmpty(t, result.Reply)
	assert.Equal(t, "s1", result.SessionID)

	// The handler awaited the computed typing delay
	require.Len(t, rec.calls, 1)
	assert.Equal(t, result.TypingDelay, rec.calls[0])
}

func TestChatDefaultsPersona(t *testing.T) {
	srv, _ := newTestServer(t, session.NewMemoryStore())

	w := postJSON(t, srv.Router(), "/api/chat", map[string]string{"message": "hi"})
	require.Equal(t, http.StatusOK, w.Code)

	var result engine.TurnResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, persona.Bonnie.Responses[persona.TierSweet], result.Reply)
}

func TestChatValidation(t *testing.T) {
	srv, _ := newTestServer(t, session.NewMemoryStore())

	w := postJSON(t, srv.Router(), "/api/chat", map[string]string{"message": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatUnknownPersona(t *testing.T) {
	srv, _ := newTestServer(t, session.NewMemoryStore())

	w := postJSON(t, srv.Router(), "/api/chat", map[string]string{
		"persona_id": "nobody",
		"message":    "hi",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type downStore struct{}

func (downStore) Get(ctx context.Context, id string) (*session.Session, error) {
	return nil, errors.New("connection refused")
}

func (downStore) Put(ctx context.Context, s *session.Session) error {
	return errors.New("connection refused")
}

func TestChatStoreOutageFallback(t *testing.T) {
	srv, rec := newTestServer(t, downStore{})

	w := postJSON(t, srv.Router(), "/api/chat", map[string]string{
		"session_id": "s1",
		"message":    "hi",
	})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// The fallback keeps the persona's voice and mutates nothing
	assert.Contains(t, body["fallback"], persona.Bonnie.Avatar)
	assert.Empty(t, rec.calls)
}

func TestPurchaseConfirmEndpoint(t *testing.T) {
	store := session.NewMemoryStore()
	srv, _ := newTestServer(t, store)
	router := srv.Router()

	// Walk the session to intimate so the vip offer exists
	for _, msg := range []string{"you're beautiful", "i love you", "kiss me"} {
		w := postJSON(t, router, "/api/chat", map[string]string{"session_id": "s1", "message": msg})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := postJSON(t, router, "/api/purchase/confirm", map[string]string{
		"session_id": "s1",
		"offer_type": "vip",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, persona.Bonnie.PurchaseAcks["vip"], body["reply"])

	sess, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, session.OfferGranted, sess.Offers["vip"])
}

func TestPurchaseConfirmUnknownSession(t *testing.T) {
	srv, _ := newTestServer(t, session.NewMemoryStore())

	w := postJSON(t, srv.Router(), "/api/purchase/confirm", map[string]string{
		"session_id": "ghost",
		"offer_type": "vip",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPersonasEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/api/personas", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var cards []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	require.Len(t, cards, 3)
	assert.Equal(t, "bonnie", cards[0]["id"])
	// Cards expose display data only
	assert.NotContains(t, cards[0], "triggers")
	assert.NotContains(t, cards[0], "thresholds")
}

func TestSessionEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, session.NewMemoryStore())
	router := srv.Router()

	w := postJSON(t, router, "/api/chat", map[string]string{"session_id": "s1", "message": "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/s1", nil)
	get := httptest.NewRecorder()
	router.ServeHTTP(get, req)
	require.Equal(t, http.StatusOK, get.Code)

	var sess session.Session
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &sess))
	assert.Equal(t, "bonnie", sess.PersonaID)
	assert.Equal(t, 1, sess.Turns)

	req = httptest.NewRequest(http.MethodGet, "/api/sessions/ghost", nil)
	miss := httptest.NewRecorder()
	router.ServeHTTP(miss, req)
	assert.Equal(t, http.StatusNotFound, miss.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
