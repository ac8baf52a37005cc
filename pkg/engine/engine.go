package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"galatea/pkg/persona"
	"galatea/pkg/session"
)

// MaxMessageLen is the longest accepted inbound message.
const MaxMessageLen = 1000

// TurnResult is the ephemeral outcome of one completed turn.
type TurnResult struct {
	SessionID   string         `json:"session_id"`
	Reply       string         `json:"reply"`
	Emotion     string         `json:"emotion"`
	Mood        string         `json:"mood"`
	BondScore   int            `json:"bond_score"`
	Tier        persona.Tier   `json:"tier"`
	TierChanged bool           `json:"tier_changed"`
	Offer       *persona.Offer `json:"offer,omitempty"`
	TypingDelay time.Duration  `json:"typing_delay"`
}

// Engine runs the escalation state machine over a persona catalog and a
// session store. Turns for one session id are serialized; distinct sessions
// run in parallel.
type Engine struct {
	catalog  *persona.Catalog
	store    session.Store
	selector *ReplySelector
	locks    *keyedLocks
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRandSource injects the template-selection randomness, for tests.
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) { e.selector = NewReplySelector(src) }
}

// New creates an Engine.
func New(catalog *persona.Catalog, store session.Store, opts ...Option) *Engine {
	e := &Engine{
		catalog:  catalog,
		store:    store,
		selector: NewReplySelector(rand.NewSource(time.Now().UnixNano())),
		locks:    newKeyedLocks(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ProcessTurn runs one conversation turn: score the message, decide the tier
// transition, pick a reply, gate the upsell, compute the typing delay, and
// commit the session. The session mutation is all-or-nothing: a store failure
// leaves the previously committed state intact.
//
// An empty sessionID starts a new conversation under a generated id.
func (e *Engine) ProcessTurn(ctx context.Context, personaID, sessionID, message string) (*TurnResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &ValidationError{Reason: "empty message"}
	}
	if len(message) > MaxMessageLen {
		return nil, &ValidationError{Reason: fmt.Sprintf("message exceeds %d characters", MaxMessageLen)}
	}

	p, err := e.catalog.Get(personaID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPersonaNotFound, personaID)
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	e.locks.lock(sessionID)
	defer e.locks.unlock(sessionID)

	sess, err := e.loadOrCreate(ctx, sessionID, p.ID)
	if err != nil {
		return nil, err
	}

	// Persona is pinned at first contact; later requests cannot switch it.
	if sess.PersonaID != p.ID {
		if p, err = e.catalog.Get(sess.PersonaID); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrPersonaNotFound, sess.PersonaID)
		}
	}

	prevTier := sess.Tier
	delta, matched := Score(sess.Tier, message, p)
	sess.BondScore = ClampScore(sess.BondScore + delta)
	sess.Tier, _ = NextTier(sess.Tier, sess.BondScore, len(matched) > 0, p)

	reply, emotion := e.selector.Select(sess.Tier, p)
	offer := MaybeOffer(sess, prevTier, sess.Tier, p)

	sess.Turns++
	sess.LastTurn = e.now()

	if err := e.store.Put(ctx, sess); err != nil {
		return nil, &StoreError{Op: "put", Err: err}
	}

	if sess.Tier != prevTier {
		log.Printf("Session %s escalated %s -> %s (score %d, triggers %v)", sess.ID, prevTier, sess.Tier, sess.BondScore, matched)
	}
	if offer != nil {
		log.Printf("Session %s offered %s at tier %s ($%.2f)", sess.ID, offer.Type, sess.Tier, offer.Price)
	}

	return &TurnResult{
		SessionID:   sess.ID,
		Reply:       reply,
		Emotion:     emotion,
		Mood:        p.Mood(emotion),
		BondScore:   sess.BondScore,
		Tier:        sess.Tier,
		TierChanged: sess.Tier != prevTier,
		Offer:       offer,
		TypingDelay: TypingDelay(reply, p),
	}, nil
}

// ConfirmPurchase records that the external payment collaborator completed
// checkout for an offer, and returns the persona's acknowledgment reply.
// Confirming twice is idempotent: the offer stays granted and the same
// acknowledgment comes back.
func (e *Engine) ConfirmPurchase(ctx context.Context, sessionID, offerType string) (string, error) {
	if sessionID == "" || offerType == "" {
		return "", &ValidationError{Reason: "session id and offer type are required"}
	}

	e.locks.lock(sessionID)
	defer e.locks.unlock(sessionID)

	sess, err := e.store.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return "", fmt.Errorf("confirm purchase: %w", err)
	}
	if err != nil {
		return "", &StoreError{Op: "get", Err: err}
	}

	p, err := e.catalog.Get(sess.PersonaID)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrPersonaNotFound, sess.PersonaID)
	}

	if sess.Offers[offerType] != session.OfferGranted {
		sess.MarkOffer(offerType, session.OfferGranted)
		if err := e.store.Put(ctx, sess); err != nil {
			return "", &StoreError{Op: "put", Err: err}
		}
		log.Printf("Session %s purchase confirmed: %s", sess.ID, offerType)
	}

	if ack, ok := p.PurchaseAcks[offerType]; ok {
		return ack, nil
	}
	return FallbackReply, nil
}

// Session returns the committed state for a session id, for status displays.
func (e *Engine) Session(ctx context.Context, sessionID string) (*session.Session, error) {
	sess, err := e.store.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, &StoreError{Op: "get", Err: err}
	}
	return sess, nil
}

func (e *Engine) loadOrCreate(ctx context.Context, sessionID, personaID string) (*session.Session, error) {
	sess, err := e.store.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return session.New(sessionID, personaID, e.now()), nil
	}
	if err != nil {
		return nil, &StoreError{Op: "get", Err: err}
	}
	return sess, nil
}
