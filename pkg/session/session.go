package session

import (
	"time"

	"galatea/pkg/persona"
)

// OfferStatus tracks how far an upsell offer has progressed for a session.
type OfferStatus string

const (
	// OfferPresented means the offer was surfaced to the user once.
	OfferPresented OfferStatus = "presented"
	// OfferGranted means the external payment collaborator confirmed purchase.
	OfferGranted OfferStatus = "granted"
)

// Session is the per-conversation state. It is the only mutable record in the
// system: created on first contact, mutated exactly once per completed turn.
// Eviction and durability are the store's concern, never the engine's.
type Session struct {
	ID        string                 `json:"id"`
	PersonaID string                 `json:"persona_id"`
	BondScore int                    `json:"bond_score"`
	Tier      persona.Tier           `json:"tier"`
	Offers    map[string]OfferStatus `json:"offers,omitempty"`
	Turns     int                    `json:"turns"`
	CreatedAt time.Time              `json:"created_at"`
	LastTurn  time.Time              `json:"last_turn"`
}

// New returns a fresh session at the bottom of the escalation ladder.
func New(id, personaID string, now time.Time) *Session {
	return &Session{
		ID:        id,
		PersonaID: personaID,
		BondScore: 0,
		Tier:      persona.TierSweet,
		Offers:    make(map[string]OfferStatus),
		CreatedAt: now,
		LastTurn:  now,
	}
}

// OfferSeen reports whether an offer type was already presented or granted.
func (s *Session) OfferSeen(offerType string) bool {
	_, ok := s.Offers[offerType]
	return ok
}

// MarkOffer records an offer status, initializing the map if needed.
func (s *Session) MarkOffer(offerType string, status OfferStatus) {
	if s.Offers == nil {
		s.Offers = make(map[string]OfferStatus)
	}
	s.Offers[offerType] = status
}

// Clone returns a deep copy. Turns are computed on a copy and committed
// atomically, so a failed store write never leaves partial state behind.
func (s *Session) Clone() *Session {
	dup := *s
	dup.Offers = make(map[string]OfferStatus, len(s.Offers))
	for k, v := range s.Offers {
		dup.Offers[k] = v
	}
	return &dup
}
