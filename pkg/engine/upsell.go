package engine

import (
	"galatea/pkg/persona"
	"galatea/pkg/session"
)

// MaybeOffer decides whether entering newTier surfaces a monetization offer.
// It fires only on a real transition, only when the persona configures an
// offer for the entered tier, and only once per offer type per session.
// On firing it marks the type presented on the session, which the caller
// commits with the rest of the turn.
func MaybeOffer(s *session.Session, prevTier, newTier persona.Tier, p *persona.Persona) *persona.Offer {
	if prevTier == newTier {
		return nil
	}
	offer, ok := p.Offers[newTier]
	if !ok {
		return nil
	}
	if s.OfferSeen(offer.Type) {
		return nil
	}
	s.MarkOffer(offer.Type, session.OfferPresented)
	return &offer
}
