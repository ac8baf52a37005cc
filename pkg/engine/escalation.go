package engine

import "galatea/pkg/persona"

// NextTier decides the tier after a scored turn. The session advances exactly
// one step when the message matched a trigger keyword for the current edge OR
// the post-delta score reached the next tier's threshold. Both conditions
// holding still advances a single step; tiers never regress; intimate is
// terminal. Deterministic given (tier, score, keywordMatched).
func NextTier(tier persona.Tier, postScore int, keywordMatched bool, p *persona.Persona) (persona.Tier, bool) {
	next, ok := tier.Next()
	if !ok {
		return tier, false
	}
	if keywordMatched {
		return next, true
	}
	if threshold, ok := p.Threshold(next); ok && postScore >= threshold {
		return next, true
	}
	return tier, false
}
