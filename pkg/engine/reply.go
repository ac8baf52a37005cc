package engine

import (
	"math/rand"
	"sync"

	"galatea/pkg/persona"
)

// FallbackReply is the persona-agnostic acknowledgment used when a template
// pool is empty or a tier is unrecognized. A turn never fails for lack of
// a template.
const FallbackReply = "I'm here with you... tell me more 💭"

// FallbackEmotion labels fallback replies.
const FallbackEmotion = "neutral"

// ReplySelector draws reply templates uniformly from a persona's tier pool.
// The random source is injected so tests are deterministic.
type ReplySelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewReplySelector creates a selector from a rand source.
func NewReplySelector(src rand.Source) *ReplySelector {
	return &ReplySelector{rng: rand.New(src)}
}

// Select picks a reply and emotion label for the tier. Empty pools and
// unknown tiers fall back rather than failing the turn.
func (r *ReplySelector) Select(tier persona.Tier, p *persona.Persona) (reply, emotion string) {
	pool := p.Responses[tier]
	if !tier.Valid() || len(pool) == 0 {
		return FallbackReply, FallbackEmotion
	}
	r.mu.Lock()
	idx := r.rng.Intn(len(pool))
	r.mu.Unlock()
	return pool[idx], p.Emotion(tier)
}
