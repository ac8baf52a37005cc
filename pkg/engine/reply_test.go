package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"galatea/pkg/persona"
)

func TestSelectDrawsFromTierPool(t *testing.T) {
	sel := NewReplySelector(rand.NewSource(1))

	reply, emotion := sel.Select(persona.TierFlirty, persona.Bonnie)
	assert.Contains(t, persona.Bonnie.Responses[persona.TierFlirty], reply)
	assert.Equal(t, "flirty", emotion)
}

func TestSelectNeverEmpty(t *testing.T) {
	sel := NewReplySelector(rand.NewSource(1))

	for _, tier := range persona.Tiers() {
		reply, _ := sel.Select(tier, persona.Bonnie)
		assert.NotEmpty(t, reply)
	}
}

func TestSelectFallbackOnEmptyPool(t *testing.T) {
	sel := NewReplySelector(rand.NewSource(1))
	p := &persona.Persona{ID: "bare", Name: "Bare"}

	reply, emotion := sel.Select(persona.TierSweet, p)
	assert.Equal(t, FallbackReply, reply)
	assert.Equal(t, FallbackEmotion, emotion)
}

func TestSelectFallbackOnUnknownTier(t *testing.T) {
	sel := NewReplySelector(rand.NewSource(1))

	reply, emotion := sel.Select(persona.Tier("bogus"), persona.Bonnie)
	assert.Equal(t, FallbackReply, reply)
	assert.Equal(t, FallbackEmotion, emotion)
}

func TestSelectDeterministicWithSeed(t *testing.T) {
	a := NewReplySelector(rand.NewSource(42))
	b := NewReplySelector(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		replyA, _ := a.Select(persona.TierSweet, persona.Bonnie)
		replyB, _ := b.Select(persona.TierSweet, persona.Bonnie)
		assert.Equal(t, replyA, replyB)
	}
}
