package engine

import (
	"time"

	"galatea/pkg/persona"
)

// TypingDelay computes the artificial pacing delay for a reply:
// len(reply) * MsPerChar clamped to [MinDelay, MaxDelay]. Pure; the caller
// owns the actual suspension so tests never wait on a wall clock.
func TypingDelay(reply string, p *persona.Persona) time.Duration {
	d := time.Duration(len(reply)*p.Typing.MsPerChar) * time.Millisecond
	if d < p.Typing.MinDelay {
		return p.Typing.MinDelay
	}
	if d > p.Typing.MaxDelay {
		return p.Typing.MaxDelay
	}
	return d
}
