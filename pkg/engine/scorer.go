package engine

import (
	"strings"

	"galatea/pkg/persona"
)

// Score computes the bond-score delta for one message. A keyword hit on the
// edge leaving the current tier earns the persona's edge increment; anything
// else earns the baseline increment, except at the terminal tier where no
// further growth is modeled. Pure function; the caller clamps the result.
func Score(tier persona.Tier, message string, p *persona.Persona) (delta int, matched []string) {
	lower := strings.ToLower(message)
	for _, keyword := range p.Triggers[tier] {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
		}
	}
	if len(matched) > 0 {
		return p.EdgeIncrement, matched
	}
	if _, ok := tier.Next(); !ok {
		return 0, nil
	}
	return p.BaselineIncrement, nil
}

// ClampScore bounds a bond score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
