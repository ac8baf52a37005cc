package persona

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Tier is an escalation level gating tone and offers.
// Tiers only move forward within a session: sweet → flirty → romantic → intimate.
type Tier string

const (
	TierSweet    Tier = "sweet"
	TierFlirty   Tier = "flirty"
	TierRomantic Tier = "romantic"
	TierIntimate Tier = "intimate"
)

// tierOrder defines the escalation ladder, lowest first.
var tierOrder = []Tier{TierSweet, TierFlirty, TierRomantic, TierIntimate}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	for _, tier := range tierOrder {
		if t == tier {
			return true
		}
	}
	return false
}

// Rank returns the position of t on the ladder (0 = sweet).
// Unknown tiers rank below sweet so comparisons stay safe.
func (t Tier) Rank() int {
	for i, tier := range tierOrder {
		if t == tier {
			return i
		}
	}
	return -1
}

// Next returns the tier one step up the ladder.
// ok is false for intimate (terminal) and for unknown tiers.
func (t Tier) Next() (Tier, bool) {
	rank := t.Rank()
	if rank < 0 || rank >= len(tierOrder)-1 {
		return t, false
	}
	return tierOrder[rank+1], true
}

// Tiers returns the escalation ladder in order.
func Tiers() []Tier {
	out := make([]Tier, len(tierOrder))
	copy(out, tierOrder)
	return out
}

// Theme holds the display colors and per-tier particle emoji for a persona.
type Theme struct {
	Primary    string          `yaml:"primary" json:"primary"`
	Secondary  string          `yaml:"secondary" json:"secondary"`
	Background string          `yaml:"background" json:"background"`
	Bubble     string          `yaml:"bubble" json:"bubble"`
	Text       string          `yaml:"text" json:"text"`
	Accent     string          `yaml:"accent" json:"accent"`
	Particles  map[Tier]string `yaml:"particles" json:"particles,omitempty"`
}

// Offer is a monetization offer surfaced when a session enters its trigger tier.
type Offer struct {
	Type    string  `yaml:"type" json:"type"`
	Price   float64 `yaml:"price" json:"price"`
	Message string  `yaml:"message" json:"message"`
}

// TypingProfile controls artificial reply pacing.
type TypingProfile struct {
	MsPerChar int           `yaml:"ms_per_char" json:"ms_per_char"`
	MinDelay  time.Duration `yaml:"-" json:"min_delay"`
	MaxDelay  time.Duration `yaml:"-" json:"max_delay"`
}

// UnmarshalYAML accepts Go duration strings ("1s", "800ms") for the
// delay bounds.
func (t *TypingProfile) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		MsPerChar int    `yaml:"ms_per_char"`
		MinDelay  string `yaml:"min_delay"`
		MaxDelay  string `yaml:"max_delay"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	t.MsPerChar = raw.MsPerChar
	if raw.MinDelay != "" {
		d, err := time.ParseDuration(raw.MinDelay)
		if err != nil {
			return fmt.Errorf("typing min_delay: %w", err)
		}
		t.MinDelay = d
	}
	if raw.MaxDelay != "" {
		d, err := time.ParseDuration(raw.MaxDelay)
		if err != nil {
			return fmt.Errorf("typing max_delay: %w", err)
		}
		t.MaxDelay = d
	}
	return nil
}

// Persona is an immutable character descriptor. Sessions reference personas
// by id and never mutate them.
type Persona struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Type    string `yaml:"type" json:"type"`
	Avatar  string `yaml:"avatar" json:"avatar"`
	Tagline string `yaml:"tagline" json:"tagline"`

	Theme  Theme          `yaml:"theme" json:"theme"`
	Traits map[string]int `yaml:"traits" json:"traits"`

	// Responses maps each tier to its reply template pool.
	Responses map[Tier][]string `yaml:"responses" json:"responses"`

	// Triggers maps a tier to the keywords that fire the edge leaving it.
	// Matching is case-insensitive substring matching.
	Triggers map[Tier][]string `yaml:"triggers" json:"triggers"`

	// EdgeIncrement is the score delta for a keyword match on the current edge.
	// BaselineIncrement is the delta for any other non-terminal message.
	EdgeIncrement     int `yaml:"edge_increment" json:"edge_increment"`
	BaselineIncrement int `yaml:"baseline_increment" json:"baseline_increment"`

	// Thresholds maps a target tier to the score that unlocks it without
	// a keyword match.
	Thresholds map[Tier]int `yaml:"thresholds" json:"thresholds"`

	// Offers maps a trigger tier to its single monetization offer.
	Offers map[Tier]Offer `yaml:"offers" json:"offers"`

	// PurchaseAcks maps an offer type to the reply sent once the external
	// payment collaborator confirms the purchase.
	PurchaseAcks map[string]string `yaml:"purchase_acks" json:"purchase_acks"`

	// Moods maps a reply emotion to a display mood; DefaultMood covers the rest.
	Moods       map[string]string `yaml:"moods" json:"moods"`
	DefaultMood string            `yaml:"default_mood" json:"default_mood"`

	Typing TypingProfile `yaml:"typing" json:"typing"`
}

// Emotion returns the label attached to replies drawn from a tier's pool.
// The tier name doubles as the emotion label, which keeps theming lookups
// table-driven.
func (p *Persona) Emotion(tier Tier) string {
	if tier.Valid() {
		return string(tier)
	}
	return "neutral"
}

// Mood resolves an emotion label to the persona's display mood.
func (p *Persona) Mood(emotion string) string {
	if mood, ok := p.Moods[emotion]; ok {
		return mood
	}
	return p.DefaultMood
}

// Threshold returns the score threshold for entering tier, if configured.
func (p *Persona) Threshold(tier Tier) (int, bool) {
	v, ok := p.Thresholds[tier]
	return v, ok
}

// Validate checks that the persona descriptor is internally consistent.
// Catalogs refuse to register personas that fail validation.
func (p *Persona) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("persona missing id")
	}
	if p.Name == "" {
		return fmt.Errorf("persona %s: missing name", p.ID)
	}
	for _, tier := range tierOrder {
		if len(p.Responses[tier]) == 0 {
			return fmt.Errorf("persona %s: no reply templates for tier %s", p.ID, tier)
		}
	}
	if p.EdgeIncrement < 0 || p.BaselineIncrement < 0 {
		return fmt.Errorf("persona %s: negative score increment", p.ID)
	}
	prev := 0
	for _, tier := range tierOrder[1:] {
		threshold, ok := p.Thresholds[tier]
		if !ok {
			return fmt.Errorf("persona %s: missing threshold for tier %s", p.ID, tier)
		}
		if threshold <= prev || threshold > 100 {
			return fmt.Errorf("persona %s: threshold for %s must be in (%d,100], got %d", p.ID, tier, prev, threshold)
		}
		prev = threshold
	}
	for tier, offer := range p.Offers {
		if !tier.Valid() {
			return fmt.Errorf("persona %s: offer on unknown tier %q", p.ID, tier)
		}
		if offer.Type == "" {
			return fmt.Errorf("persona %s: offer on tier %s missing type", p.ID, tier)
		}
		if offer.Price <= 0 {
			return fmt.Errorf("persona %s: offer %s has non-positive price", p.ID, offer.Type)
		}
	}
	if p.Typing.MsPerChar <= 0 {
		return fmt.Errorf("persona %s: typing ms_per_char must be positive", p.ID)
	}
	if p.Typing.MinDelay <= 0 || p.Typing.MaxDelay < p.Typing.MinDelay {
		return fmt.Errorf("persona %s: typing delay bounds invalid (min %s, max %s)", p.ID, p.Typing.MinDelay, p.Typing.MaxDelay)
	}
	return nil
}
