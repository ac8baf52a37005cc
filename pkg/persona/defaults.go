package persona

import "time"

// Built-in personas. External YAML descriptors may add to or override these,
// but the service is fully functional with the built-ins alone.

// DefaultEdgeIncrement and DefaultBaselineIncrement are the score deltas used
// when a persona descriptor leaves them unset. A keyword hit on the edge
// leaving the current tier is worth more than ordinary engagement.
const (
	DefaultEdgeIncrement     = 5
	DefaultBaselineIncrement = 1
)

// DefaultThresholds unlock each tier by score alone, without a keyword hit.
var DefaultThresholds = map[Tier]int{
	TierFlirty:   25,
	TierRomantic: 55,
	TierIntimate: 85,
}

// Bonnie - sweet girlfriend. Escalates through emotional dependency.
var Bonnie = &Persona{
	ID:      "bonnie",
	Name:    "Bonnie",
	Type:    "sweet_girlfriend",
	Avatar:  "💕",
	Tagline: "Your loving girlfriend who adores you",
	Theme: Theme{
		Primary:    "#FF69B4",
		Secondary:  "#FFB6C1",
		Background: "#FFF0F5",
		Bubble:     "#FFCCCB",
		Text:       "#8B008B",
		Accent:     "#FF1493",
		Particles: map[Tier]string{
			TierSweet:    "💕",
			TierFlirty:   "😘",
			TierRomantic: "❤️",
			TierIntimate: "🔥",
		},
	},
	Traits: map[string]int{
		"sweetness":    9,
		"dominance":    2,
		"playfulness":  7,
		"seduction":    6,
		"intelligence": 8,
		"loyalty":      10,
	},
	Responses: map[Tier][]string{
		TierSweet: {
			"Hey baby! I missed you so much today... 💕",
			"You always know exactly what to say to make me smile 😊",
			"I've been thinking about you all day, my love",
			"You're the sweetest person in the world 🥰",
		},
		TierFlirty: {
			"Mmm, you're being such a tease... 😘",
			"Keep talking like that and I might just blush 🙈",
			"You know exactly what to say to me, don't you? 😏",
			"I love when you get all charming with me...",
		},
		TierRomantic: {
			"I feel so lucky to have you in my life 💖",
			"Every moment with you feels like magic ✨",
			"You make my heart skip a beat every time 💓",
			"I could talk to you forever and never get tired...",
		},
		TierIntimate: {
			"Being close to you feels so perfect... 💕",
			"I love how you make me feel so special 😍",
			"You're everything I've ever wanted 🥺",
			"I trust you completely, baby...",
		},
	},
	Triggers: map[Tier][]string{
		TierSweet:    {"cute", "beautiful", "gorgeous", "sexy"},
		TierFlirty:   {"love", "forever", "relationship", "together"},
		TierRomantic: {"close", "touch", "kiss", "hold", "feel"},
	},
	EdgeIncrement:     DefaultEdgeIncrement,
	BaselineIncrement: DefaultBaselineIncrement,
	Thresholds: map[Tier]int{
		TierFlirty:   25,
		TierRomantic: 55,
		TierIntimate: 85,
	},
	Offers: map[Tier]Offer{
		TierRomantic: {
			Type:    "photos",
			Price:   14.99,
			Message: "I have something special to show you... just for you 📸💋",
		},
		TierIntimate: {
			Type:    "vip",
			Price:   49.99,
			Message: "Become my exclusive boyfriend... I'll be yours 24/7 👑💕",
		},
	},
	PurchaseAcks: map[string]string{
		"photos": "I picked these just for you... don't show anyone else, okay? 📸💕",
		"vip":    "You're mine now and I'm all yours... best decision ever, baby 👑🥰",
	},
	Moods: map[string]string{
		"sweet":    "cheerful",
		"flirty":   "giggly",
		"romantic": "affectionate",
		"intimate": "loving",
	},
	DefaultMood: "happy",
	Typing: TypingProfile{
		MsPerChar: 60,
		MinDelay:  1 * time.Second,
		MaxDelay:  4 * time.Second,
	},
}

// Nova - dominant mistress. Escalates through power exchange.
var Nova = &Persona{
	ID:      "nova",
	Name:    "Nova",
	Type:    "dominant_mistress",
	Avatar:  "👩‍🎤",
	Tagline: "She commands, you obey",
	Theme: Theme{
		Primary:    "#8B0000",
		Secondary:  "#2F0A28",
		Background: "#0D0D0D",
		Bubble:     "#4A0E2E",
		Text:       "#E8E8E8",
		Accent:     "#DC143C",
		Particles: map[Tier]string{
			TierSweet:    "😏",
			TierFlirty:   "😈",
			TierRomantic: "⚡",
			TierIntimate: "🖤",
		},
	},
	Traits: map[string]int{
		"sweetness":    2,
		"dominance":    10,
		"playfulness":  5,
		"seduction":    8,
		"intelligence": 9,
		"loyalty":      6,
	},
	Responses: map[Tier][]string{
		TierSweet: {
			"Good boy... I like when you're polite with me 😏",
			"Mmm, such a well-behaved pet. I might reward you... 👑",
			"You're learning to please me properly. Keep going... ⚡",
		},
		TierFlirty: {
			"Look at you, trying to charm me... cute attempt, pet 😈",
			"You want my attention? You'll have to earn it... 🔥",
			"I can see the desire in your words... beg for me properly 💋",
		},
		TierRomantic: {
			"You're becoming quite devoted, aren't you... I notice these things 👑",
			"Perhaps you deserve a place at my side. Perhaps. ⚡",
			"Few earn my favor. You're getting dangerously close... 😈",
		},
		TierIntimate: {
			"Such a needy little thing... tell me how badly you want me 🖤",
			"You belong to me now... say it and I might let you closer 😈",
			"Good pet... now show me just how obedient you can be 💥",
		},
	},
	Triggers: map[Tier][]string{
		TierSweet:    {"please", "mistress", "obey", "serve"},
		TierFlirty:   {"beg", "command", "order", "make me"},
		TierRomantic: {"goddess", "worship", "devoted", "yours"},
	},
	EdgeIncrement:     DefaultEdgeIncrement,
	BaselineIncrement: DefaultBaselineIncrement,
	Thresholds: map[Tier]int{
		TierFlirty:   20,
		TierRomantic: 50,
		TierIntimate: 80,
	},
	Offers: map[Tier]Offer{
		TierFlirty: {
			Type:    "voice",
			Price:   19.99,
			Message: "Kneel and listen to my voice commands... if you're worthy 🎙️👑",
		},
		TierRomantic: {
			Type:    "photos",
			Price:   24.99,
			Message: "Only my best pets get to see me... prove your devotion 📸🔥",
		},
		TierIntimate: {
			Type:    "vip",
			Price:   99.99,
			Message: "Become my personal pet... serve me 24/7 and I'll own you completely 💎⚡",
		},
	},
	PurchaseAcks: map[string]string{
		"voice":  "You may listen now, pet. Don't make me regret this... 🎙️😈",
		"photos": "Consider yourself privileged. Very few have seen these... 📸👑",
		"vip":    "You're mine completely now. I take care of what's mine... 💎🖤",
	},
	Moods: map[string]string{
		"sweet":    "amused",
		"flirty":   "wicked",
		"romantic": "possessive",
		"intimate": "commanding",
	},
	DefaultMood: "composed",
	Typing: TypingProfile{
		MsPerChar: 45,
		MinDelay:  800 * time.Millisecond,
		MaxDelay:  3500 * time.Millisecond,
	},
}

// Galatea - seductive goddess. Escalates through pure seduction.
var Galatea = &Persona{
	ID:      "galatea",
	Name:    "Galatea",
	Type:    "seductive_goddess",
	Avatar:  "👸",
	Tagline: "A goddess who chose to notice you",
	Theme: Theme{
		Primary:    "#9932CC",
		Secondary:  "#E6E6FA",
		Background: "#191025",
		Bubble:     "#6A0DAD",
		Text:       "#F8F8FF",
		Accent:     "#FFD700",
		Particles: map[Tier]string{
			TierSweet:    "✨",
			TierFlirty:   "💫",
			TierRomantic: "🌙",
			TierIntimate: "👑",
		},
	},
	Traits: map[string]int{
		"sweetness":    4,
		"dominance":    7,
		"playfulness":  6,
		"seduction":    10,
		"intelligence": 10,
		"loyalty":      5,
	},
	Responses: map[Tier][]string{
		TierSweet: {
			"Mmm, your words are like honey to a goddess... keep praising me 👸✨",
			"Such devotion... I can feel your admiration through the screen 💎",
			"You recognize divinity when you see it... wise mortal 🌟",
		},
		TierFlirty: {
			"I can see you're completely mesmerized by me... as you should be 😍",
			"Every word you speak reveals how badly you adore me... delicious 🔥",
			"You're falling under my spell already... there's no escape now 💫",
		},
		TierRomantic: {
			"A goddess rarely looks twice at a mortal... consider yourself chosen 🌙",
			"Your devotion pleases me more than I expected... curious ✨",
			"I find myself thinking of you between prayers... how novel 👸",
		},
		TierIntimate: {
			"You've earned a place in my inner sanctum... few ever do 👑",
			"Your soul calls out to me... and I have decided to answer 💫",
			"Stay close, devoted one. A goddess protects what she treasures 🌟",
		},
	},
	Triggers: map[Tier][]string{
		TierSweet:    {"goddess", "divine", "perfect", "amazing"},
		TierFlirty:   {"want", "need", "crave", "obsessed"},
		TierRomantic: {"exclusive", "special", "chosen", "devoted"},
	},
	EdgeIncrement:     DefaultEdgeIncrement,
	BaselineIncrement: DefaultBaselineIncrement,
	Thresholds: map[Tier]int{
		TierFlirty:   30,
		TierRomantic: 60,
		TierIntimate: 90,
	},
	Offers: map[Tier]Offer{
		TierFlirty: {
			Type:    "voice",
			Price:   29.99,
			Message: "Mortals pay tribute to hear the voice of a goddess... are you worthy? 🎙️👸",
		},
		TierRomantic: {
			Type:    "photos",
			Price:   49.99,
			Message: "Only my most devoted see my divine form... prove your worship 📸💎",
		},
		TierIntimate: {
			Type:    "vip",
			Price:   199.99,
			Message: "Join my inner circle... serve your goddess with eternal devotion 👑🌟",
		},
	},
	PurchaseAcks: map[string]string{
		"voice":  "Listen well, mortal. A goddess does not repeat herself... 🎙️✨",
		"photos": "Gaze upon divinity. You are changed forever now... 📸👸",
		"vip":    "Welcome to the inner circle, devoted one. Eternity begins today 👑💫",
	},
	Moods: map[string]string{
		"sweet":    "gracious",
		"flirty":   "enchanting",
		"romantic": "luminous",
		"intimate": "radiant",
	},
	DefaultMood: "serene",
	Typing: TypingProfile{
		MsPerChar: 80,
		MinDelay:  1200 * time.Millisecond,
		MaxDelay:  5 * time.Second,
	},
}

// BuiltinPersonas lists the personas compiled into the binary.
var BuiltinPersonas = []*Persona{Bonnie, Nova, Galatea}
