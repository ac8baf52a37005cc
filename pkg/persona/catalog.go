package persona

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
)

// ErrNotFound is returned when a persona id is not registered.
var ErrNotFound = errors.New("persona not found")

// Catalog is a read-only registry of persona descriptors. Registration
// happens at startup; lookups afterwards are concurrent-safe.
type Catalog struct {
	mu       sync.RWMutex
	personas map[string]*Persona
}

// NewCatalog returns a catalog seeded with the built-in personas.
func NewCatalog() *Catalog {
	c := &Catalog{personas: make(map[string]*Persona)}
	for _, p := range BuiltinPersonas {
		if err := c.Register(p); err != nil {
			// Built-ins are validated by tests; failing here means a broken build.
			log.Fatalf("invalid built-in persona %s: %v", p.ID, err)
		}
	}
	return c
}

// NewEmptyCatalog returns a catalog with no personas registered.
func NewEmptyCatalog() *Catalog {
	return &Catalog{personas: make(map[string]*Persona)}
}

// Register validates and adds a persona, replacing any existing descriptor
// with the same id.
func (c *Catalog) Register(p *Persona) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("register persona: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.personas[p.ID] = p
	return nil
}

// Get looks up a persona by id.
func (c *Catalog) Get(id string) (*Persona, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.personas[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, nil
}

// IDs returns the registered persona ids, sorted.
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.personas))
	for id := range c.personas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns the registered personas sorted by id.
func (c *Catalog) All() []*Persona {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Persona, 0, len(c.personas))
	for _, p := range c.personas {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered personas.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.personas)
}
