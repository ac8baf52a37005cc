package persona

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile parses a single YAML persona descriptor. Fields the file leaves
// unset fall back to the catalog-wide defaults so descriptors only need to
// spell out what makes the character distinctive.
func LoadFile(path string) (*Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read persona file: %w", err)
	}

	p := &Persona{
		EdgeIncrement:     DefaultEdgeIncrement,
		BaselineIncrement: DefaultBaselineIncrement,
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse persona file %s: %w", filepath.Base(path), err)
	}
	if len(p.Thresholds) == 0 {
		p.Thresholds = DefaultThresholds
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("persona file %s: %w", filepath.Base(path), err)
	}
	return p, nil
}

// LoadDir registers every .yml/.yaml descriptor in dir into the catalog.
// A missing directory is not an error; the built-ins are enough to run.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read persona dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		p, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		if err := c.Register(p); err != nil {
			return err
		}
		log.Printf("Loaded persona %s from %s", p.ID, entry.Name())
	}
	return nil
}
