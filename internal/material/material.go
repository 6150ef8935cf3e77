package material

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidMaterial is returned for materials with negative density or cost.
var ErrInvalidMaterial = errors.New("invalid material")

// Material is a named density/cost pair. Cost is per unit volume.
type Material struct {
	Name    string
	Density float64
	Cost    float64
}

// New returns a validated Material.
func New(name string, density, cost float64) (Material, error) {
	m := Material{Name: name, Density: density, Cost: cost}
	if err := m.Validate(); err != nil {
		return Material{}, err
	}
	return m, nil
}

// Validate checks that density and cost are non-negative.
func (m Material) Validate() error {
	if m.Density < 0 || math.IsNaN(m.Density) {
		return fmt.Errorf("material %q: density must be >= 0, got %g: %w", m.Name, m.Density, ErrInvalidMaterial)
	}
	if m.Cost < 0 || math.IsNaN(m.Cost) {
		return fmt.Errorf("material %q: cost must be >= 0, got %g: %w", m.Name, m.Cost, ErrInvalidMaterial)
	}
	return nil
}

// Registry is the read-only view of a material catalog used by the authoring layer.
type Registry interface {
	Lookup(name string) (Material, bool)
	Names() []string
}

// Catalog holds materials by name. It is filled once at startup and then
// handed out as a Registry.
type Catalog struct {
	entries map[string]Material
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Material)}
}

// Lookup returns the material registered under name.
func (c *Catalog) Lookup(name string) (Material, bool) {
	m, ok := c.entries[name]
	return m, ok
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of registered materials.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Put registers m under its name, replacing any previous entry.
// It reports whether an entry with that name already existed.
func (c *Catalog) Put(m Material) (bool, error) {
	if m.Name == "" {
		return false, fmt.Errorf("material name is required: %w", ErrInvalidMaterial)
	}
	if err := m.Validate(); err != nil {
		return false, err
	}
	_, existed := c.entries[m.Name]
	c.entries[m.Name] = m
	return existed, nil
}
