package seed

import (
	"fmt"

	"github.com/Simplici0/masscalc/internal/component"
	"github.com/Simplici0/masscalc/internal/material"
)

// Defaults returns the stock materials every catalog starts with. Each call
// returns a fresh slice.
func Defaults() []material.Material {
	return []material.Material{
		{Name: "steel", Density: 8.05, Cost: 2},
		{Name: "aluminium", Density: 2.8, Cost: 8},
		{Name: "composites", Density: 1.9, Cost: 20},
		component.SolarCells(),
	}
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run ensures the default materials exist in cat, then applies overrides.
// Defaults already present are left alone, so running it twice is a no-op.
// Overrides replace entries of the same name.
func Run(cat *material.Catalog, overrides []material.Material) (Stats, error) {
	stats := Stats{}

	for _, m := range Defaults() {
		if err := ensureMaterial(cat, m, &stats); err != nil {
			return Stats{}, err
		}
	}
	for _, m := range overrides {
		if err := putMaterial(cat, m, &stats); err != nil {
			return Stats{}, err
		}
	}

	return stats, nil
}

func ensureMaterial(cat *material.Catalog, m material.Material, stats *Stats) error {
	if _, exists := cat.Lookup(m.Name); exists {
		return nil
	}
	if _, err := cat.Put(m); err != nil {
		return fmt.Errorf("insert default material: %w", err)
	}
	stats.Inserts++
	return nil
}

func putMaterial(cat *material.Catalog, m material.Material, stats *Stats) error {
	if prev, exists := cat.Lookup(m.Name); exists && prev == m {
		return nil
	}
	existed, err := cat.Put(m)
	if err != nil {
		return fmt.Errorf("put material: %w", err)
	}
	if existed {
		stats.Updates++
	} else {
		stats.Inserts++
	}
	return nil
}
