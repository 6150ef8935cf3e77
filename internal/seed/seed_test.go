package seed

import (
	"errors"
	"testing"

	"github.com/Simplici0/masscalc/internal/material"
)

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	cat := material.NewCatalog()

	for i := 0; i < 10; i++ {
		stats, err := Run(cat, nil)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != len(Defaults()) {
				t.Fatalf("expected %d inserts in first run, got %d", len(Defaults()), stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 || stats.Updates != 0 {
			t.Fatalf("expected no changes in iteration %d, got %+v", i, stats)
		}
	}

	assertMaterial(t, cat, "steel", 8.05, 2)
	assertMaterial(t, cat, "aluminium", 2.8, 8)
	assertMaterial(t, cat, "composites", 1.9, 20)
	if cat.Len() != len(Defaults()) {
		t.Fatalf("expected %d materials, got %d", len(Defaults()), cat.Len())
	}
}

func TestRunAppliesOverrides(t *testing.T) {
	t.Parallel()

	cat := material.NewCatalog()
	overrides := []material.Material{
		{Name: "aluminium", Density: 2.7, Cost: 9},
		{Name: "titanium", Density: 4.5, Cost: 40},
	}

	stats, err := Run(cat, overrides)
	if err != nil {
		t.Fatalf("run seed: %v", err)
	}
	if stats.Inserts != len(Defaults())+1 || stats.Updates != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	assertMaterial(t, cat, "aluminium", 2.7, 9)
	assertMaterial(t, cat, "titanium", 4.5, 40)

	// re-applying the same overrides changes nothing
	stats, err = Run(cat, overrides)
	if err != nil {
		t.Fatalf("rerun seed: %v", err)
	}
	if stats.Inserts != 0 || stats.Updates != 0 {
		t.Fatalf("expected no changes on rerun, got %+v", stats)
	}
}

func TestRunRejectsInvalidOverride(t *testing.T) {
	t.Parallel()

	_, err := Run(material.NewCatalog(), []material.Material{{Name: "void", Density: -1}})
	if !errors.Is(err, material.ErrInvalidMaterial) {
		t.Fatalf("expected ErrInvalidMaterial, got %v", err)
	}
}

func assertMaterial(t *testing.T, cat *material.Catalog, name string, density, cost float64) {
	t.Helper()

	m, ok := cat.Lookup(name)
	if !ok {
		t.Fatalf("material %q not found", name)
	}
	if m.Density != density || m.Cost != cost {
		t.Fatalf("material %q = %+v, want density %v cost %v", name, m, density, cost)
	}
}

func TestDefaultsAreNotShared(t *testing.T) {
	t.Parallel()

	first := Defaults()
	first[0].Density = 100

	cat := material.NewCatalog()
	if _, err := Run(cat, nil); err != nil {
		t.Fatalf("run seed: %v", err)
	}
	assertMaterial(t, cat, "steel", 8.05, 2)
}
