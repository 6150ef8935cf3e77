package component

import (
	"fmt"
	"math"

	"github.com/Simplici0/masscalc/internal/geometry"
)

// energyStorage holds the reference values of an energy component: density,
// cost per unit of energy and energy per unit of volume.
type energyStorage struct {
	name          string
	density       float64 // t/m^3
	energyCost    float64 // Cr per energy unit
	energyDensity float64 // energy units per m^3
	note          string
}

var (
	batteryReference = energyStorage{
		name:          "batteries",
		density:       0.2,
		energyCost:    1.375,
		energyDensity: 4000,
		note:          "energy amount = %.1f",
	}
	// PB-NUK: V=0.01227, M=0.08
	generatorReference = energyStorage{
		name:          "generator",
		density:       6.5199674,
		energyCost:    4400,
		energyDensity: 61.124694,
		note:          "energy rate = %.3f",
	}
)

// build derives whichever of volume and energy is missing. When both are
// given the density and energy cost follow the energy density relative to
// the reference.
func (ref energyStorage) build(volume, energy, count float64) (*geometry.Volume, error) {
	if volume < 0 || energy < 0 || math.IsNaN(volume) || math.IsNaN(energy) {
		return nil, fmt.Errorf("%s: volume and energy must be >= 0, got %g and %g: %w",
			ref.name, volume, energy, geometry.ErrInvalidGeometry)
	}
	if volume == 0 && energy == 0 {
		return nil, fmt.Errorf("%s: either volume or energy should be positive: %w", ref.name, geometry.ErrInvalidGeometry)
	}

	density, energyCost, energyDensity := ref.density, ref.energyCost, ref.energyDensity
	switch {
	case volume == 0:
		volume = energy / energyDensity
	case energy == 0:
		energy = volume * energyDensity
	default:
		energyDensity = energy / volume
		// relative to this storage's own reference, batteries and generators differ
		k := energyDensity / ref.energyDensity
		density *= k
		energyCost *= k
	}

	return geometry.New(geometry.Spec{
		Name:    ref.name,
		Volume:  volume,
		Content: geometry.Density{Density: density, CostPerVolume: energyCost * energy / volume},
		Count:   count,
		Notes: func(v *geometry.Volume) []string {
			return []string{fmt.Sprintf(ref.note, v.FullVolume(1, 1)*energyDensity)}
		},
	})
}

// Battery stores energy. Either Volume or Energy may be left zero.
type Battery struct {
	Volume float64
	Energy float64
	Count  float64
}

// Kind implements Component.
func (Battery) Kind() Kind { return KindBattery }

// Build returns the battery volume, deriving whichever of volume and energy is missing.
func (b Battery) Build() (*geometry.Volume, error) {
	return batteryReference.build(b.Volume, b.Energy, b.Count)
}

// Generator produces energy; Energy is the production rate.
type Generator struct {
	Volume float64
	Energy float64
	Count  float64
}

// Kind implements Component.
func (Generator) Kind() Kind { return KindGenerator }

// Build returns the generator volume, deriving whichever of volume and energy is missing.
func (g Generator) Build() (*geometry.Volume, error) {
	return generatorReference.build(g.Volume, g.Energy, g.Count)
}
