// Package component builds volumes for the recurring part components
// (batteries, generators, reaction wheels, solar panels) from their
// characteristic inputs.
package component

import (
	"fmt"

	"github.com/Simplici0/masscalc/internal/geometry"
	"github.com/Simplici0/masscalc/internal/material"
)

// Kind identifies a component variant.
type Kind string

const (
	KindGeneric       Kind = "generic"
	KindBattery       Kind = "battery"
	KindGenerator     Kind = "generator"
	KindReactionWheel Kind = "reaction_wheel"
	KindSolarPanel    Kind = "solar_panel"
)

// Component is implemented by every variant.
type Component interface {
	Kind() Kind
	Build() (*geometry.Volume, error)
}

// Generic is a plain volume with a fixed density and cost per volume. When
// both are zero the volume weighs 1 t/m^3 and costs 1 Cr/m^3.
type Generic struct {
	Name          string
	Volume        float64
	Density       float64
	CostPerVolume float64
	Count         float64
}

// Defaults of a Generic volume without density and cost.
const (
	GenericDensity       = 1.0 // t/m^3
	GenericCostPerVolume = 1.0 // Cr/m^3
)

// Kind implements Component.
func (Generic) Kind() Kind { return KindGeneric }

// Build returns the plain volume.
func (g Generic) Build() (*geometry.Volume, error) {
	name := g.Name
	if name == "" {
		name = "custom volume"
	}
	density, cost := g.Density, g.CostPerVolume
	if density == 0 && cost == 0 {
		density, cost = GenericDensity, GenericCostPerVolume
	}
	return geometry.New(geometry.Spec{
		Name:    name,
		Volume:  g.Volume,
		Content: geometry.Density{Density: density, CostPerVolume: cost},
		Count:   g.Count,
	})
}

// Reaction wheel reference values.
const (
	ReactionWheelDensity       = 0.2 / 0.21  // t/m^3
	ReactionWheelCostPerVolume = 2100 / 0.21 // Cr/m^3
	ReactionWheelTorque        = 156.25      // torque per t
	ReactionWheelEnergy        = 3.395       // El.u/s per t
)

// ReactionWheel is a reaction wheel of the given volume.
type ReactionWheel struct {
	Volume float64
	Count  float64
}

// Kind implements Component.
func (ReactionWheel) Kind() Kind { return KindReactionWheel }

// Build returns a fixed-density reaction wheel of the given volume.
func (r ReactionWheel) Build() (*geometry.Volume, error) {
	return geometry.New(geometry.Spec{
		Name:    "reaction wheel",
		Volume:  r.Volume,
		Content: geometry.Density{Density: ReactionWheelDensity, CostPerVolume: ReactionWheelCostPerVolume},
		Count:   r.Count,
		Notes: func(v *geometry.Volume) []string {
			m := v.FullMass(1, 1)
			return []string{
				fmt.Sprintf("torque = %.0f", ReactionWheelTorque*m),
				fmt.Sprintf("rate = %.3f", ReactionWheelEnergy*m),
			}
		},
	})
}

// Solar panel reference values.
const (
	SolarPanelThickness     = 0.01      // m
	SolarPanelSurfaceEnergy = 1.3479107 // El.u/s per m^2
)

// SolarCells returns the panel surface material.
func SolarCells() material.Material {
	return material.Material{Name: "solar-cells", Density: 2.5894795, Cost: 224.65179}
}

// SolarPanel is a flat panel of the given area.
type SolarPanel struct {
	Area          float64
	Count         float64
	UnitThickness float64
}

// Kind implements Component.
func (SolarPanel) Kind() Kind { return KindSolarPanel }

// Build returns a shell-only solar panel of the given area.
func (s SolarPanel) Build() (*geometry.Volume, error) {
	shell, err := geometry.NewSurface(geometry.SurfaceSpec{
		Area:          s.Area,
		Thickness:     SolarPanelThickness,
		Material:      SolarCells(),
		UnitThickness: s.UnitThickness,
	})
	if err != nil {
		return nil, fmt.Errorf("solar panels: %w", err)
	}
	return geometry.New(geometry.Spec{
		Name:    "solar panels",
		Volume:  s.Area * SolarPanelThickness,
		Content: geometry.Density{},
		Surface: shell,
		Count:   s.Count,
		Notes: func(v *geometry.Volume) []string {
			return []string{fmt.Sprintf("chargeRate = %.3f", v.FullSurfaceArea(1, 1)*SolarPanelSurfaceEnergy)}
		},
	})
}
