package geometry

import (
	"fmt"
	"math"

	"github.com/Simplici0/masscalc/internal/material"
)

// DefaultUnitThickness is the reference shell thickness that material surface
// costs are quoted for.
const DefaultUnitThickness = 0.005

// SurfaceSpec describes a thin shell wrapping a volume.
type SurfaceSpec struct {
	Area      float64
	Thickness float64
	Material  material.Material
	// UnitThickness overrides DefaultUnitThickness when positive.
	UnitThickness float64
}

// Surface is an immutable thin shell.
type Surface struct {
	area          float64
	thickness     float64
	material      material.Material
	unitThickness float64
}

// NewSurface validates spec and returns the Surface it describes.
func NewSurface(spec SurfaceSpec) (*Surface, error) {
	if spec.Area < 0 || math.IsNaN(spec.Area) {
		return nil, fmt.Errorf("surface area must be >= 0, got %g: %w", spec.Area, ErrInvalidGeometry)
	}
	if spec.Thickness < 0 || math.IsNaN(spec.Thickness) {
		return nil, fmt.Errorf("surface thickness must be >= 0, got %g: %w", spec.Thickness, ErrInvalidGeometry)
	}
	if spec.UnitThickness < 0 || math.IsNaN(spec.UnitThickness) {
		return nil, fmt.Errorf("unit thickness must be > 0, got %g: %w", spec.UnitThickness, ErrInvalidGeometry)
	}
	if err := spec.Material.Validate(); err != nil {
		return nil, fmt.Errorf("surface: %v: %w", err, ErrInvalidGeometry)
	}

	unit := spec.UnitThickness
	if unit == 0 {
		unit = DefaultUnitThickness
	}
	return &Surface{
		area:          spec.Area,
		thickness:     spec.Thickness,
		material:      spec.Material,
		unitThickness: unit,
	}, nil
}

// Area returns the shell area at the given scale and length.
func (s *Surface) Area(scale, length float64) float64 {
	return s.area * scale * scale * length
}

// Thickness returns the shell thickness.
func (s *Surface) Thickness() float64 { return s.thickness }

// Material returns the shell material.
func (s *Surface) Material() material.Material { return s.material }

// Mass returns the shell mass at the given scale and length.
func (s *Surface) Mass(scale, length float64) float64 {
	return s.Area(scale, length) * s.thickness * s.material.Density
}

// Cost returns the shell cost. Material cost is quoted per unit thickness,
// so cost grows linearly with the actual thickness.
func (s *Surface) Cost(scale, length float64) float64 {
	return s.Area(scale, length) * s.thickness / s.unitThickness * s.material.Cost
}

func (s *Surface) scaled(k float64) *Surface {
	c := *s
	c.area *= k
	return &c
}
