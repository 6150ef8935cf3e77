package geometry

import (
	"fmt"
	"math"

	"github.com/Simplici0/masscalc/internal/material"
)

// volumeTolerance is the relative slack allowed when subvolumes fill their
// container exactly and float round-off leaves a tiny negative remainder.
const volumeTolerance = 1e-9

// Content describes how the mass and cost of a node's own net volume are specified.
// It is implemented by Density, FromMaterial and Totals.
type Content interface {
	isContent()
}

// Density gives the density and cost per unit volume directly.
type Density struct {
	Density       float64
	CostPerVolume float64
}

// FromMaterial takes density and cost per volume from a material.
type FromMaterial struct {
	Material material.Material
}

// Totals gives the total mass and cost of the node's net volume; density and
// cost per volume are derived from them.
type Totals struct {
	Mass float64
	Cost float64
}

func (Density) isContent()      {}
func (FromMaterial) isContent() {}
func (Totals) isContent()       {}

// Spec is the construction input of a Volume.
type Spec struct {
	Name string
	// Volume is the nominal volume at scale 1, length 1.
	Volume     float64
	Content    Content
	Surface    *Surface
	Subvolumes []*Volume
	// Count replicates the node; zero means one instance.
	Count float64
	// Notes produces extra report lines for the built node.
	Notes func(*Volume) []string
}

// Volume is an immutable node of a volume tree. Its own content occupies the
// nominal volume minus the full volumes of its subvolumes.
type Volume struct {
	name          string
	volume        float64
	density       float64
	costPerVolume float64
	surface       *Surface
	subvolumes    []*Volume
	notes         func(*Volume) []string
}

// New validates spec and builds the node. Subvolumes are shared, never modified.
func New(spec Spec) (*Volume, error) {
	if spec.Volume < 0 || math.IsNaN(spec.Volume) {
		return nil, fmt.Errorf("volume %q: nominal volume must be >= 0, got %g: %w", spec.Name, spec.Volume, ErrInvalidGeometry)
	}
	count := spec.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || math.IsNaN(count) {
		return nil, fmt.Errorf("volume %q: count must be > 0, got %g: %w", spec.Name, spec.Count, ErrInvalidGeometry)
	}

	v := &Volume{
		name:       spec.Name,
		volume:     spec.Volume,
		surface:    spec.Surface,
		subvolumes: make([]*Volume, 0, len(spec.Subvolumes)),
		notes:      spec.Notes,
	}

	var claimed float64
	for i, sv := range spec.Subvolumes {
		if sv == nil {
			return nil, fmt.Errorf("volume %q: subvolume %d is nil: %w", spec.Name, i, ErrInvalidGeometry)
		}
		v.subvolumes = append(v.subvolumes, sv)
		claimed += sv.FullVolume(1, 1)
	}
	if spec.Volume-claimed < -volumeTolerance*spec.Volume {
		return nil, fmt.Errorf("volume %q: combined volume of subvolumes (%g) is greater than container volume (%g): %w",
			spec.Name, claimed, spec.Volume, ErrNegativeVolume)
	}

	if err := v.resolveContent(spec.Content); err != nil {
		return nil, err
	}

	if count != 1 {
		v = v.scaled(count)
	}
	return v, nil
}

func (v *Volume) resolveContent(content Content) error {
	switch c := content.(type) {
	case nil:
		return fmt.Errorf("volume %q: %w", v.name, ErrMissingMassSpec)
	case Density:
		if c.Density < 0 || c.CostPerVolume < 0 || math.IsNaN(c.Density) || math.IsNaN(c.CostPerVolume) {
			return fmt.Errorf("volume %q: density and cost per volume must be >= 0, got %g and %g: %w",
				v.name, c.Density, c.CostPerVolume, ErrInvalidGeometry)
		}
		v.density = c.Density
		v.costPerVolume = c.CostPerVolume
	case FromMaterial:
		if err := c.Material.Validate(); err != nil {
			return fmt.Errorf("volume %q: %v: %w", v.name, err, ErrInvalidGeometry)
		}
		v.density = c.Material.Density
		v.costPerVolume = c.Material.Cost
	case Totals:
		if c.Mass < 0 || c.Cost < 0 || math.IsNaN(c.Mass) || math.IsNaN(c.Cost) {
			return fmt.Errorf("volume %q: mass and cost must be >= 0, got %g and %g: %w",
				v.name, c.Mass, c.Cost, ErrInvalidGeometry)
		}
		net := v.NetVolume(1, 1)
		if net == 0 {
			if c.Mass > 0 || c.Cost > 0 {
				return fmt.Errorf("volume %q: mass or cost given for a node without net volume: %w", v.name, ErrInvalidGeometry)
			}
			return nil
		}
		v.density = c.Mass / net
		v.costPerVolume = c.Cost / net
	default:
		return fmt.Errorf("volume %q: unsupported content %T: %w", v.name, content, ErrInvalidGeometry)
	}
	return nil
}

// scaled returns a copy of the subtree with every nominal volume and surface
// area multiplied by k.
func (v *Volume) scaled(k float64) *Volume {
	c := *v
	c.volume *= k
	if v.surface != nil {
		c.surface = v.surface.scaled(k)
	}
	c.subvolumes = make([]*Volume, len(v.subvolumes))
	for i, sv := range v.subvolumes {
		c.subvolumes[i] = sv.scaled(k)
	}
	return &c
}

// Name returns the node name.
func (v *Volume) Name() string { return v.name }

// Density returns the density of the node's own content.
func (v *Volume) Density() float64 { return v.density }

// CostPerVolume returns the cost per unit volume of the node's own content.
func (v *Volume) CostPerVolume() float64 { return v.costPerVolume }

// Surface returns the node's shell, or nil.
func (v *Volume) Surface() *Surface { return v.surface }

// Subvolumes returns the node's children.
func (v *Volume) Subvolumes() []*Volume { return v.subvolumes }

// Notes returns extra report lines, if the node was built with any.
func (v *Volume) Notes() []string {
	if v.notes == nil {
		return nil
	}
	return v.notes(v)
}

// Simple reports whether the node has neither a shell nor subvolumes.
func (v *Volume) Simple() bool {
	return v.surface == nil && len(v.subvolumes) == 0
}

// FullVolume returns the nominal volume at the given scale and length.
func (v *Volume) FullVolume(scale, length float64) float64 {
	return v.volume * scale * scale * scale * length
}

// NetVolume returns the full volume minus the full volumes of the subvolumes.
func (v *Volume) NetVolume(scale, length float64) float64 {
	net := v.FullVolume(scale, length)
	for _, sv := range v.subvolumes {
		net -= sv.FullVolume(scale, length)
	}
	// New rejects real overflows; what remains is round-off.
	if net < 0 {
		return 0
	}
	return net
}

// NetSurfaceArea returns the area of the node's own shell.
func (v *Volume) NetSurfaceArea(scale, length float64) float64 {
	if v.surface == nil {
		return 0
	}
	return v.surface.Area(scale, length)
}

// FullSurfaceArea returns the shell area of the node and all descendants.
func (v *Volume) FullSurfaceArea(scale, length float64) float64 {
	return v.fold(scale, length, (*Volume).NetSurfaceArea)
}

// NetVolumeCost returns the cost of the node's own content.
func (v *Volume) NetVolumeCost(scale, length float64) float64 {
	return v.NetVolume(scale, length) * v.costPerVolume
}

// FullVolumeCost returns the content cost of the node and all descendants.
func (v *Volume) FullVolumeCost(scale, length float64) float64 {
	return v.fold(scale, length, (*Volume).NetVolumeCost)
}

// NetSurfaceCost returns the cost of the node's own shell.
func (v *Volume) NetSurfaceCost(scale, length float64) float64 {
	if v.surface == nil {
		return 0
	}
	return v.surface.Cost(scale, length)
}

// FullSurfaceCost returns the shell cost of the node and all descendants.
func (v *Volume) FullSurfaceCost(scale, length float64) float64 {
	return v.fold(scale, length, (*Volume).NetSurfaceCost)
}

// FullCost returns content plus shell cost of the whole subtree.
func (v *Volume) FullCost(scale, length float64) float64 {
	return v.FullVolumeCost(scale, length) + v.FullSurfaceCost(scale, length)
}

// NetVolumeMass returns the mass of the node's own content.
func (v *Volume) NetVolumeMass(scale, length float64) float64 {
	return v.NetVolume(scale, length) * v.density
}

// FullVolumeMass returns the content mass of the node and all descendants.
func (v *Volume) FullVolumeMass(scale, length float64) float64 {
	return v.fold(scale, length, (*Volume).NetVolumeMass)
}

// NetSurfaceMass returns the mass of the node's own shell.
func (v *Volume) NetSurfaceMass(scale, length float64) float64 {
	if v.surface == nil {
		return 0
	}
	return v.surface.Mass(scale, length)
}

// FullSurfaceMass returns the shell mass of the node and all descendants.
func (v *Volume) FullSurfaceMass(scale, length float64) float64 {
	return v.fold(scale, length, (*Volume).NetSurfaceMass)
}

// FullMass returns content plus shell mass of the whole subtree.
func (v *Volume) FullMass(scale, length float64) float64 {
	return v.FullVolumeMass(scale, length) + v.FullSurfaceMass(scale, length)
}

// fold sums own over the node and, depth-first, over all descendants.
func (v *Volume) fold(scale, length float64, own func(*Volume, float64, float64) float64) float64 {
	total := own(v, scale, length)
	for _, sv := range v.subvolumes {
		total += sv.fold(scale, length, own)
	}
	return total
}
