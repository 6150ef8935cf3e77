package partfile

import (
	"fmt"

	"github.com/Simplici0/masscalc/internal/component"
	"github.com/Simplici0/masscalc/internal/geometry"
	"github.com/Simplici0/masscalc/internal/material"
	"github.com/Simplici0/masscalc/internal/part"
	"github.com/Simplici0/masscalc/internal/pricing"
)

type builder struct {
	catalog       material.Registry
	unitThickness float64
}

func (b builder) part(name string, r PartRecord, params pricing.Params) (*part.Part, error) {
	volumes := make([]*geometry.Volume, 0, len(r.Volumes))
	for i, n := range r.Volumes {
		v, err := b.node(nodePath("", n, i), n)
		if err != nil {
			return nil, fmt.Errorf("part %q: %w", name, err)
		}
		volumes = append(volumes, v)
	}
	p, err := part.New(part.Spec{
		Name:         name,
		Volumes:      volumes,
		AddMass:      r.AddMass,
		AddCost:      r.AddCost,
		ReservedCost: r.ReservedCost,
		Size:         r.Size,
		Pricing:      params,
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func nodePath(parent string, n NodeRecord, i int) string {
	name := n.Name
	if name == "" {
		name = n.Component
	}
	if name == "" {
		name = fmt.Sprintf("#%d", i)
	}
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

func (b builder) node(path string, n NodeRecord) (*geometry.Volume, error) {
	if n.Component != "" {
		v, err := b.component(n)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", path, err)
		}
		return v, nil
	}
	if n.Energy != 0 || n.Area != 0 {
		return nil, fmt.Errorf("node %s: energy and area are only valid on components: %w", path, geometry.ErrInvalidGeometry)
	}

	content, err := b.content(n)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", path, err)
	}

	var shell *geometry.Surface
	if n.Surface != nil {
		shell, err = b.surface(*n.Surface)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", path, err)
		}
	}

	subvolumes := make([]*geometry.Volume, 0, len(n.Subvolumes))
	for i, sn := range n.Subvolumes {
		sv, err := b.node(nodePath(path, sn, i), sn)
		if err != nil {
			return nil, err
		}
		subvolumes = append(subvolumes, sv)
	}

	v, err := geometry.New(geometry.Spec{
		Name:       n.Name,
		Volume:     n.Volume,
		Content:    content,
		Surface:    shell,
		Subvolumes: subvolumes,
		Count:      n.Count,
	})
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", path, err)
	}
	return v, nil
}

// content maps the density, mass and material fields to a geometry content.
func (b builder) content(n NodeRecord) (geometry.Content, error) {
	switch {
	case n.Mass != nil && (n.Density != nil || n.Material != ""):
		return nil, fmt.Errorf("mass given together with density or material: %w", geometry.ErrAmbiguousMassSpec)
	case n.Density != nil && n.Material != "":
		return nil, fmt.Errorf("density given together with material: %w", geometry.ErrAmbiguousMassSpec)
	case n.Mass != nil:
		return geometry.Totals{Mass: *n.Mass, Cost: value(n.Cost)}, nil
	case n.Density != nil:
		return geometry.Density{Density: *n.Density, CostPerVolume: value(n.Cost)}, nil
	case n.Material != "":
		if n.Cost != nil {
			return nil, fmt.Errorf("cost given together with material %q: %w", n.Material, geometry.ErrAmbiguousMassSpec)
		}
		m, err := b.material(n.Material)
		if err != nil {
			return nil, err
		}
		return geometry.FromMaterial{Material: m}, nil
	default:
		return nil, geometry.ErrMissingMassSpec
	}
}

func (b builder) material(name string) (material.Material, error) {
	m, ok := b.catalog.Lookup(name)
	if !ok {
		return material.Material{}, fmt.Errorf("%q: %w", name, ErrUnknownMaterial)
	}
	return m, nil
}

func (b builder) surface(r SurfaceRecord) (*geometry.Surface, error) {
	m, err := b.material(r.Material)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	return geometry.NewSurface(geometry.SurfaceSpec{
		Area:          r.Area,
		Thickness:     r.Thickness,
		Material:      m,
		UnitThickness: b.unitThickness,
	})
}

func (b builder) component(n NodeRecord) (*geometry.Volume, error) {
	kind := component.Kind(n.Component)
	if kind != component.KindGeneric && (n.hasContent() || n.Surface != nil || len(n.Subvolumes) > 0) {
		return nil, fmt.Errorf("component %s takes no content, surface or subvolumes: %w", kind, geometry.ErrInvalidGeometry)
	}

	var c component.Component
	switch kind {
	case component.KindBattery:
		c = component.Battery{Volume: n.Volume, Energy: n.Energy, Count: n.Count}
	case component.KindGenerator:
		c = component.Generator{Volume: n.Volume, Energy: n.Energy, Count: n.Count}
	case component.KindReactionWheel:
		c = component.ReactionWheel{Volume: n.Volume, Count: n.Count}
	case component.KindSolarPanel:
		c = component.SolarPanel{Area: n.Area, Count: n.Count, UnitThickness: b.unitThickness}
	case component.KindGeneric:
		if n.Mass != nil || n.Material != "" || n.Surface != nil || len(n.Subvolumes) > 0 {
			return nil, fmt.Errorf("generic component takes only density and cost: %w", geometry.ErrInvalidGeometry)
		}
		c = component.Generic{Name: n.Name, Volume: n.Volume, Density: value(n.Density), CostPerVolume: value(n.Cost), Count: n.Count}
	default:
		return nil, fmt.Errorf("unknown component %q: %w", n.Component, geometry.ErrInvalidGeometry)
	}
	return c.Build()
}
