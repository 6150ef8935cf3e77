// Package part aggregates volume trees into parts whose mass and cost can be
// evaluated at any scale from a handful of cached coefficients.
package part

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Simplici0/masscalc/internal/geometry"
	"github.com/Simplici0/masscalc/internal/pricing"
)

// Weights are the coefficients of the scaling polynomial
// ((w0*s + w1)*s + w2)*s*length + w3.
type Weights [4]float64

// Eval evaluates the polynomial at the given scale and length.
func (w Weights) Eval(scale, length float64) float64 {
	return ((w[0]*scale+w[1])*scale+w[2])*scale*length + w[3]
}

// Sum returns the value at unit scale and length.
func (w Weights) Sum() float64 {
	return floats.Sum(w[:])
}

// Normalized returns each weight divided by the sum. A zero sum yields zeros.
func (w Weights) Normalized() Weights {
	var out Weights
	sum := w.Sum()
	if sum == 0 {
		return out
	}
	floats.ScaleTo(out[:], 1/sum, w[:])
	return out
}

// Spec is the construction input of a Part.
type Spec struct {
	Name         string
	Volumes      []*geometry.Volume
	AddMass      float64
	AddCost      float64
	ReservedCost float64
	// Size divides the scale before any geometric scaling; zero means 1.
	Size    float64
	Pricing pricing.Params
}

// Part is an immutable assembly of top-level volumes.
type Part struct {
	name         string
	volumes      []*geometry.Volume
	addMass      float64
	addCost      float64
	reservedCost float64
	size         float64
	pricing      pricing.Params

	specMass    Weights
	specCost    Weights
	initialMass float64
	totalCost   float64
	massWeights Weights
	costWeights Weights
}

// New validates spec and computes the mass and cost weight vectors at unit scale.
func New(spec Spec) (*Part, error) {
	if spec.AddMass < 0 || spec.AddCost < 0 || spec.ReservedCost < 0 ||
		math.IsNaN(spec.AddMass+spec.AddCost+spec.ReservedCost) {
		return nil, fmt.Errorf("part %q: additional mass, additional cost and reserved cost must be >= 0: %w",
			spec.Name, geometry.ErrInvalidGeometry)
	}
	size := spec.Size
	if size == 0 {
		size = 1
	}
	if size < 0 || math.IsNaN(size) {
		return nil, fmt.Errorf("part %q: size must be > 0, got %g: %w", spec.Name, spec.Size, geometry.ErrInvalidGeometry)
	}
	for i, v := range spec.Volumes {
		if v == nil {
			return nil, fmt.Errorf("part %q: volume %d is nil: %w", spec.Name, i, geometry.ErrInvalidGeometry)
		}
	}
	if spec.Pricing == (pricing.Params{}) {
		spec.Pricing = pricing.DefaultParams()
	}
	if err := spec.Pricing.Validate(); err != nil {
		return nil, fmt.Errorf("part %q: %w", spec.Name, err)
	}

	p := &Part{
		name:         spec.Name,
		volumes:      append([]*geometry.Volume(nil), spec.Volumes...),
		addMass:      spec.AddMass,
		addCost:      spec.AddCost,
		reservedCost: spec.ReservedCost,
		size:         size,
		pricing:      spec.Pricing,
	}

	p.specMass = Weights{
		p.sum((*geometry.Volume).FullVolumeMass, 1, 1),
		p.sum((*geometry.Volume).FullSurfaceMass, 1, 1),
		0,
		p.addMass,
	}
	p.specCost = Weights{
		p.sum((*geometry.Volume).FullVolumeCost, 1, 1),
		p.sum((*geometry.Volume).FullSurfaceCost, 1, 1),
		0,
		p.addCost,
	}
	p.initialMass = p.specMass.Sum()
	p.massWeights = p.specMass.Normalized()
	p.costWeights = p.specCost.Normalized()
	p.totalCost = p.specCost.Sum() + p.reservedCost

	return p, nil
}

func (p *Part) sum(f func(*geometry.Volume, float64, float64) float64, scale, length float64) float64 {
	var total float64
	for _, v := range p.volumes {
		total += f(v, scale, length)
	}
	return total
}

// Name returns the part name.
func (p *Part) Name() string { return p.name }

// Volumes returns the top-level volumes.
func (p *Part) Volumes() []*geometry.Volume { return p.volumes }

// AddMass returns the fixed mass added on top of the volume tree.
func (p *Part) AddMass() float64 { return p.addMass }

// AddCost returns the fixed cost added on top of the volume tree.
func (p *Part) AddCost() float64 { return p.addCost }

// ReservedCost returns the cost carried by resources the part ships with.
func (p *Part) ReservedCost() float64 { return p.reservedCost }

// Size returns the footprint size that divides every scale.
func (p *Part) Size() float64 { return p.size }

// Pricing returns the entry cost parameters of the part.
func (p *Part) Pricing() pricing.Params { return p.pricing }

// SpecificMass returns the mass weight vector.
func (p *Part) SpecificMass() Weights { return p.specMass }

// SpecificCost returns the cost weight vector.
func (p *Part) SpecificCost() Weights { return p.specCost }

// MassWeights returns the mass weight vector normalized to the initial mass.
func (p *Part) MassWeights() Weights { return p.massWeights }

// CostWeights returns the cost weight vector normalized to its sum.
func (p *Part) CostWeights() Weights { return p.costWeights }

// InitialMass is the mass at unit scale and length.
func (p *Part) InitialMass() float64 { return p.initialMass }

// TotalCost is the cost at unit scale and length, reserved cost included.
func (p *Part) TotalCost() float64 { return p.totalCost }

// EntryCost returns the unlock price for the total cost, unrounded.
func (p *Part) EntryCost() float64 {
	return pricing.EntryCost(p.totalCost, p.pricing)
}

func (p *Part) footprint(scale float64) float64 {
	return scale / p.size
}

// Mass evaluates the cached mass polynomial.
func (p *Part) Mass(scale, length float64) float64 {
	return p.specMass.Eval(p.footprint(scale), length)
}

// Cost evaluates the cached cost polynomial and adds the reserved cost.
func (p *Part) Cost(scale, length float64) float64 {
	return p.specCost.Eval(p.footprint(scale), length) + p.reservedCost
}

// Quote prices the part at the given scale and length.
func (p *Part) Quote(scale, length float64) pricing.Result {
	return pricing.Calculate(pricing.Input{
		VolumeCost:     p.VolumeCost(scale, length),
		SurfaceCost:    p.SurfaceCost(scale, length),
		AdditionalCost: p.addCost,
		ReservedCost:   p.reservedCost,
	}, p.pricing)
}

// TrueMass walks the volume tree; it excludes the additional mass.
func (p *Part) TrueMass(scale, length float64) float64 {
	return p.VolumeMass(scale, length) + p.SurfaceMass(scale, length)
}

// Volume returns the combined full volume of the top-level volumes.
func (p *Part) Volume(scale, length float64) float64 {
	return p.sum((*geometry.Volume).FullVolume, p.footprint(scale), length)
}

// Surface returns the combined shell area of the whole tree.
func (p *Part) Surface(scale, length float64) float64 {
	return p.sum((*geometry.Volume).FullSurfaceArea, p.footprint(scale), length)
}

// VolumeMass returns the content mass of the whole tree.
func (p *Part) VolumeMass(scale, length float64) float64 {
	return p.sum((*geometry.Volume).FullVolumeMass, p.footprint(scale), length)
}

// SurfaceMass returns the shell mass of the whole tree.
func (p *Part) SurfaceMass(scale, length float64) float64 {
	return p.sum((*geometry.Volume).FullSurfaceMass, p.footprint(scale), length)
}

// VolumeCost returns the content cost of the whole tree.
func (p *Part) VolumeCost(scale, length float64) float64 {
	return p.sum((*geometry.Volume).FullVolumeCost, p.footprint(scale), length)
}

// SurfaceCost returns the shell cost of the whole tree.
func (p *Part) SurfaceCost(scale, length float64) float64 {
	return p.sum((*geometry.Volume).FullSurfaceCost, p.footprint(scale), length)
}
