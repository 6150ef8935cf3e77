package pricing

import (
	"fmt"
	"math"
)

// Params holds the entry cost curve constants and the rounding policy.
type Params struct {
	Slope     float64
	Intercept float64
	Base      float64
	// Round ceiling-rounds cost and entry cost to whole credits.
	Round bool
}

// DefaultParams returns the tuned curve with rounding enabled.
func DefaultParams() Params {
	return Params{
		Slope:     DefaultSlope,
		Intercept: DefaultIntercept,
		Base:      DefaultBase,
		Round:     true,
	}
}

// Validate checks that the curve is well formed: it must start at zero and
// saturate towards Slope.
func (p Params) Validate() error {
	if p.Slope < 0 {
		return fmt.Errorf("entry cost slope must be >= 0, got %g", p.Slope)
	}
	if p.Intercept <= 0 {
		return fmt.Errorf("entry cost intercept must be > 0, got %g", p.Intercept)
	}
	if p.Base <= 1 {
		return fmt.Errorf("entry cost base must be > 1, got %g", p.Base)
	}
	return nil
}

// EntryCost maps a part cost to its unlock price: linear in cost plus an
// exponentially saturating term bounded by Intercept.
func EntryCost(cost float64, p Params) float64 {
	return cost*p.Slope + (1-math.Pow(p.Base, -10*cost/p.Intercept))*p.Intercept
}

// Input holds the cost components of a part at one evaluation point.
type Input struct {
	VolumeCost     float64
	SurfaceCost    float64
	AdditionalCost float64
	ReservedCost   float64
}

// Breakdown contains all line items of the cost calculation.
type Breakdown struct {
	VolumeCost     float64
	SurfaceCost    float64
	AdditionalCost float64
	ReservedCost   float64
}

// Totals contains roll-up values from the cost calculation.
type Totals struct {
	Cost      float64
	EntryCost float64
}

// Result groups the full pricing output.
type Result struct {
	Breakdown Breakdown
	Totals    Totals
}

// Calculate computes the total and entry cost of a part.
func Calculate(in Input, p Params) Result {
	cost := in.VolumeCost + in.SurfaceCost + in.AdditionalCost + in.ReservedCost
	entry := EntryCost(cost, p)
	if p.Round {
		cost = math.Ceil(cost)
		entry = math.Ceil(entry)
	}

	return Result{
		Breakdown: Breakdown{
			VolumeCost:     in.VolumeCost,
			SurfaceCost:    in.SurfaceCost,
			AdditionalCost: in.AdditionalCost,
			ReservedCost:   in.ReservedCost,
		},
		Totals: Totals{Cost: cost, EntryCost: entry},
	}
}
