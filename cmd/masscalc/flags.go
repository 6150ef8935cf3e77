package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/Simplici0/masscalc/internal/report"
)

func parseFiniteFloat(raw, field string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%s must be a finite number, got %q", field, raw)
	}
	return value, nil
}

func parseNonNegativeFloat(raw, field string) (float64, error) {
	value, err := parseFiniteFloat(raw, field)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must be >= 0", field)
	}
	return value, nil
}

func parsePositiveFloat(raw, field string) (float64, error) {
	value, err := parseFiniteFloat(raw, field)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", field)
	}
	return value, nil
}

// positiveFloat is a float flag that rejects zero and negative values.
type positiveFloat struct {
	name  string
	value *float64
}

var _ pflag.Value = positiveFloat{}

func (f positiveFloat) String() string {
	if f.value == nil {
		return "0"
	}
	return strconv.FormatFloat(*f.value, 'g', -1, 64)
}

func (f positiveFloat) Set(raw string) error {
	v, err := parsePositiveFloat(raw, f.name)
	if err != nil {
		return err
	}
	*f.value = v
	return nil
}

func (positiveFloat) Type() string { return "float" }

func positiveFloatVar(fs *pflag.FlagSet, p *float64, name string, value float64, usage string) {
	*p = value
	fs.Var(positiveFloat{name: name, value: p}, name, usage)
}

func addSweepFlags(fs *pflag.FlagSet, opts *report.SweepOptions) {
	def := report.DefaultSweepOptions()
	positiveFloatVar(fs, &opts.From, "from", def.From, "first scale")
	positiveFloatVar(fs, &opts.To, "to", def.To, "last scale")
	positiveFloatVar(fs, &opts.Step, "step", def.Step, "scale increment")
	positiveFloatVar(fs, &opts.Length, "length", def.Length, "length factor")
	fs.BoolVar(&opts.FootprintOnly, "footprint-only", false, "skip scales below the part footprint size")
}
