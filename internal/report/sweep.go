package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/Simplici0/masscalc/internal/part"
)

// Row is one line of a scale sweep.
type Row struct {
	Scale       float64
	Mass        float64
	SurfaceMass float64
	Volume      float64
	Cost        float64
}

// SweepOptions controls which scales a sweep covers.
type SweepOptions struct {
	From   float64
	To     float64
	Step   float64
	Length float64
	// FootprintOnly drops rows below the part's own footprint size.
	FootprintOnly bool
}

// DefaultSweepOptions returns the 0.5 to 4 m range in 0.5 m steps.
func DefaultSweepOptions() SweepOptions {
	return SweepOptions{From: 0.5, To: 4, Step: 0.5, Length: 1}
}

// MaxSweepRows bounds the number of scales a sweep may produce.
const MaxSweepRows = 10000

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Scales returns From, From+Step, ... up to and including To.
func (o SweepOptions) Scales() ([]float64, error) {
	if !finite(o.From, o.To, o.Step) || o.From <= 0 || o.Step <= 0 || o.To < o.From {
		return nil, fmt.Errorf("invalid sweep range: from %g to %g step %g", o.From, o.To, o.Step)
	}
	steps := math.Floor((o.To-o.From)/o.Step + 1e-9)
	if steps >= MaxSweepRows {
		return nil, fmt.Errorf("sweep from %g to %g step %g exceeds %d rows", o.From, o.To, o.Step, MaxSweepRows)
	}
	n := int(steps) + 1
	scales := make([]float64, n)
	for i := range scales {
		scales[i] = o.From + float64(i)*o.Step
	}
	return scales, nil
}

// Sweep evaluates p over the scales described by opts.
func Sweep(p *part.Part, opts SweepOptions) ([]Row, error) {
	scales, err := opts.Scales()
	if err != nil {
		return nil, err
	}
	length := opts.Length
	if length == 0 {
		length = 1
	}
	if length < 0 || !finite(length) {
		return nil, fmt.Errorf("invalid sweep length %g", opts.Length)
	}

	rows := make([]Row, 0, len(scales))
	for _, s := range scales {
		if opts.FootprintOnly && s/p.Size() < 1-1e-9 {
			continue
		}
		rows = append(rows, Row{
			Scale:       s,
			Mass:        p.Mass(s, length),
			SurfaceMass: p.SurfaceMass(s, length),
			Volume:      p.Volume(s, length),
			Cost:        p.Cost(s, length),
		})
	}
	return rows, nil
}

// WriteSweep writes rows as an aligned table.
func WriteSweep(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "scale\tmass\tsurface mass\tvolume\tcost\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			humanize.FtoaWithDigits(r.Scale, 3),
			humanize.CommafWithDigits(r.Mass, 3),
			humanize.CommafWithDigits(r.SurfaceMass, 3),
			humanize.CommafWithDigits(r.Volume, 3),
			humanize.CommafWithDigits(r.Cost, 1),
		)
	}
	return tw.Flush()
}
