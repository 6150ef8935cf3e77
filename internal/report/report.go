// Package report renders volumes and parts as human-readable text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Simplici0/masscalc/internal/geometry"
	"github.com/Simplici0/masscalc/internal/part"
)

const (
	lineWidth = 80
	indent    = "   "
)

// hr returns a line of width ch characters with text centered in it.
func hr(text string, ch byte, width int) string {
	tl := len(text)
	if width-tl-2 < 0 {
		return text + "\n"
	}
	ll := (width - tl - 2) / 2
	rl := width - tl - 2 - ll
	return strings.Repeat(string(ch), ll) + " " + text + " " + strings.Repeat(string(ch), rl) + "\n"
}

func num(v float64) string {
	return humanize.FtoaWithDigits(v, 6)
}

// FormatVolume renders a volume node and, indented, its subvolumes.
// Values are at unit scale and length.
func FormatVolume(v *geometry.Volume) string {
	var b strings.Builder
	writeVolume(&b, v, "")
	return b.String()
}

// WriteVolume writes FormatVolume(v) to w.
func WriteVolume(w io.Writer, v *geometry.Volume) error {
	_, err := io.WriteString(w, FormatVolume(v))
	return err
}

func writeVolume(b *strings.Builder, v *geometry.Volume, prefix string) {
	density := ""
	if v.Simple() {
		density = num(v.Density()) + "t/m^3 "
	}
	fmt.Fprintf(b, "%s%s: %sm^3, %s%st, %sCr\n", prefix, v.Name(),
		num(v.FullVolume(1, 1)), density, num(v.FullMass(1, 1)), num(v.FullCost(1, 1)))

	inner := prefix + indent
	if s := v.Surface(); s != nil {
		fmt.Fprintf(b, "%ssurface: [%sm^2 x %sm], %st/m^3, %st, %sCr\n", inner,
			num(s.Area(1, 1)), num(s.Thickness()), num(s.Material().Density), num(s.Mass(1, 1)), num(s.Cost(1, 1)))
	}
	if !v.Simple() && (v.NetVolumeMass(1, 1) > 0 || v.NetVolumeCost(1, 1) > 0) {
		fmt.Fprintf(b, "%scontent: %sm^3, %st/m^3, %st, %sCr\n", inner,
			num(v.NetVolume(1, 1)), num(v.Density()), num(v.NetVolumeMass(1, 1)), num(v.NetVolumeCost(1, 1)))
	}
	for _, sv := range v.Subvolumes() {
		writeVolume(b, sv, inner)
	}
	for _, note := range v.Notes() {
		fmt.Fprintf(b, "%s%s\n", inner, note)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinWeights(w part.Weights) string {
	parts := make([]string, len(w))
	for i, x := range w {
		parts[i] = formatFloat(x)
	}
	return strings.Join(parts, ", ")
}

// FormatPart renders the composition of a part at its own footprint scale,
// followed by the resizer values (entryCost, cost, mass, specificMass,
// specificCost) one per line.
func FormatPart(p *part.Part) string {
	var b strings.Builder
	s := p.Size()

	b.WriteString("//" + hr(p.Name(), '=', lineWidth))
	for _, v := range p.Volumes() {
		var vb strings.Builder
		writeVolume(&vb, v, "")
		for _, line := range strings.Split(strings.TrimSuffix(vb.String(), "\n"), "\n") {
			b.WriteString("//" + line + "\n")
		}
	}
	b.WriteString("//" + hr("", '-', lineWidth))
	fmt.Fprintf(&b, "//Total volume:    %.3f m^3, %.6f t\n", p.Volume(s, 1), p.VolumeMass(s, 1))
	fmt.Fprintf(&b, "//Total surface:   %.3f m^2, %.6f t\n", p.Surface(s, 1), p.SurfaceMass(s, 1))
	fmt.Fprintf(&b, "//Additional mass: %.6f t\n", p.AddMass())
	fmt.Fprintf(&b, "//Additional cost: %.3f Cr\n", p.AddCost())
	fmt.Fprintf(&b, "//Resources cost:  %.3f Cr\n", p.ReservedCost())

	q := p.Quote(s, 1)
	fmt.Fprintf(&b, "entryCost = %s\n", formatFloat(q.Totals.EntryCost))
	fmt.Fprintf(&b, "cost = %s\n", formatFloat(q.Totals.Cost))
	fmt.Fprintf(&b, "mass = %.6f\n", p.InitialMass())
	fmt.Fprintf(&b, "specificMass = %s //weights: [ %s ]\n", joinWeights(p.SpecificMass()), joinWeights(p.MassWeights()))
	fmt.Fprintf(&b, "specificCost = %s //weights: [ %s ]\n", joinWeights(p.SpecificCost()), joinWeights(p.CostWeights()))
	return b.String()
}

// WritePart writes FormatPart(p) to w.
func WritePart(w io.Writer, p *part.Part) error {
	_, err := io.WriteString(w, FormatPart(p))
	return err
}
