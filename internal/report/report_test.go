package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/masscalc/internal/component"
	"github.com/Simplici0/masscalc/internal/geometry"
	"github.com/Simplici0/masscalc/internal/material"
	"github.com/Simplici0/masscalc/internal/part"
	"github.com/Simplici0/masscalc/internal/pricing"
)

func mustVolume(t *testing.T, spec geometry.Spec) *geometry.Volume {
	t.Helper()
	v, err := geometry.New(spec)
	require.NoError(t, err)
	return v
}

func TestHR(t *testing.T) {
	line := hr("Hangar", '=', 80)
	assert.Len(t, line, 81)
	assert.True(t, strings.HasPrefix(line, "====="))
	assert.Contains(t, line, " Hangar ")

	assert.Equal(t, strings.Repeat("-", 39)+"  "+strings.Repeat("-", 39)+"\n", hr("", '-', 80))
	assert.Equal(t, "too long\n", hr("too long", '-', 4))
}

func TestFormatVolume_Simple(t *testing.T) {
	v := mustVolume(t, geometry.Spec{Name: "steel", Volume: 10, Content: geometry.Density{Density: 8.05, CostPerVolume: 2}})

	assert.Equal(t, "steel: 10m^3, 8.05t/m^3 80.5t, 20Cr\n", FormatVolume(v))
}

func TestFormatVolume_Composite(t *testing.T) {
	alu := material.Material{Name: "aluminium", Density: 2.8, Cost: 8}
	shell, err := geometry.NewSurface(geometry.SurfaceSpec{Area: 10, Thickness: 0.005, Material: alu})
	require.NoError(t, err)
	battery, err := component.Battery{Energy: 1000}.Build()
	require.NoError(t, err)
	hull := mustVolume(t, geometry.Spec{
		Name:       "hull",
		Volume:     2,
		Content:    geometry.Density{Density: 0.1, CostPerVolume: 1},
		Surface:    shell,
		Subvolumes: []*geometry.Volume{battery},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteVolume(&buf, hull))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "hull: 2m^3, "))
	assert.NotContains(t, lines[0], "t/m^3")
	assert.Equal(t, "   surface: [10m^2 x 0.005m], 2.8t/m^3, 0.14t, 80Cr", lines[1])
	assert.Equal(t, "   content: 1.75m^3, 0.1t/m^3, 0.175t, 1.75Cr", lines[2])
	assert.Equal(t, "   batteries: 0.25m^3, 0.2t/m^3 0.05t, 1375Cr", lines[3])
	assert.Equal(t, "      energy amount = 1000.0", lines[4])
}

func TestFormatPart(t *testing.T) {
	box := mustVolume(t, geometry.Spec{Name: "box", Volume: 1, Content: geometry.Density{Density: 1, CostPerVolume: 100}})
	p, err := part.New(part.Spec{
		Name:         "Box",
		Volumes:      []*geometry.Volume{box},
		AddMass:      0.5,
		AddCost:      50,
		ReservedCost: 10,
		Pricing:      pricing.Params{Slope: 1.5, Intercept: 1e5, Base: 1.25},
	})
	require.NoError(t, err)

	out := FormatPart(p)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "//"))
	assert.Contains(t, lines[0], " Box ")
	assert.Equal(t, "//box: 1m^3, 1t/m^3 1t, 100Cr", lines[1])
	assert.Contains(t, out, "//Total volume:    1.000 m^3, 1.000000 t\n")
	assert.Contains(t, out, "//Additional mass: 0.500000 t\n")
	assert.Contains(t, out, "//Resources cost:  10.000 Cr\n")
	assert.Contains(t, out, "cost = 160\n")
	assert.Contains(t, out, "mass = 1.500000\n")
	assert.Contains(t, out, "specificMass = 1, 0, 0, 0.5 //weights: [ ")
	assert.Contains(t, out, "specificCost = 100, 0, 0, 50 //weights: [ ")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "specificCost = "))
}

func TestFormatPart_RoundsEntryCost(t *testing.T) {
	box := mustVolume(t, geometry.Spec{Name: "box", Volume: 1, Content: geometry.Density{Density: 1, CostPerVolume: 100.2}})
	p, err := part.New(part.Spec{Name: "Box", Volumes: []*geometry.Volume{box}})
	require.NoError(t, err)

	out := FormatPart(p)
	assert.Contains(t, out, "cost = 101\n")
	assert.NotContains(t, out, "entryCost = 0")
}
