package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/masscalc/internal/geometry"
	"github.com/Simplici0/masscalc/internal/part"
)

func ballast(t *testing.T, size float64) *part.Part {
	t.Helper()
	block := mustVolume(t, geometry.Spec{Name: "ballast", Volume: 100, Content: geometry.Density{Density: 10, CostPerVolume: 50}})
	p, err := part.New(part.Spec{Name: "Ballast", Volumes: []*geometry.Volume{block}, Size: size})
	require.NoError(t, err)
	return p
}

func TestSweepOptions_Scales(t *testing.T) {
	scales, err := DefaultSweepOptions().Scales()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}, scales)

	scales, err = SweepOptions{From: 0.1, To: 0.3, Step: 0.1}.Scales()
	require.NoError(t, err)
	assert.Len(t, scales, 3)

	for _, bad := range []SweepOptions{
		{From: 0, To: 1, Step: 0.5},
		{From: 1, To: 2, Step: 0},
		{From: 2, To: 1, Step: 0.5},
		{From: 1, To: math.NaN(), Step: 0.5},
		{From: 1, To: math.Inf(1), Step: 0.5},
		{From: 1, To: 2, Step: math.NaN()},
		{From: 1, To: 2, Step: 1e-15},
	} {
		_, err := bad.Scales()
		assert.Error(t, err)
	}
}

func TestSweep(t *testing.T) {
	p := ballast(t, 1)

	rows, err := Sweep(p, DefaultSweepOptions())
	require.NoError(t, err)
	require.Len(t, rows, 8)

	assert.InDelta(t, 1000, rows[1].Mass, 1e-9)
	assert.InDelta(t, 8000, rows[3].Mass, 1e-9)
	assert.InDelta(t, 800, rows[3].Volume, 1e-9)
	assert.InDelta(t, 40000, rows[3].Cost, 1e-9)
	assert.Zero(t, rows[3].SurfaceMass)
}

func TestSweep_FootprintOnly(t *testing.T) {
	p := ballast(t, 2)
	opts := DefaultSweepOptions()
	opts.FootprintOnly = true

	rows, err := Sweep(p, opts)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, 2.0, rows[0].Scale)
	assert.InDelta(t, 1000, rows[0].Mass, 1e-9)
}

func TestSweep_RejectsBadLength(t *testing.T) {
	for _, length := range []float64{-1, math.NaN(), math.Inf(1)} {
		opts := DefaultSweepOptions()
		opts.Length = length
		_, err := Sweep(ballast(t, 1), opts)
		require.Error(t, err)
	}
}

func TestSweepOptions_ScalesAtRowLimit(t *testing.T) {
	scales, err := SweepOptions{From: 1, To: MaxSweepRows, Step: 1}.Scales()
	require.NoError(t, err)
	assert.Len(t, scales, MaxSweepRows)
}

func TestWriteSweep(t *testing.T) {
	rows, err := Sweep(ballast(t, 1), DefaultSweepOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSweep(&buf, rows))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "surface mass")
	assert.Contains(t, lines[len(lines)-1], "64,000")
}
