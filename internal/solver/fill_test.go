package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
	"github.com/alexiusacademia/gocog/internal/mass"
)

func TestFillFractionReference(t *testing.T) {
	b := body.Default()
	c := cavity.Analyze(&b, cavity.NewThrough(2.0, 5.75, b.Width))

	f, ok := FillFraction(&b, []cavity.Cavity{c})
	require.True(t, ok)
	assert.InDelta(t, 0.2215619, f, 1e-4)
	assert.InDelta(t, 2.4609375, c.Volume, 1e-4)
	assert.InDelta(t, 4.0588235, c.Centroid, 1e-4)
}

func TestFillFractionReproducesTargetMass(t *testing.T) {
	b := body.Default()

	spans := [][2]float64{{2.0, 5.75}, {0.3, 1.4}, {6.2, 6.9}, {3.0, 3.5}}
	for _, s := range spans {
		c := cavity.Analyze(&b, cavity.NewThrough(s[0], s[1], b.Width))
		f, _ := FillFraction(&b, []cavity.Cavity{c})

		r := mass.Evaluate(&b, []mass.Fill{{Cavity: c, Fraction: f}})
		assert.InDelta(t, b.TargetMass, r.Mass, 1e-9, "span %v", s)
	}
}

func TestFillFractionSharedAcrossCavities(t *testing.T) {
	b := body.Default()
	c1 := cavity.Analyze(&b, cavity.NewPocket(0.5, 1.5, 1.0, 0.15))
	c2 := cavity.Analyze(&b, cavity.NewThrough(6.2, 6.9, 1.25))

	cand := SolveFill(&b, []cavity.Geometry{c1.Geometry, c2.Geometry})
	require.Len(t, cand.Fractions, 2)
	assert.Equal(t, cand.Fractions[0], cand.Fractions[1])
	assert.InDelta(t, b.TargetMass, cand.Mass, 1e-9)
	assert.InDelta(t, 0, cand.MassError, 1e-9)
}

func TestFillFractionInfeasible(t *testing.T) {
	b := body.Default()

	// Too small to hold the missing mass even when full.
	tiny := cavity.Analyze(&b, cavity.NewThrough(3.0, 3.1, 0.2))
	f, ok := FillFraction(&b, []cavity.Cavity{tiny})
	assert.False(t, ok)
	assert.Greater(t, f, 1.0)

	cand := SolveFill(&b, []cavity.Geometry{tiny.Geometry})
	assert.False(t, cand.Feasible)
	assert.Contains(t, cand.Message, "outside [0, 1]")

	// Already too heavy: a negative fraction.
	b.TargetMass = 3.0
	f, ok = FillFraction(&b, []cavity.Cavity{tiny})
	assert.False(t, ok)
	assert.Less(t, f, 0.0)
}

func TestFillFractionEmptyCavity(t *testing.T) {
	b := body.Default()
	empty := cavity.Analyze(&b, cavity.NewThrough(3, 3, b.Width))

	f, ok := FillFraction(&b, []cavity.Cavity{empty})
	assert.False(t, ok)
	assert.Zero(t, f)

	cand := SolveFill(&b, nil)
	assert.False(t, cand.Feasible)
	assert.Equal(t, "cavities hold no fill", cand.Message)
}

func TestSolveFillRejectsCollidingCavities(t *testing.T) {
	b := body.Default()

	tests := []struct {
		name  string
		geoms []cavity.Geometry
	}{
		{"overlapping spans", []cavity.Geometry{cavity.NewThrough(2, 5, b.Width), cavity.NewThrough(3, 6, b.Width)}},
		{"side by side too wide", []cavity.Geometry{cavity.NewThrough(2, 4, 1.5), cavity.NewThrough(2, 4, 1.5)}},
		{"whole body twice", []cavity.Geometry{cavity.NewThrough(0, b.Length, b.Width), cavity.NewThrough(0, b.Length, b.Width)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := SolveFill(&b, tt.geoms)
			assert.False(t, cand.Feasible)
			assert.Contains(t, cand.Message, "cut the same material")

			cavities := []cavity.Cavity{cavity.Analyze(&b, tt.geoms[0]), cavity.Analyze(&b, tt.geoms[1])}
			_, ok := FillFraction(&b, cavities)
			assert.False(t, ok)
		})
	}
}

func TestSolveFillSideBySideMatchesOneCut(t *testing.T) {
	b := body.Default()

	pair := SolveFill(&b, []cavity.Geometry{cavity.NewThrough(2, 4, 0.8), cavity.NewThrough(2, 4, 0.8)})
	one := SolveFill(&b, []cavity.Geometry{cavity.NewThrough(2, 4, 1.6)})

	require.True(t, pair.Feasible, pair.Message)
	require.True(t, one.Feasible, one.Message)
	assert.InDelta(t, one.Fractions[0], pair.Fractions[0], 1e-9)
	assert.InDelta(t, one.CoG, pair.CoG, 1e-9)
}

func TestSolveFillInvalidBody(t *testing.T) {
	b := body.Default()
	b.RawMass = 0
	g := cavity.NewThrough(2.0, 5.75, b.Width)

	cand := SolveFill(&b, []cavity.Geometry{g})
	assert.False(t, cand.Feasible)
	assert.Contains(t, cand.Message, "raw mass")

	_, ok := FillFraction(&b, []cavity.Cavity{cavity.Analyze(&b, g)})
	assert.False(t, ok)
}

func TestEvaluateMismatchedFractions(t *testing.T) {
	b := body.Default()
	c := cavity.Analyze(&b, cavity.NewThrough(2.0, 5.75, b.Width))

	assert.NotPanics(t, func() {
		cand := Evaluate(&b, []cavity.Cavity{c, c}, []float64{0.5})
		assert.False(t, cand.Feasible)
		assert.Contains(t, cand.Message, "1 fill fractions for 2 cavities")
	})

	cand := Evaluate(&b, []cavity.Cavity{c}, []float64{0.2215619})
	assert.True(t, cand.Feasible, cand.Message)
	assert.InDelta(t, b.TargetMass, cand.Mass, 1e-4)
}
