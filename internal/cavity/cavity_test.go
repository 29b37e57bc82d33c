package cavity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocog/internal/body"
)

func TestAnalyzeThroughReference(t *testing.T) {
	b := body.Default()
	c := Analyze(&b, NewThrough(2.0, 5.75, b.Width))

	// The span lies on one linear segment, so Simpson is exact here.
	assert.InDelta(t, 2.4609375, c.Volume, 1e-9)
	assert.InDelta(t, 69.0/17.0, c.Centroid, 1e-9)
	assert.InDelta(t, 2.4609375*0.72, c.MassRemoved, 1e-9)
	assert.InDelta(t, 2.4609375*6.0, c.MassAdded, 1e-9)
	assert.InDelta(t, c.Centroid*c.Volume, c.Moment, 1e-9)
}

func TestThroughVolumeMonotonic(t *testing.T) {
	b := body.Default()
	prev := 0.0
	for end := 0.5; end <= 7.0; end += 0.25 {
		v := Analyze(&b, NewThrough(0.5, end, b.Width)).Volume
		assert.GreaterOrEqual(t, v, prev, "end=%g", end)
		prev = v
	}
}

func TestPocketBoundedByThrough(t *testing.T) {
	b := body.Default()

	tests := []struct {
		start, end, depth float64
	}{
		{0.2, 1.5, 0.1},
		{2.0, 5.75, 0.3},
		{5.5, 6.9, 0.52},
		{0.0, 7.0, 0.4},
	}

	for _, tt := range tests {
		through := Analyze(&b, NewThrough(tt.start, tt.end, 1.0))
		pocket := Analyze(&b, NewPocket(tt.start, tt.end, 1.0, tt.depth))
		assert.LessOrEqual(t, pocket.Volume, through.Volume+1e-12)
		assert.Greater(t, pocket.Volume, 0.0)
	}
}

func TestPocketDeeperThanProfileEqualsThrough(t *testing.T) {
	b := body.Default()
	for _, span := range [][2]float64{{0.5, 2.5}, {2.0, 5.75}, {5.0, 7.0}} {
		through := Analyze(&b, NewThrough(span[0], span[1], 1.2))
		deep := b.MaxHeight(span[0], span[1])
		pocket := Analyze(&b, NewPocket(span[0], span[1], 1.2, deep))
		assert.InDelta(t, through.Volume, pocket.Volume, 1e-12)
		assert.InDelta(t, through.Centroid, pocket.Centroid, 1e-12)
	}
}

func TestPocketConstantDepth(t *testing.T) {
	b := body.Default()
	// Profile is at least 0.25 thick from the front axle back.
	c := Analyze(&b, NewPocket(2.0, 4.0, 1.0, 0.2))
	assert.InDelta(t, 0.4, c.Volume, 1e-9)
	assert.InDelta(t, 3.0, c.Centroid, 1e-9)
}

func TestAnalyzeDegenerate(t *testing.T) {
	b := body.Default()

	tests := []struct {
		name string
		g    Geometry
	}{
		{"zero length", NewThrough(3, 3, 1)},
		{"reversed", NewThrough(4, 3, 1)},
		{"zero width", NewThrough(2, 4, 0)},
		{"zero depth", NewPocket(2, 4, 1, 0)},
		{"outside body", NewThrough(8, 9, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Analyze(&b, tt.g)
			assert.Zero(t, c.Volume)
			assert.Zero(t, c.Centroid)
			assert.Zero(t, c.MassRemoved)
			assert.Zero(t, c.MassAdded)
			assert.Zero(t, c.NetMass(1))
		})
	}
}

func TestAnalyzeClipsToBody(t *testing.T) {
	b := body.Default()
	wide := Analyze(&b, NewThrough(-1, 8, 5))
	full := Analyze(&b, NewThrough(0, 7, b.Width))
	assert.InDelta(t, full.Volume, wide.Volume, 1e-12)
	assert.InDelta(t, b.Base().Volume, full.Volume, 1e-12)
}

func TestNetMass(t *testing.T) {
	b := body.Default()
	c := Analyze(&b, NewThrough(2.0, 5.75, b.Width))
	assert.InDelta(t, -c.MassRemoved, c.NetMass(0), 1e-12)
	assert.InDelta(t, c.MassAdded-c.MassRemoved, c.NetMass(1), 1e-12)
	assert.Greater(t, c.NetMass(1), 0.0)
	assert.InDelta(t, c.Centroid*c.MassAdded/2, c.FillMoment(0.5), 1e-12)
}

func TestOverlap(t *testing.T) {
	assert.True(t, Overlap(NewThrough(1, 3, 1), NewThrough(2, 4, 1)))
	assert.False(t, Overlap(NewThrough(1, 2, 1), NewThrough(2, 4, 1)))
	assert.False(t, Overlap(NewThrough(1, 1, 1), NewThrough(0, 4, 1)))
}

func TestCollide(t *testing.T) {
	tests := []struct {
		name string
		a, b Geometry
		want bool
	}{
		{"overlapping full width", NewThrough(2, 5, 1.75), NewThrough(3, 6, 1.75), true},
		{"side by side too wide", NewThrough(2, 4, 1.5), NewThrough(2, 4, 1.5), true},
		{"side by side fits", NewThrough(2, 4, 0.8), NewThrough(2, 4, 0.95), false},
		{"wider than body clipped", NewThrough(2, 4, 3), NewThrough(3, 5, 0.1), true},
		{"touching spans", NewThrough(2, 4, 1.75), NewThrough(4, 6, 1.75), false},
		{"disjoint", NewPocket(0.5, 1, 1.75, 0.1), NewPocket(6, 6.5, 1.75, 0.1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collide(tt.a, tt.b, 1.75))
			assert.Equal(t, tt.want, Collide(tt.b, tt.a, 1.75))
		})
	}
}

func TestParseGeometry(t *testing.T) {
	g, err := ParseGeometry("2:5.75", 1.75)
	require.NoError(t, err)
	assert.Equal(t, NewThrough(2, 5.75, 1.75), g)

	g, err = ParseGeometry("6.1:6.9:1.25", 1.75)
	require.NoError(t, err)
	assert.Equal(t, NewThrough(6.1, 6.9, 1.25), g)

	g, err = ParseGeometry("6.1 : 6.9 : 1.25 : 0.3", 1.75)
	require.NoError(t, err)
	assert.Equal(t, NewPocket(6.1, 6.9, 1.25, 0.3), g)

	for _, bad := range []string{"2", "1:2:3:4:5", "a:b", "3:2", "1:2:0"} {
		_, err := ParseGeometry(bad, 1.75)
		assert.Error(t, err, bad)
	}
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "through", Through.String())
	assert.Equal(t, "pocket", Pocket.String())
}
