package solver

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
)

func TestSpans(t *testing.T) {
	spans := Spans(Region{Start: 1, End: 1.3}, 0.1, 0)
	require.Len(t, spans, 6)
	assert.InDelta(t, 1.0, spans[0][0], 1e-12)
	assert.InDelta(t, 1.1, spans[0][1], 1e-12)
	assert.InDelta(t, 1.2, spans[5][0], 1e-12)
	assert.InDelta(t, 1.3, spans[5][1], 1e-12)

	long := Spans(Region{Start: 1, End: 1.3}, 0.1, 0.2)
	assert.Len(t, long, 3)
	for _, s := range long {
		assert.GreaterOrEqual(t, s[1]-s[0], 0.2-1e-9)
	}

	assert.Nil(t, Spans(Region{Start: 2, End: 1}, 0.1, 0))
	assert.Nil(t, Spans(Region{Start: 1, End: 2}, 0, 0))
}

func TestSearchOneRear(t *testing.T) {
	b := body.Default()
	opts := DefaultSearchOptions()
	opts.Logger = zaptest.NewLogger(t)

	found, err := SearchOne(context.Background(), &b, []Region{{Name: "rear", Start: 6.1, End: 6.95}}, opts)
	require.NoError(t, err)
	require.NotEmpty(t, found)

	for _, c := range found {
		require.Len(t, c.Cavities, 1)
		assert.True(t, c.Feasible)
		assert.LessOrEqual(t, c.MassError, opts.MassTolerance)
		assert.LessOrEqual(t, c.CoGError, opts.CoGTolerance)
		assert.GreaterOrEqual(t, c.Fractions[0], 0.0)
		assert.LessOrEqual(t, c.Fractions[0], 1.0)
	}

	assert.True(t, sort.SliceIsSorted(found, func(i, j int) bool {
		return found[i].CoGError < found[j].CoGError
	}))

	best := found[0]
	assert.InDelta(t, 6.6, best.Cavities[0].Start, 1e-9)
	assert.InDelta(t, 6.95, best.Cavities[0].End, 1e-9)
	assert.InDelta(t, 0.8774, best.Fractions[0], 1e-3)
	assert.InDelta(t, 0.0026, best.CoGError, 1e-3)
}

func TestSearchOneDeterministicAcrossWorkers(t *testing.T) {
	b := body.Default()
	regions := PermittedRegions(&b, 0.25, 0.05)

	opts := DefaultSearchOptions()
	opts.Step = 0.1
	opts.CoGTolerance = 0.2

	opts.Workers = 1
	serial, err := SearchOne(context.Background(), &b, regions, opts)
	require.NoError(t, err)

	opts.Workers = 8
	parallel, err := SearchOne(context.Background(), &b, regions, opts)
	require.NoError(t, err)

	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Errorf("parallel search differs (-serial +parallel):\n%s", diff)
	}
}

func TestSearchOneNoMatch(t *testing.T) {
	b := body.Default()
	// The front region cannot pull the CoG back to 5.0.
	found, err := SearchOne(context.Background(), &b, []Region{{Name: "front", Start: 0.25, End: 1.5}}, DefaultSearchOptions())
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSearchOneErrors(t *testing.T) {
	b := body.Default()

	opts := DefaultSearchOptions()
	opts.Step = 0
	_, err := SearchOne(context.Background(), &b, []Region{{Start: 1, End: 2}}, opts)
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = SearchOne(context.Background(), &b, []Region{{Start: 2, End: 2}}, DefaultSearchOptions())
	assert.ErrorIs(t, err, ErrInvalidRegion)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = SearchOne(ctx, &b, []Region{{Start: 6.1, End: 6.95}}, DefaultSearchOptions())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSearchTwo(t *testing.T) {
	b := body.Default()
	b.TargetCoG = 4.8
	opts := DefaultPairSearchOptions()

	middle := Region{Name: "middle", Start: 2.0, End: 5.75}
	rear := Region{Name: "rear", Start: 6.25, End: 6.95}

	found, err := SearchTwo(context.Background(), &b, middle, rear, opts)
	require.NoError(t, err)
	require.NotEmpty(t, found)

	for _, c := range found {
		require.Len(t, c.Cavities, 2)
		assert.Equal(t, c.Fractions[0], c.Fractions[1])
		assert.True(t, middle.Contains(c.Cavities[0].Start, c.Cavities[0].End))
		assert.True(t, rear.Contains(c.Cavities[1].Start, c.Cavities[1].End))
		assert.LessOrEqual(t, c.MassError, opts.MassTolerance)
		assert.LessOrEqual(t, c.CoGError, opts.CoGTolerance)
	}
	assert.True(t, sort.SliceIsSorted(found, func(i, j int) bool {
		return found[i].CoGError < found[j].CoGError
	}))
}

func TestSearchTwoTighterThanOne(t *testing.T) {
	assert.Less(t, DefaultPairSearchOptions().CoGTolerance, DefaultSearchOptions().CoGTolerance)
	assert.Less(t, DefaultSearchOptions().MassTolerance, DefaultSearchOptions().CoGTolerance)
}

func TestSearchTwoSkipsOverlap(t *testing.T) {
	b := body.Default()
	b.TargetCoG = 4.8
	opts := DefaultPairSearchOptions()
	opts.CoGTolerance = 1

	r := Region{Start: 6.25, End: 6.95}
	found, err := SearchTwo(context.Background(), &b, r, r, opts)
	require.NoError(t, err)
	for _, c := range found {
		assert.False(t, cavity.Overlap(c.Cavities[0].Geometry, c.Cavities[1].Geometry))
	}
}

func TestSearchTwoCanceled(t *testing.T) {
	b := body.Default()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	middle := Region{Name: "middle", Start: 2.0, End: 5.75}
	rear := Region{Name: "rear", Start: 6.25, End: 6.95}
	_, err := SearchTwo(ctx, &b, middle, rear, DefaultPairSearchOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchRejectsInvalidBody(t *testing.T) {
	b := body.Default()
	// Lighter than the wood it replaces
	b.FillDensity = 0.5
	rear := Region{Name: "rear", Start: 6.25, End: 6.95}
	var verr *body.ValidationError

	_, err := SearchOne(context.Background(), &b, []Region{rear}, DefaultSearchOptions())
	assert.ErrorAs(t, err, &verr)

	_, err = SearchTwo(context.Background(), &b, Region{Start: 2, End: 5.75}, rear, DefaultPairSearchOptions())
	assert.ErrorAs(t, err, &verr)
}
