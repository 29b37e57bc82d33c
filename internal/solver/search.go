package solver

import (
	"context"
	"math"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
)

// SearchOptions controls the grid searches.
type SearchOptions struct {
	Step      float64 // Grid spacing for cavity walls
	MinLength float64 // Shortest cavity considered; 0 means one step

	// Cavity cross-section. Width 0 uses the body width; Depth > 0 cuts
	// pockets instead of through-cuts.
	Width float64
	Depth float64

	// Acceptance. Mass is solved exactly, so its tolerance is the tighter.
	MassTolerance float64
	CoGTolerance  float64

	Workers int // Parallel evaluations; 0 means GOMAXPROCS
	Logger  *zap.Logger
}

// DefaultSearchOptions returns the settings for a one-cavity search.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Step:          0.05,
		MassTolerance: 0.01,
		CoGTolerance:  0.05,
	}
}

// DefaultPairSearchOptions returns the settings for a two-cavity search.
// Two free cavities match the CoG more closely, so its tolerance is tighter.
func DefaultPairSearchOptions() SearchOptions {
	return SearchOptions{
		Step:          0.1,
		MassTolerance: 0.01,
		CoGTolerance:  0.02,
	}
}

func (o SearchOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o SearchOptions) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o SearchOptions) geometry(b *body.Spec, start, end float64) cavity.Geometry {
	width := o.Width
	if width <= 0 {
		width = b.Width
	}
	if o.Depth > 0 {
		return cavity.NewPocket(start, end, width, o.Depth)
	}
	return cavity.NewThrough(start, end, width)
}

// Spans enumerates the (start, end) wall pairs on the grid of r, in
// discovery order: by start, then by end.
func Spans(r Region, step, minLength float64) [][2]float64 {
	if step <= 0 || r.End <= r.Start {
		return nil
	}
	if minLength <= 0 {
		minLength = step
	}

	const eps = 1e-9
	n := int(math.Floor((r.End-r.Start)/step + eps))
	minSteps := int(math.Ceil(minLength/step - eps))

	var spans [][2]float64
	for i := 0; i <= n; i++ {
		for j := i + minSteps; j <= n; j++ {
			spans = append(spans, [2]float64{
				r.Start + float64(i)*step,
				r.Start + float64(j)*step,
			})
		}
	}
	return spans
}

func validateSearch(b *body.Spec, regions []Region, opts SearchOptions) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if !(opts.Step > 0) {
		return ErrInvalidStep
	}
	for _, r := range regions {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SearchOne grid-searches a single cavity across the permitted regions.
// Each candidate gets the fill fraction that hits the target mass exactly;
// candidates with an infeasible fraction or outside either tolerance are
// dropped. Survivors are ranked by CoG error, ties kept in discovery order.
func SearchOne(ctx context.Context, b *body.Spec, regions []Region, opts SearchOptions) ([]Candidate, error) {
	if err := validateSearch(b, regions, opts); err != nil {
		return nil, err
	}
	log := opts.logger()
	base := b.Base()

	var geoms []cavity.Geometry
	for _, r := range regions {
		for _, s := range Spans(r, opts.Step, opts.MinLength) {
			geoms = append(geoms, opts.geometry(b, s[0], s[1]))
		}
	}

	results := make([]*Candidate, len(geoms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i, geom := range geoms {
		i, geom := i, geom
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c := cavity.Analyze(b, geom)
			cand := solveFill(b, base, []cavity.Cavity{c})
			if cand.within(opts.MassTolerance, opts.CoGTolerance) {
				results[i] = &cand
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	found := collect(results)
	log.Debug("single cavity search done",
		zap.Int("regions", len(regions)),
		zap.Int("evaluated", len(geoms)),
		zap.Int("accepted", len(found)))

	return found, nil
}

// SearchTwo grid-searches one cavity in each of two regions, filled to a
// shared fraction. Filtering and ranking follow SearchOne. Pairs whose
// spans overlap are skipped.
func SearchTwo(ctx context.Context, b *body.Spec, first, second Region, opts SearchOptions) ([]Candidate, error) {
	if err := validateSearch(b, []Region{first, second}, opts); err != nil {
		return nil, err
	}
	log := opts.logger()
	base := b.Base()

	// Each region's cavities are analyzed once and reused for every pair.
	prep, pctx := errgroup.WithContext(ctx)
	analyze := func(r Region) ([]cavity.Cavity, error) {
		spans := Spans(r, opts.Step, opts.MinLength)
		out := make([]cavity.Cavity, len(spans))
		for i, s := range spans {
			if err := pctx.Err(); err != nil {
				return nil, err
			}
			out[i] = cavity.Analyze(b, opts.geometry(b, s[0], s[1]))
		}
		return out, nil
	}

	var fronts, rears []cavity.Cavity
	prep.Go(func() (err error) {
		fronts, err = analyze(first)
		return err
	})
	prep.Go(func() (err error) {
		rears, err = analyze(second)
		return err
	})
	if err := prep.Wait(); err != nil {
		return nil, err
	}

	rows := make([][]*Candidate, len(fronts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i, c1 := range fronts {
		i, c1 := i, c1
		g.Go(func() error {
			row := make([]*Candidate, len(rears))
			for j, c2 := range rears {
				if err := gctx.Err(); err != nil {
					return err
				}
				if cavity.Overlap(c1.Geometry, c2.Geometry) {
					continue
				}
				cand := solveFill(b, base, []cavity.Cavity{c1, c2})
				if cand.within(opts.MassTolerance, opts.CoGTolerance) {
					row[j] = &cand
				}
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []*Candidate
	for _, row := range rows {
		results = append(results, row...)
	}

	found := collect(results)
	log.Debug("two cavity search done",
		zap.Stringer("first", first),
		zap.Stringer("second", second),
		zap.Int("evaluated", len(fronts)*len(rears)),
		zap.Int("accepted", len(found)))

	return found, nil
}

// collect drops nil slots and ranks by CoG error, stable in slot order.
func collect(results []*Candidate) []Candidate {
	var found []Candidate
	for _, r := range results {
		if r != nil {
			found = append(found, *r)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].CoGError < found[j].CoGError
	})
	return found
}
