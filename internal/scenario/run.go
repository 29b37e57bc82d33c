package scenario

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
	"github.com/alexiusacademia/gocog/internal/solver"
)

// Result holds the outcome of running a design
type Result struct {
	Design     Design
	Body       body.Spec // The body as solved, with any target override
	Candidates []solver.Candidate
}

// Best returns the first candidate, if any.
func (r Result) Best() (solver.Candidate, bool) {
	if len(r.Candidates) == 0 {
		return solver.Candidate{}, false
	}
	return r.Candidates[0], true
}

// Lookup finds a design by ID, case-insensitively.
func Lookup(id string) (Design, error) {
	for _, d := range Designs {
		if strings.EqualFold(d.ID, id) {
			return d, nil
		}
	}
	return Design{}, fmt.Errorf("unknown design %q", id)
}

// Run solves design d on body b. b is not modified.
func Run(ctx context.Context, b *body.Spec, d Design, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	spec := *b
	if d.TargetCoG != 0 {
		spec.TargetCoG = d.TargetCoG
	}
	res := Result{Design: d, Body: spec}

	geoms := make([]cavity.Geometry, len(d.Cavities))
	for i, g := range d.Cavities {
		if g.Width == 0 {
			g.Width = spec.Width
		}
		geoms[i] = g
	}

	regions, err := solver.SelectRegions(&spec, d.Regions, solver.DefaultAxleMargin, solver.DefaultEndMargin)
	if err != nil {
		return res, err
	}

	log.Debug("running design",
		zap.String("id", d.ID),
		zap.String("strategy", string(d.Strategy)),
		zap.Int("cavities", len(geoms)),
		zap.Int("regions", len(regions)))

	switch d.Strategy {
	case StrategyFill:
		res.Candidates = []solver.Candidate{solver.SolveFill(&spec, geoms)}

	case StrategyDifferential:
		if len(geoms) != 2 {
			return res, fmt.Errorf("design %s: differential fill needs 2 cavities, got %d", d.ID, len(geoms))
		}
		res.Candidates = []solver.Candidate{solver.Differential(&spec, geoms[0], geoms[1])}

	case StrategySearchOne:
		opts := solver.DefaultSearchOptions()
		opts.Logger = log
		res.Candidates, err = solver.SearchOne(ctx, &spec, regions, opts)

	case StrategySearchTwo:
		if len(regions) != 2 {
			return res, fmt.Errorf("design %s: two cavity search needs 2 regions, got %d", d.ID, len(regions))
		}
		opts := solver.DefaultPairSearchOptions()
		opts.Logger = log
		res.Candidates, err = solver.SearchTwo(ctx, &spec, regions[0], regions[1], opts)

	case StrategyPrecise:
		var cand solver.Candidate
		cand, err = solver.Precise(&spec, regions, solver.DefaultPreciseOptions())
		res.Candidates = []solver.Candidate{cand}

	case StrategyOptimize:
		if len(regions) != 1 {
			return res, fmt.Errorf("design %s: optimizer needs 1 region, got %d", d.ID, len(regions))
		}
		opts := solver.DefaultOptimizeOptions()
		opts.Logger = log
		var cand solver.Candidate
		cand, err = solver.Optimize(&spec, regions[0], opts)
		res.Candidates = []solver.Candidate{cand}

	default:
		return res, fmt.Errorf("design %s: unknown strategy %q", d.ID, d.Strategy)
	}

	if err != nil {
		return res, fmt.Errorf("design %s: %w", d.ID, err)
	}
	return res, nil
}
