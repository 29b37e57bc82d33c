package solver

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
)

// OptimizeOptions controls the Nelder–Mead cavity search.
type OptimizeOptions struct {
	Width     float64 // 0 uses the body width
	Depth     float64 // > 0 cuts pockets
	MinLength float64

	MassTolerance float64
	CoGTolerance  float64

	MaxEvaluations int
	Logger         *zap.Logger
}

// DefaultOptimizeOptions matches the acceptance of DefaultSearchOptions.
func DefaultOptimizeOptions() OptimizeOptions {
	return OptimizeOptions{
		MinLength:      0.05,
		MassTolerance:  0.01,
		CoGTolerance:   0.05,
		MaxEvaluations: 2000,
	}
}

// infeasible objective values sit above any reachable CoG error
const penaltyFloor = 10.0

// Optimize places one cavity in r by minimizing the CoG error over its
// (start, end) walls with Nelder–Mead, filling it to the fraction that
// hits the target mass. Walls outside r, cavities shorter than MinLength
// and infeasible fractions are penalized. The returned candidate is
// Feasible only when it meets both tolerances.
func Optimize(b *body.Spec, r Region, opts OptimizeOptions) (Candidate, error) {
	if err := b.Validate(); err != nil {
		return Candidate{}, err
	}
	if err := r.Validate(); err != nil {
		return Candidate{}, err
	}
	if opts.MinLength > r.End-r.Start {
		return Candidate{}, fmt.Errorf("%w: %s shorter than minimum cavity length %g", ErrInvalidRegion, r, opts.MinLength)
	}

	log := zap.NewNop()
	if opts.Logger != nil {
		log = opts.Logger
	}

	base := b.Base()
	width := opts.Width
	if width <= 0 {
		width = b.Width
	}
	geometry := func(start, end float64) cavity.Geometry {
		if opts.Depth > 0 {
			return cavity.NewPocket(start, end, width, opts.Depth)
		}
		return cavity.NewThrough(start, end, width)
	}

	objective := func(x []float64) float64 {
		start, end := x[0], x[1]
		violation := max(r.Start-start, 0) + max(end-r.End, 0) + max(opts.MinLength-(end-start), 0)
		if violation > 0 {
			return penaltyFloor + violation
		}

		c := cavity.Analyze(b, geometry(start, end))
		f, ok := fillFraction(b, base, []cavity.Cavity{c})
		if !ok {
			return penaltyFloor + max(-f, f-1, 0)
		}
		return evaluate(b, base, []cavity.Cavity{c}, []float64{f}).CoGError
	}

	quarter := (r.End - r.Start) / 4
	x0 := []float64{r.Start + quarter, r.End - quarter}

	settings := &optimize.Settings{
		FuncEvaluations: opts.MaxEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 200,
		},
	}
	method := &optimize.NelderMead{SimplexSize: quarter}

	res, err := optimize.Minimize(optimize.Problem{Func: objective}, x0, settings, method)
	if res == nil || len(res.X) != 2 {
		if err == nil {
			err = errors.New("no result")
		}
		return Candidate{}, fmt.Errorf("nelder-mead: %w", err)
	}
	log.Debug("nelder-mead finished",
		zap.Stringer("region", r),
		zap.String("status", res.Status.String()),
		zap.Int("evaluations", res.Stats.FuncEvaluations),
		zap.Float64("objective", res.F))

	start := max(res.X[0], r.Start)
	end := min(res.X[1], r.End)
	cand := solveFill(b, base, []cavity.Cavity{cavity.Analyze(b, geometry(start, end))})

	switch {
	case !cand.Feasible:
	case end-start < opts.MinLength:
		cand.Feasible = false
		cand.Message = "optimizer collapsed the cavity below minimum length"
	case cand.MassError > opts.MassTolerance || cand.CoGError > opts.CoGTolerance:
		cand.Feasible = false
		cand.Message = fmt.Sprintf("best CoG error %.4f exceeds tolerance %.4f", cand.CoGError, opts.CoGTolerance)
	}

	return cand, nil
}
