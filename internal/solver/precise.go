package solver

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
)

// Requirement is the single fully-filled cavity that would hit both targets.
type Requirement struct {
	Volume   float64
	Centroid float64
	Feasible bool
	Message  string
}

// Required computes the volume and centroid a single cavity, filled to
// 100%, must have for the car to hit both targets:
//
//	volume   = (targetMass − baseMass − auxMass) / (fillDensity − baseDensity)
//	centroid = (targetCoG·targetMass − baseMoment − auxMoment) / (fillDensity − baseDensity) / volume
func Required(b *body.Spec) Requirement {
	base := b.Base()
	gain := b.FillDensity - base.Density
	if gain <= 0 {
		return Requirement{Message: "fill is not denser than the body"}
	}

	req := Requirement{
		Volume: (b.TargetMass - base.Mass - base.AuxMass) / gain,
	}
	if req.Volume <= 0 {
		req.Message = fmt.Sprintf("uncut car already weighs %.4f, target is %.4f", base.TotalMass, b.TargetMass)
		return req
	}

	req.Centroid = (b.TargetCoG*b.TargetMass - base.MassMoment - base.AuxMoment) / gain / req.Volume
	req.Feasible = true
	return req
}

// PreciseOptions controls the precise back-solve.
type PreciseOptions struct {
	Step              float64 // Spacing of trial start positions
	Width             float64 // 0 uses the body width
	Depth             float64 // > 0 cuts pockets
	CentroidTolerance float64
}

// DefaultPreciseOptions returns the default back-solve settings.
func DefaultPreciseOptions() PreciseOptions {
	return PreciseOptions{
		Step:              0.01,
		CentroidTolerance: 0.01,
	}
}

// Precise searches the permitted regions for one cavity that, filled to
// 100%, meets both targets. For each trial start the end wall is placed by
// bisection so the cavity holds exactly the required volume; the cavity
// whose centroid is closest to the required centroid wins. When no cavity
// gets within CentroidTolerance the candidate is infeasible.
func Precise(b *body.Spec, regions []Region, opts PreciseOptions) (Candidate, error) {
	if err := b.Validate(); err != nil {
		return Candidate{}, err
	}
	if !(opts.Step > 0) {
		return Candidate{}, ErrInvalidStep
	}
	for _, r := range regions {
		if err := r.Validate(); err != nil {
			return Candidate{}, err
		}
	}

	req := Required(b)
	if !req.Feasible {
		return Candidate{Message: req.Message}, nil
	}

	width := opts.Width
	if width <= 0 {
		width = b.Width
	}

	var best *cavity.Cavity
	bestErr := math.Inf(1)

	for _, r := range regions {
		n := int(math.Floor((r.End-r.Start)/opts.Step + 1e-9))
		for i := 0; i <= n; i++ {
			start := r.Start + float64(i)*opts.Step

			g := cavity.NewThrough(start, start, width)
			if opts.Depth > 0 {
				g = cavity.NewPocket(start, start, width, opts.Depth)
			}

			end, ok := EndForVolume(b, g, r.End, req.Volume)
			if !ok {
				// Later starts leave even less room.
				break
			}

			c := cavity.Analyze(b, g.WithSpan(start, end))
			if e := math.Abs(c.Centroid - req.Centroid); e < bestErr {
				best, bestErr = &c, e
			}
		}
	}

	if best == nil || bestErr > opts.CentroidTolerance {
		return Candidate{
			Message: fmt.Sprintf("no solution: no cavity of volume %.4f has its centroid within %.4f of %.4f",
				req.Volume, opts.CentroidTolerance, req.Centroid),
		}, nil
	}

	return evaluate(b, b.Base(), []cavity.Cavity{*best}, []float64{1}), nil
}
