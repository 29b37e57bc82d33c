// Package solver finds cavity geometries and fill fractions that bring a
// body to its target mass and center of gravity.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
	"github.com/alexiusacademia/gocog/internal/mass"
)

var (
	// ErrInvalidRegion indicates a permitted region with no length.
	ErrInvalidRegion = errors.New("solver: invalid region")

	// ErrInvalidStep indicates a non-positive grid step.
	ErrInvalidStep = errors.New("solver: grid step must be positive")
)

// Candidate is one evaluated solution: cavities, their fill fractions, and
// how close the finished car comes to the targets.
type Candidate struct {
	Cavities  []cavity.Cavity
	Fractions []float64 // One per cavity

	// Finished car
	Mass float64
	CoG  float64

	// Absolute errors against the targets
	MassError float64
	CoGError  float64

	// Status
	Feasible bool
	Message  string
}

// Region is a span in which cavity walls may be placed.
type Region struct {
	Name  string
	Start float64
	End   float64
}

// Validate checks that the region has positive length.
func (r Region) Validate() error {
	if !(r.End > r.Start) {
		return fmt.Errorf("%w: %q [%g, %g]", ErrInvalidRegion, r.Name, r.Start, r.End)
	}
	return nil
}

// Contains reports whether the span [start, end] lies inside the region.
func (r Region) Contains(start, end float64) bool {
	const eps = 1e-9
	return start >= r.Start-eps && end <= r.End+eps && start <= end
}

func (r Region) String() string {
	if r.Name == "" {
		return fmt.Sprintf("[%.3f, %.3f]", r.Start, r.End)
	}
	return fmt.Sprintf("%s [%.3f, %.3f]", r.Name, r.Start, r.End)
}

// Evaluate builds a candidate for fixed cavities and fractions. Feasible is
// set when the body is valid, every fraction lies in [0, 1] and no two
// cavities cut the same material; tolerances are left to callers.
// fractions must pair one to one with cavities.
func Evaluate(b *body.Spec, cavities []cavity.Cavity, fractions []float64) Candidate {
	if err := b.Validate(); err != nil {
		return Candidate{Cavities: cavities, Fractions: fractions, Message: err.Error()}
	}
	return evaluate(b, b.Base(), cavities, fractions)
}

func evaluate(b *body.Spec, base body.Properties, cavities []cavity.Cavity, fractions []float64) Candidate {
	if len(fractions) != len(cavities) {
		return Candidate{
			Cavities:  cavities,
			Fractions: fractions,
			Message:   fmt.Sprintf("%d fill fractions for %d cavities", len(fractions), len(cavities)),
		}
	}

	fills := make([]mass.Fill, len(cavities))
	for i, c := range cavities {
		fills[i] = mass.Fill{Cavity: c, Fraction: fractions[i]}
	}
	r := mass.EvaluateWithBase(base, fills)

	cand := Candidate{
		Cavities:  cavities,
		Fractions: fractions,
		Mass:      r.Mass,
		CoG:       r.CoG,
		MassError: math.Abs(r.Mass - b.TargetMass),
		CoGError:  math.Abs(r.CoG - b.TargetCoG),
		Feasible:  true,
	}

	for i, f := range fractions {
		if math.IsNaN(f) || f < 0 || f > 1 {
			cand.Feasible = false
			cand.Message = fmt.Sprintf("fill fraction %d = %.4f outside [0, 1]", i+1, f)
			break
		}
	}

	if msg := collision(b, cavities); msg != "" {
		cand.Feasible = false
		cand.Message = msg
	}

	return cand
}

// collision describes the first pair of cavities that would cut the same
// material, or returns "".
func collision(b *body.Spec, cavities []cavity.Cavity) string {
	for i := range cavities {
		for j := i + 1; j < len(cavities); j++ {
			c1, c2 := cavities[i].Geometry, cavities[j].Geometry
			if cavity.Collide(c1, c2, b.Width) {
				return fmt.Sprintf("cavities %d and %d cut the same material: spans overlap and widths %.3f + %.3f exceed body width %.3f",
					i+1, j+1, c1.Width, c2.Width, b.Width)
			}
		}
	}
	return ""
}

// within reports whether a feasible candidate meets both tolerances.
func (c Candidate) within(massTol, cogTol float64) bool {
	return c.Feasible && c.MassError <= massTol && c.CoGError <= cogTol
}
