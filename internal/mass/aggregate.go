// Package mass combines the cut body, filled cavities and point masses into
// a total mass and center of gravity.
package mass

import (
	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
)

// Fill assigns a fill fraction to an analyzed cavity.
type Fill struct {
	Cavity   cavity.Cavity
	Fraction float64
}

// Result holds the mass breakdown of a finished car
type Result struct {
	// Wood left after all cavities are cut
	ResidualMass   float64
	ResidualMoment float64

	// Fill material
	FillMass   float64
	FillMoment float64

	// Point masses
	AuxMass   float64
	AuxMoment float64

	// Totals
	Mass   float64
	Moment float64
	CoG    float64
}

// Residual returns the wood mass and first moment left after cutting the
// given cavities from a body with the given base properties. Each cavity
// subtracts its own integrated moment, at its own width and depth.
// Cavities must not cut the same material (see cavity.Collide); colliding
// cuts are subtracted once each.
func Residual(base body.Properties, cavities []cavity.Cavity) (mass, moment float64) {
	mass, moment = base.Mass, base.MassMoment
	for _, c := range cavities {
		mass -= c.MassRemoved
		moment -= c.Centroid * c.MassRemoved
	}
	return mass, moment
}

// Evaluate computes the finished car's mass and CoG.
func Evaluate(b *body.Spec, fills []Fill) Result {
	return EvaluateWithBase(b.Base(), fills)
}

// EvaluateWithBase is Evaluate with precomputed base properties, for
// searches that evaluate many candidates on one body.
func EvaluateWithBase(base body.Properties, fills []Fill) Result {
	cavities := make([]cavity.Cavity, len(fills))
	for i, f := range fills {
		cavities[i] = f.Cavity
	}

	r := Result{AuxMass: base.AuxMass, AuxMoment: base.AuxMoment}
	r.ResidualMass, r.ResidualMoment = Residual(base, cavities)

	for _, f := range fills {
		r.FillMass += f.Cavity.FillMass(f.Fraction)
		r.FillMoment += f.Cavity.FillMoment(f.Fraction)
	}

	r.Mass = r.ResidualMass + r.FillMass + r.AuxMass
	r.Moment = r.ResidualMoment + r.FillMoment + r.AuxMoment
	if r.Mass != 0 {
		r.CoG = r.Moment / r.Mass
	}

	return r
}
