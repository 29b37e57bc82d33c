package solver

import (
	"math"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
	"github.com/alexiusacademia/gocog/internal/mass"
)

// SingularThreshold is the smallest normalized determinant accepted by
// Differential. The determinant is divided by |P1·M2| + |P2·M1| so the
// test does not depend on the unit system.
const SingularThreshold = 1e-9

// Differential fills two fixed cavities to independent fractions f1, f2 so
// that both targets are met exactly:
//
//	f1·P1 + f2·P2 = targetMass − residualMass
//	f1·M1 + f2·M2 = targetMass·targetCoG − residualMoment
//
// where P is a cavity's full-fill mass and M its full-fill moment. The
// system is solved by Cramer's rule. Cavities whose centroids coincide give
// a singular system and an infeasible candidate, as do cavities that cut
// the same material.
func Differential(b *body.Spec, first, second cavity.Geometry) Candidate {
	return DifferentialCavities(b, cavity.Analyze(b, first), cavity.Analyze(b, second))
}

// DifferentialCavities is Differential for already analyzed cavities.
func DifferentialCavities(b *body.Spec, c1, c2 cavity.Cavity) Candidate {
	cavities := []cavity.Cavity{c1, c2}
	if err := b.Validate(); err != nil {
		return Candidate{Cavities: cavities, Message: err.Error()}
	}
	if msg := collision(b, cavities); msg != "" {
		return Candidate{Cavities: cavities, Message: msg}
	}
	base := b.Base()

	residualMass, residualMoment := mass.Residual(base, cavities)
	rhsMass := b.TargetMass - residualMass - base.AuxMass
	rhsMoment := b.TargetMass*b.TargetCoG - residualMoment - base.AuxMoment

	p1, p2 := c1.MassAdded, c2.MassAdded
	m1, m2 := c1.FillMoment(1), c2.FillMoment(1)

	det := p1*m2 - p2*m1
	scale := math.Abs(p1*m2) + math.Abs(p2*m1)
	if scale == 0 || math.Abs(det)/scale < SingularThreshold {
		return Candidate{
			Cavities: cavities,
			Feasible: false,
			Message:  "singular system: cavity centroids coincide or a cavity is empty",
		}
	}

	f1 := (rhsMass*m2 - p2*rhsMoment) / det
	f2 := (p1*rhsMoment - m1*rhsMass) / det

	return evaluate(b, base, cavities, []float64{f1, f2})
}
