package solver

import (
	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
	"github.com/alexiusacademia/gocog/internal/mass"
)

// FillFraction returns the fill fraction, common to all cavities, that
// brings the car exactly to its target mass. ok is false when the body is
// invalid, the cavities hold no fill or cut the same material, or the
// fraction falls outside [0, 1].
func FillFraction(b *body.Spec, cavities []cavity.Cavity) (fraction float64, ok bool) {
	if b.Validate() != nil {
		return 0, false
	}
	f, ok := fillFraction(b, b.Base(), cavities)
	return f, ok && collision(b, cavities) == ""
}

func fillFraction(b *body.Spec, base body.Properties, cavities []cavity.Cavity) (float64, bool) {
	capacity := totalCapacity(cavities)
	if capacity <= 0 {
		return 0, false
	}

	residual, _ := mass.Residual(base, cavities)
	f := (b.TargetMass - residual - base.AuxMass) / capacity
	return f, f >= 0 && f <= 1
}

// SolveFill analyzes the given geometries and fills them all to the common
// fraction that hits the target mass. The CoG is whatever results.
func SolveFill(b *body.Spec, geoms []cavity.Geometry) Candidate {
	cavities := make([]cavity.Cavity, len(geoms))
	for i, g := range geoms {
		cavities[i] = cavity.Analyze(b, g)
	}
	if err := b.Validate(); err != nil {
		return Candidate{Cavities: cavities, Message: err.Error()}
	}
	return solveFill(b, b.Base(), cavities)
}

func solveFill(b *body.Spec, base body.Properties, cavities []cavity.Cavity) Candidate {
	f, _ := fillFraction(b, base, cavities)

	fractions := make([]float64, len(cavities))
	for i := range fractions {
		fractions[i] = f
	}

	cand := evaluate(b, base, cavities, fractions)
	if totalCapacity(cavities) <= 0 {
		cand.Feasible = false
		cand.Message = "cavities hold no fill"
	}
	return cand
}

func totalCapacity(cavities []cavity.Cavity) float64 {
	var capacity float64
	for _, c := range cavities {
		capacity += c.MassAdded
	}
	return capacity
}
