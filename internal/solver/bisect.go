package solver

import (
	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
)

// BisectIterations is the fixed iteration count of EndForVolume. Sixty
// halvings shrink any body-length bracket below float64 resolution.
const BisectIterations = 60

// EndForVolume finds the end wall for a cavity shaped like g, starting at
// g.Start, whose volume equals volume. The end is searched in
// [g.Start, limit]. ok is false when even the full bracket holds less than
// the required volume, or the volume is not positive.
func EndForVolume(b *body.Spec, g cavity.Geometry, limit, volume float64) (end float64, ok bool) {
	limit = min(limit, b.Length)
	if volume <= 0 || limit <= g.Start {
		return g.Start, false
	}

	volumeTo := func(e float64) float64 {
		return cavity.Analyze(b, g.WithSpan(g.Start, e)).Volume
	}

	if volumeTo(limit) < volume {
		return limit, false
	}

	lo, hi := g.Start, limit
	for i := 0; i < BisectIterations; i++ {
		mid := (lo + hi) / 2
		if volumeTo(mid) < volume {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2, true
}
