package diagram

import (
	"fmt"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
)

// samples per body length for outlines
const profileSamples = 140

// NewProfileData samples the body profile and cavity ceilings for drawing.
// fractions pairs with cavities; a missing fraction draws the cavity empty.
// cog of 0 omits the CoG marker.
func NewProfileData(b *body.Spec, cavities []cavity.Cavity, fractions []float64, cog float64) ProfileDiagramData {
	data := ProfileDiagramData{
		Length:    b.Length,
		Axles:     []float64{b.FrontAxle, b.RearAxle},
		CoG:       cog,
		TargetCoG: b.TargetCoG,
	}

	for i := 0; i <= profileSamples; i++ {
		x := b.Length * float64(i) / profileSamples
		data.Profile = append(data.Profile, Point{X: x, Y: b.Height(x)})
	}

	for i, c := range cavities {
		outline := CavityOutline{Label: fmt.Sprintf("C%d", i+1)}
		if i < len(fractions) {
			outline.Fraction = fractions[i]
		}

		start, end := max(c.Start, 0), min(c.End, b.Length)
		n := max(int((end-start)/b.Length*profileSamples), 1)
		for k := 0; k <= n && end > start; k++ {
			x := start + (end-start)*float64(k)/float64(n)
			y := b.Height(x)
			if c.Shape == cavity.Pocket {
				y = min(y, c.Depth)
			}
			outline.Top = append(outline.Top, Point{X: x, Y: y})
		}
		data.Cavities = append(data.Cavities, outline)
	}

	return data
}
