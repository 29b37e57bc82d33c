// Package cavity maps a cavity's declared geometry onto the body profile to
// get its volume, centroid and the mass it removes and can hold.
package cavity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/integrate"
)

// Shape is the cut type of a cavity.
type Shape int

const (
	// Through cuts the full local profile height.
	Through Shape = iota
	// Pocket cuts up from the bottom face to a fixed depth.
	Pocket
)

func (s Shape) String() string {
	switch s {
	case Through:
		return "through"
	case Pocket:
		return "pocket"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Geometry is the declared shape of a cavity.
type Geometry struct {
	Start float64 // Position of the front wall
	End   float64 // Position of the rear wall
	Width float64 // Across the body
	Shape Shape
	Depth float64 // Pocket depth; ignored for Through
}

// NewThrough returns a through-cut geometry.
func NewThrough(start, end, width float64) Geometry {
	return Geometry{Start: start, End: end, Width: width, Shape: Through}
}

// NewPocket returns a bottom pocket geometry.
func NewPocket(start, end, width, depth float64) Geometry {
	return Geometry{Start: start, End: end, Width: width, Shape: Pocket, Depth: depth}
}

// Length returns the span of the cavity, or 0 when End <= Start.
func (g Geometry) Length() float64 {
	return max(g.End-g.Start, 0)
}

// WithSpan returns a copy of g spanning [start, end].
func (g Geometry) WithSpan(start, end float64) Geometry {
	g.Start, g.End = start, end
	return g
}

func (g Geometry) String() string {
	if g.Shape == Pocket {
		return fmt.Sprintf("pocket [%.3f, %.3f] w=%.3f d=%.3f", g.Start, g.End, g.Width, g.Depth)
	}
	return fmt.Sprintf("through [%.3f, %.3f] w=%.3f", g.Start, g.End, g.Width)
}

// Overlap reports whether the spans of a and b share any length.
func Overlap(a, b Geometry) bool {
	return a.Start < b.End && b.Start < a.End && a.Length() > 0 && b.Length() > 0
}

// Collide reports whether a and b would cut the same material in a body
// of the given width: their spans overlap and their widths, clipped to the
// body, cannot sit side by side.
func Collide(a, b Geometry, bodyWidth float64) bool {
	const eps = 1e-9
	wa := min(max(a.Width, 0), bodyWidth)
	wb := min(max(b.Width, 0), bodyWidth)
	return Overlap(a, b) && wa+wb > bodyWidth+eps
}

// Cavity is an analyzed geometry
type Cavity struct {
	Geometry

	Volume      float64 // Material removed
	Moment      float64 // First moment of Volume about the nose
	Centroid    float64 // Moment / Volume, 0 for an empty cavity
	MassRemoved float64 // Base material displaced
	MassAdded   float64 // Fill mass at 100%
}

// Analyze integrates g over the body profile. The span is clipped to the
// body and the width to the body width; pocket depth is clamped to the
// local profile height, so an over-deep pocket silently under-cuts.
func Analyze(b *body.Spec, g Geometry) Cavity {
	c := Cavity{Geometry: g}

	start := max(g.Start, 0)
	end := min(g.End, b.Length)
	width := min(max(g.Width, 0), b.Width)
	if start >= end || width == 0 {
		return c
	}

	depth := b.Height
	if g.Shape == Pocket {
		d := max(g.Depth, 0)
		depth = func(x float64) float64 {
			return min(d, b.Height(x))
		}
	}

	c.Volume = integrate.Definite(func(x float64) float64 {
		return depth(x) * width
	}, start, end)
	c.Moment = integrate.Definite(func(x float64) float64 {
		return x * depth(x) * width
	}, start, end)

	if c.Volume > 0 {
		c.Centroid = c.Moment / c.Volume
	}

	c.MassRemoved = c.Volume * b.Density()
	c.MassAdded = c.Volume * b.FillDensity

	return c
}

// FillMass returns the fill mass at the given fraction of capacity.
func (c Cavity) FillMass(fraction float64) float64 {
	return c.MassAdded * fraction
}

// FillMoment returns the first moment of the fill at the given fraction.
func (c Cavity) FillMoment(fraction float64) float64 {
	return c.Centroid * c.MassAdded * fraction
}

// NetMass returns the change in car mass when the cavity is cut and filled
// to the given fraction.
func (c Cavity) NetMass(fraction float64) float64 {
	return c.FillMass(fraction) - c.MassRemoved
}

// ParseGeometry parses "start:end[:width[:depth]]". A missing width uses
// defaultWidth; a depth makes the cavity a pocket.
func ParseGeometry(s string, defaultWidth float64) (Geometry, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 4 {
		return Geometry{}, fmt.Errorf("cavity %q: want start:end[:width[:depth]]", s)
	}

	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Geometry{}, fmt.Errorf("cavity %q: %w", s, err)
		}
		vals[i] = v
	}

	g := NewThrough(vals[0], vals[1], defaultWidth)
	if len(vals) >= 3 {
		g.Width = vals[2]
	}
	if len(vals) == 4 {
		g.Shape = Pocket
		g.Depth = vals[3]
	}

	if g.Start >= g.End {
		return Geometry{}, fmt.Errorf("cavity %q: start must be before end", s)
	}
	if g.Width <= 0 {
		return Geometry{}, fmt.Errorf("cavity %q: width must be positive", s)
	}
	return g, nil
}
