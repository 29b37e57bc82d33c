package solver

import (
	"fmt"

	"github.com/alexiusacademia/gocog/internal/body"
)

// PermittedRegions splits the body into the spans where cavity walls may
// go: front (nose to front axle), middle (between axles) and rear (rear
// axle to tail). axleMargin is kept clear on both sides of each axle and
// endMargin at the nose and tail. Regions left with no length are dropped.
func PermittedRegions(b *body.Spec, axleMargin, endMargin float64) []Region {
	candidates := []Region{
		{Name: "front", Start: endMargin, End: b.FrontAxle - axleMargin},
		{Name: "middle", Start: b.FrontAxle + axleMargin, End: b.RearAxle - axleMargin},
		{Name: "rear", Start: b.RearAxle + axleMargin, End: b.Length - endMargin},
	}

	var regions []Region
	for _, r := range candidates {
		if r.End > r.Start {
			regions = append(regions, r)
		}
	}
	return regions
}

// FindRegion returns the region with the given name.
func FindRegion(regions []Region, name string) (Region, bool) {
	for _, r := range regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// SelectRegions returns the permitted regions with the given names, in the
// order named, or all of them when names is empty.
func SelectRegions(b *body.Spec, names []string, axleMargin, endMargin float64) ([]Region, error) {
	all := PermittedRegions(b, axleMargin, endMargin)
	if len(names) == 0 {
		return all, nil
	}

	regions := make([]Region, 0, len(names))
	for _, name := range names {
		r, ok := FindRegion(all, name)
		if !ok {
			return nil, fmt.Errorf("%w: no permitted region %q (front, middle, rear) with axle margin %g and end margin %g",
				ErrInvalidRegion, name, axleMargin, endMargin)
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// Default clearances for PermittedRegions: room for the axle slot and its
// wall on each side, and a thin skin at nose and tail.
const (
	DefaultAxleMargin = 0.25
	DefaultEndMargin  = 0.05
)
