// Package scenario holds the catalog of built-in cavity designs and runs
// each through its solver.
package scenario

import (
	"github.com/alexiusacademia/gocog/internal/cavity"
)

// Strategy names the solver a design is run through.
type Strategy string

const (
	StrategyFill         Strategy = "fill"
	StrategyDifferential Strategy = "differential"
	StrategySearchOne    Strategy = "search-one"
	StrategySearchTwo    Strategy = "search-two"
	StrategyPrecise      Strategy = "precise"
	StrategyOptimize     Strategy = "optimize"
)

// Design is one built-in cavity layout and the way it is solved.
type Design struct {
	ID          string
	Description string
	Strategy    Strategy

	// Fixed cavities for fill and differential designs. Width 0 means
	// the full body width.
	Cavities []cavity.Geometry

	// Permitted region names for search designs; empty means all.
	Regions []string

	// TargetCoG overrides the body's CoG target when non-zero
	TargetCoG float64
}

// Designs is the catalog, positions in inches from the nose of the
// reference body.
var Designs = []Design{
	{
		ID:          "A",
		Description: "Through cut between the axles, single fill",
		Strategy:    StrategyFill,
		Cavities:    []cavity.Geometry{cavity.NewThrough(2.0, 5.75, 0)},
	},
	{
		ID:          "B",
		Description: "Two rear through cuts, differential fill",
		Strategy:    StrategyDifferential,
		Cavities: []cavity.Geometry{
			cavity.NewThrough(6.7, 6.98, 0),
			cavity.NewThrough(6.2, 6.6, 0),
		},
	},
	{
		ID:          "C",
		Description: "Nose and tail through cuts, differential fill",
		Strategy:    StrategyDifferential,
		Cavities: []cavity.Geometry{
			cavity.NewThrough(0.5, 1.5, 0),
			cavity.NewThrough(6.25, 6.75, 0),
		},
	},
	{
		ID:          "D",
		Description: "Single cavity grid search over all regions",
		Strategy:    StrategySearchOne,
	},
	{
		ID:          "E",
		Description: "Two cavity grid search, middle and rear, CoG 4.8",
		Strategy:    StrategySearchTwo,
		Regions:     []string{"middle", "rear"},
		TargetCoG:   4.8,
	},
	{
		ID:          "F",
		Description: "Precise volume and centroid back-solve",
		Strategy:    StrategyPrecise,
	},
	{
		ID:          "G",
		Description: "Nelder-Mead rear cavity",
		Strategy:    StrategyOptimize,
		Regions:     []string{"rear"},
	},
}
