package body

import (
	"fmt"

	"github.com/alexiusacademia/gocog/internal/material"
)

// Spec describes a car body blank and the targets it must reach.
// Positions are measured from the nose along the length axis; heights are
// measured from the bottom face.
type Spec struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`

	// Overall dimensions
	Length float64 `json:"length" yaml:"length" toml:"length"`
	Width  float64 `json:"width" yaml:"width" toml:"width"`

	// Stock block: nominal height and weighed mass, used to derive density
	StockHeight float64 `json:"stock_height" yaml:"stock_height" toml:"stock_height"`
	RawMass     float64 `json:"raw_mass" yaml:"raw_mass" toml:"raw_mass"`

	// Side profile heights at the four control points
	Profile Profile `json:"profile" yaml:"profile" toml:"profile"`

	// Axle positions, also the interior profile control points
	FrontAxle float64 `json:"front_axle" yaml:"front_axle" toml:"front_axle"`
	RearAxle  float64 `json:"rear_axle" yaml:"rear_axle" toml:"rear_axle"`

	// Density of the cavity fill material
	FillDensity float64 `json:"fill_density" yaml:"fill_density" toml:"fill_density"`

	// Fixed masses (wheels, axles, screws)
	PointMasses []PointMass `json:"point_masses" yaml:"point_masses" toml:"point_masses"`

	// Targets
	TargetMass float64 `json:"target_mass" yaml:"target_mass" toml:"target_mass"`
	TargetCoG  float64 `json:"target_cog" yaml:"target_cog" toml:"target_cog"`
}

// Profile holds the side-profile heights at nose, front axle, rear axle
// and tail.
type Profile struct {
	Nose  float64 `json:"nose" yaml:"nose" toml:"nose"`
	Front float64 `json:"front" yaml:"front" toml:"front"`
	Rear  float64 `json:"rear" yaml:"rear" toml:"rear"`
	Tail  float64 `json:"tail" yaml:"tail" toml:"tail"`
}

// PointMass is a fixed mass concentrated at a position.
type PointMass struct {
	Name     string  `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Mass     float64 `json:"mass" yaml:"mass" toml:"mass"`
	Position float64 `json:"position" yaml:"position" toml:"position"`
}

// Default returns the reference car: a 7 in body with a wedge profile,
// tungsten putty fill and wheel sets at both axles.
func Default() Spec {
	return Spec{
		Name:        "reference",
		Description: "7 in wedge, tungsten putty fill",
		Length:      7.0,
		Width:       1.75,
		StockHeight: 0.55,
		RawMass:     4.851,
		Profile: Profile{
			Nose:  0.05,
			Front: 0.25,
			Rear:  0.50,
			Tail:  0.55,
		},
		FrontAxle:   1.75,
		RearAxle:    6.0,
		FillDensity: material.TungstenPutty,
		PointMasses: []PointMass{
			{Name: "front wheels", Mass: 0.25, Position: 1.75},
			{Name: "rear wheels", Mass: 0.25, Position: 6.0},
		},
		TargetMass: 5.0,
		TargetCoG:  5.0,
	}
}

// Density returns the base material density derived from the raw block.
func (s *Spec) Density() float64 {
	return material.Density(s.RawMass, s.Width, s.Length, s.StockHeight)
}

// AuxMass returns the sum of all point masses and their first moment
// about the nose.
func (s *Spec) AuxMass() (mass, moment float64) {
	for _, pm := range s.PointMasses {
		mass += pm.Mass
		moment += pm.Mass * pm.Position
	}
	return mass, moment
}

// Validate checks that the spec describes a buildable body whose targets
// are reachable by adding fill.
func (s *Spec) Validate() error {
	if s.Length <= 0 {
		return &ValidationError{fmt.Sprintf("length must be positive, got %g", s.Length)}
	}
	if s.Width <= 0 {
		return &ValidationError{fmt.Sprintf("width must be positive, got %g", s.Width)}
	}
	if s.StockHeight <= 0 {
		return &ValidationError{fmt.Sprintf("stock height must be positive, got %g", s.StockHeight)}
	}
	if s.RawMass <= 0 {
		return &ValidationError{fmt.Sprintf("raw mass must be positive, got %g", s.RawMass)}
	}
	p := s.Profile
	if p.Nose < 0 || p.Front < 0 || p.Rear < 0 || p.Tail < 0 {
		return &ValidationError{"profile heights must not be negative"}
	}
	if s.FrontAxle <= 0 || s.FrontAxle >= s.RearAxle || s.RearAxle >= s.Length {
		return &ValidationError{fmt.Sprintf("axles must satisfy 0 < front (%g) < rear (%g) < length (%g)",
			s.FrontAxle, s.RearAxle, s.Length)}
	}
	if density := s.Density(); s.FillDensity <= density {
		return &ValidationError{fmt.Sprintf("fill density %g must exceed base density %g", s.FillDensity, density)}
	}
	for i, pm := range s.PointMasses {
		if pm.Mass < 0 {
			return &ValidationError{fmt.Sprintf("point mass %d must not be negative", i+1)}
		}
	}
	if s.TargetMass <= 0 {
		return &ValidationError{fmt.Sprintf("target mass must be positive, got %g", s.TargetMass)}
	}
	return nil
}

// ValidationError represents a body spec validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return "invalid body spec: " + e.msg
}
