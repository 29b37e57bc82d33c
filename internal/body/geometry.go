package body

import "github.com/alexiusacademia/gocog/internal/integrate"

// Properties holds the integrated properties of the uncut body
type Properties struct {
	// Geometry
	Volume   float64 // Profiled volume
	Moment   float64 // First moment of volume about the nose
	Centroid float64 // Volume centroid

	// Wood
	Density    float64
	Mass       float64
	MassMoment float64

	// Point masses
	AuxMass   float64
	AuxMoment float64

	// Uncut car: wood plus point masses
	TotalMass float64
	CoG       float64
}

// Base integrates the full profile to get the uncut body's volume, mass
// and first moments.
func (s *Spec) Base() Properties {
	props := Properties{Density: s.Density()}

	props.Volume = integrate.Definite(func(x float64) float64 {
		return s.Height(x) * s.Width
	}, 0, s.Length)
	props.Moment = integrate.Definite(func(x float64) float64 {
		return x * s.Height(x) * s.Width
	}, 0, s.Length)

	if props.Volume > 0 {
		props.Centroid = props.Moment / props.Volume
	}

	props.Mass = props.Volume * props.Density
	props.MassMoment = props.Moment * props.Density
	props.AuxMass, props.AuxMoment = s.AuxMass()

	props.TotalMass = props.Mass + props.AuxMass
	if props.TotalMass > 0 {
		props.CoG = (props.MassMoment + props.AuxMoment) / props.TotalMass
	}

	return props
}
