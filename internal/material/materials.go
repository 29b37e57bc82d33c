package material

import "fmt"

// Densities in oz/in³.
// Wood values are typical kiln-dried averages; individual blocks vary by
// ±20%, which is why body specs derive density from the weighed raw block.
const (
	// Stock woods
	Basswood = 0.24
	Pine     = 0.29
	Balsa    = 0.09

	// Fill materials
	TungstenPutty = 6.0
	Tungsten      = 11.14
	Lead          = 6.55
	Steel         = 4.54
	Zinc          = 4.12

	// Regulation limits for a standard car (oz, in)
	MaxCarMass   = 5.0
	MaxCarLength = 7.0
	MaxCarWidth  = 2.75
)

// Material is a named density.
type Material struct {
	Name    string
	Density float64
}

// Fills lists the fill materials known to the CLI, heaviest first.
var Fills = []Material{
	{Name: "tungsten", Density: Tungsten},
	{Name: "lead", Density: Lead},
	{Name: "tungsten-putty", Density: TungstenPutty},
	{Name: "steel", Density: Steel},
	{Name: "zinc", Density: Zinc},
}

// Density returns the bulk density of a stock block from its weighed mass
// and nominal dimensions. A zero stock volume yields zero.
func Density(rawMass, width, length, height float64) float64 {
	volume := width * length * height
	if volume <= 0 {
		return 0
	}
	return rawMass / volume
}

// LookupFill returns the fill material with the given name.
func LookupFill(name string) (Material, error) {
	for _, m := range Fills {
		if m.Name == name {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("unknown fill material %q", name)
}
