package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportProfile exports a car side view to an image file. The format is
// taken from the extension (png, svg, pdf); anything else gets ".png"
// appended.
func ExportProfile(data ProfileDiagramData, filename string) error {
	p, err := profilePlot(data)
	if err != nil {
		return err
	}

	width := 10 * vg.Inch
	height := 4 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func profilePlot(data ProfileDiagramData) (*plot.Plot, error) {
	if len(data.Profile) < 2 {
		return nil, fmt.Errorf("profile needs at least 2 points, got %d", len(data.Profile))
	}

	p := plot.New()
	p.Title.Text = "Car Side Profile"
	p.X.Label.Text = "Position from nose"
	p.Y.Label.Text = "Height"

	top := maxHeight(data.Profile)

	// Body outline, closed along the bottom face
	outline := make(plotter.XYs, 0, len(data.Profile)+3)
	outline = append(outline, plotter.XY{X: data.Profile[0].X, Y: 0})
	for _, pt := range data.Profile {
		outline = append(outline, plotter.XY{X: pt.X, Y: pt.Y})
	}
	outline = append(outline,
		plotter.XY{X: data.Profile[len(data.Profile)-1].X, Y: 0},
		plotter.XY{X: data.Profile[0].X, Y: 0})

	bodyPoly, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, err
	}
	bodyPoly.Color = color.RGBA{R: 222, G: 184, B: 135, A: 255}
	bodyPoly.LineStyle.Width = vg.Points(2)
	bodyPoly.LineStyle.Color = color.Black
	p.Add(bodyPoly)

	// Cavities: empty part first, then the fill over it
	for _, cav := range data.Cavities {
		if len(cav.Top) < 2 {
			continue
		}

		hole, err := plotter.NewPolygon(cavityPolygon(cav.Top, 1))
		if err != nil {
			return nil, err
		}
		hole.Color = color.White
		hole.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		p.Add(hole)

		if cav.Fraction > 0 {
			fill, err := plotter.NewPolygon(cavityPolygon(cav.Top, min(cav.Fraction, 1)))
			if err != nil {
				return nil, err
			}
			fill.Color = color.RGBA{R: 100, G: 100, B: 110, A: 220}
			fill.LineStyle.Width = 0
			p.Add(fill)
		}

		if cav.Label != "" {
			mid := cav.Top[len(cav.Top)/2]
			l, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    []plotter.XY{{X: mid.X, Y: mid.Y + top*0.08}},
				Labels: []string{fmt.Sprintf("%s %.0f%%", cav.Label, cav.Fraction*100)},
			})
			if err != nil {
				return nil, err
			}
			p.Add(l)
		}
	}

	// Axles
	if len(data.Axles) > 0 {
		pts := make(plotter.XYs, len(data.Axles))
		for i, a := range data.Axles {
			pts[i] = plotter.XY{X: a, Y: 0}
		}
		axles, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		axles.GlyphStyle.Color = color.Black
		axles.GlyphStyle.Radius = vg.Points(6)
		axles.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(axles)
	}

	// CoG markers
	markers := []struct {
		x     float64
		c     color.Color
		label string
	}{
		{data.TargetCoG, color.RGBA{R: 0, G: 128, B: 0, A: 255}, "target"},
		{data.CoG, color.RGBA{R: 255, G: 0, B: 0, A: 255}, "CoG"},
	}
	for _, m := range markers {
		if m.x <= 0 {
			continue
		}
		line, err := plotter.NewLine(plotter.XYs{
			{X: m.x, Y: -top * 0.1},
			{X: m.x, Y: top * 1.2},
		})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = m.c
		line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(line)
		p.Legend.Add(m.label, line)
	}

	p.Legend.Top = true
	return p, nil
}

// cavityPolygon closes a cavity ceiling down to the bottom face, scaling
// the ceiling by fraction to draw a partial fill.
func cavityPolygon(ceiling []Point, fraction float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(ceiling)+2)
	pts = append(pts, plotter.XY{X: ceiling[0].X, Y: 0})
	for _, c := range ceiling {
		pts = append(pts, plotter.XY{X: c.X, Y: c.Y * fraction})
	}
	pts = append(pts, plotter.XY{X: ceiling[len(ceiling)-1].X, Y: 0})
	return pts
}
