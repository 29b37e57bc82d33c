package diagram

import (
	"fmt"
	"strings"
)

// Point represents a 2D coordinate: position along the body and height
type Point struct {
	X float64
	Y float64
}

// CavityOutline is a cavity as seen from the side
type CavityOutline struct {
	Label    string
	Top      []Point // Cavity ceiling, sampled front to rear
	Fraction float64 // Fill fraction, drawn from the bottom up
}

// ProfileDiagramData holds data for drawing a car side view
type ProfileDiagramData struct {
	// Body
	Length  float64
	Profile []Point // Top edge, sampled front to rear

	// Cavities
	Cavities []CavityOutline

	// Reference positions
	Axles     []float64
	CoG       float64 // 0 if not known
	TargetCoG float64 // 0 if not set
}

// heightAt interpolates a sampled outline at x; outside it returns 0.
func heightAt(pts []Point, x float64) float64 {
	if len(pts) == 0 || x < pts[0].X || x > pts[len(pts)-1].X {
		return 0
	}
	for i := 1; i < len(pts); i++ {
		if x <= pts[i].X {
			a, b := pts[i-1], pts[i]
			if b.X == a.X {
				return b.Y
			}
			return a.Y + (x-a.X)/(b.X-a.X)*(b.Y-a.Y)
		}
	}
	return pts[len(pts)-1].Y
}

func maxHeight(pts []Point) float64 {
	var h float64
	for _, p := range pts {
		h = max(h, p.Y)
	}
	return h
}

// DrawASCIIProfile creates an ASCII side view of the body with its
// cavities. Wood is ▒, empty cavity ░, fill █.
func DrawASCIIProfile(data ProfileDiagramData) string {
	var sb strings.Builder

	widthChars := 70
	heightChars := 12

	top := maxHeight(data.Profile)
	if data.Length <= 0 || top <= 0 {
		return "  (empty profile)\n"
	}

	column := func(c int) float64 {
		return (float64(c) + 0.5) / float64(widthChars) * data.Length
	}
	columnOf := func(x float64) int {
		c := int(x / data.Length * float64(widthChars))
		return min(max(c, 0), widthChars-1)
	}

	sb.WriteString("\n")
	sb.WriteString("  SIDE PROFILE (nose at left)\n")
	sb.WriteString("  ───────────────────────────\n")

	for r := heightChars; r >= 1; r-- {
		level := (float64(r) - 0.5) / float64(heightChars) * top

		sb.WriteString("  │")
		for c := 0; c < widthChars; c++ {
			x := column(c)
			ch := " "
			if level <= heightAt(data.Profile, x) {
				ch = "▒"
				for _, cav := range data.Cavities {
					ceiling := heightAt(cav.Top, x)
					if ceiling > 0 && level <= ceiling {
						ch = "░"
						if level <= ceiling*cav.Fraction {
							ch = "█"
						}
						break
					}
				}
			}
			sb.WriteString(ch)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s\n", strings.Repeat("─", widthChars)))

	// Marker row
	markers := []rune(strings.Repeat(" ", widthChars))
	for _, a := range data.Axles {
		markers[columnOf(a)] = '▲'
	}
	if data.TargetCoG > 0 {
		markers[columnOf(data.TargetCoG)] = 'T'
	}
	if data.CoG > 0 {
		markers[columnOf(data.CoG)] = 'G'
	}
	sb.WriteString(fmt.Sprintf("   %s\n", string(markers)))
	sb.WriteString(fmt.Sprintf("   0%s%.2f\n", strings.Repeat(" ", widthChars-6), data.Length))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ▒▒▒ = Body   ░░░ = Empty cavity   ███ = Fill\n")
	sb.WriteString("  ▲ = Axle   G = CoG   T = Target CoG\n")
	for i, cav := range data.Cavities {
		label := cav.Label
		if label == "" {
			label = fmt.Sprintf("cavity %d", i+1)
		}
		sb.WriteString(fmt.Sprintf("  %s filled to %.1f%%\n", label, cav.Fraction*100))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
