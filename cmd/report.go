package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/diagram"
	"github.com/alexiusacademia/gocog/internal/material"
	"github.com/alexiusacademia/gocog/internal/solver"
)

const rule = "───────────────────────────────────────────────────────────────"

func printTitle(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printSection(name string) {
	fmt.Println(name)
	fmt.Println(rule)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func printBodySummary(b *body.Spec) {
	if b.Name != "" {
		fmt.Printf("  Body: %s\n", b.Name)
	}
	if b.Description != "" {
		fmt.Printf("  Description: %s\n", b.Description)
	}
	fmt.Println()

	base := b.Base()
	printSection("BODY:")
	w := newTable()
	fmt.Fprintf(w, "  Length x Width:\t%.3f x %.3f\n", b.Length, b.Width)
	fmt.Fprintf(w, "  Heights (nose/front/rear/tail):\t%.3f / %.3f / %.3f / %.3f\n",
		b.Profile.Nose, b.Profile.Front, b.Profile.Rear, b.Profile.Tail)
	fmt.Fprintf(w, "  Axles:\t%.3f / %.3f\n", b.FrontAxle, b.RearAxle)
	fmt.Fprintf(w, "  Body density:\t%.4f\n", base.Density)
	fmt.Fprintf(w, "  Fill density:\t%.4f\n", b.FillDensity)
	fmt.Fprintf(w, "  Uncut mass:\t%.4f\n", base.TotalMass)
	fmt.Fprintf(w, "  Uncut CoG:\t%.4f\n", base.CoG)
	w.Flush()
	fmt.Println()

	printSection("TARGETS:")
	w = newTable()
	fmt.Fprintf(w, "  Mass:\t%.4f\n", b.TargetMass)
	fmt.Fprintf(w, "  CoG:\t%.4f\n", b.TargetCoG)
	w.Flush()
	fmt.Println()

	if warns := regulationWarnings(b); len(warns) > 0 {
		for _, warn := range warns {
			fmt.Printf("  ⚠ %s\n", warn)
		}
		fmt.Println()
	}
}

// regulationWarnings checks the body against standard car limits.
func regulationWarnings(b *body.Spec) []string {
	var warns []string
	if b.TargetMass > material.MaxCarMass {
		warns = append(warns, fmt.Sprintf("target mass %.3f exceeds the %.1f limit", b.TargetMass, material.MaxCarMass))
	}
	if b.Length > material.MaxCarLength {
		warns = append(warns, fmt.Sprintf("length %.3f exceeds the %.1f limit", b.Length, material.MaxCarLength))
	}
	if b.Width > material.MaxCarWidth {
		warns = append(warns, fmt.Sprintf("width %.3f exceeds the %.2f limit", b.Width, material.MaxCarWidth))
	}
	return warns
}

func printCandidate(cand solver.Candidate) {
	printSection("CAVITIES:")
	w := newTable()
	fmt.Fprintln(w, "  #\tSpan\tShape\tVolume\tCentroid\tFill")
	for i, c := range cand.Cavities {
		fill := "-"
		if i < len(cand.Fractions) {
			fill = fmt.Sprintf("%.1f%%", cand.Fractions[i]*100)
		}
		fmt.Fprintf(w, "  C%d\t%.3f - %.3f\t%s\t%.4f\t%.4f\t%s\n",
			i+1, c.Start, c.End, c.Shape, c.Volume, c.Centroid, fill)
	}
	w.Flush()
	fmt.Println()

	printSection("RESULT:")
	w = newTable()
	fmt.Fprintf(w, "  Mass:\t%.4f\t(error %.4f)\n", cand.Mass, cand.MassError)
	fmt.Fprintf(w, "  CoG:\t%.4f\t(error %.4f)\n", cand.CoG, cand.CoGError)
	w.Flush()
	fmt.Println()

	status := "✓ Feasible"
	if !cand.Feasible {
		status = "✗ Infeasible"
	}
	fmt.Printf("  Status: %s\n", status)
	if cand.Message != "" {
		fmt.Printf("  %s\n", cand.Message)
	}
	fmt.Println()
}

func printCandidateTable(cands []solver.Candidate, limit int) {
	if limit <= 0 || limit > len(cands) {
		limit = len(cands)
	}

	w := newTable()
	fmt.Fprintln(w, "  Rank\tCavities\tFill\tMass\tCoG\tCoG error")
	for i, c := range cands[:limit] {
		spans := ""
		for k, cav := range c.Cavities {
			if k > 0 {
				spans += ", "
			}
			spans += fmt.Sprintf("%.2f-%.2f", cav.Start, cav.End)
		}
		fill := 0.0
		if len(c.Fractions) > 0 {
			fill = c.Fractions[0]
		}
		fmt.Fprintf(w, "  %d\t%s\t%.1f%%\t%.4f\t%.4f\t%.4f\n",
			i+1, spans, fill*100, c.Mass, c.CoG, c.CoGError)
	}
	w.Flush()
	if limit < len(cands) {
		fmt.Printf("  ... %d more\n", len(cands)-limit)
	}
	fmt.Println()
}

// showProfile prints and exports the side view as requested.
func showProfile(b *body.Spec, cand solver.Candidate, ascii bool, exportFile string) {
	if !ascii && exportFile == "" {
		return
	}
	data := diagram.NewProfileData(b, cand.Cavities, cand.Fractions, cand.CoG)

	if ascii {
		fmt.Println(diagram.DrawASCIIProfile(data))
	}

	if exportFile != "" {
		if err := diagram.ExportProfile(data, exportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", exportFile)
		}
	}
}
