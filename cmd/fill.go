package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/cavity"
	"github.com/alexiusacademia/gocog/internal/solver"
)

var (
	fillCavities    []string
	fillShowDiagram bool
	fillExportFile  string
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Solve the common fill fraction for fixed cavities",
	Long: `Fill one or more cavities to the same fraction so the car hits
its target mass exactly. The resulting CoG is reported against the
target.

Cavities are given as start:end[:width[:depth]]. Width defaults to
the body width; a depth makes a pocket instead of a through-cut.

Examples:
  # Through-cut between the axles
  gocog fill --cavity 2.0:5.75

  # Two pockets, 1 in wide
  gocog fill -c 2:3:1:0.2 -c 4:5.5:1:0.3 --diagram`,
	Run: runFill,
}

func init() {
	rootCmd.AddCommand(fillCmd)

	fillCmd.Flags().StringArrayVarP(&fillCavities, "cavity", "c", nil, "Cavity start:end[:width[:depth]] (repeatable) [required]")
	fillCmd.MarkFlagRequired("cavity")

	fillCmd.Flags().BoolVar(&fillShowDiagram, "diagram", false, "Show ASCII side profile")
	fillCmd.Flags().StringVarP(&fillExportFile, "output", "o", "", "Export side profile to file (png, svg, pdf)")
}

func parseCavities(b *body.Spec, specs []string) ([]cavity.Geometry, error) {
	geoms := make([]cavity.Geometry, 0, len(specs))
	for _, s := range specs {
		g, err := cavity.ParseGeometry(s, b.Width)
		if err != nil {
			return nil, err
		}
		geoms = append(geoms, g)
	}
	return geoms, nil
}

func runFill(cmd *cobra.Command, args []string) {
	b, err := loadBody()
	if err != nil {
		fmt.Printf("Error loading body: %v\n", err)
		return
	}

	geoms, err := parseCavities(b, fillCavities)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	logger.Debug("solving fill", zap.Int("cavities", len(geoms)))

	cand := solver.SolveFill(b, geoms)

	printTitle("SINGLE FRACTION FILL")
	printBodySummary(b)
	printCandidate(cand)
	showProfile(b, cand, fillShowDiagram, fillExportFile)
}
