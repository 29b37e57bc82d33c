package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocog/internal/solver"
)

var (
	diffCavities    []string
	diffShowDiagram bool
	diffExportFile  string
)

var differentialCmd = &cobra.Command{
	Use:   "differential",
	Short: "Fill two cavities independently to hit mass and CoG",
	Long: `Solve the two fill fractions that bring the car to both its
target mass and target CoG. The cavities must sit at different
centroids; cavities side by side at the same span are singular.

Examples:
  gocog differential --cavity 0.5:1.5 --cavity 6.25:6.75
  gocog differential -c 6.7:6.98 -c 6.2:6.6 --diagram`,
	Run: runDifferential,
}

func init() {
	rootCmd.AddCommand(differentialCmd)

	differentialCmd.Flags().StringArrayVarP(&diffCavities, "cavity", "c", nil, "Cavity start:end[:width[:depth]] (exactly two) [required]")
	differentialCmd.MarkFlagRequired("cavity")

	differentialCmd.Flags().BoolVar(&diffShowDiagram, "diagram", false, "Show ASCII side profile")
	differentialCmd.Flags().StringVarP(&diffExportFile, "output", "o", "", "Export side profile to file (png, svg, pdf)")
}

func runDifferential(cmd *cobra.Command, args []string) {
	b, err := loadBody()
	if err != nil {
		fmt.Printf("Error loading body: %v\n", err)
		return
	}

	geoms, err := parseCavities(b, diffCavities)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(geoms) != 2 {
		fmt.Printf("Error: differential fill needs exactly 2 cavities, got %d\n", len(geoms))
		return
	}

	cand := solver.Differential(b, geoms[0], geoms[1])

	printTitle("DIFFERENTIAL FILL")
	printBodySummary(b)
	printCandidate(cand)
	if len(cand.Fractions) == 2 {
		showProfile(b, cand, diffShowDiagram, diffExportFile)
	}
}
