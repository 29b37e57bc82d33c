package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocog/internal/diagram"
	"github.com/alexiusacademia/gocog/internal/solver"
)

var (
	preciseRegions []string
	preciseOpts    = solver.DefaultPreciseOptions()
	preciseDiagram bool
	preciseExport  string
)

var preciseCmd = &cobra.Command{
	Use:   "precise",
	Short: "Back-solve one fully filled cavity for both targets",
	Long: `Compute the exact volume and centroid a single cavity, filled to
100%, needs for the car to hit both targets, then scan the permitted
regions for a cavity with that volume whose centroid matches.

When no cavity matches within tolerance, no solution is reported.

Examples:
  gocog precise
  gocog precise --region rear --depth 0.4 --width 1.0`,
	Run: runPrecise,
}

func init() {
	rootCmd.AddCommand(preciseCmd)

	preciseCmd.Flags().StringSliceVarP(&preciseRegions, "region", "r", nil, "Regions to scan (front, middle, rear); default all")
	preciseCmd.Flags().Float64Var(&preciseOpts.Step, "step", preciseOpts.Step, "Spacing of trial start positions")
	preciseCmd.Flags().Float64Var(&preciseOpts.Width, "width", preciseOpts.Width, "Cavity width; 0 means the body width")
	preciseCmd.Flags().Float64Var(&preciseOpts.Depth, "depth", preciseOpts.Depth, "Pocket depth; 0 cuts through")
	preciseCmd.Flags().Float64Var(&preciseOpts.CentroidTolerance, "centroid-tol", preciseOpts.CentroidTolerance, "Centroid tolerance")
	addRegionFlags(preciseCmd)

	preciseCmd.Flags().BoolVar(&preciseDiagram, "diagram", false, "Show ASCII side profile")
	preciseCmd.Flags().StringVarP(&preciseExport, "output", "o", "", "Export side profile to file (png, svg, pdf)")
}

func runPrecise(cmd *cobra.Command, args []string) {
	b, err := loadBody()
	if err != nil {
		fmt.Printf("Error loading body: %v\n", err)
		return
	}

	regions, err := solver.SelectRegions(b, preciseRegions, axleMargin, endMargin)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	cand, err := solver.Precise(b, regions, preciseOpts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printTitle("PRECISE CAVITY BACK-SOLVE")
	printBodySummary(b)

	req := solver.Required(b)
	if req.Feasible {
		fmt.Print(diagram.DrawSummaryBox("REQUIRED CAVITY (100% FILL)", []string{
			fmt.Sprintf("Volume   = %.5f", req.Volume),
			fmt.Sprintf("Centroid = %.5f", req.Centroid),
		}))
		fmt.Println()
	}

	printCandidate(cand)
	if len(cand.Cavities) > 0 {
		showProfile(b, cand, preciseDiagram, preciseExport)
	}
}
