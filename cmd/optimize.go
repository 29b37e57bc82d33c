package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocog/internal/solver"
)

var (
	optimizeRegion  string
	optimizeOpts    = solver.DefaultOptimizeOptions()
	optimizeDiagram bool
	optimizeExport  string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Place one cavity in a region with Nelder-Mead",
	Long: `Minimize the CoG error over the start and end walls of one
cavity inside a permitted region, filling it to hit the target
mass. Unlike the grid search, walls are not tied to a step.

Examples:
  gocog optimize
  gocog optimize --region middle --depth 0.3`,
	Run: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().StringVarP(&optimizeRegion, "region", "r", "rear", "Region to place the cavity in (front, middle, rear)")
	optimizeCmd.Flags().Float64Var(&optimizeOpts.Width, "width", optimizeOpts.Width, "Cavity width; 0 means the body width")
	optimizeCmd.Flags().Float64Var(&optimizeOpts.Depth, "depth", optimizeOpts.Depth, "Pocket depth; 0 cuts through")
	optimizeCmd.Flags().Float64Var(&optimizeOpts.MinLength, "min-length", optimizeOpts.MinLength, "Shortest cavity")
	optimizeCmd.Flags().Float64Var(&optimizeOpts.MassTolerance, "mass-tol", optimizeOpts.MassTolerance, "Mass tolerance")
	optimizeCmd.Flags().Float64Var(&optimizeOpts.CoGTolerance, "cog-tol", optimizeOpts.CoGTolerance, "CoG tolerance")
	optimizeCmd.Flags().IntVar(&optimizeOpts.MaxEvaluations, "max-evals", optimizeOpts.MaxEvaluations, "Objective evaluation budget")
	addRegionFlags(optimizeCmd)

	optimizeCmd.Flags().BoolVar(&optimizeDiagram, "diagram", false, "Show ASCII side profile")
	optimizeCmd.Flags().StringVarP(&optimizeExport, "output", "o", "", "Export side profile to file (png, svg, pdf)")
}

func runOptimize(cmd *cobra.Command, args []string) {
	b, err := loadBody()
	if err != nil {
		fmt.Printf("Error loading body: %v\n", err)
		return
	}

	regions, err := solver.SelectRegions(b, []string{optimizeRegion}, axleMargin, endMargin)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	opts := optimizeOpts
	opts.Logger = logger

	cand, err := solver.Optimize(b, regions[0], opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printTitle("NELDER-MEAD CAVITY PLACEMENT")
	printBodySummary(b)
	fmt.Printf("  Region: %s\n", regions[0])
	fmt.Println()
	printCandidate(cand)
	showProfile(b, cand, optimizeDiagram, optimizeExport)
}
