package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocog/internal/solver"
)

var (
	// Region layout shared by search, precise and optimize
	axleMargin float64
	endMargin  float64
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Grid search for cavity placements",
	Long: `Search cavity placements on a fixed grid inside the permitted
regions of the body: front (nose to front axle), middle (between
the axles) and rear (rear axle to tail).

Subcommands:
  one   - One cavity in any of the chosen regions
  two   - One cavity in each of two regions, shared fill fraction

Candidates are filled to hit the target mass exactly and kept when
the resulting CoG is within tolerance.`,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

// addRegionFlags registers the margin flags on cmd.
func addRegionFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&axleMargin, "axle-margin", solver.DefaultAxleMargin, "Clearance kept on each side of an axle")
	cmd.Flags().Float64Var(&endMargin, "end-margin", solver.DefaultEndMargin, "Clearance kept at nose and tail")
}
