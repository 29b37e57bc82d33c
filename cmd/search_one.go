package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocog/internal/solver"
)

var (
	searchOneRegions []string
	searchOneOpts    = solver.DefaultSearchOptions()
	searchOneTop     int
	searchOneDiagram bool
	searchOneExport  string
)

var searchOneCmd = &cobra.Command{
	Use:   "one",
	Short: "Search one cavity across the permitted regions",
	Long: `Try every cavity whose walls lie on the grid of a permitted
region, fill it to hit the target mass, and list those whose CoG
lands within tolerance, best first.

Examples:
  gocog search one
  gocog search one --region rear --step 0.02 --top 5
  gocog search one --depth 0.3 --width 1.0 --diagram`,
	Run: runSearchOne,
}

func init() {
	searchCmd.AddCommand(searchOneCmd)

	searchOneCmd.Flags().StringSliceVarP(&searchOneRegions, "region", "r", nil, "Regions to search (front, middle, rear); default all")
	addSearchFlags(searchOneCmd, &searchOneOpts)
	addRegionFlags(searchOneCmd)

	searchOneCmd.Flags().IntVarP(&searchOneTop, "top", "n", 10, "Number of candidates to list; 0 lists all")
	searchOneCmd.Flags().BoolVar(&searchOneDiagram, "diagram", false, "Show ASCII side profile of the best candidate")
	searchOneCmd.Flags().StringVarP(&searchOneExport, "output", "o", "", "Export best candidate to file (png, svg, pdf)")
}

// addSearchFlags binds grid search options to cmd.
func addSearchFlags(cmd *cobra.Command, opts *solver.SearchOptions) {
	cmd.Flags().Float64Var(&opts.Step, "step", opts.Step, "Grid step for cavity walls")
	cmd.Flags().Float64Var(&opts.MinLength, "min-length", opts.MinLength, "Shortest cavity; 0 means one step")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "Cavity width; 0 means the body width")
	cmd.Flags().Float64Var(&opts.Depth, "depth", opts.Depth, "Pocket depth; 0 cuts through")
	cmd.Flags().Float64Var(&opts.MassTolerance, "mass-tol", opts.MassTolerance, "Mass tolerance")
	cmd.Flags().Float64Var(&opts.CoGTolerance, "cog-tol", opts.CoGTolerance, "CoG tolerance")
	cmd.Flags().IntVar(&opts.Workers, "workers", opts.Workers, "Parallel workers; 0 means GOMAXPROCS")
}

func runSearchOne(cmd *cobra.Command, args []string) {
	b, err := loadBody()
	if err != nil {
		fmt.Printf("Error loading body: %v\n", err)
		return
	}

	regions, err := solver.SelectRegions(b, searchOneRegions, axleMargin, endMargin)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	opts := searchOneOpts
	opts.Logger = logger
	logger.Debug("searching one cavity", zap.Int("regions", len(regions)), zap.Float64("step", opts.Step))

	found, err := solver.SearchOne(context.Background(), b, regions, opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printTitle("SINGLE CAVITY GRID SEARCH")
	printBodySummary(b)

	printSection("REGIONS:")
	for _, r := range regions {
		fmt.Printf("  %s\n", r)
	}
	fmt.Println()

	printSection(fmt.Sprintf("CANDIDATES (%d):", len(found)))
	if len(found) == 0 {
		fmt.Println("  No cavity meets both tolerances.")
		fmt.Println()
		return
	}
	printCandidateTable(found, searchOneTop)

	fmt.Println("BEST CANDIDATE:")
	printCandidate(found[0])
	showProfile(b, found[0], searchOneDiagram, searchOneExport)
}
