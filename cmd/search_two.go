package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocog/internal/solver"
)

var (
	searchTwoFirst   string
	searchTwoSecond  string
	searchTwoOpts    = solver.DefaultPairSearchOptions()
	searchTwoTop     int
	searchTwoDiagram bool
	searchTwoExport  string
)

var searchTwoCmd = &cobra.Command{
	Use:   "two",
	Short: "Search one cavity in each of two regions",
	Long: `Try every pair of grid cavities, one per region, filled to the
same fraction to hit the target mass, and list the pairs whose CoG
lands within tolerance, best first. Overlapping pairs are skipped.

Examples:
  gocog search two --first middle --second rear
  gocog search two --first front --second rear --step 0.05 --cog-tol 0.05`,
	Run: runSearchTwo,
}

func init() {
	searchCmd.AddCommand(searchTwoCmd)

	searchTwoCmd.Flags().StringVar(&searchTwoFirst, "first", "middle", "First region (front, middle, rear)")
	searchTwoCmd.Flags().StringVar(&searchTwoSecond, "second", "rear", "Second region (front, middle, rear)")
	addSearchFlags(searchTwoCmd, &searchTwoOpts)
	addRegionFlags(searchTwoCmd)

	searchTwoCmd.Flags().IntVarP(&searchTwoTop, "top", "n", 10, "Number of candidates to list; 0 lists all")
	searchTwoCmd.Flags().BoolVar(&searchTwoDiagram, "diagram", false, "Show ASCII side profile of the best candidate")
	searchTwoCmd.Flags().StringVarP(&searchTwoExport, "output", "o", "", "Export best candidate to file (png, svg, pdf)")
}

func runSearchTwo(cmd *cobra.Command, args []string) {
	b, err := loadBody()
	if err != nil {
		fmt.Printf("Error loading body: %v\n", err)
		return
	}

	regions, err := solver.SelectRegions(b, []string{searchTwoFirst, searchTwoSecond}, axleMargin, endMargin)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	opts := searchTwoOpts
	opts.Logger = logger

	found, err := solver.SearchTwo(context.Background(), b, regions[0], regions[1], opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printTitle("TWO CAVITY GRID SEARCH")
	printBodySummary(b)

	printSection("REGIONS:")
	fmt.Printf("  First:  %s\n", regions[0])
	fmt.Printf("  Second: %s\n", regions[1])
	fmt.Println()

	printSection(fmt.Sprintf("CANDIDATES (%d):", len(found)))
	if len(found) == 0 {
		fmt.Println("  No cavity pair meets both tolerances.")
		fmt.Println()
		return
	}
	printCandidateTable(found, searchTwoTop)

	fmt.Println("BEST CANDIDATE:")
	printCandidate(found[0])
	showProfile(b, found[0], searchTwoDiagram, searchTwoExport)
}
