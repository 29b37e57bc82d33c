package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocog/internal/scenario"
)

var (
	scenarioTop     int
	scenarioDiagram bool
	scenarioExport  string
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Built-in cavity designs",
	Long: `List and run the built-in cavity designs. Design positions are
laid out for the 7 in reference body.

Subcommands:
  list   - Show the catalog
  run    - Solve one design`,
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in designs",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("BUILT-IN DESIGNS:")
		fmt.Println(rule)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tStrategy\tDescription")
		for _, d := range scenario.Designs {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", d.ID, d.Strategy, d.Description)
		}
		w.Flush()
		fmt.Println()
	},
}

var scenarioRunCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Solve one built-in design",
	Long: `Solve a built-in design on the selected body.

Examples:
  gocog scenario run A
  gocog scenario run E --top 5 --diagram`,
	Args: cobra.ExactArgs(1),
	Run:  runScenario,
}

func init() {
	rootCmd.AddCommand(scenarioCmd)
	scenarioCmd.AddCommand(scenarioListCmd)
	scenarioCmd.AddCommand(scenarioRunCmd)

	scenarioRunCmd.Flags().IntVarP(&scenarioTop, "top", "n", 10, "Number of candidates to list for searches; 0 lists all")
	scenarioRunCmd.Flags().BoolVar(&scenarioDiagram, "diagram", false, "Show ASCII side profile of the best candidate")
	scenarioRunCmd.Flags().StringVarP(&scenarioExport, "output", "o", "", "Export best candidate to file (png, svg, pdf)")
}

func runScenario(cmd *cobra.Command, args []string) {
	d, err := scenario.Lookup(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	b, err := loadBody()
	if err != nil {
		fmt.Printf("Error loading body: %v\n", err)
		return
	}

	res, err := scenario.Run(context.Background(), b, d, logger)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printTitle(fmt.Sprintf("DESIGN %s - %s", d.ID, d.Description))
	printBodySummary(&res.Body)

	best, ok := res.Best()
	if !ok {
		fmt.Println("  No candidate meets both tolerances.")
		fmt.Println()
		return
	}

	if len(res.Candidates) > 1 {
		printSection(fmt.Sprintf("CANDIDATES (%d):", len(res.Candidates)))
		printCandidateTable(res.Candidates, scenarioTop)
		fmt.Println("BEST CANDIDATE:")
	}
	printCandidate(best)
	if len(best.Cavities) > 0 && len(best.Fractions) == len(best.Cavities) {
		showProfile(&res.Body, best, scenarioDiagram, scenarioExport)
	}
}
