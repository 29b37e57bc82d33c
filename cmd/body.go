package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocog/internal/diagram"
	"github.com/alexiusacademia/gocog/internal/solver"
)

var (
	bodyShowDiagram bool
	bodyExportFile  string
)

var bodyCmd = &cobra.Command{
	Use:   "body",
	Short: "Show base properties of the car body",
	Long: `Print the uncut body's volume, mass and CoG, and the single fully
filled cavity it would need to hit both targets.

Examples:
  gocog body
  gocog body --body my-car.yaml --diagram
  gocog body --body my-car.toml -o out/car.svg`,
	Run: runBody,
}

func init() {
	rootCmd.AddCommand(bodyCmd)

	bodyCmd.Flags().BoolVar(&bodyShowDiagram, "diagram", false, "Show ASCII side profile")
	bodyCmd.Flags().StringVarP(&bodyExportFile, "output", "o", "", "Export side profile to file (png, svg, pdf)")
}

func runBody(cmd *cobra.Command, args []string) {
	b, err := loadBody()
	if err != nil {
		fmt.Printf("Error loading body: %v\n", err)
		return
	}

	printTitle("CAR BODY PROPERTIES")
	printBodySummary(b)

	base := b.Base()
	printSection("INTEGRATED PROPERTIES:")
	w := newTable()
	fmt.Fprintf(w, "  Volume:\t%.5f\n", base.Volume)
	fmt.Fprintf(w, "  Volume centroid:\t%.5f\n", base.Centroid)
	fmt.Fprintf(w, "  Wood mass:\t%.5f\n", base.Mass)
	fmt.Fprintf(w, "  Point masses:\t%.5f\n", base.AuxMass)
	w.Flush()
	fmt.Println()

	req := solver.Required(b)
	lines := []string{req.Message}
	if req.Feasible {
		lines = []string{
			fmt.Sprintf("Volume   = %.5f", req.Volume),
			fmt.Sprintf("Centroid = %.5f", req.Centroid),
		}
	}
	fmt.Print(diagram.DrawSummaryBox("REQUIRED CAVITY (100% FILL)", lines))
	fmt.Println()

	if bodyShowDiagram || bodyExportFile != "" {
		data := diagram.NewProfileData(b, nil, nil, base.CoG)
		if bodyShowDiagram {
			fmt.Println(diagram.DrawASCIIProfile(data))
		}
		if bodyExportFile != "" {
			if err := diagram.ExportProfile(data, bodyExportFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("Diagram exported to: %s\n", bodyExportFile)
			}
		}
	}
}
