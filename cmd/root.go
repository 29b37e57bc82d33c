package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocog/internal/body"
	"github.com/alexiusacademia/gocog/internal/logging"
	"github.com/alexiusacademia/gocog/internal/material"
	"github.com/alexiusacademia/gocog/internal/version"
)

var (
	bodyFile string
	fillName string
	verbose  bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gocog",
	Short: "Cavity and ballast planner for wood car bodies",
	Long: `gocog - Center of Gravity Planner

A CLI tool that places mass-adding cavities in a wood car body
so the finished car hits a target mass and a target center of
gravity along its length.

This tool helps builders:
  - Size the fill for a cavity they already cut
  - Fill two cavities independently to hit both targets
  - Search cavity placements between and behind the axles
  - Back-solve the exact cavity volume and centroid needed

Body specs are read from JSON, YAML or TOML files (--body).
Without one, the built-in 7 in reference body is used.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocog v%-49s║\n", version.Version)
		fmt.Println("  ║   Center of Gravity Planner                               ║")
		fmt.Printf("  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for placing and filling ballast cavities in")
		fmt.Println("  a wood car body to reach a target mass and CoG.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Single fill and two-cavity differential fill")
		fmt.Println("    • Grid search over one or two permitted regions")
		fmt.Println("    • Precise volume and centroid back-solve")
		fmt.Println("    • Nelder-Mead cavity placement")
		fmt.Println("    • Built-in design scenarios")
		fmt.Println()
		fmt.Println("  Use 'gocog --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&bodyFile, "body", "", "Body spec file (json, yaml, toml); default is the reference body")
	rootCmd.PersistentFlags().StringVar(&fillName, "fill", "", "Fill material (tungsten, lead, tungsten-putty, steel, zinc); overrides the body's fill density")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadBody returns the body named by --body, or the reference body, with
// the --fill material applied.
func loadBody() (*body.Spec, error) {
	b := body.Default()
	if bodyFile != "" {
		loaded, err := body.LoadFromFile(bodyFile)
		if err != nil {
			return nil, err
		}
		b = *loaded
		logger.Debug("body loaded", zap.String("file", bodyFile), zap.String("name", b.Name))
	}

	if fillName != "" {
		m, err := material.LookupFill(fillName)
		if err != nil {
			return nil, err
		}
		b.FillDensity = m.Density
		if err := b.Validate(); err != nil {
			return nil, err
		}
		logger.Debug("fill material", zap.String("name", m.Name), zap.Float64("density", m.Density))
	}

	return &b, nil
}
