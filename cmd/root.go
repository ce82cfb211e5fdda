package cmd

import (
	"fmt"
	"os"

	"firecast/internal/config"
	"firecast/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagPlan  string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "firecast",
	Short: "Retirement projection calculator",
	Long:  "Project your net worth to an assumed age of death, find a data-driven retirement age, and stress-test the plan with Monte Carlo resimulation.",
	RunE:  runProject,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPlan, "plan", "f", config.DefaultPath(), "Plan file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadPlan is the shared input path used by all commands: read the
// plan file (or defaults), convert, and validate before simulating.
func loadPlan() (model.PlanInputs, error) {
	plan, err := config.Load(flagPlan)
	if err != nil {
		return model.PlanInputs{}, err
	}

	if !flagQuiet && !config.Exists(flagPlan) {
		fmt.Fprintf(os.Stderr, "  No plan file at %s, using defaults. Run `firecast setup` to create one.\n", flagPlan)
	}

	in := plan.Inputs()
	if err := config.Validate(in); err != nil {
		return model.PlanInputs{}, fmt.Errorf("invalid plan: %w", err)
	}
	return in, nil
}

// loadTheme returns the configured TUI theme name without failing the
// command when the plan file is unreadable.
func loadTheme() string {
	plan, err := config.Load(flagPlan)
	if err != nil {
		return ""
	}
	return plan.Appearance.Theme
}
