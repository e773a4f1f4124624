// Package cmd implements the suds command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/suds/internal/config"
	"github.com/xolan/suds/internal/service"
	"github.com/xolan/suds/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "suds",
	Short: "A terminal tracker for exposure-therapy sessions",
	Long: `suds records timestamped self-ratings during an exposure-therapy
session using the SUDS scale (Subjective Units of Distress, 1-10).

Running suds opens the session screen: press space to start the
stopwatch, press 1-9 (or 0 for 10) to record how you feel at any
moment, and press space again to finish. The results screen shows the
full dataset and a rating-over-time chart, and can export the session
as CSV.

Commands:
  suds           Run a session
  suds config    Show the effective configuration`,
	Run: func(cmd *cobra.Command, args []string) {
		runSession()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"suds version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runSession initializes services and runs the session TUI
func runSession() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		deps.Exit(1)
		return
	}

	services := service.NewServicesWithConfig(configPath, cfg)

	if err := deps.RunTUI(services); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to run the session UI")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}

// defaultRunTUI is the production TUI runner.
func defaultRunTUI(services *service.Services) error {
	return tui.Run(services)
}
