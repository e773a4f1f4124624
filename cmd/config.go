package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/suds/internal/config"
	"github.com/xolan/suds/internal/service"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for suds.

Shows the configuration file location, whether it exists, and all
current settings. Values are merged from the config file with
sensible defaults; suds works without any configuration file.

Settings:
  theme                bubbletint theme name (default "dracula")
  export_dir           directory prefilled in the CSV export prompt
  refresh_interval_ms  stopwatch refresh period, 50-1000 (default 100)

Examples:

  Display current configuration:
    suds config

  Create a sample config file:
    suds config --init

Configuration file location:
  ~/.config/suds/config.toml         Linux/macOS
  %APPDATA%\suds\config.toml         Windows`,
	Run: func(cmd *cobra.Command, args []string) {
		initFlag, _ := cmd.Flags().GetBool("init")
		if initFlag {
			initConfig()
			return
		}
		showConfig()
	},
}

func init() {
	configCmd.Flags().Bool("init", false, "Create a sample config file")
}

// configServices builds the service layer for the config subcommand.
func configServices() (*service.Services, bool) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return nil, false
	}
	return service.NewServicesWithConfig(configPath, config.DefaultConfig()), true
}

// showConfig displays the current effective configuration
func showConfig() {
	services, ok := configServices()
	if !ok {
		return
	}
	cfgService := services.Config

	if err := cfgService.Reload(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", cfgService.GetPath())
		deps.Exit(1)
		return
	}
	cfg := cfgService.Get()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for suds")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:       %s\n", cfgService.GetPath())
	if cfgService.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:            File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:            No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	if cfg.Theme == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Theme:             (default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Theme:             %s\n", cfg.Theme)
	}
	if cfg.ExportDir == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Export directory:  (current directory)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Export directory:  %s\n", cfg.ExportDir)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Refresh interval:  %dms\n", cfg.RefreshIntervalMS)
}

// initConfig writes a sample config file if none exists
func initConfig() {
	services, ok := configServices()
	if !ok {
		return
	}
	cfgService := services.Config

	if err := cfgService.Init(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to create config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: If the file already exists, edit it instead")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created sample config: %s\n", cfgService.GetPath())
}
