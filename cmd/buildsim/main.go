// buildsim - Building Energy Model Export Toolkit
//
// This is the main entry point for the buildsim CLI. buildsim turns
// declarative building descriptions into simulation artifacts:
//   - Modelica packages with generated thermal zone models
//   - Boundary-condition matrices (set-points, internal gains, AHU)
//
// Projects are imported from YAML into a SQLite store and exported
// from there, so exports can be re-run without the original file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/nerrad567/buildsim/migrations"

	"github.com/nerrad567/buildsim/internal/infrastructure/config"
	"github.com/nerrad567/buildsim/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) so a long export
	// stops between file writes instead of being killed mid-write.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for
// testability. Returning an error allows main to handle exit codes
// consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//   - args: Command-line arguments without the program name
//
// Returns:
//   - error: nil on success, or error describing the failure
func run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		usage()
		return fmt.Errorf("missing command")
	}
	command, commandArgs := args[0], args[1:]

	// version needs no configuration.
	if command == "version" {
		fmt.Printf("buildsim %s (%s, %s)\n", version, commit, date)
		return nil
	}

	// Use default logger until config is loaded
	log := logging.Default()

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("starting buildsim",
		"command", command,
		"version", version,
		"commit", commit,
		"build_date", date,
		"config", configPath,
	)

	switch command {
	case "import":
		return runImport(ctx, cfg, log, commandArgs)
	case "export":
		return runExport(ctx, cfg, log, commandArgs)
	case "list":
		return runList(ctx, cfg, log)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// getConfigPath returns the config file path from the environment or
// the default location.
func getConfigPath() string {
	if path := os.Getenv("BUILDSIM_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// usage prints the command overview.
func usage() {
	fmt.Fprintf(os.Stderr, `buildsim - building energy model export toolkit

Usage:
  buildsim import [-measured-year YYYY] <project.yaml>
  buildsim export [-building NAME] <project-name>
  buildsim list
  buildsim version

Configuration is read from %s (override with BUILDSIM_CONFIG).
`, defaultConfigPath)
}
