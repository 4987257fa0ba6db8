// Package cli implements the chunkflow command line interface. The CLI
// is a reference caller of the library: it decides polling cadence,
// feeds manifests to the planner and materializes chunks, while every
// library call underneath stays a synchronous point-in-time read.
package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/genc-murat/chunkflow/config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger

// NewRootCmd creates the root Cobra command for the chunkflow CLI and
// wires up config loading, logging and the subcommands.
func NewRootCmd(version string) *cobra.Command {
	var cfgPath string
	var logLevel string

	cfg := config.Default()

	cmd := &cobra.Command{
		Use:          "chunkflow",
		Short:        "Memory-aware chunk planning for large tabular datasets",
		Long:         "chunkflow reads process and system memory conditions, plans RAM-budgeted chunk sizes and splits vectors or matrices into row-wise chunks.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				*cfg = *loaded
			}

			level := cfg.Logging.Level
			if cmd.Flags().Changed("log-level") {
				level = logLevel
			}
			lvl, err := zerolog.ParseLevel(level)
			if err != nil {
				lvl = zerolog.InfoLevel
			}

			consoleWriter := zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			}
			logger = zerolog.New(consoleWriter).Level(lvl).With().Timestamp().Logger()
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newPlanCmd(cfg))
	cmd.AddCommand(newSplitCmd())
	cmd.AddCommand(newWatchCmd(cfg))

	return cmd
}
