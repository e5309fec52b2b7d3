package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mmg/config"
	"mmg/logger"
)

var (
	cfg     *config.Config
	runID   string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mmg",
	Short: "MMG is a tool to merge, invert and decimate GPX files.",
	Long: `MMG prepares GPX files for route-planning platforms: it merges several
files into a single single-track file, inverts the direction of a track,
decimates point counts for importers with size caps, and prints statistics.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()

		level := logger.LogLevel(cfg.LogLevel)
		if verbose {
			level = logger.DebugLevel
		}
		logger.Init(logger.Config{
			Level:      level,
			OutputPath: cfg.LogPath,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			Compress:   cfg.LogCompress,
		})

		runID = uuid.NewString()
		logger.Debug("starting run",
			logger.String("run", runID),
			logger.String("command", cmd.Name()),
		)
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
