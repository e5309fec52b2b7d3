package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"mmg/core/transform"
	"mmg/logger"
	"mmg/storage"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <file>...",
	Short: "Merge all tracks from all given files into a file with a single track.",
	Long: `Merge all tracks from all given files into a file with a single track.

Files are merged by order of appearance on the command line; the end of one
file connects to the start of the next, verbatim. The output file 'merged.gpx'
is created in the current directory.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := storage.CheckFiles(args); err != nil {
			logger.Fatal("invalid input", logger.ErrorField(err))
		}

		logger.Info("merging files", logger.Int("count", len(args)))

		docs, err := loadDocuments(args)
		if err != nil {
			logger.Fatal("cannot load input", logger.ErrorField(err))
		}

		merged, err := transform.Merge(docs)
		if err != nil {
			logger.Fatal("merge failed", logger.ErrorField(err))
		}

		out := filepath.Join(".", string(storage.ActionMerged)+".gpx")
		if cfg.OutputDir != "" {
			out = filepath.Join(cfg.OutputDir, string(storage.ActionMerged)+".gpx")
		}
		if err := writeDocument(merged, out); err != nil {
			logger.Fatal("cannot write output", logger.ErrorField(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
