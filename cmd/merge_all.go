package cmd

import (
	"github.com/spf13/cobra"

	"mmg/core/transform"
	"mmg/logger"
	"mmg/storage"
)

var mergeAllCmd = &cobra.Command{
	Use:   "merge-all <directory>",
	Short: "Same as the merge command with all the files in the given directory.",
	Long: `Same as the merge command with all the files in the given directory.

Files are merged in alphabetical order of their names. The output file
'merged.gpx' is created in the directory. Note that a merged.gpx left over
from a previous run is listed like any other GPX file, so remove it before
merging the same directory again.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]
		if err := storage.CheckDirectory(dir); err != nil {
			logger.Fatal("invalid input", logger.ErrorField(err))
		}

		files, err := storage.ListGPXFiles(dir)
		if err != nil {
			logger.Fatal("cannot list directory", logger.ErrorField(err))
		}
		if len(files) == 0 {
			logger.Warn("no GPX files found", logger.String("directory", dir))
			return
		}

		logger.Info("merging files",
			logger.String("directory", dir),
			logger.Int("count", len(files)),
		)

		docs, err := loadDocuments(files)
		if err != nil {
			logger.Fatal("cannot load input", logger.ErrorField(err))
		}

		merged, err := transform.Merge(docs)
		if err != nil {
			logger.Fatal("merge failed", logger.ErrorField(err))
		}

		if err := writeDocument(merged, resolveOutput(dir, storage.ActionMerged)); err != nil {
			logger.Fatal("cannot write output", logger.ErrorField(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(mergeAllCmd)
}
