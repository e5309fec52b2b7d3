package cmd

import (
	"github.com/spf13/cobra"

	"mmg/logger"
	"mmg/storage"
)

var invertAllCmd = &cobra.Command{
	Use:   "invert-all <directory>",
	Short: "Same as the invert command with all the files in the given directory.",
	Long: `Same as the invert command with all the files in the given directory.

Files that fail to load or write are reported and skipped; the remaining
files are still processed.`,
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

		// Batch mode keeps going past a bad file.
		failed := 0
		for _, path := range files {
			if err := invertFiles([]string{path}); err != nil {
				logger.Error("skipping file", logger.ErrorField(err))
				failed++
			}
		}
		if failed > 0 {
			logger.Warn("some files were skipped", logger.Int("failed", failed))
		}
	},
}

func init() {
	rootCmd.AddCommand(invertAllCmd)
}
