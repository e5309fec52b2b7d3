package cmd

import (
	"github.com/spf13/cobra"

	"mmg/core/transform"
	"mmg/logger"
	"mmg/storage"
)

var invertCmd = &cobra.Command{
	Use:   "invert <file>...",
	Short: "Invert each track of each given file.",
	Long: `Invert each track of each given file.

One output file is created per input file, next to it. Tracks and segments
are not merged, just inverted one by one. Timestamps travel with their
points, so an inverted file is no longer in chronological order.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := storage.CheckFiles(args); err != nil {
			logger.Fatal("invalid input", logger.ErrorField(err))
		}
		if err := invertFiles(args); err != nil {
			logger.Fatal("invert failed", logger.ErrorField(err))
		}
	},
}

// invertFiles inverts each file in turn, stopping at the first failure.
func invertFiles(paths []string) error {
	for _, path := range paths {
		doc, err := loadDocument(path)
		if err != nil {
			return err
		}
		inverted := transform.Invert(doc)
		if err := writeDocument(inverted, resolveOutput(path, storage.ActionInverted)); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(invertCmd)
}
