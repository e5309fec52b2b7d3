package cmd

import (
	"github.com/spf13/cobra"

	"mmg/core/transform"
	"mmg/logger"
	"mmg/storage"
)

var (
	decimateFactor    int
	decimateMaxPoints int
)

var decimateCmd = &cobra.Command{
	Use:   "decimate <file>...",
	Short: "Decimate the points of each track of each given file, to reduce their size.",
	Long: `Decimate the points of each (segment of each) track of each given file.

Some platforms cannot import a GPX file with too many points; Komoot for
instance answers "It's either too large or contains too many waypoints".
Decimation keeps every N-th point (--factor) or derives a stride from an
upper bound (--max-points), always keeping the first and last point of each
segment so the route endpoints are exact.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := storage.CheckFiles(args); err != nil {
			logger.Fatal("invalid input", logger.ErrorField(err))
		}

		policy := transform.DecimatePolicy{
			Factor:    decimateFactor,
			MaxPoints: decimateMaxPoints,
		}
		if err := policy.Validate(); err != nil {
			logger.Fatal("invalid policy", logger.ErrorField(err))
		}

		for _, path := range args {
			doc, err := loadDocument(path)
			if err != nil {
				logger.Fatal("cannot load input", logger.ErrorField(err))
			}

			before := doc.PointCount()
			decimated, err := transform.Decimate(doc, policy)
			if err != nil {
				logger.Fatal("decimate failed", logger.ErrorField(err))
			}
			logger.Info("decimated",
				logger.String("path", path),
				logger.Int("before", before),
				logger.Int("after", decimated.PointCount()),
			)

			if err := writeDocument(decimated, resolveOutput(path, storage.ActionDecimated)); err != nil {
				logger.Fatal("cannot write output", logger.ErrorField(err))
			}
		}
	},
}

func init() {
	decimateCmd.Flags().IntVarP(&decimateFactor, "factor", "f", 0, "keep only every N-th point (N >= 2)")
	decimateCmd.Flags().IntVarP(&decimateMaxPoints, "max-points", "m", 0, "reduce each segment toward this upper bound (>= 2)")
	rootCmd.AddCommand(decimateCmd)
}
