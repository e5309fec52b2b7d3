package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mmg/core/stats"
	"mmg/logger"
	"mmg/model"
	"mmg/storage"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>...",
	Short: "Print information about one or more GPX files.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := storage.CheckFiles(args); err != nil {
			logger.Fatal("invalid input", logger.ErrorField(err))
		}

		docs, err := loadDocuments(args)
		if err != nil {
			logger.Fatal("cannot load input", logger.ErrorField(err))
		}

		for i, ds := range stats.Info(docs) {
			printInfo(args[i], docs[i], ds)
		}
	},
}

func printInfo(path string, doc *model.Document, ds model.DocumentStats) {
	fmt.Println("******************************************")
	fmt.Printf("Info about %s\n", path)

	if doc.Creator != "" {
		fmt.Printf("Creator = %s\n", doc.Creator)
	}
	if doc.Name != "" {
		fmt.Printf("Name = %s\n", doc.Name)
	}
	if doc.Time != nil {
		fmt.Printf("Time = %s\n", doc.Time.UTC().Format(time.RFC3339))
	}

	for i, trk := range doc.Tracks {
		fmt.Printf("-- Track #%d ------------------------------\n", i)
		if trk.Name != "" {
			fmt.Printf("Name = %s\n", trk.Name)
		}
		for j, seg := range trk.Segments {
			fmt.Printf("Segment #%d = %d points\n", j, len(seg.Points))
		}
		printStats(ds.Tracks[i].PointCount, ds.Tracks[i].Distance,
			ds.Tracks[i].ElevationGain, ds.Tracks[i].ElevationLoss,
			ds.Tracks[i].HasTimeSpan(), ds.Tracks[i].Duration())
	}

	if len(doc.Tracks) > 1 {
		fmt.Println("-- Total ---------------------------------")
		printStats(ds.PointCount, ds.Distance, ds.ElevationGain, ds.ElevationLoss,
			ds.HasTimeSpan(), ds.Duration())
	}
	fmt.Println("******************************************")
}

func printStats(points int, distance, gain, loss float64, hasSpan bool, duration time.Duration) {
	fmt.Printf("Points = %d\n", points)
	fmt.Printf("Distance = %.2f km\n", distance/1000)
	fmt.Printf("Elevation gain = %.0f m, loss = %.0f m\n", gain, loss)
	if hasSpan {
		fmt.Printf("Duration = %s\n", duration)
	} else {
		fmt.Println("Duration = unavailable")
	}
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
