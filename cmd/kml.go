package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mmg/kml"
	"mmg/logger"
	"mmg/storage"
)

var kmlCmd = &cobra.Command{
	Use:   "kml <file>...",
	Short: "Export each given GPX file as a KML file.",
	Long: `Export each given GPX file as a KML file, one LineString per track.

Useful for checking a route in Google Earth before uploading it anywhere.
The output '<name>.kml' is created next to each input file.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := storage.CheckFiles(args); err != nil {
			logger.Fatal("invalid input", logger.ErrorField(err))
		}

		for _, path := range args {
			doc, err := loadDocument(path)
			if err != nil {
				logger.Fatal("cannot load input", logger.ErrorField(err))
			}

			data, err := kml.Export(doc)
			if err != nil {
				logger.Fatal("KML export failed", logger.ErrorField(err))
			}

			out := strings.TrimSuffix(path, filepath.Ext(path)) + ".kml"
			if cfg.OutputDir != "" {
				out = filepath.Join(cfg.OutputDir, filepath.Base(out))
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				logger.Fatal("cannot write output", logger.ErrorField(err))
			}
			logger.Info("wrote KML file", logger.String("path", out))
		}
	},
}

func init() {
	rootCmd.AddCommand(kmlCmd)
}
