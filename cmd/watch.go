package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"mmg/core/stats"
	"mmg/logger"
	"mmg/storage"
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a directory and log statistics for new or changed GPX files.",
	Long: `Watch a directory and log statistics for new or changed GPX files.

Whenever a .gpx file is created or rewritten in the directory, it is parsed
and its point count, distance and elevation are logged. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]
		if err := storage.CheckDirectory(dir); err != nil {
			logger.Fatal("invalid input", logger.ErrorField(err))
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logger.Fatal("cannot create watcher", logger.ErrorField(err))
		}
		defer watcher.Close()

		if err := watcher.Add(dir); err != nil {
			logger.Fatal("cannot watch directory", logger.ErrorField(err))
		}
		logger.Info("watching directory", logger.String("directory", dir))

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				if !strings.EqualFold(filepath.Ext(event.Name), ".gpx") {
					continue
				}
				reportFile(event.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("watch error", logger.ErrorField(err))
			case <-stop:
				logger.Info("stopping watch")
				return
			}
		}
	},
}

// reportFile parses one file and logs its statistics. Failures are logged
// and swallowed; a watch session must survive a half-written file.
func reportFile(path string) {
	doc, err := loadDocument(path)
	if err != nil {
		logger.Warn("cannot read changed file", logger.ErrorField(err))
		return
	}

	ds := stats.Document(doc)
	logger.Info("GPX file changed",
		logger.String("path", path),
		logger.Int("points", ds.PointCount),
		logger.Float64("distance_m", ds.Distance),
		logger.Float64("gain_m", ds.ElevationGain),
		logger.Float64("loss_m", ds.ElevationLoss),
	)
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
