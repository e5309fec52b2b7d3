package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"mmg/gpx"
	"mmg/logger"
	"mmg/model"
	"mmg/storage"
)

// loadDocument reads and parses one GPX file.
func loadDocument(path string) (*model.Document, error) {
	logger.Debug("loading GPX file", logger.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read '%s': %w", path, err)
	}
	doc, err := gpx.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	return doc, nil
}

// loadDocuments parses all files concurrently, one goroutine per file, and
// reassembles the results in input order. Documents are independent, so no
// synchronization beyond the indexed slices is needed. The first error in
// input order wins.
func loadDocuments(paths []string) ([]*model.Document, error) {
	docs := make([]*model.Document, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			docs[i], errs[i] = loadDocument(path)
		}(i, path)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// writeDocument serializes a document and writes it to path.
func writeDocument(doc *model.Document, path string) error {
	data, err := gpx.Serialize(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write '%s': %w", path, err)
	}
	logger.Info("wrote GPX file",
		logger.String("path", path),
		logger.Int("points", doc.PointCount()),
	)
	return nil
}

// resolveOutput applies the MMG_OUTPUT_DIR override, if configured, to an
// output path computed by storage.OutputPath.
func resolveOutput(input string, action storage.Action) string {
	path := storage.OutputPath(input, action)
	if cfg.OutputDir != "" {
		return filepath.Join(cfg.OutputDir, filepath.Base(path))
	}
	return path
}
