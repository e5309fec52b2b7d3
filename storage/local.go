package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Action names the transform an output file was produced by. The action is
// embedded in the output file name so inputs and results stay distinguishable
// in the same directory.
type Action string

const (
	ActionMerged    Action = "merged"
	ActionInverted  Action = "inverted"
	ActionDecimated Action = "decimated"
)

const gpxExt = ".gpx"

// CheckDirectory verifies that path exists and is a directory.
func CheckDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("'%s' does not exist or is not a directory", path)
	}
	return nil
}

// CheckFiles verifies that every path is an existing regular file with a
// .gpx extension and that the list contains no duplicates. A single
// directory argument gets a dedicated message, since passing a directory to
// a files command is a common slip.
func CheckFiles(paths []string) error {
	if len(paths) == 1 {
		if info, err := os.Stat(paths[0]); err == nil && info.IsDir() {
			return fmt.Errorf("a list of files is expected but you have passed a single directory")
		}
	}

	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return fmt.Errorf("'%s' does not exist or is a directory", path)
		}
		if !strings.EqualFold(filepath.Ext(path), gpxExt) {
			return fmt.Errorf("'%s' does not appear to be a GPX file (since its extension is not '.gpx')", path)
		}
		if _, dup := seen[path]; dup {
			return fmt.Errorf("there are duplicated files in the list")
		}
		seen[path] = struct{}{}
	}

	return nil
}

// ListGPXFiles returns the .gpx files directly inside dir, sorted by name.
// The sort order is the merge order for merge-all, so it must be stable.
// An empty result is not an error; callers decide what to do about it.
func ListGPXFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read entries in directory '%s': %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), gpxExt) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	return files, nil
}

// OutputPath builds the output file path for an action applied to an input
// path. For a file, the result sits next to it as '<stem>-<action>.gpx'; for
// a directory, it is '<dir>/<action>.gpx'.
func OutputPath(input string, action Action) string {
	if info, err := os.Stat(input); err == nil && info.IsDir() {
		return filepath.Join(input, string(action)+gpxExt)
	}

	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(filepath.Base(input), ext)
	return filepath.Join(filepath.Dir(input), stem+"-"+string(action)+gpxExt)
}
