package parse

import (
	"os"
	"path/filepath"

	"cdo/noaa/format"
)

// Extension of the daily observation files
const DAILY_EXT string = ".dly"

// Returns the daily files to decode in discovery order.
// If path is a file it is returned as is, if it's a directory only
// its regular files with DAILY_EXT extension are returned (sorted by name).
func DiscoverDailyFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &format.UnreadableFileError{Path: path, Err: err}
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &format.UnreadableFileError{Path: path, Err: err}
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != DAILY_EXT {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	return files, nil
}

// Station metadata comes in a single file, directories are rejected
func CheckStationInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &format.UnreadableFileError{Path: path, Err: err}
	}
	if info.IsDir() {
		return &format.InvalidModeInputError{Path: path}
	}
	return nil
}
