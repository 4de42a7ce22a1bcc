package utils

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/lmittmann/tint"
	"github.com/schollz/progressbar/v3"
)

func NewBar(size int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(size,
		progressbar.OptionOnCompletion(func() { fmt.Println() }),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// Filters elements of a slice by comparing them to the elements of a reference slice.
// formatMsg is an optional format string with a single format argument that can be used
// to add context on why the element may be missing from the reference slice
func FilterSlice[T comparable](slice, reference []T, formatMsg string) []T {
	if len(slice) == 0 {
		return reference
	}

	if formatMsg == "" {
		formatMsg = "User input '%v' not present in reference, skipping"
	}

	out := make([]T, 0, len(slice))
	for _, s := range slice {
		if !slices.Contains(reference, s) {
			slog.Warn(fmt.Sprintf(formatMsg, s))
			continue
		}
		out = append(out, s)
	}
	return out
}

// Returns true if the slice is empty or contains the value
func IsEmptyOrContains[T comparable](s []T, v T) bool {
	return len(s) == 0 || slices.Contains(s, v)
}

// Sets the default logger, writing to stderr
func SetupLogger(verbose bool) {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel(verbose),
		TimeFormat: time.Kitchen,
	})))
}

// Redirects the default logger to a file, so it does not mess up the progress bars
func SetLogFile(filename string, verbose bool) (*os.File, error) {
	fh, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("Could not create log '%s': %w", filename, err)
	}

	slog.SetDefault(slog.New(tint.NewHandler(fh, &tint.Options{
		Level:      logLevel(verbose),
		TimeFormat: time.DateTime,
		NoColor:    true,
	})))
	return fh, nil
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
