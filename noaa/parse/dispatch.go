package parse

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"cdo/noaa/format"
)

// Decodes a single line into zero or more records
type LineDecoder[T any] func(line string) ([]T, error)

// Records and per-line errors decoded from a single file, in line order
type FileResult[T any] struct {
	Path    string
	Lines   int
	Records []T
	Errors  []error
}

// Reads the file line by line and applies the decoder.
// Malformed lines are collected in FileResult.Errors and do not stop the decoding,
// an unreadable file instead returns a *format.UnreadableFileError.
func DecodeFile[T any](path string, decode LineDecoder[T]) (FileResult[T], error) {
	file, err := os.Open(path)
	if err != nil {
		return FileResult[T]{Path: path}, &format.UnreadableFileError{Path: path, Err: err}
	}
	defer file.Close()

	return DecodeReader(path, file, decode)
}

// Same as DecodeFile, path is only used to give context to errors
func DecodeReader[T any](path string, r io.Reader, decode LineDecoder[T]) (FileResult[T], error) {
	result := FileResult[T]{Path: path}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		result.Lines++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		records, err := decode(line)
		if err != nil {
			var mfe *format.MalformedFieldError
			if errors.As(err, &mfe) {
				mfe.File = path
				mfe.Line = result.Lines
			}
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Records = append(result.Records, records...)
	}

	if err := scanner.Err(); err != nil {
		return result, &format.UnreadableFileError{Path: path, Err: err}
	}
	return result, nil
}

// DecodeFiles decodes the files concurrently, with at most `workers` files
// in flight, and concatenates the records following the order of `files`.
// The first unreadable file error is returned once all the workers are done.
// bar can be nil.
func DecodeFiles[T any](files []string, decode LineDecoder[T], workers int, bar *progressbar.ProgressBar) ([]T, *Report, error) {
	if workers < 1 {
		workers = 1
	}

	// Each worker only writes to its own index
	results := make([]FileResult[T], len(files))

	var group errgroup.Group
	group.SetLimit(workers)
	for i, path := range files {
		i, path := i, path
		group.Go(func() error {
			result, err := DecodeFile(path, decode)
			if bar != nil {
				bar.Add(1)
			}
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	records, report := Merge(results)
	return records, report, nil
}

// Concatenates the records of the results in slice order and collects their errors
func Merge[T any](results []FileResult[T]) ([]T, *Report) {
	size := 0
	for _, r := range results {
		size += len(r.Records)
	}

	report := NewReport()
	records := make([]T, 0, size)
	for _, r := range results {
		records = append(records, r.Records...)
		report.Add(r.Path, r.Lines, len(r.Records), r.Errors)
	}

	return records, report
}
