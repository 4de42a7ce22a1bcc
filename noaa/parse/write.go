package parse

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"
)

// Writes a header row with the csv tags of T, followed by one row per record
func WriteCSV[T any](w io.Writer, records []T, sep rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = sep

	safe := gocsv.NewSafeCSVWriter(writer)
	if err := gocsv.MarshalCSV(records, safe); err != nil {
		return errors.New("Could not write records: " + err.Error())
	}

	safe.Flush()
	return safe.Error()
}

// Creates (or truncates) the file at path and writes the records to it
func writeOutput[T any](path string, records []T, sep rune) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	slog.Info("Writing records to " + path)
	err = WriteCSV(file, records, sep)
	if closeErr := file.Close(); closeErr != nil {
		return errors.Join(err, closeErr)
	}
	return err
}
