package load

import (
	"encoding/csv"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"
)

// Loads a CSV file (with header) where records are described by type T
func ReadCSV[T any](filename string, sep rune) ([]T, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = sep

	slog.Info("Reading records from " + filename)
	var records []T
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		return nil, err
	}
	return records, nil
}
