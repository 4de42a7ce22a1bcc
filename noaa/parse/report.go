package parse

import (
	"fmt"
	"log/slog"
)

// Max number of errors kept as samples in a Report
const MAX_SAMPLES int = 10

// Summary of a decoding run, with the errors of the malformed lines
type Report struct {
	Files   int
	Lines   int
	Records int
	// Total number of malformed lines
	Count   int
	Samples []error
}

func NewReport() *Report {
	return &Report{Samples: make([]error, 0, MAX_SAMPLES)}
}

func (r *Report) Add(path string, lines, records int, errs []error) {
	r.Files++
	r.Lines += lines
	r.Records += records
	r.Count += len(errs)

	for _, err := range errs {
		if len(r.Samples) == MAX_SAMPLES {
			break
		}
		r.Samples = append(r.Samples, err)
	}

	if len(errs) > 0 {
		slog.Debug(fmt.Sprintf("%s: %d malformed lines", path, len(errs)))
	}
}

func (r *Report) Log() {
	slog.Info(fmt.Sprintf("Decoded %d records from %d lines in %d files", r.Records, r.Lines, r.Files))
	if r.Count == 0 {
		return
	}

	slog.Warn(fmt.Sprintf("%d malformed lines were skipped, showing the first %d", r.Count, len(r.Samples)))
	for _, err := range r.Samples {
		slog.Warn(err.Error())
	}
}
