package load

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rickb777/period"

	"cdo/noaa/format"
	"cdo/utils"
)

// Elements kept by --core
var CORE_ELEMENTS = []string{"PRCP", "SNOW", "SNWD", "TMAX", "TMIN", "TAVG", "AWND", "AWDR"}

// Selects which records are loaded
type Filter struct {
	Elements []string
	Span     utils.TimeSpan
	GSNOnly  bool
}

// Builds the time span from the --from, --to and --window flags.
// The window is an ISO 8601 period (e.g. "P10Y") ending at `to`.
func NewSpan(from, to *time.Time, window string) (utils.TimeSpan, error) {
	if window == "" {
		return utils.TimeSpan{From: from, To: to}, nil
	}

	if from != nil {
		return utils.TimeSpan{}, errors.New("--window and --from cannot be used together")
	}
	if to == nil {
		return utils.TimeSpan{}, errors.New("--window requires --to")
	}

	p, err := period.Parse(window)
	if err != nil {
		return utils.TimeSpan{}, fmt.Errorf("Invalid --window %q: %w", window, err)
	}

	start, _ := p.Negate().AddTo(*to)
	return utils.TimeSpan{From: &start, To: to}, nil
}

func (f *Filter) KeepDaily(r *format.DailyRecord) bool {
	if !utils.IsEmptyOrContains(f.Elements, r.Element) {
		return false
	}
	date := time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC)
	return f.Span.Contains(date)
}

func (f *Filter) KeepStation(r *format.StationRecord) bool {
	return !f.GSNOnly || r.GSN
}

// Restricts the requested elements to the ones present in the records.
// Returns an error if elements were requested but none of them is present.
func (f *Filter) MatchElements(records []format.DailyRecord) error {
	if len(f.Elements) == 0 {
		return nil
	}

	var present []string
	for _, r := range records {
		if !slices.Contains(present, r.Element) {
			present = append(present, r.Element)
		}
	}

	f.Elements = utils.FilterSlice(f.Elements, present, "Element '%s' not present in the input, skipping")
	if len(f.Elements) == 0 {
		return errors.New("None of the requested elements is present in the input")
	}
	return nil
}

func Apply[T any](records []T, keep func(*T) bool) []T {
	out := make([]T, 0, len(records))
	for i := range records {
		if keep(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
