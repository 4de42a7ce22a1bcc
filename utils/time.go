package utils

import (
	"fmt"
	"time"
)

// Date-only command line argument ("YYYY-MM-DD")
type Timestamp struct {
	t time.Time
}

func (ts *Timestamp) UnmarshalText(b []byte) error {
	t, err := time.Parse(time.DateOnly, string(b))
	if err != nil {
		return fmt.Errorf("Only the date-only format (\"YYYY-MM-DD\") is allowed. Got %s", b)
	}
	ts.t = t
	return nil
}

// Returns nil if the timestamp was not set
func (ts *Timestamp) Inner() *time.Time {
	if ts == nil {
		return nil
	}
	return &ts.t
}

type TimeSpan struct {
	From *time.Time
	To   *time.Time
}

// Returns true if t is inside the span, nil bounds are open
func (span *TimeSpan) Contains(t time.Time) bool {
	if span.From != nil && t.Before(*span.From) {
		return false
	}
	if span.To != nil && t.After(*span.To) {
		return false
	}
	return true
}
