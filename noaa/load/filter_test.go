package load

import (
	"testing"
	"time"

	"cdo/noaa/format"
	"cdo/utils"
)

func date(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestNewSpan(t *testing.T) {
	type testCase struct {
		tag      string
		from     *time.Time
		to       *time.Time
		window   string
		expected *time.Time
		fail     bool
	}

	cases := []testCase{
		{tag: "no window", from: date(2010, 1, 1), expected: date(2010, 1, 1)},
		{tag: "ten years", to: date(2020, 12, 31), window: "P10Y", expected: date(2010, 12, 31)},
		{tag: "six months", to: date(2020, 7, 15), window: "P6M", expected: date(2020, 1, 15)},
		{tag: "window without to", window: "P1Y", fail: true},
		{tag: "window with from", from: date(2010, 1, 1), to: date(2020, 1, 1), window: "P1Y", fail: true},
		{tag: "invalid window", to: date(2020, 1, 1), window: "10 years", fail: true},
	}

	for _, c := range cases {
		t.Log(c.tag)

		span, err := NewSpan(c.from, c.to, c.window)
		if c.fail {
			if err == nil {
				t.Error("Expected error")
			}
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		if !span.From.Equal(*c.expected) {
			t.Errorf("Got %v, wanted %v", span.From, c.expected)
		}
	}
}

func TestKeepDaily(t *testing.T) {
	type testCase struct {
		tag      string
		filter   Filter
		record   format.DailyRecord
		expected bool
	}

	record := format.DailyRecord{StationID: "USW00094728", Year: 2015, Month: 6, Day: 15, Element: "TMAX"}
	cases := []testCase{
		{"empty filter", Filter{}, record, true},
		{"element requested", Filter{Elements: []string{"PRCP", "TMAX"}}, record, true},
		{"element not requested", Filter{Elements: CORE_ELEMENTS[:3]}, record, false},
		{"inside span", Filter{Span: utils.TimeSpan{From: date(2015, 6, 15), To: date(2015, 6, 15)}}, record, true},
		{"before span", Filter{Span: utils.TimeSpan{From: date(2015, 6, 16)}}, record, false},
		{"after span", Filter{Span: utils.TimeSpan{To: date(2015, 6, 14)}}, record, false},
	}

	for _, c := range cases {
		t.Log(c.tag)
		if result := c.filter.KeepDaily(&c.record); result != c.expected {
			t.Errorf("Got %v, wanted %v", result, c.expected)
		}
	}
}

func TestKeepStation(t *testing.T) {
	gsn := format.StationRecord{ID: "AGE00135039", GSN: true}
	other := format.StationRecord{ID: "USC00010008", HCN: true}

	filter := Filter{GSNOnly: true}
	kept := Apply([]format.StationRecord{gsn, other}, filter.KeepStation)
	if len(kept) != 1 || kept[0].ID != gsn.ID {
		t.Errorf("Only GSN stations should be kept, got %+v", kept)
	}

	filter = Filter{}
	if kept := Apply([]format.StationRecord{gsn, other}, filter.KeepStation); len(kept) != 2 {
		t.Errorf("All stations should be kept, got %d", len(kept))
	}
}

func TestMatchElements(t *testing.T) {
	records := []format.DailyRecord{{Element: "TMAX"}, {Element: "PRCP"}, {Element: "TMAX"}}

	filter := Filter{Elements: []string{"TMAX", "SNOW"}}
	if err := filter.MatchElements(records); err != nil {
		t.Fatal(err)
	}
	if len(filter.Elements) != 1 || filter.Elements[0] != "TMAX" {
		t.Errorf("Got %v, wanted [TMAX]", filter.Elements)
	}

	filter = Filter{Elements: []string{"SNOW"}}
	if err := filter.MatchElements(records); err == nil {
		t.Error("Expected error when no requested element is present")
	}

	filter = Filter{}
	if err := filter.MatchElements(records); err != nil || len(filter.Elements) != 0 {
		t.Error("Empty element list should match everything")
	}
}
