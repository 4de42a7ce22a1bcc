package parse

import (
	"bytes"
	"strings"
	"testing"

	"cdo/noaa/format"
)

func TestWriteCSVDaily(t *testing.T) {
	records := []format.DailyRecord{
		{StationID: "USW00094728", Year: 2020, Month: 2, Day: 1, Date: "2020-02-01", Element: "TMAX", Value: 150, SFlag: "S"},
		{StationID: "USW00094728", Year: 2020, Month: 2, Day: 2, Date: "2020-02-02", Element: "TMAX", Value: -9999},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records, ','); err != nil {
		t.Fatal(err)
	}

	expected := "id,year,month,day,date,element,value,mflag,qflag,sflag\n" +
		"USW00094728,2020,2,1,2020-02-01,TMAX,150,,,S\n" +
		"USW00094728,2020,2,2,2020-02-02,TMAX,-9999,,,\n"
	if buf.String() != expected {
		t.Errorf("Got:\n%s\nwanted:\n%s", buf.String(), expected)
	}
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	type testCase struct {
		tag      string
		write    func(*bytes.Buffer) error
		expected string
	}

	cases := []testCase{
		{
			tag:      "daily",
			write:    func(b *bytes.Buffer) error { return WriteCSV(b, []format.DailyRecord{}, ',') },
			expected: "id,year,month,day,date,element,value,mflag,qflag,sflag\n",
		},
		{
			tag:      "stations",
			write:    func(b *bytes.Buffer) error { return WriteCSV(b, []format.StationRecord{}, ';') },
			expected: "id;latitude;longitude;elevation;state;name;gsn;hcn;crn;wmo_id\n",
		},
	}

	for _, c := range cases {
		t.Log(c.tag)

		var buf bytes.Buffer
		if err := c.write(&buf); err != nil {
			t.Fatal(err)
		}
		if buf.String() != c.expected {
			t.Errorf("Got %q, wanted %q", buf.String(), c.expected)
		}
	}
}

func TestWriteCSVStations(t *testing.T) {
	records := []format.StationRecord{
		{ID: "AGE00135039", Latitude: 36.7, Longitude: 3.22, Elevation: 50, Name: "ALGER-DAR EL BEIDA", GSN: true, WmoID: "60390"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records, ','); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Got %d lines, wanted 2", len(lines))
	}
	if !strings.HasPrefix(lines[1], "AGE00135039,36.7,") || !strings.HasSuffix(lines[1], ",true,false,false,60390") {
		t.Errorf("Unexpected row %q", lines[1])
	}
}
