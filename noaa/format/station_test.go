package format

import (
	"errors"
	"fmt"
	"testing"
)

func stationLine(id, lat, lon, elev, state, name, gsn, hcn, wmo string) string {
	return fmt.Sprintf("%-11s %8s %9s %6s %-2s %-30s %-3s %-3s %-5s", id, lat, lon, elev, state, name, gsn, hcn, wmo)
}

func TestDecodeStationLine(t *testing.T) {
	type testCase struct {
		tag      string
		line     string
		expected StationRecord
	}

	cases := []testCase{
		{
			tag:  "GSN station",
			line: stationLine("AGE00135039", "36.7000", "3.2200", "50.0", "", "ALGER-DAR EL BEIDA", "GSN", "", "60390"),
			expected: StationRecord{
				ID:        "AGE00135039",
				Latitude:  36.7,
				Longitude: 3.22,
				Elevation: 50,
				Name:      "ALGER-DAR EL BEIDA",
				GSN:       true,
				WmoID:     "60390",
			},
		},
		{
			tag:  "HCN station",
			line: stationLine("USC00010008", "31.5703", "-85.2483", "134.1", "AL", "ABBEVILLE", "", "HCN", ""),
			expected: StationRecord{
				ID:        "USC00010008",
				Latitude:  31.5703,
				Longitude: -85.2483,
				Elevation: 134.1,
				State:     "AL",
				Name:      "ABBEVILLE",
				HCN:       true,
			},
		},
		{
			tag:  "CRN station",
			line: stationLine("USW00003047", "31.7800", "-103.2000", "898.6", "TX", "MONAHANS 6 ER", "", "CRN", "72267"),
			expected: StationRecord{
				ID:        "USW00003047",
				Latitude:  31.78,
				Longitude: -103.2,
				Elevation: 898.6,
				State:     "TX",
				Name:      "MONAHANS 6 ER",
				CRN:       true,
				WmoID:     "72267",
			},
		},
		{
			tag:  "unknown network code",
			line: stationLine("ACW00011604", "17.1167", "-61.7833", "10.1", "", "ST JOHNS COOLIDGE FLD", "", "XYZ", ""),
			expected: StationRecord{
				ID:        "ACW00011604",
				Latitude:  17.1167,
				Longitude: -61.7833,
				Elevation: 10.1,
				Name:      "ST JOHNS COOLIDGE FLD",
			},
		},
		{
			tag:  "line without trailing columns",
			line: stationLine("ACW00011604", "17.1167", "-61.7833", "10.1", "", "ST JOHNS", "", "", "")[:71],
			expected: StationRecord{
				ID:        "ACW00011604",
				Latitude:  17.1167,
				Longitude: -61.7833,
				Elevation: 10.1,
				Name:      "ST JOHNS",
			},
		},
	}

	for _, c := range cases {
		t.Log(c.tag)

		result, err := DecodeStationLine(c.line)
		if err != nil {
			t.Error(err)
			continue
		}
		if result != c.expected {
			t.Errorf("Got %+v, wanted %+v", result, c.expected)
		}
		if result.HCN && result.CRN {
			t.Error("HCN and CRN flags are mutually exclusive")
		}
	}
}

func TestDecodeStationLineMalformed(t *testing.T) {
	type testCase struct {
		tag   string
		line  string
		field string
	}

	cases := []testCase{
		{"latitude", stationLine("AGE00135039", "36.7N", "3.2200", "50.0", "", "X", "", "", ""), "latitude"},
		{"longitude", stationLine("AGE00135039", "36.7", "", "50.0", "", "X", "", "", ""), "longitude"},
		{"elevation", stationLine("AGE00135039", "36.7", "3.22", "abc", "", "X", "", "", ""), "elevation"},
	}

	for _, c := range cases {
		t.Log(c.tag)

		_, err := DecodeStationLine(c.line)
		var mfe *MalformedFieldError
		if !errors.As(err, &mfe) {
			t.Errorf("Expected MalformedFieldError, got %v", err)
			continue
		}
		if mfe.Field != c.field {
			t.Errorf("Got field %s, wanted %s", mfe.Field, c.field)
		}
	}
}

func TestDecodeStationLines(t *testing.T) {
	records, err := DecodeStationLines(stationLine("AGE00135039", "36.7000", "3.2200", "50.0", "", "ALGER", "GSN", "", ""))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Latitude != 36.7 {
		t.Errorf("Unexpected records %+v", records)
	}
}
