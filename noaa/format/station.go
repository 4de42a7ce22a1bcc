package format

import "strconv"

// ------------------------------
// Variable   Columns   Type
// ------------------------------
// ID            1-11   Character
// LATITUDE     13-20   Real
// LONGITUDE    22-30   Real
// ELEVATION    32-37   Real
// STATE        39-40   Character
// NAME         42-71   Character
// GSN FLAG     73-75   Character
// HCN/CRN FLAG 77-79   Character
// WMO ID       81-85   Character
// ------------------------------

var (
	stationID        = Column{"id", 0, 11}
	stationLatitude  = Column{"latitude", 12, 8}
	stationLongitude = Column{"longitude", 21, 9}
	stationElevation = Column{"elevation", 31, 6}
	stationState     = Column{"state", 38, 2}
	stationName      = Column{"name", 41, 30}
	stationGSN       = Column{"gsn", 72, 3}
	stationHCNCRN    = Column{"hcn_crn", 76, 3}
	stationWMO       = Column{"wmo_id", 80, 5}
)

// Station metadata, one per line of the stations file
type StationRecord struct {
	ID        string  `csv:"id" db:"id"`
	Latitude  float64 `csv:"latitude" db:"latitude"`
	Longitude float64 `csv:"longitude" db:"longitude"`
	// Meters
	Elevation float64 `csv:"elevation" db:"elevation"`
	// Only set for US and Canadian stations
	State string `csv:"state" db:"state"`
	Name  string `csv:"name" db:"name"`
	// Network membership: GCOS Surface Network, US Historical Climatology Network, US Climate Reference Network
	GSN bool `csv:"gsn" db:"gsn"`
	HCN bool `csv:"hcn" db:"hcn"`
	CRN bool `csv:"crn" db:"crn"`
	// World Meteorological Organization number, may be empty
	WmoID string `csv:"wmo_id" db:"wmo_id"`
}

// DecodeStationLine decodes exactly one station from a line.
// Non numeric coordinates or elevation return a *MalformedFieldError.
func DecodeStationLine(line string) (StationRecord, error) {
	cols := NewColumns(line)
	id := cols.Slice(stationID)

	lat, err := parseFloat(cols, stationLatitude, id)
	if err != nil {
		return StationRecord{}, err
	}
	lon, err := parseFloat(cols, stationLongitude, id)
	if err != nil {
		return StationRecord{}, err
	}
	elevation, err := parseFloat(cols, stationElevation, id)
	if err != nil {
		return StationRecord{}, err
	}

	network := cols.Slice(stationHCNCRN)
	return StationRecord{
		ID:        id,
		Latitude:  lat,
		Longitude: lon,
		Elevation: elevation,
		State:     cols.Slice(stationState),
		Name:      cols.Slice(stationName),
		GSN:       cols.Slice(stationGSN) == "GSN",
		HCN:       network == "HCN",
		CRN:       network == "CRN",
		WmoID:     cols.Slice(stationWMO),
	}, nil
}

// Same as DecodeStationLine, with the signature shared by the line decoders
func DecodeStationLines(line string) ([]StationRecord, error) {
	station, err := DecodeStationLine(line)
	if err != nil {
		return nil, err
	}
	return []StationRecord{station}, nil
}

func parseFloat(cols Columns, c Column, id string) (float64, error) {
	raw := cols.Slice(c)
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &MalformedFieldError{StationID: id, Field: c.Name, Raw: raw, Err: err}
	}
	return val, nil
}
