package load

import (
	"context"
	"time"

	"cdo/noaa/format"
)

// Destination database of the load command
type Store interface {
	CreateTable(ctx context.Context, table string, schema *Schema) error
	Insert(ctx context.Context, table string, schema *Schema, rows [][]any) (int64, error)
	DropIndices(ctx context.Context, table string, schema *Schema) error
	CreateIndices(ctx context.Context, table string, schema *Schema) error
	Close() error
}

// Converts a record to a row matching DAILY_SCHEMA. Missing values become NULL.
// The date is passed as time.Time when dateAsTime is set (Postgres DATE column).
func DailyRow(r *format.DailyRecord, dateAsTime bool) []any {
	var value *int
	if !r.IsMissing() {
		v := r.Value
		value = &v
	}

	var date any = r.Date
	if dateAsTime {
		date = time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC)
	}

	return []any{r.StationID, r.Year, r.Month, r.Day, date, r.Element, value, nullable(r.MFlag), nullable(r.QFlag), nullable(r.SFlag)}
}

// Converts a record to a row matching STATIONS_SCHEMA
func StationRow(r *format.StationRecord) []any {
	return []any{r.ID, r.Latitude, r.Longitude, r.Elevation, nullable(r.State), r.Name, r.GSN, r.HCN, r.CRN, nullable(r.WmoID)}
}

// Empty fields are stored as NULL
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
