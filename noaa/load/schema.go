package load

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	DAILY_TABLE    string = "noaa"
	STATIONS_TABLE string = "stations"
)

type Column struct {
	Name string
	// Column type in Postgres and SQLite
	Postgres string
	SQLite   string
}

// Layout of a destination table
type Schema struct {
	Columns []Column
	// Columns that get a (non unique) index
	Indexed []string
}

var DAILY_SCHEMA = Schema{
	Columns: []Column{
		{"id", "TEXT NOT NULL", "TEXT NOT NULL"},
		{"year", "INTEGER NOT NULL", "INTEGER NOT NULL"},
		{"month", "INTEGER NOT NULL", "INTEGER NOT NULL"},
		{"day", "INTEGER NOT NULL", "INTEGER NOT NULL"},
		{"date", "DATE NOT NULL", "TEXT NOT NULL"},
		{"element", "TEXT NOT NULL", "TEXT NOT NULL"},
		// NULL for missing observations
		{"value", "INTEGER", "INTEGER"},
		{"mflag", "TEXT", "TEXT"},
		{"qflag", "TEXT", "TEXT"},
		{"sflag", "TEXT", "TEXT"},
	},
	Indexed: []string{"id", "element", "date"},
}

var STATIONS_SCHEMA = Schema{
	Columns: []Column{
		{"id", "TEXT NOT NULL", "TEXT NOT NULL"},
		{"latitude", "DOUBLE PRECISION", "REAL"},
		{"longitude", "DOUBLE PRECISION", "REAL"},
		{"elevation", "DOUBLE PRECISION", "REAL"},
		{"state", "TEXT", "TEXT"},
		{"name", "TEXT", "TEXT"},
		{"gsn", "BOOLEAN", "INTEGER"},
		{"hcn", "BOOLEAN", "INTEGER"},
		{"crn", "BOOLEAN", "INTEGER"},
		{"wmo_id", "TEXT", "TEXT"},
	},
	Indexed: []string{"id"},
}

func (s *Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Table names are validated by the caller, see validTableName
func (s *Schema) CreateTableSQL(table string, sqlite bool) string {
	columns := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		typ := c.Postgres
		if sqlite {
			typ = c.SQLite
		}
		columns[i] = fmt.Sprintf("%s %s", c.Name, typ)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(columns, ", "))
}

func (s *Schema) CreateIndicesSQL(table string) []string {
	queries := make([]string, len(s.Indexed))
	for i, col := range s.Indexed {
		queries[i] = fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", indexName(table, col), table, col)
	}
	return queries
}

func (s *Schema) DropIndicesSQL(table string) []string {
	queries := make([]string, len(s.Indexed))
	for i, col := range s.Indexed {
		queries[i] = "DROP INDEX IF EXISTS " + indexName(table, col)
	}
	return queries
}

func indexName(table, column string) string {
	return fmt.Sprintf("%s_%s_idx", table, column)
}

var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Table names are interpolated in the queries, so only plain identifiers are accepted
func validTableName(name string) bool {
	return tableNameRe.MatchString(name)
}
