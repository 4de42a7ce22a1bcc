package load

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"cdo/noaa/format"
	"cdo/utils"
)

type Config struct {
	Input     string           `arg:"positional,required" placeholder:"CSV" help:"CSV file produced by the parse command"`
	Stations  bool             `arg:"-s" help:"The input contains station metadata instead of daily observations"`
	SQLite    string           `arg:"--sqlite" placeholder:"FILE" help:"Load into this SQLite database instead of Postgres"`
	Table     string           `arg:"-t" help:"Destination table. Defaults to 'noaa' or 'stations'"`
	Sep       string           `default:"," help:"Separator character in the input file. Needs to be quoted"`
	Elements  []string         `arg:"-e" help:"Optional space separated list of element codes"`
	Core      bool             `help:"Load only the core elements (PRCP, SNOW, SNWD, TMAX, TMIN, TAVG, AWND, AWDR)"`
	From      *utils.Timestamp `arg:"--from" help:"Load only observations starting from this date-only timestamp"`
	To        *utils.Timestamp `arg:"--to" help:"Load only observations until this date-only timestamp"`
	Window    string           `help:"Load only observations in this ISO 8601 period ending at --to (e.g. P10Y)"`
	GSN       bool             `help:"Load only GCOS Surface Network stations"`
	BatchSize int              `arg:"-b" default:"50000" help:"Number of rows inserted per batch"`
	Reindex   bool             `help:"Drop table indices before insertion and recreate them afterwards"`
	Quiet     bool             `arg:"-q" help:"Do not show the progress bar"`
}

func (Config) Description() string {
	return `Load a CSV file produced by the parse command into a database.
By default the data is loaded into Postgres, the following environment variable needs to be set
(it can also be defined in a .env file):
    - "NOAA_CONN_STRING"`
}

func (config *Config) setup() (rune, *Filter, error) {
	sep, size := utf8.DecodeRuneInString(config.Sep)
	if sep == utf8.RuneError || size != len(config.Sep) {
		return 0, nil, fmt.Errorf("'--sep' only accepts single characters. Got %q", config.Sep)
	}

	if config.Table == "" {
		config.Table = DAILY_TABLE
		if config.Stations {
			config.Table = STATIONS_TABLE
		}
	}
	if !validTableName(config.Table) {
		return 0, nil, fmt.Errorf("Invalid table name %q", config.Table)
	}

	if config.BatchSize < 1 {
		return 0, nil, errors.New("'--batchsize' needs to be positive")
	}

	span, err := NewSpan(config.From.Inner(), config.To.Inner(), config.Window)
	if err != nil {
		return 0, nil, err
	}

	elements := config.Elements
	if config.Core && len(elements) == 0 {
		elements = CORE_ELEMENTS
	}

	return sep, &Filter{Elements: elements, Span: span, GSNOnly: config.GSN}, nil
}

func (config *Config) openStore(ctx context.Context) (Store, error) {
	if config.SQLite != "" {
		return NewSQLiteStore(config.SQLite)
	}

	// Variables already in the environment take precedence
	if err := godotenv.Load(); err != nil {
		slog.Debug(fmt.Sprintf("No .env file loaded: %s", err))
	}

	connString := os.Getenv(CONN_ENV_VAR)
	if connString == "" {
		return nil, fmt.Errorf("%s is not set", CONN_ENV_VAR)
	}
	return NewPostgresStore(ctx, connString)
}

func (config *Config) Execute() error {
	sep, filter, err := config.setup()
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := config.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	var count int64
	if config.Stations {
		count, err = loadStations(ctx, store, filter, sep, config)
	} else {
		count, err = loadDaily(ctx, store, filter, sep, config)
	}
	if err != nil {
		return err
	}

	outputStr := fmt.Sprintf("%v: %v total rows inserted", config.Table, count)
	slog.Info(outputStr)
	fmt.Println(outputStr)
	return nil
}

func loadDaily(ctx context.Context, store Store, filter *Filter, sep rune, config *Config) (int64, error) {
	records, err := ReadCSV[format.DailyRecord](config.Input, sep)
	if err != nil {
		return 0, err
	}

	if err := filter.MatchElements(records); err != nil {
		return 0, err
	}

	records = Apply(records, filter.KeepDaily)
	_, postgres := store.(*PostgresStore)
	return Load(ctx, store, config.Table, &DAILY_SCHEMA, records, func(r *format.DailyRecord) []any {
		return DailyRow(r, postgres)
	}, config)
}

func loadStations(ctx context.Context, store Store, filter *Filter, sep rune, config *Config) (int64, error) {
	records, err := ReadCSV[format.StationRecord](config.Input, sep)
	if err != nil {
		return 0, err
	}

	records = Apply(records, filter.KeepStation)
	return Load(ctx, store, config.Table, &STATIONS_SCHEMA, records, StationRow, config)
}

// Creates the table if needed and inserts the records in batches
func Load[T any](ctx context.Context, store Store, table string, schema *Schema, records []T, toRow func(*T) []any, config *Config) (count int64, err error) {
	if err := store.CreateTable(ctx, table, schema); err != nil {
		return 0, fmt.Errorf("Could not create table %s: %w", table, err)
	}

	if config.Reindex {
		if err := store.DropIndices(ctx, table, schema); err != nil {
			return 0, err
		}
	}

	// Recreate indices even if the insertion fails
	defer func() {
		if indexErr := store.CreateIndices(ctx, table, schema); indexErr != nil {
			err = errors.Join(err, indexErr)
		}
	}()

	var bar *progressbar.ProgressBar
	if !config.Quiet {
		bar = utils.NewBar(len(records), table)
		bar.RenderBlank()
	}

	for start := 0; start < len(records); start += config.BatchSize {
		end := min(start+config.BatchSize, len(records))

		rows := make([][]any, 0, end-start)
		for i := start; i < end; i++ {
			rows = append(rows, toRow(&records[i]))
		}

		inserted, err := store.Insert(ctx, table, schema, rows)
		count += inserted
		if err != nil {
			return count, fmt.Errorf("Failed bulk insertion into %s: %w", table, err)
		}

		if bar != nil {
			bar.Add(end - start)
		}
	}

	return count, nil
}
