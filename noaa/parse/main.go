package parse

import (
	"fmt"
	"log/slog"
	"runtime"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"

	"cdo/noaa/format"
	"cdo/utils"
)

const (
	DAILY_OUTPUT    string = "noaa-cdo.csv"
	STATIONS_OUTPUT string = "noaa-stations.csv"
)

type Config struct {
	Input    string `arg:"positional,required" placeholder:"PATH" help:"Directory with the .dly files (or a single .dly file). The stations file if --stations is set"`
	Stations bool   `arg:"-s" help:"Decode station metadata instead of daily observations"`
	Output   string `arg:"-o" help:"Output CSV file, overwritten if it exists. Defaults to 'noaa-cdo.csv' or 'noaa-stations.csv'"`
	Workers  int    `arg:"-n" help:"Max number of files decoded concurrently. Defaults to the number of CPUs"`
	Sep      string `default:"," help:"Separator character in the output file. Needs to be quoted"`
	Quiet    bool   `arg:"-q" help:"Do not show the progress bar"`
}

func (Config) Description() string {
	return `Decode NOAA GHCN-Daily fixed-width files to CSV.
By default PATH is a directory containing the daily observation (.dly) files,
with --stations it has to be the station metadata file (ghcnd-stations.txt).`
}

func (config *Config) setup() (rune, error) {
	sep, size := utf8.DecodeRuneInString(config.Sep)
	if sep == utf8.RuneError || size != len(config.Sep) {
		return 0, fmt.Errorf("'--sep' only accepts single characters. Got %q", config.Sep)
	}

	if config.Workers < 1 {
		config.Workers = runtime.NumCPU()
	}

	if config.Output == "" {
		config.Output = DAILY_OUTPUT
		if config.Stations {
			config.Output = STATIONS_OUTPUT
		}
	}
	return sep, nil
}

func (config *Config) Execute() error {
	sep, err := config.setup()
	if err != nil {
		return err
	}

	var report *Report
	if config.Stations {
		report, err = parseStations(config, sep)
	} else {
		report, err = parseDaily(config, sep)
	}
	if err != nil {
		return err
	}

	report.Log()
	fmt.Printf("%d records written to %s\n", report.Records, config.Output)
	return nil
}

func parseDaily(config *Config, sep rune) (*Report, error) {
	files, err := DiscoverDailyFiles(config.Input)
	if err != nil {
		return nil, err
	}
	slog.Info(fmt.Sprintf("Found %d %s files", len(files), DAILY_EXT))

	var bar *progressbar.ProgressBar
	if !config.Quiet {
		bar = utils.NewBar(len(files), "Decoding")
		bar.RenderBlank()
	}

	records, report, err := DecodeFiles(files, format.DecodeDailyLine, config.Workers, bar)
	if err != nil {
		return nil, err
	}

	// Nothing is written if any file was unreadable
	if err := writeOutput(config.Output, records, sep); err != nil {
		return nil, err
	}
	return report, nil
}

// Station files are small, no need for the concurrent path
func parseStations(config *Config, sep rune) (*Report, error) {
	if err := CheckStationInput(config.Input); err != nil {
		return nil, err
	}

	result, err := DecodeFile(config.Input, format.DecodeStationLines)
	if err != nil {
		return nil, err
	}

	records, report := Merge([]FileResult[format.StationRecord]{result})
	if err := writeOutput(config.Output, records, sep); err != nil {
		return nil, err
	}
	return report, nil
}
