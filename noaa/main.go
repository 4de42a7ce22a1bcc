package noaa

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"cdo/noaa/load"
	"cdo/noaa/parse"
)

// Command line arguments for the NOAA GHCN-Daily archive
type Cmd struct {
	Parse   *parse.Config `arg:"subcommand" help:"Decode fixed-width daily or station files to CSV"`
	Load    *load.Config  `arg:"subcommand" help:"Load a decoded CSV file into Postgres or SQLite"`
	Verbose bool          `arg:"-v,--verbose" help:"Increase verbosity level"`
	LogFile string        `arg:"--log" placeholder:"FILE" help:"Write logs to this file instead of stderr"`
}

func (Cmd) Description() string {
	return "Decode and load the NOAA GHCN-Daily (CDO) archive."
}

func (c *Cmd) Execute(parser *arg.Parser) error {
	switch {
	case c.Parse != nil:
		return c.Parse.Execute()
	case c.Load != nil:
		return c.Load.Execute()
	default:
		fmt.Println("Error: passing a subcommand is required.")
		fmt.Println()
		parser.WriteHelp(os.Stdout)
		return nil
	}
}
