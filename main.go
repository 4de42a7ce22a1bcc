package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexflint/go-arg"

	"cdo/noaa"
	"cdo/utils"
)

func main() {
	var cmd noaa.Cmd
	parser := arg.MustParse(&cmd)

	utils.SetupLogger(cmd.Verbose)

	var logFile *os.File
	if cmd.LogFile != "" {
		fh, err := utils.SetLogFile(cmd.LogFile, cmd.Verbose)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logFile = fh
	}

	err := cmd.Execute(parser)
	if err != nil {
		slog.Error(err.Error())
		if logFile != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}

	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
