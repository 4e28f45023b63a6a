package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/notefreq/notefreq/subcmd"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "notefreq"
	app.Version = version
	app.Usage = "Converts between note names and frequencies in blocks of text"
	app.HelpName = "notefreq"

	app.Commands = []cli.Command{
		subcmd.FreqsToNotes,
		subcmd.NotesToFreqs,
		subcmd.EstimateA4,
		subcmd.GuessKey,
		subcmd.ListInstruments,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}
