package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finreport/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; returns immediately unless the shell asked for it.
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() {
	series := predict.Set{"cash", "profit"}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"report": {Flags: map[string]complete.Predictor{
				"o":       predict.Files("*.txt"),
				"preview": predict.Nothing,
			}},
			"deltas":    {Args: series},
			"extremes":  {Args: series},
			"overheads": {},
			"topic":     {Args: predict.Set{"readme", "report", "formats"}},
		},
		Flags: map[string]complete.Predictor{
			"cash":      predict.Files("*.csv"),
			"profit":    predict.Files("*.csv"),
			"overheads": predict.Files("*.csv"),
		},
	}
	c.Complete("fsr")
}
