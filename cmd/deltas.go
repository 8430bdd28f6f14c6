package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finreport"
	"github.com/etnz/finreport/renderer"
	"github.com/google/subcommands"
)

type deltasCmd struct{}

func (*deltasCmd) Name() string     { return "deltas" }
func (*deltasCmd) Synopsis() string { return "display the day-over-day changes of a daily series" }
func (*deltasCmd) Usage() string {
	return `fsr deltas (cash|profit)

  Displays the day-over-day changes of the cash on hand or net profit
  series as a table.
`
}

func (c *deltasCmd) SetFlags(f *flag.FlagSet) {}

func (c *deltasCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected one series argument, cash or profit")
		return subcommands.ExitUsageError
	}

	title, records, err := decodeSeries(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DeltasMarkdown(title, finreport.AnalyzeSeries(records)))
	return subcommands.ExitSuccess
}
