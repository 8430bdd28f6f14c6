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

type extremesCmd struct{}

func (*extremesCmd) Name() string     { return "extremes" }
func (*extremesCmd) Synopsis() string { return "display the notable points of a daily series" }
func (*extremesCmd) Usage() string {
	return `fsr extremes (cash|profit)

  Displays the highest increase, the highest decrease and the worst
  deficits of the cash on hand or net profit series.
`
}

func (c *extremesCmd) SetFlags(f *flag.FlagSet) {}

func (c *extremesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected one series argument, cash or profit")
		return subcommands.ExitUsageError
	}

	title, records, err := decodeSeries(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ExtremesMarkdown(title, finreport.AnalyzeSeries(records)))
	return subcommands.ExitSuccess
}
