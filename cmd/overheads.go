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

type overheadsCmd struct{}

func (*overheadsCmd) Name() string     { return "overheads" }
func (*overheadsCmd) Synopsis() string { return "display the overhead categories and the most expensive one" }
func (*overheadsCmd) Usage() string {
	return `fsr overheads

  Displays every overhead category with its share of revenue, and
  flags the most expensive one.
`
}

func (c *overheadsCmd) SetFlags(f *flag.FlagSet) {}

func (c *overheadsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := DecodeOverheads()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OverheadsMarkdown(records, finreport.HighestOverhead(records)))
	return subcommands.ExitSuccess
}
