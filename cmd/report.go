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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	outputFile string
	preview    bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate the financial summary report file" }
func (*reportCmd) Usage() string {
	return `fsr report [-o <file>] [-preview]

  Reads the three CSV reports, analyses them, and writes the plain-text
  summary report, overwriting any previous one. Any unreadable file or
  malformed row aborts the run before the report is written.

Usage Examples:
# Writes summary_report.txt from the default csv_reports folder.
$ fsr report

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "summary_report.txt", "Path of the summary report file to write")
	f.BoolVar(&c.preview, "preview", false, "Also print the summary to the terminal")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	summary, err := BuildSummary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := writeReport(c.outputFile, summary); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully wrote summary report to %s\n", c.outputFile)

	if c.preview {
		printMarkdown(renderer.SummaryMarkdown(summary))
	}
	return subcommands.ExitSuccess
}

// BuildSummary reads the three reports and runs the full analysis. All
// inputs are read to completion before any analysis begins.
func BuildSummary() (*finreport.Summary, error) {
	cash, err := DecodeCashOnHand()
	if err != nil {
		return nil, err
	}
	profit, err := DecodeProfitAndLoss()
	if err != nil {
		return nil, err
	}
	overheads, err := DecodeOverheads()
	if err != nil {
		return nil, err
	}
	return finreport.NewSummary(cash, profit, overheads), nil
}

// writeReport renders the summary into the report file. The file is
// created only once the analysis has succeeded.
func writeReport(filename string, s *finreport.Summary) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create report file %q: %w", filename, err)
	}
	defer f.Close()

	if _, err := f.WriteString(renderer.Report(s)); err != nil {
		return fmt.Errorf("cannot write report file %q: %w", filename, err)
	}
	return nil
}
