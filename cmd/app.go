// Package cmd implements the CLI application to generate the financial
// summary report.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finreport"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "report")

	c.Register(&deltasCmd{}, "inspection")
	c.Register(&extremesCmd{}, "inspection")
	c.Register(&overheadsCmd{}, "inspection")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var cashFile = flag.String("cash", "csv_reports/cash_on_hand.csv", "Path to the cash on hand CSV report")
var profitFile = flag.String("profit", "csv_reports/profit_and_loss.csv", "Path to the profit and loss CSV report")
var overheadsFile = flag.String("overheads", "csv_reports/overheads.csv", "Path to the overheads CSV report")

// DecodeCashOnHand reads the cash on hand report from the app cash file.
func DecodeCashOnHand() ([]finreport.DailyRecord, error) {
	return decodeDailyFile(*cashFile, finreport.ColCashOnHand)
}

// DecodeProfitAndLoss reads the profit and loss report from the app profit file.
func DecodeProfitAndLoss() ([]finreport.DailyRecord, error) {
	return decodeDailyFile(*profitFile, finreport.ColNetProfit)
}

// DecodeOverheads reads the overheads report from the app overheads file.
func DecodeOverheads() ([]finreport.OverheadRecord, error) {
	f, err := os.Open(*overheadsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open overheads report: %w", err)
	}
	defer f.Close()

	records, err := finreport.DecodeOverheadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode overheads report %q: %w", *overheadsFile, err)
	}
	return records, nil
}

func decodeDailyFile(filename, valueColumn string) ([]finreport.DailyRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open daily report: %w", err)
	}
	defer f.Close()

	records, err := finreport.DecodeDailyRecords(f, valueColumn)
	if err != nil {
		return nil, fmt.Errorf("cannot decode daily report %q: %w", filename, err)
	}
	return records, nil
}

// decodeSeries reads the daily series named by a command argument,
// either "cash" or "profit", and returns its display title.
func decodeSeries(name string) (string, []finreport.DailyRecord, error) {
	switch name {
	case "cash":
		records, err := DecodeCashOnHand()
		return "Cash On Hand", records, err
	case "profit":
		records, err := DecodeProfitAndLoss()
		return "Net Profit", records, err
	}
	return "", nil, fmt.Errorf("unknown series %q, want cash or profit", name)
}
