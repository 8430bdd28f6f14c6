package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finreport"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the full financial summary as a markdown
// document for the terminal. It is a richer companion to the plain-text
// report file, not a replacement for it.
func SummaryMarkdown(s *finreport.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Summary")

	doc.H2("Highest Overhead")
	doc.PlainText(fmt.Sprintf("%s at %s of revenue.",
		s.HighestOverhead.Category, s.HighestOverhead.Percent))

	writeSeries(doc, "Cash On Hand", s.Cash)
	writeSeries(doc, "Net Profit", s.Profit)

	return doc.String()
}

func writeSeries(doc *md.Markdown, title string, a finreport.SeriesAnalysis) {
	doc.H2(title)

	if len(a.Deltas) == 0 {
		doc.PlainText("Not enough data for a day-over-day view.")
		return
	}

	if a.Consistent {
		doc.PlainText("Consistent surplus, no deficit day.")
	} else {
		doc.PlainText(fmt.Sprintf("%d deficit day(s).", len(a.Extremes.Deficits)))
	}

	x := a.Extremes
	doc.Table(md.TableSet{
		Header: []string{"Extreme", "Day", "Amount"},
		Rows: [][]string{
			{"Highest increase", fmt.Sprint(x.HighestIncrease.Day), x.HighestIncrease.Delta.Display()},
			{"Highest decrease", fmt.Sprint(x.HighestDecrease.Day), x.HighestDecrease.Delta.Display()},
		},
	})

	if len(x.TopDeficits) > 0 {
		table := md.TableSet{
			Header: []string{"Rank", "Day", "Deficit"},
		}
		for i, d := range x.TopDeficits {
			table.Rows = append(table.Rows, []string{
				fmt.Sprint(i + 1),
				fmt.Sprint(d.Day),
				d.Delta.Abs().Display(),
			})
		}
		doc.Table(table)
	}
}
