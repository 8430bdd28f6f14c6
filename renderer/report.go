package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/finreport"
)

// Section names of the summary report file.
const (
	cashName   = "CASH"
	profitName = "NET PROFIT"
)

var ordinals = [...]string{"1ST", "2ND", "3RD"}

// Report renders the content of the summary report file.
//
// The format is fixed and readers parse it by its bracketed labels: the
// highest overhead line first, then the cash section, then the net
// profit section, each section followed by a blank line. Amounts are
// raw decimal values prefixed with "USD" (no space), deficits as
// absolute values.
func Report(s *finreport.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[HIGHEST OVERHEAD] %s: %s\n\n",
		strings.ToUpper(s.HighestOverhead.Category), s.HighestOverhead.Percent)
	writeSection(&b, cashName, s.Cash)
	writeSection(&b, profitName, s.Profit)
	return b.String()
}

// writeSection renders one daily series. A consistent series (no
// negative delta) reduces to its single highest surplus; otherwise
// every deficit is listed in day order, then the worst ones ranked by
// severity.
func writeSection(b *strings.Builder, name string, a finreport.SeriesAnalysis) {
	if a.Consistent {
		inc := a.Extremes.HighestIncrease
		fmt.Fprintf(b, "[HIGHEST %s SURPLUS] DAY: %d, AMOUNT: USD%s\n\n", name, inc.Day, inc.Delta)
		return
	}
	for _, d := range a.Deltas {
		if d.Delta.IsNegative() {
			fmt.Fprintf(b, "[%s DEFICIT] DAY: %d, AMOUNT: USD%s\n", name, d.Day, d.Delta.Abs())
		}
	}
	fmt.Fprintln(b)
	for i, d := range a.Extremes.TopDeficits {
		fmt.Fprintf(b, "[%s HIGHEST %s DEFICIT] DAY: %d, AMOUNT: USD%s\n", ordinals[i], name, d.Day, d.Delta.Abs())
	}
	fmt.Fprintln(b)
}
