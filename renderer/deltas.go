package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/finreport"
)

// DeltasMarkdown renders the day-over-day changes of one daily series
// as a markdown table.
func DeltasMarkdown(title string, a finreport.SeriesAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Day-over-Day\n\n", title)

	if len(a.Deltas) == 0 {
		fmt.Fprintln(&b, "Not enough data for a day-over-day view.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Day | Change |")
	fmt.Fprintln(&b, "|---:|---:|")
	for _, d := range a.Deltas {
		fmt.Fprintf(&b, "| %d | %s |\n", d.Day, d.Delta.Display())
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n%d of %d day(s) ran a deficit.\n", len(a.Extremes.Deficits), len(a.Deltas))
		return !a.Consistent
	})

	return b.String()
}
