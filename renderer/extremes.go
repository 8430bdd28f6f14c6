package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/finreport"
)

// ExtremesMarkdown renders the notable points of one daily series as a
// markdown document.
func ExtremesMarkdown(title string, a finreport.SeriesAnalysis) string {
	var b strings.Builder
	x := a.Extremes

	fmt.Fprintf(&b, "# %s Extremes\n\n", title)
	fmt.Fprintln(&b, "| Extreme | Day | Amount |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	fmt.Fprintf(&b, "| Highest increase | %d | %s |\n", x.HighestIncrease.Day, x.HighestIncrease.Delta.Display())
	fmt.Fprintf(&b, "| Highest decrease | %d | %s |\n", x.HighestDecrease.Day, x.HighestDecrease.Delta.Display())

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Worst Deficits\n\n")
		for i, d := range x.TopDeficits {
			fmt.Fprintf(w, "%d. day %d, %s\n", i+1, d.Day, d.Delta.Abs().Display())
		}
		return len(x.TopDeficits) > 0
	})

	return b.String()
}
