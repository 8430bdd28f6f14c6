package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finreport"
	md "github.com/nao1215/markdown"
)

// OverheadsMarkdown renders the overhead categories as a markdown
// table, in source order, with the highest one emphasized.
func OverheadsMarkdown(overheads []finreport.OverheadRecord, highest finreport.OverheadRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Overheads")

	table := md.TableSet{
		Header: []string{"Category", "Share of Revenue"},
	}
	for _, o := range overheads {
		category, percent := o.Category, o.Percent.String()
		if o.Category == highest.Category && o.Percent.Equal(highest.Percent) {
			category, percent = md.Bold(category), md.Bold(percent)
		}
		table.Rows = append(table.Rows, []string{category, percent})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Highest overhead: %s at %s.", highest.Category, highest.Percent))

	return doc.String()
}
