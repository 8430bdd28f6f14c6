package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document for the terminal. When
// rendering fails (no usable terminal profile), the raw markdown is
// printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
