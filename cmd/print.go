package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown renders markdown to stdout, nicely styled when stdout is a
// terminal, raw otherwise (so piping stays clean).
func printMarkdown(md string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(md)
		return
	}

	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
