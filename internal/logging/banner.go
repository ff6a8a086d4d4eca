package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Style is an ANSI SGR sequence.
type Style string

const (
	Reset        Style = "\033[0m"
	BlackOnGreen Style = "\033[30;42;1m"
	Cyan         Style = "\033[36m"
	Yellow       Style = "\033[33m"
	Gray         Style = "\033[90m"
	NoStyle      Style = ""
)

// BannerLine is one line of a startup banner.
type BannerLine struct {
	Style Style
	Text  string
}

// Terminal returns a writer for stdout that understands ANSI sequences on
// every platform, and whether stdout is an interactive terminal.
func Terminal() (io.Writer, bool) {
	fd := os.Stdout.Fd()
	return colorable.NewColorableStdout(), isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Banner prints lines to w, wrapping each in its style when colored is set.
func Banner(w io.Writer, colored bool, lines ...BannerLine) {
	for _, l := range lines {
		if colored && l.Style != NoStyle {
			fmt.Fprintf(w, "%s%s%s\n", l.Style, l.Text, Reset)
			continue
		}
		fmt.Fprintln(w, l.Text)
	}
}
