package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer emits the ": "-prefixed progress lines that form the user-facing
// reporting surface of a release run.
type Printer struct {
	w    io.Writer
	head *color.Color
}

// New creates a Printer writing to w. Tests pass a buffer; the CLI passes
// os.Stdout.
func New(w io.Writer) *Printer {
	return &Printer{
		w:    w,
		head: color.New(color.FgCyan, color.Bold),
	}
}

// Default returns a Printer on standard output
func Default() *Printer {
	return New(os.Stdout)
}

// Stepf prints one progress line
func (p *Printer) Stepf(format string, args ...any) {
	fmt.Fprintf(p.w, ": "+format+"\n", args...)
}

// Headf prints an emphasized progress line introducing a phase
func (p *Printer) Headf(format string, args ...any) {
	p.head.Fprintf(p.w, ": "+format+"\n", args...)
}
