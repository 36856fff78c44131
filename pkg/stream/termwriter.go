package stream

import (
	"fmt"
	"io"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// termWriter is the single point of terminal output in streaming mode.
// It keeps one line on screen and overwrites it on every redraw.
type termWriter struct {
	out   io.Writer
	width int
}

func newTermWriter(out io.Writer, width int) *termWriter {
	if width <= 0 {
		width = 80
	}
	return &termWriter{out: out, width: width}
}

// Redraw returns the cursor to column 0, clears the line, and prints s
// truncated to the terminal width. Escape codes do not count toward width.
func (w *termWriter) Redraw(s string) {
	fmt.Fprint(w.out, "\r\033[K", truncateToWidth(s, w.width))
}

// Finish moves past the live line.
func (w *termWriter) Finish() {
	fmt.Fprintln(w.out)
}

func truncateToWidth(s string, width int) string {
	if ansi.PrintableRuneWidth(s) <= width {
		return s
	}
	// Reset after the cut so a truncated colored glyph cannot bleed.
	return truncate.String(s, uint(width)) + "\033[0m"
}
