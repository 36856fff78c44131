package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/vitals/pkg/pattern"
	"github.com/dkoosis/vitals/pkg/spark"
)

// Terminal renders a strip with ANSI colors and a lipgloss-styled label.
type Terminal struct {
	theme Theme
	plain bool
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme) *Terminal {
	return &Terminal{theme: theme}
}

// NewPlain creates a renderer that emits glyphs without any escape codes.
func NewPlain() *Terminal {
	return &Terminal{theme: MonoTheme(), plain: true}
}

// Render formats the strip as one line, plus the values line when verbose.
// An empty strip renders as an empty string.
func (t *Terminal) Render(s *pattern.Sparkline) (string, error) {
	sl := *s
	sl.Options.Browser = false
	sl.Options.Plain = sl.Options.Plain || t.plain
	opts := sl.Options

	out, err := sl.Render()
	if err != nil {
		return "", err
	}
	term, ok := out.(spark.Terminal)
	if !ok {
		return "", fmt.Errorf("render: unexpected %s output", out.Mode())
	}
	if term.Text == "" {
		return "", nil
	}

	strip, values, _ := strings.Cut(term.Text, "\n")

	var sb strings.Builder
	prefix := ""
	if s.Label != "" {
		prefix = s.Label + ": "
		if t.plain {
			sb.WriteString(prefix)
		} else {
			sb.WriteString(t.theme.Label.Render(prefix))
		}
	}
	sb.WriteString(strip)
	sb.WriteString("\n")

	if opts.Verbose {
		// Align the values under the glyphs.
		sb.WriteString(strings.Repeat(" ", runewidth.StringWidth(prefix)))
		if t.plain {
			sb.WriteString(values)
		} else {
			sb.WriteString(t.theme.Muted.Render(values))
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
