package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dkoosis/vitals/pkg/pattern"
	"github.com/dkoosis/vitals/pkg/spark"
)

// Console renders a strip as a JavaScript console.log statement that can be
// pasted into browser devtools.
type Console struct {
	diag io.Writer
}

// NewConsole creates a console renderer. diag receives the verbose values
// line; nil means standard output.
func NewConsole(diag io.Writer) *Console {
	return &Console{diag: diag}
}

// Render returns `console.log(...["%c…", "color: …", …]);`. The label, if
// any, is logged on its own line first.
func (c *Console) Render(s *pattern.Sparkline) (string, error) {
	b, err := renderBrowser(s, c.diag)
	if err != nil {
		return "", err
	}
	args, err := json.Marshal(b.Args())
	if err != nil {
		return "", fmt.Errorf("encoding console args: %w", err)
	}

	out := ""
	if s.Label != "" {
		label, err := json.Marshal(s.Label)
		if err != nil {
			return "", fmt.Errorf("encoding label: %w", err)
		}
		out = fmt.Sprintf("console.log(%s);\n", label)
	}
	return out + fmt.Sprintf("console.log(...%s);\n", args), nil
}

// renderBrowser renders s in browser mode.
func renderBrowser(s *pattern.Sparkline, diag io.Writer) (spark.Browser, error) {
	sl := *s
	sl.Options.Browser = true
	sl.Options.Diagnostics = diag

	out, err := sl.Render()
	if err != nil {
		return spark.Browser{}, err
	}
	b, ok := out.(spark.Browser)
	if !ok {
		return spark.Browser{}, fmt.Errorf("render: unexpected %s output", out.Mode())
	}
	return b, nil
}
