// Package render encodes rendered sparklines for output: styled terminal
// text, plain text, a browser console.log call, or a JSON/YAML document.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/dkoosis/vitals/pkg/pattern"
)

// Renderer converts a sparkline pattern to its final output text.
type Renderer interface {
	Render(s *pattern.Sparkline) (string, error)
}

// ErrUnknownFormat is returned by ByName for an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown format")

// Formats lists the names ByName accepts.
var Formats = []string{"terminal", "plain", "console", "json", "yaml"}

// ByName returns the renderer for format. diag receives the verbose values
// line of console output.
func ByName(format string, theme Theme, diag io.Writer) (Renderer, error) {
	switch format {
	case "terminal":
		return NewTerminal(theme), nil
	case "plain":
		return NewPlain(), nil
	case "console":
		return NewConsole(diag), nil
	case "json":
		return NewJSON(), nil
	case "yaml":
		return NewYAML(), nil
	default:
		return nil, fmt.Errorf("%w %q (expected terminal, plain, console, json, yaml)", ErrUnknownFormat, format)
	}
}
