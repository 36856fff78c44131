// Package spark renders a sequence of numeric samples as a word-sized strip
// of glyphs, either for a terminal (ANSI colored) or for a browser console
// (%c format tokens plus one CSS declaration per glyph).
//
// Render is pure and deterministic. The only side effect is the diagnostic
// values line written when both Verbose and Browser are set.
package spark

import (
	"io"
	"math"
)

// Style selects a glyph ramp.
type Style string

const (
	StyleBar    Style = "bar"
	StyleLine   Style = "line"
	StyleFire   Style = "fire"
	StyleShaded Style = "shaded"
	StyleBubble Style = "bubble"
	StyleASCII  Style = "ascii"
)

// Size selects a browser font preset. Terminal output ignores it.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeXL     Size = "xl"
)

// Theme overrides the browser colors of the heat bands.
// Empty fields keep the built-in color for that band.
type Theme struct {
	Low  string `json:"low,omitempty" yaml:"low,omitempty"`
	Mid  string `json:"mid,omitempty" yaml:"mid,omitempty"`
	High string `json:"high,omitempty" yaml:"high,omitempty"`
}

// Options configures a single Render call. The zero value renders a plain
// bar strip scaled to the data's own range.
type Options struct {
	Min *float64 // nil = data minimum
	Max *float64 // nil = data maximum

	Smooth  bool
	Heatmap bool
	Browser bool
	Verbose bool

	// Plain drops every escape sequence from terminal output.
	Plain bool

	Size  Size
	Style Style
	Theme Theme

	// Diagnostics receives the "Values: ..." line in verbose browser mode.
	// Defaults to os.Stdout.
	Diagnostics io.Writer
}

// Float returns a pointer to v, for filling Options.Min and Options.Max.
func Float(v float64) *float64 {
	return &v
}

// bound returns the configured bound if it is set and finite.
func bound(p *float64) (float64, bool) {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return 0, false
	}
	return *p, true
}
