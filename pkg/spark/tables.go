package spark

import (
	"sort"
)

var ramps = map[Style][]string{
	StyleBar:    {" ", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
	StyleLine:   {"_", ".", "-", "¯"},
	StyleFire:   {" ", "⡀", "⣀", "⣄", "⣤", "⣦", "⣶", "⣷", "⣿"},
	StyleShaded: {" ", "░", "▒", "▓", "█"},
	StyleBubble: {"·", "•", "o", "O", "@"},
	StyleASCII:  {".", "-", "=", "#"},
}

var sizes = map[Size]string{
	SizeSmall:  "font-size: 10px",
	SizeMedium: "font-size: 14px",
	SizeLarge:  "font-size: 20px; font-weight: bold; line-height: 20px;",
	SizeXL:     "font-size: 35px; font-weight: bold; line-height: 35px;",
}

// band is one heat level: an ANSI escape for terminals and a CSS color for
// browsers.
type band struct {
	ansi string
	css  string
}

var (
	bandLow   = band{ansi: "\x1b[32m", css: "#69f0ae"}
	bandMid   = band{ansi: "\x1b[33m", css: "#ffd740"}
	bandHigh  = band{ansi: "\x1b[31m", css: "#ff5252"}
	bandReset = band{ansi: "\x1b[0m", css: "inherit"}
)

// Heat band thresholds on the normalized value.
const (
	lowBelow = 0.35
	midBelow = 0.75
)

// Ramp returns a copy of the glyph ramp for s, lowest magnitude first.
// Unknown styles get the bar ramp.
func Ramp(s Style) []string {
	r := ramps[s.resolve()]
	return append([]string(nil), r...)
}

// Styles lists the known style names in sorted order.
func Styles() []Style {
	out := make([]Style, 0, len(ramps))
	for s := range ramps {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Valid reports whether s names a known ramp.
func (s Style) Valid() bool {
	_, ok := ramps[s]
	return ok
}

func (s Style) resolve() Style {
	if s.Valid() {
		return s
	}
	return StyleBar
}

// Valid reports whether z names a known size preset.
func (z Size) Valid() bool {
	_, ok := sizes[z]
	return ok
}

func (z Size) font() string {
	if f, ok := sizes[z]; ok {
		return f
	}
	return sizes[SizeMedium]
}

// cssColors resolves the low/mid/high color declarations for browser output.
func (t Theme) cssColors() (low, mid, high string) {
	pick := func(override, fallback string) string {
		if override != "" {
			return "color: " + override
		}
		return "color: " + fallback
	}
	return pick(t.Low, bandLow.css), pick(t.Mid, bandMid.css), pick(t.High, bandHigh.css)
}
