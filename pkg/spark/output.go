package spark

// Mode identifies which Output variant a render produced.
type Mode string

const (
	ModeTerminal Mode = "terminal"
	ModeBrowser  Mode = "browser"
)

// Output is the result of Render. It is either Terminal or Browser;
// callers switch on the concrete type.
type Output interface {
	Mode() Mode
	isOutput()
}

// Terminal is a glyph string with ANSI color codes. With Verbose set, a
// newline and the aligned rounded values follow the glyphs.
type Terminal struct {
	Text string
}

func (Terminal) Mode() Mode { return ModeTerminal }
func (Terminal) isOutput()  {}

func (t Terminal) String() string { return t.Text }

// Browser is a console format string with one %c marker per glyph and the
// CSS declarations those markers consume, in order.
type Browser struct {
	Format string   `json:"format" yaml:"format"`
	Styles []string `json:"styles" yaml:"styles"`
}

func (Browser) Mode() Mode { return ModeBrowser }
func (Browser) isOutput()  {}

// Args returns the format string followed by the styles, ready to spread
// into console.log.
func (b Browser) Args() []string {
	args := make([]string, 0, len(b.Styles)+1)
	args = append(args, b.Format)
	return append(args, b.Styles...)
}
