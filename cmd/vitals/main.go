// vitals renders a sequence of numbers as a word-sized sparkline.
//
// Usage:
//
//	vitals 10 20 50 30 10 --style line
//	echo 10 20 80 40 100 | vitals --style fire --heat
//	ping example.com | vitals --stream --style line --heat
//
// Numbers come from the arguments or, when there are none, from stdin:
// free text (every numeric token counts) or a JSON array of numbers.
//
// Output formats (--format):
//
//	terminal    ANSI colored glyphs (default when TTY)
//	plain       glyphs only (default when piped or NO_COLOR is set)
//	console     a browser devtools console.log(...) statement
//	json        structured JSON for automation
//	yaml        the same document as YAML
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"pkt.systems/version"

	"github.com/dkoosis/vitals/internal/config"
	"github.com/dkoosis/vitals/internal/detect"
	"github.com/dkoosis/vitals/internal/logging"
	"github.com/dkoosis/vitals/pkg/pattern"
	"github.com/dkoosis/vitals/pkg/render"
	"github.com/dkoosis/vitals/pkg/spark"
	"github.com/dkoosis/vitals/pkg/stream"
)

func init() {
	version.SetDefaultModule("github.com/dkoosis/vitals")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// cliFlags holds every parsed flag value.
type cliFlags struct {
	min, max          float64
	style             string
	heat, heatmap     bool
	smooth            bool
	streaming         bool
	size              string
	low, mid, high    string
	verbose           bool
	browser           bool
	format            string
	label             string
	window            int
	theme             string
	listStyles        bool
	noColor           bool
	debug             bool
	showVersion, help bool
}

func newFlagSet(f *cliFlags, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("vitals", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(true)

	fs.Float64Var(&f.min, "min", 0, "Floor value (default: data minimum)")
	fs.Float64Var(&f.max, "max", 0, "Ceiling value (default: data maximum)")
	fs.StringVarP(&f.style, "style", "s", "", "Glyph style: bar, line, fire, shaded, bubble, ascii")
	fs.BoolVar(&f.heat, "heat", false, "Color glyphs by magnitude (green → red)")
	fs.BoolVar(&f.heatmap, "heatmap", false, "Alias for --heat")
	fs.BoolVar(&f.smooth, "smooth", false, "Smooth noise with a 2-sample moving average")
	fs.BoolVar(&f.streaming, "stream", false, "Live mode: redraw on every stdin line")
	fs.StringVar(&f.size, "size", "medium", "Browser font size: small, medium, large, xl")
	fs.StringVar(&f.low, "low", "", "Browser CSS color for low values")
	fs.StringVar(&f.mid, "mid", "", "Browser CSS color for mid values")
	fs.StringVar(&f.high, "high", "", "Browser CSS color for high values")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Print rounded values under the strip")
	fs.BoolVar(&f.browser, "browser", false, "Shorthand for --format console")
	fs.StringVarP(&f.format, "format", "f", config.DefaultFormat, "Output format: auto, terminal, plain, console, json, yaml")
	fs.StringVarP(&f.label, "label", "l", "", "Label printed before the strip")
	fs.IntVarP(&f.window, "window", "w", stream.DefaultWindow, "Samples kept in --stream mode")
	fs.StringVar(&f.theme, "theme", config.DefaultTheme, "Label theme: default, orca, mono")
	fs.BoolVar(&f.listStyles, "list-styles", false, "Show every glyph style and exit")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colors")
	fs.BoolVar(&f.debug, "debug", false, "Log diagnostics to stderr")
	fs.BoolVar(&f.showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "Show this screen")
	return fs
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runContext(ctx, args, stdin, stdout, stderr)
}

// runContext is run with the interrupt context supplied by the caller.
func runContext(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var f cliFlags
	fs := newFlagSet(&f, stderr)

	flagArgs, positional := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		fmt.Fprintf(stderr, "vitals: %v\n", err)
		fmt.Fprintf(stderr, "Usage: vitals [flags] [numbers...]\n%s", fs.FlagUsages())
		return 2
	}
	positional = append(positional, fs.Args()...)

	if f.help {
		printHelp(stdout, fs)
		return 0
	}
	if f.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	cfg, err := config.Resolve(config.CliFlags{
		Style:      f.style,
		Format:     f.format,
		Theme:      f.theme,
		Window:     f.window,
		NoColor:    f.noColor,
		Debug:      f.debug,
		StyleSet:   fs.Changed("style"),
		FormatSet:  fs.Changed("format"),
		ThemeSet:   fs.Changed("theme"),
		WindowSet:  fs.Changed("window"),
		NoColorSet: fs.Changed("no-color"),
		DebugSet:   fs.Changed("debug"),
	})
	if err != nil {
		fmt.Fprintf(stderr, "vitals: %v\n", err)
		return 2
	}

	log := logging.New(stderr, logging.Config{Debug: cfg.Debug, Pretty: true})
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}
	log.Debug().
		Str("style", string(cfg.Style)).Str("style_source", cfg.StyleSource).
		Str("format", cfg.Format).Str("format_source", cfg.FormatSource).
		Int("window", cfg.Window).Bool("no_color", cfg.NoColor).
		Msg("config resolved")

	theme := render.ThemeByName(cfg.Theme)
	if cfg.NoColor {
		theme = render.MonoTheme()
	}

	if f.listStyles {
		listStyles(stdout, theme, cfg.NoColor)
		return 0
	}

	opts := spark.Options{
		Smooth:  f.smooth,
		Heatmap: f.heat || f.heatmap,
		Verbose: f.verbose,
		Size:    spark.Size(f.size),
		Style:   cfg.Style,
		Theme:   spark.Theme{Low: f.low, Mid: f.mid, High: f.high},
	}
	if fs.Changed("min") {
		opts.Min = spark.Float(f.min)
	}
	if fs.Changed("max") {
		opts.Max = spark.Float(f.max)
	}

	format := resolveFormat(cfg.Format, f.browser, cfg.NoColor, stdout)
	renderer, err := render.ByName(format, theme, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "vitals: %v\n", err)
		return 2
	}
	log.Debug().Str("renderer", format).Msg("renderer selected")

	sess := &session{
		stdout:  stdout,
		stderr:  stderr,
		label:   f.label,
		opts:    opts,
		format:  format,
		theme:   theme,
		window:  cfg.Window,
		noColor: cfg.NoColor,
		log:     log,
	}

	numbers := parseNumbers(positional, log)
	if len(numbers) > 0 {
		return sess.emit(renderer, numbers)
	}

	if f.streaming {
		return sess.stream(ctx, stdin)
	}
	return sess.batch(ctx, stdin, renderer)
}

// splitArgs separates flags (with their values) from positional numbers so
// that negative numbers are not mistaken for shorthand flags.
func splitArgs(fs *pflag.FlagSet, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return flagArgs, append(positional, args[i+1:]...)
		case a == "-" || !strings.HasPrefix(a, "-") || isNumber(a):
			positional = append(positional, a)
		default:
			flagArgs = append(flagArgs, a)
			if takesValue(fs, a) && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		}
	}
	return flagArgs, positional
}

// takesValue reports whether a is a flag that consumes the next argument.
// Shorthands may be combined (-vs line); a value flag inside the group
// takes the rest of the group as its value.
func takesValue(fs *pflag.FlagSet, a string) bool {
	if strings.HasPrefix(a, "--") {
		if strings.Contains(a, "=") {
			return false
		}
		fl := fs.Lookup(a[2:])
		return fl != nil && fl.NoOptDefVal == ""
	}
	group := a[1:]
	for i, r := range group {
		fl := fs.ShorthandLookup(string(r))
		if fl == nil {
			return false
		}
		if fl.NoOptDefVal == "" {
			return i+utf8.RuneLen(r) == len(group)
		}
	}
	return false
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// parseNumbers converts positional arguments, skipping anything that is
// not a finite number.
func parseNumbers(args []string, log zerolog.Logger) []float64 {
	var out []float64
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			log.Warn().Str("arg", a).Msg("ignoring non-numeric argument")
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			log.Warn().Str("arg", a).Msg("ignoring non-finite argument")
			continue
		}
		out = append(out, v)
	}
	return out
}

// resolveFormat turns "auto" and --browser into a concrete renderer name.
func resolveFormat(format string, browser, noColor bool, w io.Writer) string {
	if browser && (format == "auto" || format == "terminal" || format == "plain") {
		return "console"
	}
	if format == "auto" {
		// Auto-detect: TTY = terminal, piped = plain
		if isTTYWriter(w) && !noColor {
			return "terminal"
		}
		return "plain"
	}
	if format == "terminal" && noColor {
		return "plain"
	}
	return format
}

// session carries the settings shared by the batch and stream paths.
type session struct {
	stdout, stderr io.Writer
	label          string
	opts           spark.Options
	format         string
	theme          render.Theme
	window         int
	noColor        bool
	log            zerolog.Logger
}

func (s *session) sparkline(values []float64) *pattern.Sparkline {
	return &pattern.Sparkline{Label: s.label, Values: values, Options: s.opts}
}

func (s *session) emit(r render.Renderer, values []float64) int {
	out, err := r.Render(s.sparkline(values))
	if err != nil {
		fmt.Fprintf(s.stderr, "vitals: rendering: %v\n", err)
		return 1
	}
	fmt.Fprint(s.stdout, out)
	return 0
}

// batch reads all of stdin and renders it once.
func (s *session) batch(ctx context.Context, stdin io.Reader, r render.Renderer) int {
	input, err := readInput(ctx, stdin)
	if errors.Is(err, context.Canceled) {
		return 130
	}
	if err != nil {
		fmt.Fprintf(s.stderr, "vitals: reading stdin: %v\n", err)
		return 1
	}

	format := detect.Sniff(input)
	s.log.Debug().Str("input", format.String()).Int("bytes", len(input)).Msg("stdin read")

	var samples []float64
	switch format {
	case detect.Empty:
		return 0
	case detect.JSONArray, detect.JSONDocument:
		samples, err = detect.ParseJSON(input)
		if err == nil {
			break
		}
		s.log.Warn().Err(err).Msg("falling back to text extraction")
		fallthrough
	default:
		samples, err = stream.Collect(ctx, bytes.NewReader(input))
		if err != nil {
			fmt.Fprintf(s.stderr, "vitals: %v\n", err)
			return 1
		}
	}

	if len(samples) == 0 {
		s.log.Debug().Msg("no samples on stdin")
		return 0
	}
	return s.emit(r, samples)
}

// readInput reads r to EOF or until ctx is cancelled. On cancel r is
// closed, if it can be, to unblock the pending read.
func readInput(ctx context.Context, r io.Reader) ([]byte, error) {
	if c, ok := r.(io.Closer); ok {
		stopClose := context.AfterFunc(ctx, func() { _ = c.Close() })
		defer stopClose()
	}

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- result{data: data, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return res.data, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// stream handles the live path: one in-place redraw per stdin line.
func (s *session) stream(ctx context.Context, stdin io.Reader) int {
	// The live line is always terminal text.
	var r render.Renderer
	switch s.format {
	case "terminal":
		r = render.NewTerminal(s.theme)
	case "plain":
		r = render.NewPlain()
	default:
		s.log.Warn().Str("format", s.format).Msg("stream mode renders terminal output; ignoring format")
		r = render.NewTerminal(s.theme)
		if s.noColor {
			r = render.NewPlain()
		}
	}
	s.opts.Verbose = false

	width, _ := termSize(s.stdout)
	err := stream.Run(ctx, stdin, s.stdout, stream.Config{
		Window: s.window,
		Width:  width,
		Log:    s.log,
		Render: func(values []float64) (string, error) {
			out, err := r.Render(s.sparkline(values))
			return strings.TrimSuffix(out, "\n"), err
		},
	})
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		fmt.Fprintf(s.stderr, "vitals: %v\n", err)
		return 1
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	title := lipgloss.NewStyle().Bold(true)
	section := lipgloss.NewStyle().Underline(true)

	fmt.Fprintln(w, title.Render("vitals: sparklines for your terminal"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, section.Render("Usage"))
	fmt.Fprintln(w, "  vitals [flags] <numbers...>")
	fmt.Fprintln(w, "  <command> | vitals [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, section.Render("Flags"))
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, section.Render("Examples"))
	fmt.Fprintln(w, "  vitals 10 20 50 30 10 --style line")
	fmt.Fprintln(w, "  echo 10 20 80 40 100 | vitals --style fire --heat")
	fmt.Fprintln(w, "  ping example.com | vitals --stream --style line --heat")
}

// listStyles prints every glyph style rendered over a demo ramp.
func listStyles(w io.Writer, theme render.Theme, noColor bool) {
	demo := []float64{1, 2, 3, 4, 5, 6, 7, 8, 7, 6, 5, 4, 3, 2, 1}
	title := cases.Title(language.English)
	for _, s := range spark.Styles() {
		out, err := spark.Render(demo, spark.Options{Style: s, Heatmap: !noColor, Plain: noColor})
		if err != nil {
			continue
		}
		name := fmt.Sprintf("%-8s", title.String(string(s)))
		fmt.Fprintf(w, "%s %s  %s\n", theme.Bold.Render(name), out.(spark.Terminal).Text, theme.Muted.Render(string(s)))
	}
}
