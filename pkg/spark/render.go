package spark

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// verboseColumn is the minimum width of each value in the verbose line.
const verboseColumn = 3

// Render maps samples onto the glyph ramp selected by opts.
//
// An empty input yields an empty Terminal or Browser. Configuration problems
// never fail: unknown styles and sizes fall back to the defaults, and
// non-finite bounds are ignored. A NaN or infinite sample is rejected with a
// *SampleError.
func Render(samples []float64, opts Options) (Output, error) {
	if len(samples) == 0 {
		if opts.Browser {
			return Browser{}, nil
		}
		return Terminal{}, nil
	}
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &SampleError{Index: i, Value: v}
		}
	}

	data := samples
	if opts.Smooth {
		data = Smooth(samples)
	}

	lo, hi := Bounds(data, opts)
	ramp := ramps[opts.Style.resolve()]
	font := opts.Size.font()
	lowCSS, midCSS, highCSS := opts.Theme.cssColors()

	var (
		strip   strings.Builder
		format  strings.Builder
		verbose strings.Builder
		styles  = make([]string, 0, len(data))
	)

	for _, v := range data {
		n := normalize(v, lo, hi)
		glyph := ramp[int(math.Floor(n*float64(len(ramp)-1)))]

		ansi, css := bandReset.ansi, bandReset.css
		if opts.Heatmap {
			switch {
			case n < lowBelow:
				ansi, css = bandLow.ansi, lowCSS
			case n < midBelow:
				ansi, css = bandMid.ansi, midCSS
			default:
				ansi, css = bandHigh.ansi, highCSS
			}
		}

		if opts.Plain {
			strip.WriteString(glyph)
		} else {
			strip.WriteString(ansi)
			strip.WriteString(glyph)
			strip.WriteString(bandReset.ansi)
		}
		format.WriteString("%c")
		format.WriteString(glyph)
		styles = append(styles, css+"; "+font)

		if opts.Verbose {
			verbose.WriteString(runewidth.FillRight(roundString(v), verboseColumn))
		}
	}

	if opts.Browser {
		if opts.Verbose {
			emitValues(opts.Diagnostics, data)
		}
		return Browser{Format: format.String(), Styles: styles}, nil
	}

	if opts.Verbose {
		return Terminal{Text: strip.String() + "\n" + verbose.String()}, nil
	}
	return Terminal{Text: strip.String()}, nil
}

// Smooth returns the 2-wide trailing moving average of samples. The first
// value is kept as is.
func Smooth(samples []float64) []float64 {
	out := make([]float64, len(samples))
	for i := range samples {
		start := i - 1
		if start < 0 {
			start = 0
		}
		out[i] = stat.Mean(samples[start:i+1], nil)
	}
	return out
}

// Bounds resolves the scale for data: configured finite bounds win, the
// data's own extremes fill the rest. A configured pair given as min > max
// is swapped. A single configured bound that lies beyond the data is kept
// as is, so lo may exceed hi and every sample then clamps to hi.
// data must not be empty.
func Bounds(data []float64, opts Options) (lo, hi float64) {
	lo, minSet := bound(opts.Min)
	if !minSet {
		lo = floats.Min(data)
	}
	hi, maxSet := bound(opts.Max)
	if !maxSet {
		hi = floats.Max(data)
	}
	if minSet && maxSet && lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// normalize clamps v into [lo, hi] and scales it to [0, 1]. A flat range
// maps everything to 0.5. With lo > hi the clamp pins v to hi, which
// scales to 1.
func normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	v = math.Min(math.Max(v, lo), hi)
	return (v - lo) / (hi - lo)
}

// roundString rounds half toward positive infinity, so -2.5 becomes -2.
func roundString(v float64) string {
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func emitValues(w io.Writer, data []float64) {
	if w == nil {
		w = os.Stdout
	}
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = roundString(v)
	}
	fmt.Fprintf(w, "Values: %s\n", strings.Join(parts, " | "))
}
