// Package stream feeds samples from line-oriented input to the renderer:
// numeric token extraction, batch collection, and a live mode that keeps a
// trailing window and redraws one terminal line per input line.
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// RenderFunc renders the current window to a single line.
type RenderFunc func(values []float64) (string, error)

// Config controls live streaming.
type Config struct {
	Window int // samples kept; <= 0 uses DefaultWindow
	Width  int // terminal width; <= 0 uses 80
	Render RenderFunc
	Log    zerolog.Logger
}

// scanLines calls fn for every line of r until EOF, an error, or ctx is
// cancelled.
//
// The scanner runs in a background goroutine. On context cancel, scanLines
// closes r (if it implements io.Closer) to unblock it. Otherwise the caller
// must close the underlying reader to avoid leaking the goroutine.
func scanLines(ctx context.Context, r io.Reader, fn func(line string) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	type scanResult struct {
		line string
		err  error
	}
	lines := make(chan scanResult)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanResult{line: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- scanResult{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			if c, ok := r.(io.Closer); ok {
				_ = c.Close()
			}
			return ctx.Err()
		case res, ok := <-lines:
			if !ok {
				return nil
			}
			if res.err != nil {
				return fmt.Errorf("reading input: %w", res.err)
			}
			if err := fn(res.line); err != nil {
				return err
			}
		}
	}
}

// Collect reads r to the end and returns every number found, in order.
func Collect(ctx context.Context, r io.Reader) ([]float64, error) {
	var all []float64
	err := scanLines(ctx, r, func(line string) error {
		all = append(all, Numbers(line)...)
		return nil
	})
	return all, err
}

// Run consumes r line by line. Each line carrying at least one number
// pushes its samples into the window and redraws the strip in place on out.
// A final newline is written when the input ends or ctx is cancelled.
func Run(ctx context.Context, r io.Reader, out io.Writer, cfg Config) error {
	if cfg.Render == nil {
		return errors.New("stream: nil render func")
	}
	tw := newTermWriter(out, cfg.Width)
	win := NewWindow(cfg.Window)
	cfg.Log.Debug().Int("window", win.Cap()).Int("width", tw.width).Msg("stream started")

	err := scanLines(ctx, r, func(line string) error {
		nums := Numbers(line)
		if len(nums) == 0 {
			cfg.Log.Debug().Str("line", line).Msg("no samples")
			return nil
		}
		win.Push(nums...)
		strip, err := cfg.Render(win.Values())
		if err != nil {
			return err
		}
		// Only the first line fits the in-place redraw.
		strip, _, _ = strings.Cut(strip, "\n")
		tw.Redraw(strip)
		return nil
	})
	tw.Finish()
	return err
}
