package stream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"
)

// joinRender renders a window as its values joined by commas.
func joinRender(values []float64) (string, error) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ","), nil
}

func TestCollect_GathersAllLines(t *testing.T) {
	got, err := Collect(context.Background(), strings.NewReader("10 20\nnoise\n30\n"))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if !reflect.DeepEqual(got, []float64{10, 20, 30}) {
		t.Errorf("Collect = %v, want [10 20 30]", got)
	}
}

func TestRun_RedrawsPerLineWithinWindow(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("1\n2 3\nskip me\n4\n")
	err := Run(context.Background(), in, &out, Config{Window: 3, Render: joinRender})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "\r\033[K1" + "\r\033[K1,2,3" + "\r\033[K2,3,4" + "\n"
	if out.String() != want {
		t.Errorf("Run output = %q, want %q", out.String(), want)
	}
}

func TestRun_KeepsOnlyFirstRenderedLine(t *testing.T) {
	var out bytes.Buffer
	render := func([]float64) (string, error) { return "strip\nvalues", nil }
	if err := Run(context.Background(), strings.NewReader("5\n"), &out, Config{Render: render}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "\r\033[Kstrip\n" {
		t.Errorf("Run output = %q", out.String())
	}
}

func TestRun_EmptyInputPrintsNewline(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), strings.NewReader(""), &out, Config{Render: joinRender}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "\n" {
		t.Errorf("Run output = %q, want newline", out.String())
	}
}

func TestRun_RenderErrorStops(t *testing.T) {
	boom := errors.New("boom")
	render := func([]float64) (string, error) { return "", boom }
	err := Run(context.Background(), strings.NewReader("1\n2\n"), io.Discard, Config{Render: render})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestRun_NilRenderFunc(t *testing.T) {
	if err := Run(context.Background(), strings.NewReader("1\n"), io.Discard, Config{}); err == nil {
		t.Error("expected error for nil render func")
	}
}

func TestRun_CancelClosesReader(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, pr, io.Discard, Config{Render: joinRender})
	}()

	if _, err := pw.Write([]byte("1\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
