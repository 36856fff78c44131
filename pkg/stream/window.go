package stream

// DefaultWindow is the number of samples kept in streaming mode.
const DefaultWindow = 40

// Window is a fixed-capacity ring of the most recent samples. Pushing onto a
// full window evicts the oldest sample.
type Window struct {
	buf   []float64
	start int
	n     int
}

// NewWindow creates a window holding up to capacity samples. A capacity of
// zero or less uses DefaultWindow.
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = DefaultWindow
	}
	return &Window{buf: make([]float64, capacity)}
}

// Push appends samples in order, evicting from the front as needed.
func (w *Window) Push(values ...float64) {
	c := len(w.buf)
	for _, v := range values {
		if w.n < c {
			w.buf[(w.start+w.n)%c] = v
			w.n++
			continue
		}
		w.buf[w.start] = v
		w.start = (w.start + 1) % c
	}
}

// Values returns the samples oldest first. The slice is a copy.
func (w *Window) Values() []float64 {
	out := make([]float64, w.n)
	for i := range out {
		out[i] = w.buf[(w.start+i)%len(w.buf)]
	}
	return out
}

// Len returns the number of samples held.
func (w *Window) Len() int { return w.n }

// Cap returns the window capacity.
func (w *Window) Cap() int { return len(w.buf) }
