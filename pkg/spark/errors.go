package spark

import (
	"errors"
	"fmt"
)

// ErrNonFinite is matched by errors for NaN or infinite samples.
var ErrNonFinite = errors.New("non-finite sample")

// SampleError reports the first sample Render refused.
type SampleError struct {
	Index int
	Value float64
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample %d: %v: %s", e.Index, e.Value, ErrNonFinite)
}

func (e *SampleError) Unwrap() error { return ErrNonFinite }
