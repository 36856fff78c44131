// Package pattern defines the semantic data types handed to vitals' output
// encoders. Patterns carry data and options; encoders decide presentation.
package pattern

// PatternType identifies the kind of visualization pattern.
type PatternType string

const (
	PatternTypeSparkline PatternType = "sparkline"
)
