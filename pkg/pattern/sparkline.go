package pattern

import "github.com/dkoosis/vitals/pkg/spark"

// Sparkline is one labelled strip: the samples and the options to render
// them with.
type Sparkline struct {
	Label   string
	Values  []float64
	Options spark.Options
}

// Type identifies the pattern as a sparkline.
func (s *Sparkline) Type() PatternType { return PatternTypeSparkline }

// Render renders the samples with the pattern's options.
func (s *Sparkline) Render() (spark.Output, error) {
	return spark.Render(s.Values, s.Options)
}
