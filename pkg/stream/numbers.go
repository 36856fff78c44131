package stream

import (
	"math"
	"regexp"
	"strconv"
)

var numberToken = regexp.MustCompile(`-?[\d.]+`)

// Numbers extracts every numeric token from line in order. Tokens that do
// not parse as a finite float ("1.2.3", ".") are dropped.
func Numbers(line string) []float64 {
	tokens := numberToken.FindAllString(line, -1)
	if len(tokens) == 0 {
		return nil
	}
	out := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}
