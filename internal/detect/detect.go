// Package detect sniffs stdin to determine how samples are encoded.
package detect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Format represents a recognized input format.
type Format int

const (
	Empty        Format = iota
	Text                // free text; numbers are extracted token by token
	JSONArray           // a JSON array of numbers, e.g. from jq
	JSONDocument        // a JSON object with a "values" array, e.g. vitals --format json
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSONArray:
		return "json-array"
	case JSONDocument:
		return "json-document"
	default:
		return "empty"
	}
}

// Sniff examines the input to determine its format. Anything that is not
// well-formed JSON of a known shape is Text.
func Sniff(data []byte) Format {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Empty
	}

	switch data[0] {
	case '[':
		var probe []json.RawMessage
		if json.Unmarshal(data, &probe) == nil {
			return JSONArray
		}
	case '{':
		var probe struct {
			Values []json.RawMessage `json:"values"`
		}
		if json.Unmarshal(data, &probe) == nil && probe.Values != nil {
			return JSONDocument
		}
	}
	return Text
}

// ParseJSON decodes samples from JSONArray or JSONDocument input.
func ParseJSON(data []byte) ([]float64, error) {
	var values []float64
	switch Sniff(data) {
	case JSONArray:
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("parsing json array: %w", err)
		}
	case JSONDocument:
		var doc struct {
			Values []float64 `json:"values"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing json document: %w", err)
		}
		values = doc.Values
	default:
		return nil, fmt.Errorf("input is not a json array or document")
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("value %d is not finite", i)
		}
	}
	return values, nil
}
