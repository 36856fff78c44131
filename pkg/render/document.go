package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/vitals/pkg/pattern"
	"github.com/dkoosis/vitals/pkg/spark"
)

// documentVersion is bumped on incompatible changes to document.
const documentVersion = "1"

// document is the structured form of a rendered strip.
type document struct {
	Version string    `json:"version" yaml:"version"`
	Type    string    `json:"type" yaml:"type"`
	Label   string    `json:"label,omitempty" yaml:"label,omitempty"`
	Style   string    `json:"style" yaml:"style"`
	Values  []float64 `json:"values" yaml:"values"`
	Glyphs  string    `json:"glyphs" yaml:"glyphs"`
	Format  string    `json:"format" yaml:"format"`
	Styles  []string  `json:"styles" yaml:"styles"`
}

func newDocument(s *pattern.Sparkline) (document, error) {
	// Verbose only affects diagnostics, which would corrupt the document.
	s2 := *s
	s2.Options.Verbose = false

	b, err := renderBrowser(&s2, io.Discard)
	if err != nil {
		return document{}, err
	}
	style := s.Options.Style
	if !style.Valid() {
		style = spark.StyleBar
	}
	values := s.Values
	if values == nil {
		values = []float64{}
	}
	styles := b.Styles
	if styles == nil {
		styles = []string{}
	}
	return document{
		Version: documentVersion,
		Type:    string(s.Type()),
		Label:   s.Label,
		Style:   string(style),
		Values:  values,
		Glyphs:  strings.ReplaceAll(b.Format, "%c", ""),
		Format:  b.Format,
		Styles:  styles,
	}, nil
}

// JSON renders a strip as a JSON document for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// Render formats the strip as indented JSON.
func (j *JSON) Render(s *pattern.Sparkline) (string, error) {
	doc, err := newDocument(s)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding json: %w", err)
	}
	return string(data) + "\n", nil
}

// YAML renders a strip as a YAML document.
type YAML struct{}

// NewYAML creates a YAML renderer.
func NewYAML() *YAML {
	return &YAML{}
}

// Render formats the strip as YAML.
func (y *YAML) Render(s *pattern.Sparkline) (string, error) {
	doc, err := newDocument(s)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding yaml: %w", err)
	}
	return string(data), nil
}
