package detect

import (
	"reflect"
	"testing"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", Empty},
		{"  \n\t", Empty},
		{"10 20 30\n", Text},
		{"this is not json", Text},
		{"[1, 2, 3]", JSONArray},
		{"  [1.5,-2]\n", JSONArray},
		{`["a", "b"]`, JSONArray},
		{"[1, 2", Text},
		{`{"values":[1,2,3],"glyphs":"  █"}`, JSONDocument},
		{`{"other":1}`, Text},
		{"{invalid", Text},
	}
	for _, tt := range tests {
		if got := Sniff([]byte(tt.input)); got != tt.want {
			t.Errorf("Sniff(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseJSON_Array(t *testing.T) {
	got, err := ParseJSON([]byte("[10, 20.5, -3]"))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if !reflect.DeepEqual(got, []float64{10, 20.5, -3}) {
		t.Errorf("ParseJSON = %v", got)
	}
}

func TestParseJSON_Document(t *testing.T) {
	got, err := ParseJSON([]byte(`{"version":"1","values":[1,2]}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if !reflect.DeepEqual(got, []float64{1, 2}) {
		t.Errorf("ParseJSON = %v", got)
	}
}

func TestParseJSON_RejectsNonNumbers(t *testing.T) {
	if _, err := ParseJSON([]byte(`[1, "two"]`)); err == nil {
		t.Error("expected error for string element")
	}
	if _, err := ParseJSON([]byte("1 2 3")); err == nil {
		t.Error("expected error for text input")
	}
}
