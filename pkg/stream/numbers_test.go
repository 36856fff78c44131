package stream

import (
	"reflect"
	"testing"
)

func TestNumbers(t *testing.T) {
	tests := []struct {
		line string
		want []float64
	}{
		{"10 20 30", []float64{10, 20, 30}},
		{"64 bytes from 1.1.1.1: icmp_seq=1 ttl=57 time=12.3 ms", []float64{64, 1, 57, 12.3}},
		{"cpu=-4.5%, mem=.5", []float64{-4.5, 0.5}},
		{"value: 5.", []float64{5}},
		{"1.2.3 . -.", []float64{}},
		{"no numbers here", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := Numbers(tt.line)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Numbers(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestNumbers_DropsOverflow(t *testing.T) {
	huge := "1"
	for i := 0; i < 400; i++ {
		huge += "0"
	}
	if got := Numbers(huge + " 7"); !reflect.DeepEqual(got, []float64{7}) {
		t.Errorf("Numbers = %v, want [7]", got)
	}
}
