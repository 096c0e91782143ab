package headless

import (
	"errors"
	"testing"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		input     string
		canonical string
		length    int
	}{
		{"", "", 0},
		{"L", "L:1", 1},
		{"l:3,r:2", "L:3,R:2", 5},
		{" L:30 , N:10 , R:30 ", "L:30,N:10,R:30", 70},
		{"0.5:4,-2", "0.5:4,-2:1", 5},
		{"1:2", "R:2", 2},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			p, err := ParsePattern(tc.input)
			if err != nil {
				t.Fatalf("ParsePattern(%q) failed: %v", tc.input, err)
			}
			if p.String() != tc.canonical {
				t.Errorf("String() = %q, expected %q", p.String(), tc.canonical)
			}
			if p.Len() != tc.length {
				t.Errorf("Len() = %d, expected %d", p.Len(), tc.length)
			}
		})
	}
}

func TestParsePatternErrors(t *testing.T) {
	for _, input := range []string{
		"X",
		"L:0",
		"L:-3",
		"L:abc",
		"L,,R",
		":5",
		"NaN",
		"Inf:2",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePattern(input)
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("ParsePattern(%q) error = %v, expected ErrInvalidPattern", input, err)
			}
		})
	}
}

func TestPatternAt(t *testing.T) {
	p, err := ParsePattern("L:2,N:1,R:3")
	if err != nil {
		t.Fatal(err)
	}

	expected := []float64{-1, -1, 0, 1, 1, 1, -1, -1, 0}
	for tick, want := range expected {
		if got := p.At(tick); got != want {
			t.Errorf("At(%d) = %g, expected %g", tick, got, want)
		}
	}

	empty := &Pattern{}
	if empty.At(5) != 0 {
		t.Error("empty pattern should never steer")
	}
}

func TestScriptAdvances(t *testing.T) {
	p, err := ParsePattern("L,R")
	if err != nil {
		t.Fatal(err)
	}
	s := NewScript(p)

	for i, want := range []float64{-1, 1, -1, 1} {
		if got := s.Value(); got != want {
			t.Errorf("call %d: Value() = %g, expected %g", i, got, want)
		}
	}
}
