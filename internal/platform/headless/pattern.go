// Package headless runs the game without a terminal: steering comes from a
// scripted pattern and frames are produced as fast as they are consumed, so a
// seed and a pattern always give the same run.
package headless

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidPattern is returned for a steering pattern that cannot be parsed.
var ErrInvalidPattern = errors.New("headless: invalid steering pattern")

type step struct {
	value float64
	count int
}

// Pattern is a looping steering script.
//
// Syntax: comma-separated segments VALUE[:COUNT]. VALUE is L (-1), R (+1),
// N (0) or a number; COUNT is the number of ticks it lasts (default 1).
// "L:30,N:10,R:30" steers left for 30 ticks, coasts for 10, steers right for
// 30, then starts over. The empty pattern never steers.
type Pattern struct {
	steps []step
	total int
}

// ParsePattern parses a steering pattern.
func ParsePattern(s string) (*Pattern, error) {
	p := &Pattern{}
	s = strings.TrimSpace(s)
	if s == "" {
		return p, nil
	}

	for _, seg := range strings.Split(s, ",") {
		seg = strings.TrimSpace(seg)
		valueStr, countStr, hasCount := strings.Cut(seg, ":")

		value, err := parseValue(valueStr)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %q: %v", ErrInvalidPattern, seg, err)
		}

		count := 1
		if hasCount {
			count, err = strconv.Atoi(strings.TrimSpace(countStr))
			if err != nil || count < 1 {
				return nil, fmt.Errorf("%w: segment %q: count must be a positive integer", ErrInvalidPattern, seg)
			}
		}

		p.steps = append(p.steps, step{value: value, count: count})
		p.total += count
	}
	return p, nil
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("missing value")
	}
	switch strings.ToUpper(s) {
	case "L":
		return -1, nil
	case "R":
		return 1, nil
	case "N":
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("unknown value %q", s)
	}
	return v, nil
}

// At returns the steering value for a zero-based tick.
func (p *Pattern) At(tick int) float64 {
	if p.total == 0 || tick < 0 {
		return 0
	}
	tick %= p.total
	for _, st := range p.steps {
		if tick < st.count {
			return st.value
		}
		tick -= st.count
	}
	return 0
}

// Len returns the number of ticks before the pattern repeats.
func (p *Pattern) Len() int {
	return p.total
}

// String returns the pattern in canonical form.
func (p *Pattern) String() string {
	parts := make([]string, len(p.steps))
	for i, st := range p.steps {
		var v string
		switch st.value {
		case -1:
			v = "L"
		case 1:
			v = "R"
		case 0:
			v = "N"
		default:
			v = strconv.FormatFloat(st.value, 'g', -1, 64)
		}
		parts[i] = fmt.Sprintf("%s:%d", v, st.count)
	}
	return strings.Join(parts, ",")
}

// Script plays a pattern one tick per Value call.
type Script struct {
	pattern *Pattern
	tick    int
}

// NewScript creates a script positioned at tick zero.
func NewScript(p *Pattern) *Script {
	return &Script{pattern: p}
}

// Value returns the current tick's steering and advances the script.
func (s *Script) Value() float64 {
	v := s.pattern.At(s.tick)
	s.tick++
	return v
}
