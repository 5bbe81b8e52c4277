// Package scale holds the numeric helpers shared by the classifiers and the
// suggestion resolver: value-kind detection for utility suffixes, inclusive
// ranges, and nearest-step search over a semantic step table.
package scale

import (
	"math"
	"strconv"
	"strings"
)

// Kind describes the shape of a utility-class value suffix.
type Kind int

// Value kinds.
const (
	KindKeyword   Kind = iota // full, auto, screen, px, sm, ...
	KindNumber                // 4, 2.5
	KindFraction              // 1/2
	KindArbitrary             // [300px]
	KindEmpty                 // no suffix at all ("shadow", "rounded")
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindFraction:
		return "fraction"
	case KindArbitrary:
		return "arbitrary"
	case KindEmpty:
		return "empty"
	default:
		return "keyword"
	}
}

// Value is a parsed utility suffix.
type Value struct {
	Raw    string
	Kind   Kind
	Number float64 // set for KindNumber
}

// ParseValue classifies a suffix such as "10", "2.5", "1/2", "[300px]" or "full".
func ParseValue(s string) Value {
	v := Value{Raw: s}
	switch {
	case s == "":
		v.Kind = KindEmpty
	case IsArbitrary(s):
		v.Kind = KindArbitrary
	case IsFraction(s):
		v.Kind = KindFraction
	default:
		if n, ok := ParseNumber(s); ok {
			v.Kind = KindNumber
			v.Number = n
		} else {
			v.Kind = KindKeyword
		}
	}
	return v
}

// IsArbitrary reports whether s is an arbitrary value like "[300px]".
func IsArbitrary(s string) bool {
	return len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']'
}

// ArbitraryInner returns the text between the brackets of an arbitrary value.
func ArbitraryInner(s string) string {
	if !IsArbitrary(s) {
		return ""
	}
	return s[1 : len(s)-1]
}

// IsFraction reports whether s is a fraction like "1/2" or "11/12".
func IsFraction(s string) bool {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return false
	}
	return isDigits(num) && isDigits(den)
}

// ParseNumber parses an unsigned decimal scale step such as "4" or "2.5".
// Signs, exponents and special values are rejected.
func ParseNumber(s string) (float64, bool) {
	if s == "" || s[0] == '.' || s[len(s)-1] == '.' {
		return 0, false
	}
	dots := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			dots++
			continue
		}
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	if dots > 1 {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether n lies in [Min, Max].
func (r Range) Contains(n float64) bool {
	return n >= r.Min && n <= r.Max
}

// Distance returns the absolute difference between two scale values.
func Distance(a, b float64) float64 {
	return math.Abs(a - b)
}
