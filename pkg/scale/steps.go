package scale

import "sort"

// Step is one entry of a semantic step table: a token name bound to a value on
// the raw numeric scale.
type Step struct {
	Name  string  // semantic suffix, e.g. "md"
	Value float64 // raw scale value, e.g. 10
}

// Table is an ordered list of semantic steps. Declaration order is significant:
// it is the last tie-breaker of Nearest.
type Table []Step

// Match is a step together with its distance from the queried value.
type Match struct {
	Step     Step
	Distance float64
	index    int
}

// Nearest returns every step within maxDistance of n, ordered by distance,
// then by lower step value, then by declaration order. It returns nil when
// even the closest step is farther than maxDistance.
func (t Table) Nearest(n, maxDistance float64) []Match {
	var matches []Match
	for i, s := range t {
		d := Distance(s.Value, n)
		if d > maxDistance {
			continue
		}
		matches = append(matches, Match{Step: s, Distance: d, index: i})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Step.Value != b.Step.Value {
			return a.Step.Value < b.Step.Value
		}
		return a.index < b.index
	})
	return matches
}

// HasName reports whether a step with the given name exists.
func (t Table) HasName(name string) bool {
	for _, s := range t {
		if s.Name == name {
			return true
		}
	}
	return false
}
