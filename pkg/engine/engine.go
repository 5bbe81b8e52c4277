// Package engine ties the tokenizer, the classifiers and the suggestion
// resolver together. It is the single entry point shared by the lint rules and
// the batch validator, so both report identical violations for identical
// input.
package engine

import (
	"slices"

	"github.com/leapstack-labs/tokenguard/pkg/classify"
	"github.com/leapstack-labs/tokenguard/pkg/classname"
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/suggest"
)

// Violation is one non-semantic class found in a class string.
type Violation struct {
	ClassName     string              `json:"className"`
	Category      core.Category       `json:"category"`
	Suggestion    string              `json:"suggestion,omitempty"`
	AllCandidates []suggest.Candidate `json:"allCandidates,omitempty"`
	Start         int                 `json:"start"` // byte offset of ClassName in the inspected value
	End           int                 `json:"end"`
}

// HasSuggestion reports whether the resolver produced at least one candidate.
func (v Violation) HasSuggestion() bool {
	return len(v.AllCandidates) > 0
}

// Options restricts an inspection.
type Options struct {
	// Categories limits reporting to these categories. Empty means all.
	Categories []core.Category
	// Resolver overrides suggest.DefaultResolver when non-nil.
	Resolver *suggest.Resolver
}

func (o Options) resolver() suggest.Resolver {
	if o.Resolver != nil {
		return *o.Resolver
	}
	return suggest.DefaultResolver
}

func (o Options) wants(c core.Category) bool {
	return len(o.Categories) == 0 || slices.Contains(o.Categories, c)
}

// Inspect returns the violations of value in token order. Duplicated classes
// are reported once per occurrence.
func Inspect(value string, opts Options) []Violation {
	resolver := opts.resolver()

	var violations []Violation
	for _, tok := range classname.ExtractTailwindClasses(value) {
		res := classify.Classify(tok)
		if !res.IsGoverned || !res.IsNonSemantic || !opts.wants(res.Category) {
			continue
		}
		cands := resolver.ResolveToken(res.Category, tok)
		v := Violation{
			ClassName:     tok.Raw,
			Category:      res.Category,
			AllCandidates: cands,
			Start:         tok.Start,
			End:           tok.End,
		}
		if len(cands) > 0 {
			v.Suggestion = cands[0].Replacement
		}
		violations = append(violations, v)
	}
	return violations
}

// Check inspects value with the default options.
func Check(value string) []Violation {
	return Inspect(value, Options{})
}

// Edit returns the minimal replacement of value that applies candidate c to
// violation v: the byte range [start, end) is replaced by text. Removing a
// class also removes one adjacent whitespace run, preferring the one after it.
func Edit(value string, v Violation, c suggest.Candidate) (start, end int, text string) {
	if !c.IsRemoval() {
		return v.Start, v.End, c.Replacement
	}

	start, end = v.Start, v.End
	if after := skipSpaceForward(value, end); after > end {
		return start, after, ""
	}
	return skipSpaceBackward(value, start), end, ""
}

// ApplyCandidate returns value with candidate c applied to violation v.
func ApplyCandidate(value string, v Violation, c suggest.Candidate) string {
	start, end, text := Edit(value, v, c)
	return value[:start] + text + value[end:]
}

func skipSpaceForward(s string, i int) int {
	for i < len(s) && classname.IsSpace(s[i]) {
		i++
	}
	return i
}

func skipSpaceBackward(s string, i int) int {
	for i > 0 && classname.IsSpace(s[i-1]) {
		i--
	}
	return i
}
