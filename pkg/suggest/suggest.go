// Package suggest resolves non-semantic utility classes to ranked semantic
// replacements.
//
// Numeric categories (sizing, spacing) use a nearest-step search bounded by a
// per-category distance threshold. Shadow and border radius use closed lookup
// tables. Color maps palette hues to intents and shades to emphasis.
//
// An empty result is a normal outcome: the class is still a violation, the
// resolver is just not confident enough to propose a replacement.
package suggest

import (
	"github.com/leapstack-labs/tokenguard/pkg/classify"
	"github.com/leapstack-labs/tokenguard/pkg/classname"
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/vocab"
)

// RemoveClass is the replacement sentinel meaning "delete the class".
const RemoveClass = vocab.RemoveClass

// Candidate is one suggested replacement. Rank starts at 1 and follows the
// order candidates were produced in.
type Candidate struct {
	Replacement string `json:"replacement"`
	Rank        int    `json:"rank"`
}

// IsRemoval reports whether the candidate deletes the class.
func (c Candidate) IsRemoval() bool {
	return c.Replacement == RemoveClass
}

// Resolver holds the nearest-match thresholds of the numeric categories.
type Resolver struct {
	// SizingMaxDistance is the largest scale distance still suggested for
	// sizing. Zero means exact matches only.
	SizingMaxDistance float64
	// SpacingMaxDistance is the same bound for spacing.
	SpacingMaxDistance float64
}

// DefaultResolver suggests exact sizing steps only and spacing steps up to
// one scale unit away.
var DefaultResolver = Resolver{
	SizingMaxDistance:  0,
	SpacingMaxDistance: 1,
}

// GetSuggestion resolves className with DefaultResolver.
func GetSuggestion(category core.Category, className string) []Candidate {
	return DefaultResolver.Resolve(category, className)
}

// Resolve parses className and returns its ranked candidates for category.
func (r Resolver) Resolve(category core.Category, className string) []Candidate {
	return r.ResolveToken(category, classname.Parse(className))
}

// ResolveToken returns ranked candidates for an already parsed token. It
// returns nil when the token is not claimed by category, is already semantic,
// or has no confident replacement.
func (r Resolver) ResolveToken(category core.Category, tok classname.ClassToken) []Candidate {
	cl := classify.For(category)
	if cl == nil || tok.Base == "" || !cl.Claims(tok.Base) || !cl.IsNonSemantic(tok) {
		return nil
	}

	var bases []string
	switch category {
	case core.CategorySizing:
		bases = r.sizing(tok.Base)
	case core.CategorySpacing:
		bases = r.spacing(tok.Base)
	case core.CategoryColor:
		bases = color(tok.Base)
	case core.CategoryShadow:
		bases = shadow(tok.Base)
	case core.CategoryBorderRadius:
		bases = radius(tok.Base)
	}
	return rank(tok, bases)
}

// rank reapplies the variant prefix and numbers the candidates, dropping
// duplicates while keeping the first occurrence.
func rank(tok classname.ClassToken, bases []string) []Candidate {
	if len(bases) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(bases))
	out := make([]Candidate, 0, len(bases))
	for _, base := range bases {
		replacement := base
		if base != RemoveClass {
			replacement = tok.WithBase(base)
		}
		if seen[replacement] {
			continue
		}
		seen[replacement] = true
		out = append(out, Candidate{Replacement: replacement, Rank: len(out) + 1})
	}
	return out
}

// Replacements returns the replacement strings in rank order.
func Replacements(cands []Candidate) []string {
	if len(cands) == 0 {
		return nil
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Replacement
	}
	return out
}
