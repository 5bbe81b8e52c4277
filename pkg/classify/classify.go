package classify

import (
	"github.com/leapstack-labs/tokenguard/pkg/classname"
	"github.com/leapstack-labs/tokenguard/pkg/core"
)

// Classifier is the per-category strategy.
type Classifier interface {
	// Category returns the category this classifier governs.
	Category() core.Category

	// Claims reports whether the base class (variant prefix removed) belongs
	// to this category.
	Claims(base string) bool

	// IsNonSemantic reports whether a claimed token uses a raw, arbitrary or
	// deprecated value where a semantic token is expected.
	IsNonSemantic(tok classname.ClassToken) bool
}

// Result is the outcome of classifying one token.
// IsNonSemantic is only meaningful when IsGoverned is true.
type Result struct {
	IsGoverned    bool
	Category      core.Category
	IsNonSemantic bool
}

type entry struct {
	category   core.Category
	claims     func(base string) bool
	classifier Classifier
}

// dispatch is evaluated in order; the first entry whose predicate claims the
// token wins.
var dispatch = []entry{
	{core.CategoryColor, Color.Claims, Color},
	{core.CategorySpacing, Spacing.Claims, Spacing},
	{core.CategorySizing, Sizing.Claims, Sizing},
	{core.CategoryShadow, Shadow.Claims, Shadow},
	{core.CategoryBorderRadius, BorderRadius.Claims, BorderRadius},
}

// Classify determines the category and semantic status of a token.
func Classify(tok classname.ClassToken) Result {
	if tok.Base == "" {
		return Result{}
	}
	for _, e := range dispatch {
		if !e.claims(tok.Base) {
			continue
		}
		return Result{
			IsGoverned:    true,
			Category:      e.category,
			IsNonSemantic: e.classifier.IsNonSemantic(tok),
		}
	}
	return Result{}
}

// ClassifyString parses and classifies a raw class string.
func ClassifyString(raw string) Result {
	return Classify(classname.Parse(raw))
}

// IsNonSemantic reports whether the token is governed and non-semantic.
func IsNonSemantic(tok classname.ClassToken) bool {
	r := Classify(tok)
	return r.IsGoverned && r.IsNonSemantic
}

// For returns the classifier of a category, or nil for CategoryNone.
func For(c core.Category) Classifier {
	for _, e := range dispatch {
		if e.category == c {
			return e.classifier
		}
	}
	return nil
}

// Order returns the dispatch order.
func Order() []core.Category {
	out := make([]core.Category, 0, len(dispatch))
	for _, e := range dispatch {
		out = append(out, e.category)
	}
	return out
}
