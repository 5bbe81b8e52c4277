package classify

import (
	"strings"

	"github.com/leapstack-labs/tokenguard/pkg/classname"
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/scale"
	"github.com/leapstack-labs/tokenguard/pkg/vocab"
)

// Sizing governs h-*, w-*, min-h-*, max-h-*, min-w-* and max-w-*.
var Sizing Classifier = sizingClassifier{}

type sizingClassifier struct{}

// SplitSizing splits a sizing base class into utility prefix and value.
func SplitSizing(base string) (prefix, value string, ok bool) {
	for _, p := range vocab.SizingPrefixes {
		if strings.HasPrefix(base, p+"-") {
			return p, base[len(p)+1:], true
		}
	}
	return "", "", false
}

// IsSemanticSize reports whether a sizing value is a semantic size token.
func IsSemanticSize(value string) bool {
	name, ok := strings.CutPrefix(value, vocab.SizingToken+"-")
	return ok && vocab.SizingSteps.HasName(name)
}

func (sizingClassifier) Category() core.Category { return core.CategorySizing }

func (sizingClassifier) Claims(base string) bool {
	_, _, ok := SplitSizing(base)
	return ok
}

func (sizingClassifier) IsNonSemantic(tok classname.ClassToken) bool {
	_, value, ok := SplitSizing(tok.Base)
	if !ok || vocab.SizingExempt[value] || IsSemanticSize(value) {
		return false
	}
	v := scale.ParseValue(value)
	if v.Kind != scale.KindNumber {
		// fractions, arbitrary values and keywords stay
		return false
	}
	return vocab.SizingRange.Contains(v.Number)
}
