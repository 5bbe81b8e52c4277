package classify

import (
	"strings"

	"github.com/leapstack-labs/tokenguard/pkg/classname"
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/scale"
	"github.com/leapstack-labs/tokenguard/pkg/vocab"
)

// Spacing governs padding, margin, gap and space-between utilities.
var Spacing Classifier = spacingClassifier{}

type spacingClassifier struct{}

// SpacingParts is a decomposed spacing class.
type SpacingParts struct {
	Negative bool   // leading "-" (margins and space-between only)
	Prefix   string // e.g. "px", "gap-x"
	Value    string // e.g. "4", "[13px]"
}

// Utility returns the utility prefix including the negative sign.
func (p SpacingParts) Utility() string {
	if p.Negative {
		return "-" + p.Prefix
	}
	return p.Prefix
}

// SplitSpacing decomposes a spacing base class.
func SplitSpacing(base string) (SpacingParts, bool) {
	neg := strings.HasPrefix(base, "-")
	b := strings.TrimPrefix(base, "-")
	for _, p := range vocab.SpacingPrefixes {
		if !strings.HasPrefix(b, p+"-") {
			continue
		}
		if neg && !allowsNegative(p) {
			return SpacingParts{}, false
		}
		return SpacingParts{Negative: neg, Prefix: p, Value: b[len(p)+1:]}, true
	}
	return SpacingParts{}, false
}

func allowsNegative(prefix string) bool {
	return strings.HasPrefix(prefix, "m") || strings.HasPrefix(prefix, "space-")
}

// IsSemanticSpace reports whether a spacing value is a semantic spacing token.
func IsSemanticSpace(value string) bool {
	name, ok := strings.CutPrefix(value, vocab.SpacingToken+"-")
	return ok && vocab.SpacingSteps.HasName(name)
}

func (spacingClassifier) Category() core.Category { return core.CategorySpacing }

func (spacingClassifier) Claims(base string) bool {
	_, ok := SplitSpacing(base)
	return ok
}

func (spacingClassifier) IsNonSemantic(tok classname.ClassToken) bool {
	parts, ok := SplitSpacing(tok.Base)
	if !ok || vocab.SpacingExempt[parts.Value] || IsSemanticSpace(parts.Value) {
		return false
	}
	v := scale.ParseValue(parts.Value)
	switch v.Kind {
	case scale.KindNumber:
		return v.Number > 0
	case scale.KindArbitrary:
		return true
	default:
		return false
	}
}
