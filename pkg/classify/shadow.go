package classify

import (
	"strings"

	"github.com/leapstack-labs/tokenguard/pkg/classname"
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/scale"
	"github.com/leapstack-labs/tokenguard/pkg/vocab"
)

// Shadow governs shadow and shadow-* utilities. Shadows have no linear scale;
// non-semantic values come from a closed table.
var Shadow Classifier = shadowClassifier{}

type shadowClassifier struct{}

// IsSemanticShadow reports whether base is on the shadow allow-list.
func IsSemanticShadow(base string) bool {
	if vocab.ShadowAllowed[base] {
		return true
	}
	for _, family := range vocab.ShadowAllowedFamilies {
		if strings.HasPrefix(base, family) {
			return true
		}
	}
	return false
}

func (shadowClassifier) Category() core.Category { return core.CategoryShadow }

func (shadowClassifier) Claims(base string) bool {
	return base == "shadow" || strings.HasPrefix(base, "shadow-")
}

func (shadowClassifier) IsNonSemantic(tok classname.ClassToken) bool {
	if IsSemanticShadow(tok.Base) {
		return false
	}
	if _, ok := vocab.ShadowTable.Find(tok.Base); ok {
		return true
	}
	return scale.IsArbitrary(strings.TrimPrefix(tok.Base, "shadow-"))
}
