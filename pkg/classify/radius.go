package classify

import (
	"strings"

	"github.com/leapstack-labs/tokenguard/pkg/classname"
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/scale"
	"github.com/leapstack-labs/tokenguard/pkg/vocab"
)

// BorderRadius governs rounded and rounded-* utilities, including side and
// corner forms such as rounded-t-xl.
var BorderRadius Classifier = radiusClassifier{}

type radiusClassifier struct{}

// RadiusParts is a decomposed border-radius class.
type RadiusParts struct {
	Side string // "", "t", "tl", ...
	Size string // "", "xl", "[3px]", ...
}

// Utility returns the utility without the size, e.g. "rounded-t".
func (p RadiusParts) Utility() string {
	if p.Side == "" {
		return "rounded"
	}
	return "rounded-" + p.Side
}

// With returns the class for the given size on the same side.
func (p RadiusParts) With(size string) string {
	return p.Utility() + "-" + size
}

// SplitRadius decomposes a border-radius base class.
func SplitRadius(base string) (RadiusParts, bool) {
	if base == "rounded" {
		return RadiusParts{}, true
	}
	rest, ok := strings.CutPrefix(base, "rounded-")
	if !ok || rest == "" {
		return RadiusParts{}, false
	}
	for _, side := range vocab.RadiusSides {
		if rest == side {
			return RadiusParts{Side: side}, true
		}
		if size, ok := strings.CutPrefix(rest, side+"-"); ok {
			return RadiusParts{Side: side, Size: size}, true
		}
	}
	return RadiusParts{Size: rest}, true
}

// IsSemanticRadius reports whether a radius size is on the allow-list.
func IsSemanticRadius(size string) bool {
	if vocab.RadiusAllowed[size] {
		return true
	}
	for _, family := range vocab.RadiusAllowedFamilies {
		if size == family || strings.HasPrefix(size, family+"-") {
			return true
		}
	}
	return false
}

func (radiusClassifier) Category() core.Category { return core.CategoryBorderRadius }

func (radiusClassifier) Claims(base string) bool {
	_, ok := SplitRadius(base)
	return ok
}

func (radiusClassifier) IsNonSemantic(tok classname.ClassToken) bool {
	parts, ok := SplitRadius(tok.Base)
	if !ok || (parts.Size != "" && IsSemanticRadius(parts.Size)) {
		return false
	}
	if _, ok := vocab.RadiusTable.Find(parts.Size); ok {
		return true
	}
	return scale.IsArbitrary(parts.Size)
}
