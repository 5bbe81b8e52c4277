package classify

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/tokenguard/pkg/classname"
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/scale"
	"github.com/leapstack-labs/tokenguard/pkg/vocab"
)

// Color governs text, background, border, ring and the other color utilities.
var Color Classifier = colorClassifier{}

type colorClassifier struct{}

// ColorKind is the kind of value carried by a color utility.
type ColorKind int

// Color value kinds.
const (
	ColorPalette   ColorKind = iota + 1 // red-500
	ColorBlack                          // black
	ColorWhite                          // white
	ColorArbitrary                      // [#ff0000]
	ColorKeyword                        // transparent, current, inherit
	ColorSemantic                       // danger, muted
)

// ColorParts is a decomposed color class.
type ColorParts struct {
	Prefix  string // e.g. "bg", "border-t"
	Value   string // e.g. "red-500"
	Opacity string // opacity modifier without the slash, e.g. "50"
	Kind    ColorKind
	Hue     string // palette hue for ColorPalette
	Shade   int    // palette shade for ColorPalette
}

var arbitraryColorPrefixes = []string{"#", "rgb(", "rgba(", "hsl(", "hsla(", "oklch(", "oklab(", "color:"}

// SplitColor decomposes a color base class. It only succeeds when the value
// really is a color; "text-sm" or "border-2" are rejected.
func SplitColor(base string) (ColorParts, bool) {
	for _, p := range vocab.ColorPrefixes {
		if !strings.HasPrefix(base, p+"-") {
			continue
		}
		value, opacity := cutOpacity(base[len(p)+1:])
		parts := ColorParts{Prefix: p, Value: value, Opacity: opacity}
		if kind, hue, shade, ok := colorKind(value); ok {
			parts.Kind, parts.Hue, parts.Shade = kind, hue, shade
			return parts, true
		}
	}
	return ColorParts{}, false
}

func colorKind(value string) (ColorKind, string, int, bool) {
	switch {
	case value == "black":
		return ColorBlack, "", 0, true
	case value == "white":
		return ColorWhite, "", 0, true
	case vocab.ColorExempt[value]:
		return ColorKeyword, "", 0, true
	case vocab.IsSemanticColor(value):
		return ColorSemantic, "", 0, true
	case scale.IsArbitrary(value):
		inner := strings.ToLower(scale.ArbitraryInner(value))
		for _, p := range arbitraryColorPrefixes {
			if strings.HasPrefix(inner, p) {
				return ColorArbitrary, "", 0, true
			}
		}
		return 0, "", 0, false
	}

	hue, shadeStr, ok := strings.Cut(value, "-")
	if !ok {
		return 0, "", 0, false
	}
	if !vocab.NeutralHues[hue] {
		if _, chromatic := vocab.HueIntents[hue]; !chromatic {
			return 0, "", 0, false
		}
	}
	shade, err := strconv.Atoi(shadeStr)
	if err != nil || !vocab.PaletteShades[shade] {
		return 0, "", 0, false
	}
	return ColorPalette, hue, shade, true
}

// cutOpacity splits "red-500/50" into "red-500" and "50". Slashes inside an
// arbitrary value are left alone.
func cutOpacity(value string) (string, string) {
	depth := 0
	for i := len(value) - 1; i >= 0; i-- {
		switch value[i] {
		case ']', ')':
			depth++
		case '[', '(':
			depth--
		case '/':
			if depth == 0 {
				return value[:i], value[i+1:]
			}
		}
	}
	return value, ""
}

func (colorClassifier) Category() core.Category { return core.CategoryColor }

func (colorClassifier) Claims(base string) bool {
	_, ok := SplitColor(base)
	return ok
}

func (colorClassifier) IsNonSemantic(tok classname.ClassToken) bool {
	parts, ok := SplitColor(tok.Base)
	if !ok {
		return false
	}
	switch parts.Kind {
	case ColorPalette, ColorBlack, ColorWhite, ColorArbitrary:
		return true
	default:
		return false
	}
}
