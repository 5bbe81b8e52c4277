package vocab

// ColorPrefixes are the utilities governed by the color category, longest first.
var ColorPrefixes = []string{
	"ring-offset",
	"placeholder",
	"decoration",
	"outline",
	"border-x", "border-y", "border-t", "border-r", "border-b", "border-l", "border-s", "border-e",
	"border",
	"divide",
	"accent",
	"stroke",
	"caret",
	"text",
	"fill",
	"ring",
	"from",
	"via",
	"bg",
	"to",
}

// ColorExempt are color keywords that carry no palette value.
var ColorExempt = map[string]bool{
	"transparent": true,
	"current":     true,
	"inherit":     true,
}

// NeutralHues are the grey families of the default palette.
var NeutralHues = map[string]bool{
	"slate":   true,
	"gray":    true,
	"zinc":    true,
	"neutral": true,
	"stone":   true,
}

// HueIntents maps chromatic palette hues to semantic intents.
var HueIntents = map[string]string{
	"red":     "danger",
	"rose":    "danger",
	"orange":  "warning",
	"amber":   "warning",
	"yellow":  "warning",
	"lime":    "success",
	"green":   "success",
	"emerald": "success",
	"teal":    "success",
	"cyan":    "info",
	"sky":     "info",
	"blue":    "primary",
	"indigo":  "primary",
	"violet":  "accent",
	"purple":  "accent",
	"fuchsia": "accent",
	"pink":    "accent",
}

// PaletteShades are the valid shade steps of the default palette.
var PaletteShades = map[int]bool{
	50: true, 100: true, 200: true, 300: true, 400: true,
	500: true, 600: true, 700: true, 800: true, 900: true, 950: true,
}

// Intents are the chromatic semantic color names.
var Intents = []string{"primary", "accent", "info", "success", "warning", "danger"}

// NeutralTokens are the neutral semantic color names.
var NeutralTokens = []string{
	"default", "muted", "subtle", "inverse",
	"surface", "surface-raised", "surface-sunken",
}

// Emphasis suffixes appended to chromatic intents.
const (
	EmphasisSubtle = "subtle"
	EmphasisStrong = "strong"
)

// ShadeEmphasis returns the emphasis suffix for a chromatic shade.
// Mid-range shades carry no suffix.
func ShadeEmphasis(shade int) string {
	switch {
	case shade <= 200:
		return EmphasisSubtle
	case shade >= 700:
		return EmphasisStrong
	default:
		return ""
	}
}

// NeutralName returns the neutral semantic name for a grey shade.
func NeutralName(shade int) string {
	switch {
	case shade <= 200:
		return "subtle"
	case shade <= 500:
		return "muted"
	default:
		return "default"
	}
}

// IsSemanticColor reports whether value (the part after the utility prefix)
// is a semantic color token such as "danger", "danger-strong" or "muted".
func IsSemanticColor(value string) bool {
	for _, n := range NeutralTokens {
		if value == n {
			return true
		}
	}
	for _, intent := range Intents {
		switch value {
		case intent, intent + "-" + EmphasisSubtle, intent + "-" + EmphasisStrong, "on-" + intent:
			return true
		}
	}
	return false
}
