package suggest

import (
	"github.com/leapstack-labs/tokenguard/pkg/classify"
	"github.com/leapstack-labs/tokenguard/pkg/vocab"
)

// surfacePrefixes paint areas rather than strokes or glyphs; white on them
// maps to the surface token.
var surfacePrefixes = map[string]bool{
	"bg": true, "from": true, "via": true, "to": true, "fill": true,
}

func color(base string) []string {
	parts, ok := classify.SplitColor(base)
	if !ok {
		return nil
	}

	var names []string
	switch parts.Kind {
	case classify.ColorBlack:
		names = []string{"default"}
	case classify.ColorWhite:
		if surfacePrefixes[parts.Prefix] {
			names = []string{"surface", "inverse"}
		} else {
			names = []string{"inverse"}
		}
	case classify.ColorPalette:
		names = paletteNames(parts.Hue, parts.Shade)
	default:
		return nil
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		cls := parts.Prefix + "-" + name
		if parts.Opacity != "" {
			cls += "/" + parts.Opacity
		}
		out = append(out, cls)
	}
	return out
}

func paletteNames(hue string, shade int) []string {
	if vocab.NeutralHues[hue] {
		return []string{vocab.NeutralName(shade)}
	}
	intent, ok := vocab.HueIntents[hue]
	if !ok {
		return nil
	}
	emphasis := vocab.ShadeEmphasis(shade)
	if emphasis == "" {
		return []string{intent}
	}
	return []string{intent + "-" + emphasis, intent}
}
