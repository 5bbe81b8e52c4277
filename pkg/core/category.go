package core

import (
	"fmt"
	"strings"
)

// =============================================================================
// Category
// =============================================================================

// Category is one of the governed utility-class families.
// A class token belongs to at most one category.
type Category int

// Governed categories. The zero value is CategoryNone.
const (
	CategoryNone Category = iota
	CategorySizing
	CategorySpacing
	CategoryColor
	CategoryShadow
	CategoryBorderRadius
)

// Categories lists every governed category in declaration order.
var Categories = []Category{
	CategorySizing,
	CategorySpacing,
	CategoryColor,
	CategoryShadow,
	CategoryBorderRadius,
}

// String returns the canonical name of the category.
func (c Category) String() string {
	switch c {
	case CategorySizing:
		return "sizing"
	case CategorySpacing:
		return "spacing"
	case CategoryColor:
		return "color"
	case CategoryShadow:
		return "shadow"
	case CategoryBorderRadius:
		return "borderRadius"
	default:
		return "none"
	}
}

// Label returns a human-readable label, e.g. "border radius".
func (c Category) Label() string {
	if c == CategoryBorderRadius {
		return "border radius"
	}
	return c.String()
}

// MarshalText implements encoding.TextMarshaler so categories can key JSON maps.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("unknown category %q", text)
	}
	*c = parsed
	return nil
}

// ParseCategory converts a name to a Category.
// Accepts the canonical names plus "border-radius" and "border_radius".
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sizing", "size":
		return CategorySizing, true
	case "spacing":
		return CategorySpacing, true
	case "color", "colour":
		return CategoryColor, true
	case "shadow":
		return CategoryShadow, true
	case "borderradius", "border-radius", "border_radius", "radius":
		return CategoryBorderRadius, true
	default:
		return CategoryNone, false
	}
}
