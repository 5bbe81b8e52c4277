package vocab

// RemoveClass is the replacement sentinel meaning "delete the class".
const RemoveClass = "remove class"

// Lookup is one row of a closed replacement table.
type Lookup struct {
	Value        string   // offending value
	Replacements []string // candidate replacements in priority order
}

// LookupTable is an ordered closed table.
type LookupTable []Lookup

// Find returns the replacements registered for value.
func (t LookupTable) Find(value string) ([]string, bool) {
	for _, row := range t {
		if row.Value == value {
			return row.Replacements, true
		}
	}
	return nil, false
}

// ShadowAllowed are the exact semantic shadow classes.
var ShadowAllowed = map[string]bool{
	"shadow-sm": true,
	"shadow-md": true,
	"shadow-lg": true,
}

// ShadowAllowedFamilies are prefixes of semantic shadow families.
var ShadowAllowedFamilies = []string{"shadow-interactive", "shadow-highlight", "shadow-inset-"}

// ShadowTable maps non-semantic shadow classes to full replacement classes.
var ShadowTable = LookupTable{
	{Value: "shadow", Replacements: []string{"shadow-sm", "shadow-interactive"}},
	{Value: "shadow-none", Replacements: []string{RemoveClass, "shadow-sm"}},
	{Value: "shadow-inner", Replacements: []string{"shadow-inset-sm", "shadow-inset-md"}},
	{Value: "shadow-xl", Replacements: []string{"shadow-lg", "shadow-highlight"}},
	{Value: "shadow-2xl", Replacements: []string{"shadow-lg"}},
}

// RadiusSides are the side and corner infixes of rounded utilities, longest first.
var RadiusSides = []string{"tl", "tr", "br", "bl", "ss", "se", "es", "ee", "t", "r", "b", "l", "s", "e"}

// RadiusAllowed are the semantic radius sizes.
var RadiusAllowed = map[string]bool{
	"none": true,
	"sm":   true,
	"md":   true,
	"lg":   true,
	"full": true,
}

// RadiusAllowedFamilies are prefixes of semantic radius families.
var RadiusAllowedFamilies = []string{"control", "card", "dialog"}

// RadiusTable maps non-semantic radius sizes to replacement sizes. The empty
// value stands for the bare "rounded" utility. Replacements are sizes, the
// caller rebuilds "rounded[-side]-<size>".
var RadiusTable = LookupTable{
	{Value: "", Replacements: []string{"sm", "control"}},
	{Value: "xl", Replacements: []string{"lg", "card"}},
	{Value: "2xl", Replacements: []string{"card"}},
	{Value: "3xl", Replacements: []string{"dialog"}},
	{Value: "[2px]", Replacements: []string{"sm"}},
	{Value: "[3px]", Replacements: []string{"sm"}},
	{Value: "[4px]", Replacements: []string{"md"}},
	{Value: "[6px]", Replacements: []string{"md"}},
	{Value: "[8px]", Replacements: []string{"lg", "card"}},
	{Value: "[9999px]", Replacements: []string{"full"}},
}
