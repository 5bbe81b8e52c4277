package vocab

import "github.com/leapstack-labs/tokenguard/pkg/scale"

// SizingPrefixes are the utilities governed by the sizing category, longest first.
var SizingPrefixes = []string{"min-h", "max-h", "min-w", "max-w", "h", "w"}

// SizingExempt are value keywords never flagged regardless of range.
var SizingExempt = map[string]bool{
	"0":      true,
	"full":   true,
	"auto":   true,
	"screen": true,
}

// SizingFloor is the smallest flagged step; smaller values are sub-element detail.
const SizingFloor = 4

// SizingCeiling is the largest flagged step; larger values are layout dimensions.
const SizingCeiling = 16

// SizingRange is the element-size band in which raw numbers are non-semantic.
var SizingRange = scale.Range{Min: SizingFloor, Max: SizingCeiling}

// SizingToken is the infix of semantic sizing classes: h-size-md.
const SizingToken = "size"

// SizingSteps maps semantic sizing names to spacing-scale steps (1 step = 4px).
var SizingSteps = scale.Table{
	{Name: "2xs", Value: 4},
	{Name: "xs", Value: 6},
	{Name: "sm", Value: 8},
	{Name: "md", Value: 10},
	{Name: "lg", Value: 12},
	{Name: "xl", Value: 16},
}
