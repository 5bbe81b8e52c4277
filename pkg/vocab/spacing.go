package vocab

import "github.com/leapstack-labs/tokenguard/pkg/scale"

// SpacingPrefixes are the utilities governed by the spacing category, longest first.
var SpacingPrefixes = []string{
	"space-x", "space-y",
	"gap-x", "gap-y",
	"px", "py", "pt", "pr", "pb", "pl", "ps", "pe",
	"mx", "my", "mt", "mr", "mb", "ml", "ms", "me",
	"gap", "p", "m",
}

// SpacingExempt are value keywords never flagged.
var SpacingExempt = map[string]bool{
	"0":       true,
	"px":      true,
	"auto":    true,
	"reverse": true,
}

// SpacingToken is the infix of semantic spacing classes: p-space-md.
const SpacingToken = "space"

// SpacingSteps maps semantic spacing names to spacing-scale steps.
var SpacingSteps = scale.Table{
	{Name: "2xs", Value: 0.5},
	{Name: "xs", Value: 1},
	{Name: "sm", Value: 2},
	{Name: "md", Value: 4},
	{Name: "lg", Value: 6},
	{Name: "xl", Value: 8},
	{Name: "2xl", Value: 12},
	{Name: "3xl", Value: 16},
}
