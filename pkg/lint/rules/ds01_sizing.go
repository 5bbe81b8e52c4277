package rules

import (
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
)

func init() {
	lint.Register(Sizing)
}

// Sizing flags raw element sizes in the 4-16 scale band.
var Sizing = lint.RuleDef{
	ID:          "DS01",
	Name:        "tokens.sizing",
	Group:       Group,
	Category:    core.CategorySizing,
	Description: "Element heights and widths should use semantic size tokens.",
	Severity:    core.SeverityWarning,
	ConfigKeys:  []string{optExceptions, optMaxDistance},
	Check:       checkCategory("DS01", core.CategorySizing, core.SeverityWarning, lint.ImpactMedium),
	Validate:    validateScaleOptions,

	Rationale: `Controls, avatars and icons share a small set of element sizes. Raw
steps such as h-9 or w-10 drift apart between components; size tokens keep
every button, input and badge on the same rhythm. Layout dimensions (above 16),
sub-element detail (below 4), fractions and arbitrary values are left alone.`,

	BadExample: `<button className="h-10 w-10">`,

	GoodExample: `<button className="h-size-md w-size-md">`,

	Fix: "Replace the raw step with the size token of the same value. Steps without an exact token (h-9) need a design decision.",
}
