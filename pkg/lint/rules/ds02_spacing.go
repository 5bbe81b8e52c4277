package rules

import (
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
)

func init() {
	lint.Register(Spacing)
}

// Spacing flags raw padding, margin, gap and space-between steps.
var Spacing = lint.RuleDef{
	ID:          "DS02",
	Name:        "tokens.spacing",
	Group:       Group,
	Category:    core.CategorySpacing,
	Description: "Padding, margin and gaps should use semantic spacing tokens.",
	Severity:    core.SeverityWarning,
	ConfigKeys:  []string{optExceptions, optMaxDistance},
	Check:       checkCategory("DS02", core.CategorySpacing, core.SeverityWarning, lint.ImpactMedium),
	Validate:    validateScaleOptions,

	BadExample:  `<div className="p-3 gap-5">`,
	GoodExample: `<div className="p-space-sm gap-space-md">`,
}
