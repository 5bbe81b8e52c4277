package rules

import (
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
)

func init() {
	lint.Register(BorderRadius)
}

// BorderRadius flags deprecated radius utilities, per side and corner.
var BorderRadius = lint.RuleDef{
	ID:          "DS05",
	Name:        "tokens.border_radius",
	Group:       Group,
	Category:    core.CategoryBorderRadius,
	Description: "Border radii should use the semantic radius scale.",
	Severity:    core.SeverityWarning,
	ConfigKeys:  []string{optExceptions},
	Check:       checkCategory("DS05", core.CategoryBorderRadius, core.SeverityWarning, lint.ImpactLow),
	Validate:    validateExceptionOptions,

	BadExample:  `<div className="rounded-t-xl">`,
	GoodExample: `<div className="rounded-t-card">`,
	Fix:         "Side and corner forms keep their side: rounded-t-xl becomes rounded-t-lg or rounded-t-card.",
}
