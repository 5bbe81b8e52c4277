package rules

import (
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
)

func init() {
	lint.Register(Shadow)
}

// Shadow flags deprecated shadow utilities.
var Shadow = lint.RuleDef{
	ID:          "DS04",
	Name:        "tokens.shadow",
	Group:       Group,
	Category:    core.CategoryShadow,
	Description: "Shadows should use the semantic elevation scale.",
	Severity:    core.SeverityWarning,
	ConfigKeys:  []string{optExceptions},
	Check:       checkCategory("DS04", core.CategoryShadow, core.SeverityWarning, lint.ImpactLow),
	Validate:    validateExceptionOptions,

	Rationale: `The elevation scale has three levels plus interactive, highlight and inset
families. shadow-xl and shadow-2xl have no place on it, and shadow-none usually
means the class should simply be removed.`,

	BadExample: `<div className="shadow-xl">`,

	GoodExample: `<div className="shadow-lg">`,
}
