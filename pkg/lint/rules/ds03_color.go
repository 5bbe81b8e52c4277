package rules

import (
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
)

func init() {
	lint.Register(Color)
}

// Color flags palette, black/white and arbitrary colors.
var Color = lint.RuleDef{
	ID:          "DS03",
	Name:        "tokens.color",
	Group:       Group,
	Category:    core.CategoryColor,
	Description: "Colors should use intent and neutral tokens instead of palette shades.",
	Severity:    core.SeverityWarning,
	ConfigKeys:  []string{optExceptions},
	Check:       checkCategory("DS03", core.CategoryColor, core.SeverityWarning, lint.ImpactHigh),
	Validate:    validateExceptionOptions,

	Rationale: `Palette shades encode a hue, not a meaning. bg-red-600 is an error state
in one component and a brand accent in another, and neither survives a theme
change. Intent tokens (danger, success, primary) and neutral tokens (muted,
subtle, surface) are themed centrally.`,

	BadExample: `<p className="text-red-700 bg-red-50">`,

	GoodExample: `<p className="text-danger-strong bg-danger-subtle">`,

	Fix: "Pick the intent the color expresses. The suggestion maps the hue to an intent and the shade to an emphasis.",
}
