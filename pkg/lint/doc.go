// Package lint provides the rule framework that reports non-semantic utility
// classes found in source files.
//
// # Architecture
//
// The lint package has two layers:
//
//  1. Root package (pkg/lint/): shared contracts, the rule registry, configuration and the Analyzer
//  2. Rules (pkg/lint/rules/): one rule per governed category, built on pkg/engine
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their package is imported:
//
//	import _ "github.com/leapstack-labs/tokenguard/pkg/lint/rules"
//
// # Rule Categories
//
// Token rules (group "tokens"):
//   - DS01: sizing (h-*, w-*, min-/max- forms)
//   - DS02: spacing (padding, margin, gap, space-between)
//   - DS03: color (palette, black/white and arbitrary colors)
//   - DS04: shadow (closed table of deprecated shadows)
//   - DS05: border radius (closed table of deprecated radii)
//
// # Using the Registry
//
//	rules := lint.AllRules()
//	rule, ok := lint.GetRuleByID("DS01")
//	colorRules := lint.GetRulesByCategory(core.CategoryColor)
//
// # Configuration
//
// Use Config to control which rules are enabled, their severity and options:
//
//	config := lint.NewConfig()
//	config.Disable("DS03")
//	config.SetSeverity("DS04", core.SeverityError)
//	config.SetRuleOptions("DS01", map[string]any{"exceptions": []any{"legacy/"}})
//
// NewAnalyzer validates the configuration up front; malformed options such as
// a non-string exception fail with ErrInvalidOptions before anything is scanned.
package lint
