// Package rules contains the design-token lint rules.
// Import this package to register all rules with the registry.
//
// Rules are automatically registered via init() functions when this package is imported:
//
//	import _ "github.com/leapstack-labs/tokenguard/pkg/lint/rules"
//
// Every rule delegates to pkg/engine for one category, so the rules and the
// batch validator report the same violations for the same input.
//
// Token rules:
//   - DS01: Sizing - Element sizes should use h-size-*/w-size-* tokens
//   - DS02: Spacing - Padding, margin and gaps should use *-space-* tokens
//   - DS03: Color - Colors should use intent and neutral tokens
//   - DS04: Shadow - Deprecated shadows should use the semantic shadow scale
//   - DS05: Border Radius - Deprecated radii should use the semantic radius scale
package rules
