package lint

import "github.com/leapstack-labs/tokenguard/pkg/core"

// =============================================================================
// Rule Interfaces
// =============================================================================

// Rule is the base interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "DS01"
	ID() string

	// Name returns the human-readable name, e.g., "tokens.sizing"
	Name() string

	// Group returns the rule group, e.g., "tokens"
	Group() string

	// Category returns the governed category the rule reports on
	Category() core.Category

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() core.Severity

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
	Fix() string         // How to fix violations (when not obvious)
}

// ClassRule analyzes class strings extracted from source files.
type ClassRule interface {
	Rule

	// CheckClasses analyzes one class string and returns diagnostics.
	// The opts parameter contains rule-specific options from configuration.
	CheckClasses(src core.ClassSource, opts map[string]any) []Diagnostic

	// ValidateOptions rejects malformed rule options. It runs once, before
	// any file is scanned.
	ValidateOptions(opts map[string]any) error
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID(),
		Name:            r.Name(),
		Group:           r.Group(),
		Category:        r.Category().String(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity(),
		ConfigKeys:      r.ConfigKeys(),
		Rationale:       r.Rationale(),
		BadExample:      r.BadExample(),
		GoodExample:     r.GoodExample(),
		Fix:             r.Fix(),
	}
}

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "DS01"
	Name        string        // Human-readable name, e.g., "tokens.sizing"
	Group       string        // Rule group, e.g., "tokens"
	Category    core.Category // Governed category
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	Check       CheckFunc     // The check function
	Validate    ValidateFunc  // Optional: option validation
	ConfigKeys  []string      // Configuration keys this rule accepts (for rule-specific options)

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes a class string and returns diagnostics.
// The opts parameter contains rule-specific options from configuration.
type CheckFunc func(src core.ClassSource, opts map[string]any) []Diagnostic

// ValidateFunc checks rule-specific options.
type ValidateFunc func(opts map[string]any) error

// wrappedRuleDef wraps a RuleDef to implement ClassRule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the ClassRule interface.
func WrapRuleDef(def RuleDef) ClassRule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                     { return w.def.ID }
func (w *wrappedRuleDef) Name() string                   { return w.def.Name }
func (w *wrappedRuleDef) Group() string                  { return w.def.Group }
func (w *wrappedRuleDef) Category() core.Category        { return w.def.Category }
func (w *wrappedRuleDef) Description() string            { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() core.Severity { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string           { return w.def.ConfigKeys }

// Documentation methods
func (w *wrappedRuleDef) Rationale() string   { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string  { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string         { return w.def.Fix }

func (w *wrappedRuleDef) CheckClasses(src core.ClassSource, opts map[string]any) []Diagnostic {
	if w.def.Check == nil {
		return nil
	}
	return w.def.Check(src, opts)
}

func (w *wrappedRuleDef) ValidateOptions(opts map[string]any) error {
	if w.def.Validate == nil {
		return nil
	}
	return w.def.Validate(opts)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}

// Register adds a rule definition to the registry.
// Call this from init() functions in rule packages.
func Register(def RuleDef) {
	RegisterRule(WrapRuleDef(def))
}
