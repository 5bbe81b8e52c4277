package lint

import (
	"sort"

	"github.com/leapstack-labs/tokenguard/pkg/core"
)

// Analyzer runs the enabled lint rules against class strings.
// It is read-only after construction and safe for concurrent use.
type Analyzer struct {
	config *Config
	rules  []ClassRule
}

// NewAnalyzer validates the configuration and creates an analyzer over the
// registered, non-disabled rules. Invalid options fail here, before any file
// is scanned.
func NewAnalyzer(config *Config) (*Analyzer, error) {
	if config == nil {
		config = NewConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var rules []ClassRule
	for _, rule := range GetAllRules() {
		if config.IsDisabled(rule.ID()) {
			continue
		}
		rules = append(rules, rule)
	}
	return &Analyzer{config: config, rules: rules}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() *Config {
	return a.config
}

// Rules returns the enabled rules in ID order.
func (a *Analyzer) Rules() []ClassRule {
	return a.rules
}

// Analyze runs every enabled rule against one class string. Path exceptions
// are not consulted.
func (a *Analyzer) Analyze(src core.ClassSource) []Diagnostic {
	var diagnostics []Diagnostic
	for _, rule := range a.rules {
		diagnostics = append(diagnostics, a.check(rule, src)...)
	}
	sortDiagnostics(diagnostics)
	return diagnostics
}

// AnalyzeFile runs the enabled rules over every class string of one file.
// Global exceptions skip the whole file; per-rule exceptions skip that rule
// for the whole file. Both are evaluated once, before any class is inspected.
func (a *Analyzer) AnalyzeFile(path string, sources []core.ClassSource) []Diagnostic {
	if a.config.IsExcepted(path) {
		return nil
	}

	var diagnostics []Diagnostic
	for _, rule := range a.rules {
		opts := a.config.GetRuleOptions(rule.ID())
		if PathExcepted(path, GetStringSliceOption(opts, OptionExceptions, nil)) {
			continue
		}
		for _, src := range sources {
			diagnostics = append(diagnostics, a.check(rule, src)...)
		}
	}
	sortDiagnostics(diagnostics)
	return diagnostics
}

func (a *Analyzer) check(rule ClassRule, src core.ClassSource) []Diagnostic {
	diags := rule.CheckClasses(src, a.config.GetRuleOptions(rule.ID()))

	// Apply severity overrides
	for i := range diags {
		diags[i].Severity = a.config.GetSeverity(rule.ID(), diags[i].Severity)
	}
	return diags
}

// sortDiagnostics orders diagnostics by source offset, then rule ID.
func sortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Pos.Offset != diags[j].Pos.Offset {
			return diags[i].Pos.Offset < diags[j].Pos.Offset
		}
		return diags[i].RuleID < diags[j].RuleID
	})
}
