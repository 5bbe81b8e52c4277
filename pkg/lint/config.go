package lint

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/leapstack-labs/tokenguard/pkg/core"
)

// Config controls which rules are enabled, their severity and options.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]core.Severity

	// RuleOptions holds rule-specific options keyed by rule ID
	RuleOptions map[string]map[string]any

	// Exceptions are path substrings; matching files are skipped by every rule
	Exceptions []string
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]core.Severity),
		RuleOptions:       make(map[string]map[string]any),
	}
}

// FromLintConfig builds a Config from the file/env configuration.
func FromLintConfig(lc *core.LintConfig) (*Config, error) {
	cfg := NewConfig()
	if lc == nil {
		return cfg, nil
	}

	for _, id := range lc.Disabled {
		cfg.Disable(id)
	}

	var errs error
	for id, sevStr := range lc.Severity {
		sev, ok := core.ParseSeverity(sevStr)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%s: unknown severity %q", normalizeID(id), sevStr))
			continue
		}
		cfg.SetSeverity(id, sev)
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, errs)
	}

	for id, opts := range lc.Rules {
		cfg.SetRuleOptions(id, opts)
	}
	cfg.AddExceptions(lc.Exceptions...)
	return cfg, nil
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[normalizeID(ruleID)]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity core.Severity) core.Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[normalizeID(ruleID)]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options configured for a rule, or nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[normalizeID(ruleID)]
}

// IsExcepted reports whether path matches a global exception.
func (c *Config) IsExcepted(path string) bool {
	if c == nil {
		return false
	}
	return PathExcepted(path, c.Exceptions)
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[normalizeID(ruleID)] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity core.Severity) *Config {
	c.SeverityOverrides[normalizeID(ruleID)] = severity
	return c
}

// SetRuleOptions replaces the options of a rule.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	c.RuleOptions[normalizeID(ruleID)] = opts
	return c
}

// AddExceptions appends global path exceptions.
func (c *Config) AddExceptions(exceptions ...string) *Config {
	c.Exceptions = append(c.Exceptions, exceptions...)
	return c
}

// Validate checks the configuration against the registered rules. Every
// problem is reported, not just the first; the returned error wraps
// ErrInvalidOptions.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	var errs error
	if err := ValidateExceptions(c.Exceptions); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("lint.%w", err))
	}

	for _, id := range sortedKeys(c.DisabledRules) {
		if _, ok := GetRuleByID(id); !ok {
			errs = multierr.Append(errs, fmt.Errorf("disabled: unknown rule %q", id))
		}
	}
	for _, id := range sortedKeys(c.SeverityOverrides) {
		if _, ok := GetRuleByID(id); !ok {
			errs = multierr.Append(errs, fmt.Errorf("severity: unknown rule %q", id))
		}
	}
	for _, id := range sortedKeys(c.RuleOptions) {
		if _, ok := GetRuleByID(id); !ok {
			errs = multierr.Append(errs, fmt.Errorf("rules: unknown rule %q", id))
		}
	}

	for _, rule := range GetAllRules() {
		if c.IsDisabled(rule.ID()) {
			continue
		}
		if err := rule.ValidateOptions(c.GetRuleOptions(rule.ID())); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rules.%s: %w", rule.ID(), err))
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, errs)
	}
	return nil
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
