package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/multierr"

	"github.com/leapstack-labs/tokenguard/pkg/lint"
)

// Validate checks the configuration, including every lint rule option.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs error

	switch c.Report {
	case ReportSummary, ReportDetailed:
	default:
		errs = multierr.Append(errs, fmt.Errorf("report: must be %q or %q, got %q", ReportSummary, ReportDetailed, c.Report))
	}
	if c.Workers < 0 {
		errs = multierr.Append(errs, fmt.Errorf("workers: must not be negative, got %d", c.Workers))
	}
	for _, p := range c.Include {
		if !doublestar.ValidatePattern(p) {
			errs = multierr.Append(errs, fmt.Errorf("include: invalid glob %q", p))
		}
	}
	for _, p := range c.Exclude {
		if !doublestar.ValidatePattern(p) {
			errs = multierr.Append(errs, fmt.Errorf("exclude: invalid glob %q", p))
		}
	}

	if _, err := c.LintConfig(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

// LintConfig converts the lint section into a validated lint.Config.
func (c *Config) LintConfig() (*lint.Config, error) {
	lc, err := lint.FromLintConfig(c.Lint)
	if err != nil {
		return nil, err
	}
	if err := lc.Validate(); err != nil {
		return nil, err
	}
	return lc, nil
}
