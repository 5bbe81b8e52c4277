package rules

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/engine"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
	"github.com/leapstack-labs/tokenguard/pkg/suggest"
)

// Option keys.
const (
	optExceptions  = lint.OptionExceptions
	optMaxDistance = "max_distance"
)

// Group is the rule group of every token rule.
const Group = "tokens"

// exceptionOptions are the options accepted by every token rule.
type exceptionOptions struct {
	Exceptions []string `mapstructure:"exceptions"`
}

// scaleOptions are the options of the numeric-scale rules.
type scaleOptions struct {
	Exceptions  []string `mapstructure:"exceptions"`
	MaxDistance *float64 `mapstructure:"max_distance"`
}

func validateExceptionOptions(opts map[string]any) error {
	var o exceptionOptions
	if err := lint.DecodeOptions(opts, &o); err != nil {
		return err
	}
	return lint.ValidateExceptions(o.Exceptions)
}

func validateScaleOptions(opts map[string]any) error {
	var o scaleOptions
	if err := lint.DecodeOptions(opts, &o); err != nil {
		return err
	}
	if o.MaxDistance != nil && *o.MaxDistance < 0 {
		return errors.New(optMaxDistance + ": must not be negative")
	}
	return lint.ValidateExceptions(o.Exceptions)
}

// resolverFor applies a max_distance option to the default resolver.
func resolverFor(category core.Category, opts map[string]any) suggest.Resolver {
	return withMaxDistance(suggest.DefaultResolver, category, opts)
}

// Resolver returns the resolver the token rules use under cfg, so callers
// outside the analyzer suggest the same replacements for the same config.
func Resolver(cfg *lint.Config) suggest.Resolver {
	r := suggest.DefaultResolver
	r = withMaxDistance(r, core.CategorySizing, cfg.GetRuleOptions(Sizing.ID))
	r = withMaxDistance(r, core.CategorySpacing, cfg.GetRuleOptions(Spacing.ID))
	return r
}

func withMaxDistance(r suggest.Resolver, category core.Category, opts map[string]any) suggest.Resolver {
	switch category {
	case core.CategorySizing:
		r.SizingMaxDistance = lint.GetFloatOption(opts, optMaxDistance, r.SizingMaxDistance)
	case core.CategorySpacing:
		r.SpacingMaxDistance = lint.GetFloatOption(opts, optMaxDistance, r.SpacingMaxDistance)
	}
	return r
}

// checkCategory builds the check function of a token rule: inspect the class
// string for one category and turn every violation into a diagnostic.
func checkCategory(ruleID string, category core.Category, severity core.Severity, impact lint.ImpactLevel) lint.CheckFunc {
	categories := []core.Category{category}
	return func(src core.ClassSource, opts map[string]any) []lint.Diagnostic {
		resolver := resolverFor(category, opts)
		violations := engine.Inspect(src.Value, engine.Options{
			Categories: categories,
			Resolver:   &resolver,
		})
		if len(violations) == 0 {
			return nil
		}

		diagnostics := make([]lint.Diagnostic, 0, len(violations))
		for _, v := range violations {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:           ruleID,
				Severity:         severity,
				Message:          message(v),
				Pos:              src.PositionOf(v.Start),
				EndPos:           src.PositionOf(v.End),
				Fixes:            fixes(src, v),
				Category:         v.Category,
				ClassName:        v.ClassName,
				Context:          src.Context,
				Suggestion:       v.Suggestion,
				Candidates:       v.AllCandidates,
				DocumentationURL: lint.BuildDocURL(ruleID),
				ImpactScore:      impact.Int(),
				AutoFixable:      v.HasSuggestion(),
			})
		}
		return diagnostics
	}
}

func message(v engine.Violation) string {
	label := v.Category.Label()
	switch {
	case v.Suggestion == suggest.RemoveClass:
		return fmt.Sprintf("%q is a non-semantic %s class; remove it", v.ClassName, label)
	case v.Suggestion != "":
		return fmt.Sprintf("%q is a non-semantic %s class; use %q", v.ClassName, label, v.Suggestion)
	default:
		return fmt.Sprintf("%q is a non-semantic %s class; use a semantic %s token", v.ClassName, label, label)
	}
}

// fixes returns one fix per candidate. Each fix edits only the offending
// class inside the literal.
func fixes(src core.ClassSource, v engine.Violation) []lint.Fix {
	if len(v.AllCandidates) == 0 {
		return nil
	}
	out := make([]lint.Fix, 0, len(v.AllCandidates))
	for _, c := range v.AllCandidates {
		start, end, text := engine.Edit(src.Value, v, c)
		desc := fmt.Sprintf("Replace %q with %q", v.ClassName, c.Replacement)
		if c.IsRemoval() {
			desc = fmt.Sprintf("Remove %q", v.ClassName)
		}
		out = append(out, lint.Fix{
			Description: desc,
			TextEdits: []lint.TextEdit{{
				Pos:     src.PositionOf(start),
				EndPos:  src.PositionOf(end),
				NewText: text,
			}},
		})
	}
	return out
}
