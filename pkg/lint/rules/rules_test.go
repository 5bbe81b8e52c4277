package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
	"github.com/leapstack-labs/tokenguard/pkg/lint/rules"
	"github.com/leapstack-labs/tokenguard/pkg/suggest"
	"github.com/leapstack-labs/tokenguard/pkg/token"
)

// classSource places value on line 1 at the given column.
func classSource(value string, column int) core.ClassSource {
	return core.ClassSource{
		Value:   value,
		Pos:     token.Position{Line: 1, Column: column, Offset: column - 1},
		Context: "className",
	}
}

// runRules analyzes the sources and filters by rule ID (empty means all).
func runRules(t *testing.T, cfg *lint.Config, ruleID string, sources ...core.ClassSource) []lint.Diagnostic {
	t.Helper()
	analyzer, err := lint.NewAnalyzer(cfg)
	require.NoError(t, err)

	diags := analyzer.AnalyzeFile("src/components/Widget.tsx", sources)
	if ruleID == "" {
		return diags
	}
	var filtered []lint.Diagnostic
	for _, d := range diags {
		if d.RuleID == ruleID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"DS01", "DS02", "DS03", "DS04", "DS05"} {
		rule, ok := lint.GetRuleByID(id)
		require.True(t, ok, id)
		assert.Equal(t, "tokens", rule.Group())
		assert.NotEmpty(t, rule.Description())
		assert.Contains(t, rule.ConfigKeys(), "exceptions")
	}

	cats := map[core.Category]string{}
	for _, rule := range lint.GetRulesByGroup("tokens") {
		cats[rule.Category()] = rule.ID()
	}
	assert.Len(t, cats, len(core.Categories), "one rule per category")
}

func TestRules_OneDiagnosticPerViolation(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		ruleID     string
		class      string
		suggestion string
	}{
		{"sizing", "flex h-10", "DS01", "h-10", "h-size-md"},
		{"sizing variant", "hover:h-10", "DS01", "hover:h-10", "hover:h-size-md"},
		{"spacing", "p-4", "DS02", "p-4", "p-space-md"},
		{"color", "text-red-700", "DS03", "text-red-700", "text-danger-strong"},
		{"shadow", "shadow-2xl", "DS04", "shadow-2xl", "shadow-lg"},
		{"radius", "rounded-t-xl", "DS05", "rounded-t-xl", "rounded-t-lg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRules(t, lint.NewConfig(), "", classSource(tt.value, 1))
			require.Len(t, diags, 1)
			d := diags[0]
			assert.Equal(t, tt.ruleID, d.RuleID)
			assert.Equal(t, tt.class, d.ClassName)
			assert.Equal(t, tt.suggestion, d.Suggestion)
			assert.Equal(t, "className", d.Context)
			assert.Equal(t, core.SeverityWarning, d.Severity)
			assert.True(t, d.AutoFixable)
			assert.Equal(t, lint.BuildDocURL(tt.ruleID), d.DocumentationURL)
		})
	}
}

func TestDS01_Message(t *testing.T) {
	diags := runRules(t, lint.NewConfig(), "DS01", classSource("hover:h-10", 1))
	require.Len(t, diags, 1)
	assert.Equal(t, `"hover:h-10" is a non-semantic sizing class; use "hover:h-size-md"`, diags[0].Message)
}

func TestDS01_NoConfidentSuggestion(t *testing.T) {
	diags := runRules(t, lint.NewConfig(), "DS01", classSource("h-9", 1))
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, "h-9", d.ClassName)
	assert.Empty(t, d.Suggestion)
	assert.Empty(t, d.Candidates)
	assert.Empty(t, d.Fixes)
	assert.False(t, d.AutoFixable)
	assert.Equal(t, `"h-9" is a non-semantic sizing class; use a semantic sizing token`, d.Message)
}

func TestDS01_MaxDistance(t *testing.T) {
	cfg := lint.NewConfig().SetRuleOptions("DS01", map[string]any{"max_distance": 1})
	diags := runRules(t, cfg, "DS01", classSource("h-9", 1))
	require.Len(t, diags, 1)
	assert.Equal(t, []string{"h-size-sm", "h-size-md"}, suggest.Replacements(diags[0].Candidates))
}

func TestResolver_MatchesRuleOptions(t *testing.T) {
	assert.Equal(t, suggest.DefaultResolver, rules.Resolver(nil))
	assert.Equal(t, suggest.DefaultResolver, rules.Resolver(lint.NewConfig()))

	cfg := lint.NewConfig().
		SetRuleOptions("DS01", map[string]any{"max_distance": 1}).
		SetRuleOptions("DS02", map[string]any{"max_distance": 0.0})
	r := rules.Resolver(cfg)
	assert.InDelta(t, 1.0, r.SizingMaxDistance, 0)
	assert.InDelta(t, 0.0, r.SpacingMaxDistance, 0)

	diags := runRules(t, cfg, "", classSource("h-9 p-3", 1))
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.Equal(t, suggest.Replacements(d.Candidates),
			suggest.Replacements(r.Resolve(d.Category, d.ClassName)), d.ClassName)
	}
}

func TestDS02_MaxDistanceZero(t *testing.T) {
	cfg := lint.NewConfig().SetRuleOptions("DS02", map[string]any{"max_distance": 0.0})
	diags := runRules(t, cfg, "DS02", classSource("p-3 p-4", 1))
	require.Len(t, diags, 2)
	assert.Empty(t, diags[0].Candidates)
	assert.Equal(t, "p-space-md", diags[1].Suggestion)
}

func TestMultiOccurrenceIndependence(t *testing.T) {
	// cn("h-8", "w-10")
	diags := runRules(t, lint.NewConfig(), "DS01",
		core.ClassSource{Value: "h-8", Pos: token.Position{Line: 1, Column: 5, Offset: 4}, Context: "cn()"},
		core.ClassSource{Value: "w-10", Pos: token.Position{Line: 1, Column: 12, Offset: 11}, Context: "cn()"},
	)
	require.Len(t, diags, 2)

	assert.Equal(t, "h-8", diags[0].ClassName)
	assert.Equal(t, "h-size-sm", diags[0].Suggestion)
	assert.Equal(t, 4, diags[0].Fixes[0].TextEdits[0].Pos.Offset)
	assert.Equal(t, 7, diags[0].Fixes[0].TextEdits[0].EndPos.Offset)

	assert.Equal(t, "w-10", diags[1].ClassName)
	assert.Equal(t, "w-size-md", diags[1].Suggestion)
	assert.Equal(t, 11, diags[1].Fixes[0].TextEdits[0].Pos.Offset)
	assert.Equal(t, 15, diags[1].Fixes[0].TextEdits[0].EndPos.Offset)
	assert.Equal(t, "cn()", diags[1].Context)
}

func TestDS04_ShadowNoneFixes(t *testing.T) {
	// <div className="shadow-none" />: the literal starts at offset 16
	src := core.ClassSource{Value: "shadow-none", Pos: token.Position{Line: 1, Column: 17, Offset: 16}, Context: "className"}
	diags := runRules(t, lint.NewConfig(), "DS04", src)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, suggest.RemoveClass, d.Suggestion)
	assert.Equal(t, `"shadow-none" is a non-semantic shadow class; remove it`, d.Message)
	require.Len(t, d.Fixes, 2)

	remove := d.Fixes[0]
	assert.Equal(t, `Remove "shadow-none"`, remove.Description)
	require.Len(t, remove.TextEdits, 1)
	assert.Equal(t, 16, remove.TextEdits[0].Pos.Offset)
	assert.Equal(t, 27, remove.TextEdits[0].EndPos.Offset)
	assert.Empty(t, remove.TextEdits[0].NewText)

	replace := d.Fixes[1]
	assert.Equal(t, `Replace "shadow-none" with "shadow-sm"`, replace.Description)
	assert.Equal(t, "shadow-sm", replace.TextEdits[0].NewText)
}

func TestPositions_MultiLineTemplate(t *testing.T) {
	src := core.ClassSource{
		Value:   "flex\n    rounded-xl",
		Pos:     token.Position{Line: 3, Column: 20, Offset: 50},
		Context: "cn()",
	}
	diags := runRules(t, lint.NewConfig(), "DS05", src)
	require.Len(t, diags, 1)
	assert.Equal(t, token.Position{Line: 4, Column: 5, Offset: 59}, diags[0].Pos)
	assert.Equal(t, token.Position{Line: 4, Column: 15, Offset: 69}, diags[0].EndPos)
}

func TestExceptions(t *testing.T) {
	analyzer, err := lint.NewAnalyzer(lint.NewConfig().SetRuleOptions("DS04", map[string]any{
		"exceptions": []any{"marketing/"},
	}))
	require.NoError(t, err)

	sources := []core.ClassSource{classSource("shadow-xl h-10", 1)}

	diags := analyzer.AnalyzeFile("src/marketing/Hero.tsx", sources)
	require.Len(t, diags, 1)
	assert.Equal(t, "DS01", diags[0].RuleID)

	diags = analyzer.AnalyzeFile("src/app/Hero.tsx", sources)
	assert.Len(t, diags, 2)
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name    string
		ruleID  string
		opts    map[string]any
		wantErr bool
	}{
		{"no options", "DS01", nil, false},
		{"valid exceptions", "DS03", map[string]any{"exceptions": []any{"legacy/"}}, false},
		{"valid max distance", "DS02", map[string]any{"max_distance": 2}, false},
		{"non-string exception", "DS04", map[string]any{"exceptions": []any{true}}, true},
		{"empty exception", "DS05", map[string]any{"exceptions": []string{""}}, true},
		{"exceptions not a list", "DS01", map[string]any{"exceptions": "legacy/"}, true},
		{"negative max distance", "DS01", map[string]any{"max_distance": -1}, true},
		{"max distance on lookup rule", "DS04", map[string]any{"max_distance": 1}, true},
		{"unknown option", "DS03", map[string]any{"palette": "tailwind"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := lint.GetRuleByID(tt.ruleID)
			require.True(t, ok)
			err := rule.ValidateOptions(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewAnalyzer_FailsBeforeScanning(t *testing.T) {
	cfg := lint.NewConfig().SetRuleOptions("DS01", map[string]any{"exceptions": []any{1}})
	analyzer, err := lint.NewAnalyzer(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, lint.ErrInvalidOptions)
	assert.Nil(t, analyzer)
}
