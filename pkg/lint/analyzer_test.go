package lint_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
	"github.com/leapstack-labs/tokenguard/pkg/token"
)

// registerWordRule registers a rule flagging every occurrence of word.
func registerWordRule(t *testing.T, id, word string) {
	t.Helper()
	lint.Register(lint.RuleDef{
		ID:         id,
		Name:       "test." + word,
		Group:      "testing",
		Category:   core.CategoryShadow,
		Severity:   core.SeverityWarning,
		ConfigKeys: []string{lint.OptionExceptions},
		Check: func(src core.ClassSource, _ map[string]any) []lint.Diagnostic {
			var diags []lint.Diagnostic
			for i := 0; ; {
				j := strings.Index(src.Value[i:], word)
				if j < 0 {
					break
				}
				diags = append(diags, lint.Diagnostic{
					RuleID:    id,
					Severity:  core.SeverityWarning,
					ClassName: word,
					Pos:       src.PositionOf(i + j),
				})
				i += j + len(word)
			}
			return diags
		},
		Validate: func(opts map[string]any) error {
			var o struct {
				Exceptions []string `mapstructure:"exceptions"`
			}
			if err := lint.DecodeOptions(opts, &o); err != nil {
				return err
			}
			return lint.ValidateExceptions(o.Exceptions)
		},
	})
}

func setupRules(t *testing.T) {
	t.Helper()
	lint.ClearRegistry()
	t.Cleanup(lint.ClearRegistry)
	registerWordRule(t, "TST01", "shadow-xl")
	registerWordRule(t, "TST02", "rounded")
}

func source(value string, offset int) core.ClassSource {
	return core.ClassSource{
		Value:   value,
		Pos:     token.Position{Line: 1, Column: offset + 1, Offset: offset},
		Context: "className",
	}
}

func TestAnalyzer_AnalyzeFile(t *testing.T) {
	setupRules(t)

	analyzer, err := lint.NewAnalyzer(lint.NewConfig())
	require.NoError(t, err)
	assert.Len(t, analyzer.Rules(), 2)

	diags := analyzer.AnalyzeFile("src/App.tsx", []core.ClassSource{
		source("rounded shadow-xl", 10),
		source("shadow-xl", 40),
	})
	require.Len(t, diags, 3)

	// ordered by offset across rules
	assert.Equal(t, "TST02", diags[0].RuleID)
	assert.Equal(t, 10, diags[0].Pos.Offset)
	assert.Equal(t, "TST01", diags[1].RuleID)
	assert.Equal(t, 18, diags[1].Pos.Offset)
	assert.Equal(t, "TST01", diags[2].RuleID)
	assert.Equal(t, 40, diags[2].Pos.Offset)
}

func TestAnalyzer_DisableRule(t *testing.T) {
	setupRules(t)

	analyzer, err := lint.NewAnalyzer(lint.NewConfig().Disable("tst01"))
	require.NoError(t, err)

	diags := analyzer.AnalyzeFile("a.tsx", []core.ClassSource{source("rounded shadow-xl", 0)})
	require.Len(t, diags, 1)
	assert.Equal(t, "TST02", diags[0].RuleID)
}

func TestAnalyzer_SeverityOverride(t *testing.T) {
	setupRules(t)

	analyzer, err := lint.NewAnalyzer(lint.NewConfig().SetSeverity("TST01", core.SeverityError))
	require.NoError(t, err)

	diags := analyzer.Analyze(source("shadow-xl rounded", 0))
	require.Len(t, diags, 2)
	assert.Equal(t, core.SeverityError, diags[0].Severity)
	assert.Equal(t, core.SeverityWarning, diags[1].Severity)
}

func TestAnalyzer_GlobalExceptions(t *testing.T) {
	setupRules(t)

	cfg := lint.NewConfig().AddExceptions("legacy/")
	analyzer, err := lint.NewAnalyzer(cfg)
	require.NoError(t, err)

	sources := []core.ClassSource{source("shadow-xl rounded", 0)}
	assert.Empty(t, analyzer.AnalyzeFile("src/legacy/Card.tsx", sources))
	assert.Len(t, analyzer.AnalyzeFile("src/ui/Card.tsx", sources), 2)
}

func TestAnalyzer_RuleExceptions(t *testing.T) {
	setupRules(t)

	cfg := lint.NewConfig().SetRuleOptions("TST01", map[string]any{
		lint.OptionExceptions: []any{"marketing/"},
	})
	analyzer, err := lint.NewAnalyzer(cfg)
	require.NoError(t, err)

	diags := analyzer.AnalyzeFile("src/marketing/Hero.tsx", []core.ClassSource{source("shadow-xl rounded", 0)})
	require.Len(t, diags, 1)
	assert.Equal(t, "TST02", diags[0].RuleID)
}

func TestNewAnalyzer_InvalidOptions(t *testing.T) {
	setupRules(t)

	tests := []struct {
		name    string
		cfg     *lint.Config
		wantErr []string
	}{
		{
			name: "non-string exception",
			cfg: lint.NewConfig().SetRuleOptions("TST01", map[string]any{
				lint.OptionExceptions: []any{"ok/", 42},
			}),
			wantErr: []string{"rules.TST01"},
		},
		{
			name: "empty exception",
			cfg: lint.NewConfig().SetRuleOptions("TST02", map[string]any{
				lint.OptionExceptions: []any{""},
			}),
			wantErr: []string{"rules.TST02", "non-empty"},
		},
		{
			name:    "empty global exception",
			cfg:     lint.NewConfig().AddExceptions(" "),
			wantErr: []string{"lint.exceptions[0]"},
		},
		{
			name:    "unknown rule",
			cfg:     lint.NewConfig().Disable("XX99").SetRuleOptions("YY01", map[string]any{}),
			wantErr: []string{`unknown rule "XX99"`, `unknown rule "YY01"`},
		},
		{
			name: "all problems reported",
			cfg: lint.NewConfig().
				SetRuleOptions("TST01", map[string]any{"bogus": true}).
				SetRuleOptions("TST02", map[string]any{lint.OptionExceptions: "not-a-list"}),
			wantErr: []string{"rules.TST01", "rules.TST02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer, err := lint.NewAnalyzer(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, analyzer)
			assert.True(t, errors.Is(err, lint.ErrInvalidOptions))
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestNewAnalyzer_DisabledRuleOptionsNotValidated(t *testing.T) {
	setupRules(t)

	cfg := lint.NewConfig().
		Disable("TST01").
		SetRuleOptions("TST01", map[string]any{lint.OptionExceptions: []any{42}})
	_, err := lint.NewAnalyzer(cfg)
	assert.NoError(t, err)
}

func TestFromLintConfig(t *testing.T) {
	setupRules(t)

	cfg, err := lint.FromLintConfig(&core.LintConfig{
		Disabled: []string{"tst02"},
		Severity: map[string]string{"TST01": "error"},
		Rules: map[string]core.RuleOptions{
			"TST01": {lint.OptionExceptions: []any{"legacy/"}},
		},
		Exceptions: []string{"generated/"},
	})
	require.NoError(t, err)

	assert.True(t, cfg.IsDisabled("TST02"))
	assert.Equal(t, core.SeverityError, cfg.GetSeverity("TST01", core.SeverityWarning))
	assert.Equal(t, []any{"legacy/"}, cfg.GetRuleOptions("TST01")[lint.OptionExceptions])
	assert.True(t, cfg.IsExcepted("src/generated/icons.tsx"))

	_, err = lint.FromLintConfig(&core.LintConfig{Severity: map[string]string{"TST01": "fatal"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, lint.ErrInvalidOptions)

	cfg, err = lint.FromLintConfig(nil)
	require.NoError(t, err)
	assert.False(t, cfg.IsDisabled("TST01"))
}

func TestNilConfig(t *testing.T) {
	var cfg *lint.Config
	assert.False(t, cfg.IsDisabled("TST01"))
	assert.Equal(t, core.SeverityHint, cfg.GetSeverity("TST01", core.SeverityHint))
	assert.Nil(t, cfg.GetRuleOptions("TST01"))
	assert.False(t, cfg.IsExcepted("x"))
	assert.NoError(t, cfg.Validate())
}
