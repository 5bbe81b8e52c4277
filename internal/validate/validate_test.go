package validate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tokenguard/internal/testutil"
	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
	_ "github.com/leapstack-labs/tokenguard/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/tokenguard/pkg/source"
	"github.com/leapstack-labs/tokenguard/pkg/token"
)

var fixture = map[string]string{
	"src/components/Button.tsx": "export const Button = () => <button className=\"h-8 p-4 shadow-xl\" />\n",
	"src/components/Card.tsx":   "import { cn } from \"./cn\"\nexport const Card = () => <div className={cn(\"h-8\", \"rounded-xl\")} />\n",
	"src/components/Clean.tsx":  "export const Clean = () => <div className=\"h-size-md p-space-md\" />\n",
	"src/Broken.tsx":            "export const B = () => <div className=\"h-8\">\n",
	"src/file2.tsx":             "export const F = () => <i className=\"h-8\" />\n",
	"src/file10.tsx":            "export const F = () => <i className=\"h-8\" />\n",
	"node_modules/lib/index.js": "export const L = () => <div className=\"h-8\" />\n",
	"src/styles.css":            ".a { height: 2rem }\n",
}

func writeFixture(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func newValidator(t *testing.T, root string) *Validator {
	t.Helper()
	return &Validator{
		Root:    root,
		Workers: 2,
		Extract: source.DefaultExtractOptions(),
		Logger:  testutil.NewTestLogger(t),
	}
}

func TestRun(t *testing.T) {
	root := writeFixture(t, fixture)

	report, err := newValidator(t, root).Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 5, report.FilesScanned)
	assert.Equal(t, 7, report.TotalViolations)
	assert.Equal(t, map[core.Category]int{
		core.CategorySizing:       4,
		core.CategorySpacing:      1,
		core.CategoryShadow:       1,
		core.CategoryBorderRadius: 1,
	}, report.ByCategory)

	var paths []string
	for _, f := range report.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"src/components/Button.tsx",
		"src/components/Card.tsx",
		"src/file2.tsx",
		"src/file10.tsx",
	}, paths)

	assert.Equal(t, []SuggestionCount{
		{From: "h-8", To: "h-size-sm", Count: 4},
		{From: "p-4", To: "p-space-md", Count: 1},
		{From: "rounded-xl", To: "rounded-lg", Count: 1},
		{From: "shadow-xl", To: "shadow-lg", Count: 1},
	}, report.TopSuggestions)

	require.Len(t, report.Failures, 1)
	assert.Equal(t, "src/Broken.tsx", report.Failures[0].Path)
	assert.Contains(t, report.Failures[0].Error, "src/Broken.tsx:")

	assert.ErrorIs(t, report.Err(), ErrViolationsFound)
	assert.Equal(t, []core.Category{
		core.CategorySizing, core.CategorySpacing, core.CategoryShadow, core.CategoryBorderRadius,
	}, report.Categories())
}

func TestRun_ViolationDetails(t *testing.T) {
	root := writeFixture(t, map[string]string{
		"Card.tsx": "export const Card = () => <div className={cn(\"h-8\", \"rounded-xl\")} />\n",
	})

	report, err := newValidator(t, root).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	require.Len(t, report.Files[0].Violations, 2)

	v := report.Files[0].Violations[0]
	assert.Equal(t, "DS01", v.RuleID)
	assert.Equal(t, "h-8", v.ClassName)
	assert.Equal(t, "cn()", v.Context)
	assert.Equal(t, []string{"h-size-sm"}, v.Candidates)
	assert.Equal(t, token.Position{Line: 1, Column: 47, Offset: 46}, v.Pos)
	require.NotNil(t, v.Fix)
	assert.Equal(t, "h-size-sm", v.Fix.NewText)
}

func TestRun_Exceptions(t *testing.T) {
	root := writeFixture(t, fixture)

	analyzer, err := lint.NewAnalyzer(lint.NewConfig().AddExceptions("components/"))
	require.NoError(t, err)

	v := newValidator(t, root)
	v.Analyzer = analyzer
	report, err := v.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalViolations)
	assert.Equal(t, 5, report.FilesScanned)
}

func TestRun_IncludeExclude(t *testing.T) {
	root := writeFixture(t, fixture)

	v := newValidator(t, root)
	v.Include = []string{"src/components/**/*.tsx"}
	v.Exclude = []string{"**/Card.tsx"}
	report, err := v.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.FilesScanned)
	assert.Equal(t, 3, report.TotalViolations)
	assert.Empty(t, report.Failures)
}

func TestRun_NodeModulesOptIn(t *testing.T) {
	root := writeFixture(t, fixture)

	v := newValidator(t, root)
	v.Include = []string{"node_modules/**"}
	v.Exclude = []string{}
	report, err := v.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.FilesScanned)
	assert.Equal(t, 1, report.TotalViolations)
}

func TestRun_SingleFile(t *testing.T) {
	root := writeFixture(t, fixture)
	file := filepath.Join(root, "src", "file2.tsx")

	report, err := newValidator(t, file).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.FilesScanned)
	require.Len(t, report.Files, 1)
	assert.Equal(t, filepath.ToSlash(file), report.Files[0].Path)
}

func TestRun_Errors(t *testing.T) {
	root := writeFixture(t, fixture)

	t.Run("invalid glob", func(t *testing.T) {
		v := newValidator(t, root)
		v.Include = []string{"src/[a-"}
		_, err := v.Run(context.Background())
		assert.ErrorContains(t, err, "invalid glob pattern")
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := newValidator(t, filepath.Join(root, "missing")).Run(context.Background())
		assert.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newValidator(t, root).Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReport_Err(t *testing.T) {
	assert.NoError(t, (&Report{}).Err())
	assert.ErrorIs(t, (&Report{Failures: []FileFailure{{Path: "a.tsx"}}}).Err(), ErrFilesFailed)
}

func TestNewReport_OrderInsensitive(t *testing.T) {
	a := outcome{result: &FileResult{Path: "b.tsx", Violations: []Violation{
		{ClassName: "h-8", Suggestion: "h-size-sm", Category: core.CategorySizing},
	}}}
	b := outcome{result: &FileResult{Path: "a.tsx", Violations: []Violation{
		{ClassName: "p-4", Suggestion: "p-space-md", Category: core.CategorySpacing},
		{ClassName: "bg-[#fff]", Category: core.CategoryColor},
	}}}
	c := outcome{failure: &FileFailure{Path: "c.tsx", Error: "boom"}}

	r1 := newReport(".", []outcome{a, b, c})
	r2 := newReport(".", []outcome{c, b, a})

	assert.Equal(t, r1.Files, r2.Files)
	assert.Equal(t, r1.ByCategory, r2.ByCategory)
	assert.Equal(t, r1.TopSuggestions, r2.TopSuggestions)
	assert.Equal(t, r1.Failures, r2.Failures)
	assert.Equal(t, 3, r1.TotalViolations)
	assert.Len(t, r1.TopSuggestions, 2)
}

func TestTopSuggestions_Limit(t *testing.T) {
	pairs := map[[2]string]int{
		{"h-8", "h-size-sm"}:  2,
		{"a", "b"}:            1,
		{"c", "d"}:            1,
		{"p-4", "p-space-md"}: 3,
	}
	got := topSuggestions(pairs, 3)
	assert.Equal(t, []SuggestionCount{
		{From: "p-4", To: "p-space-md", Count: 3},
		{From: "h-8", To: "h-size-sm", Count: 2},
		{From: "a", To: "b", Count: 1},
	}, got)
}

func TestReport_FilterSeverity(t *testing.T) {
	root := writeFixture(t, fixture)

	analyzer, err := lint.NewAnalyzer(lint.NewConfig().SetSeverity("DS01", core.SeverityError))
	require.NoError(t, err)
	v := newValidator(t, root)
	v.Analyzer = analyzer

	report, err := v.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, report.TotalViolations)

	errorsOnly := report.FilterSeverity(core.SeverityError)
	assert.Equal(t, report.RunID, errorsOnly.RunID)
	assert.Equal(t, 5, errorsOnly.FilesScanned)
	assert.Equal(t, 4, errorsOnly.TotalViolations)
	assert.Equal(t, map[core.Category]int{core.CategorySizing: 4}, errorsOnly.ByCategory)
	assert.Len(t, errorsOnly.Failures, 1)

	assert.Equal(t, 7, report.FilterSeverity(core.SeverityHint).TotalViolations)
}

func TestValidator_Dirs(t *testing.T) {
	root := writeFixture(t, fixture)

	dirs, err := newValidator(t, root).Dirs(context.Background())
	require.NoError(t, err)

	var rels []string
	for _, d := range dirs {
		rel, err := filepath.Rel(root, d)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{".", "src", "src/components"}, rels)

	v := newValidator(t, root)
	assert.True(t, v.Excluded("node_modules/lib/index.js"))
	assert.False(t, v.Excluded("src/file2.tsx"))
}

func TestRun_Logging(t *testing.T) {
	root := writeFixture(t, fixture)
	logger, rec := testutil.NewRecordingLogger()

	v := newValidator(t, root)
	v.Logger = logger
	_, err := v.Run(context.Background())
	require.NoError(t, err)

	attrs, ok := rec.Find("validation complete")
	require.True(t, ok)
	assert.Equal(t, int64(5), attrs["files"].Int64())
	assert.Equal(t, int64(7), attrs["violations"].Int64())
	assert.Equal(t, int64(1), attrs["failures"].Int64())
	assert.Equal(t, 4, rec.Count("scanned file"))
}
