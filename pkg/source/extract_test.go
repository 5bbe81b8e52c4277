package source_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/lint"
	_ "github.com/leapstack-labs/tokenguard/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/tokenguard/pkg/source"
	"github.com/leapstack-labs/tokenguard/pkg/token"
)

type found struct {
	Value   string
	Context string
}

func extract(t *testing.T, path, src string, opts source.ExtractOptions) []found {
	t.Helper()
	opts.SkipSyntaxCheck = true
	sources, err := source.Extract(path, []byte(src), opts)
	require.NoError(t, err)

	out := make([]found, 0, len(sources))
	for _, s := range sources {
		out = append(out, found{s.Value, s.Context})
	}
	return out
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		path string
		src  string
		want []found
	}{
		{
			name: "quoted className",
			path: "A.tsx",
			src:  `<div className="h-8 w-10" />`,
			want: []found{{"h-8 w-10", "className"}},
		},
		{
			name: "single quoted class attribute",
			path: "A.jsx",
			src:  `<div class='p-4'>x</div>`,
			want: []found{{"p-4", "class"}},
		},
		{
			name: "string in expression container",
			path: "A.tsx",
			src:  `<div className={"h-8"} />`,
			want: []found{{"h-8", "className"}},
		},
		{
			name: "template quasis without holes",
			path: "A.tsx",
			src:  "<div className={`h-8 ${active ? \"bg-red-500\" : \"\"} p-4`} />",
			want: []found{{"h-8 ", "className"}, {" p-4", "className"}},
		},
		{
			name: "callee arguments",
			path: "a.ts",
			src:  `const c = cn("h-8", cond && "w-10", { "p-4": on }, on ? "m-2" : 'm-3')`,
			want: []found{
				{"h-8", "cn()"}, {"w-10", "cn()"}, {"p-4", "cn()"}, {"m-2", "cn()"}, {"m-3", "cn()"},
			},
		},
		{
			name: "callee in className",
			path: "A.tsx",
			src:  `<Button className={cn("h-8", open && "rounded-md")} onClick={() => set("x")}>Open</Button>`,
			want: []found{{"h-8", "cn()"}, {"rounded-md", "cn()"}},
		},
		{
			name: "nested call inherits callee context",
			path: "a.ts",
			src:  `clsx(["gap-2", pick("px-3")])`,
			want: []found{{"gap-2", "clsx()"}, {"px-3", "clsx()"}},
		},
		{
			name: "callee inside template hole",
			path: "a.ts",
			src:  "const s = `${classNames('shadow-xl')} rounded`",
			want: []found{{"shadow-xl", "classNames()"}},
		},
		{
			name: "unrelated strings ignored",
			path: "a.ts",
			src:  `const label = "h-8"; foo("w-10"); el.className = "p-4"`,
			want: []found{},
		},
		{
			name: "non-class attribute ignored",
			path: "A.tsx",
			src:  `<img alt="h-8" title={"w-10"} />`,
			want: []found{},
		},
		{
			name: "jsx text comments and regex ignored",
			path: "A.jsx",
			src: "// cn(\"h-8\")\n/* cn('w-10') */\nconst re = /cn\\(\"p-4\"/\n" +
				"const x = <p>className=\"m-2\" {n}</p>",
			want: []found{},
		},
		{
			name: "element inside children expression",
			path: "A.tsx",
			src:  `<ul>{items.map((i) => <li className="p-2" key={i}>{i}</li>)}</ul>`,
			want: []found{{"p-2", "className"}},
		},
		{
			name: "generic arrow function in tsx",
			path: "A.tsx",
			src:  `const id = <T,>(x: T) => cn("h-8")`,
			want: []found{{"h-8", "cn()"}},
		},
		{
			name: "type assertion in ts",
			path: "a.ts",
			src:  `const el = <HTMLElement>node; cn("h-8")`,
			want: []found{{"h-8", "cn()"}},
		},
		{
			name: "whitespace only literals dropped",
			path: "A.tsx",
			src:  `<div className=" " />`,
			want: []found{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract(t, tt.path, tt.src, source.DefaultExtractOptions()))
		})
	}
}

func TestExtract_CustomOptions(t *testing.T) {
	opts := source.OptionsFromConfig(core.ExtractConfig{
		Callees:    []string{"tw"},
		Attributes: []string{"wrapperClass"},
	})
	src := `<Card wrapperClass="p-4" className="h-8">{tw("m-2")}{cn("w-10")}</Card>`

	got := extract(t, "Card.tsx", src, opts)
	assert.Equal(t, []found{{"p-4", "wrapperClass"}, {"m-2", "tw()"}}, got)
}

func TestOptionsFromConfig_Defaults(t *testing.T) {
	opts := source.OptionsFromConfig(core.ExtractConfig{SkipSyntaxCheck: true})
	assert.Equal(t, core.DefaultCallees, opts.Callees)
	assert.Equal(t, core.DefaultAttributes, opts.Attributes)
	assert.True(t, opts.SkipSyntaxCheck)
}

func TestExtract_Positions(t *testing.T) {
	src := "export function A() {\n  return <div className=\"h-8\" />\n}\n"
	sources, err := source.Extract("A.tsx", []byte(src), source.DefaultExtractOptions())
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, token.Position{Line: 2, Column: 26, Offset: 47}, sources[0].Pos)
	assert.Equal(t, "h-8", src[47:50])
}

func TestExtract_SyntaxError(t *testing.T) {
	_, err := source.Extract("Broken.tsx", []byte("const a = <div className=\"h-8\">\n"), source.DefaultExtractOptions())
	require.Error(t, err)

	var serr *source.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "Broken.tsx", serr.Path)
	assert.Positive(t, serr.Line)
	assert.Contains(t, err.Error(), "Broken.tsx:")
}

func TestCheckSyntax(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		src     string
		wantErr bool
	}{
		{"tsx element", "A.tsx", `export const A = () => <div className="p-4" />`, false},
		{"jsx in js file", "A.js", `export const A = () => <div />`, false},
		{"typescript types", "a.ts", `export const n: number = 1`, false},
		{"jsx in ts file", "a.ts", `export const A = () => <div />`, true},
		{"unbalanced paren", "a.mjs", `call(`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := source.CheckSyntax(tt.path, []byte(tt.src))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckSyntax_Unsupported(t *testing.T) {
	err := source.CheckSyntax("style.css", []byte("a{}"))
	assert.ErrorIs(t, err, source.ErrUnsupportedFile)
	assert.False(t, source.IsSupported("style.css"))
	assert.True(t, source.IsSupported("Page.TSX"))
}

// applyEdit applies a single text edit to a file.
func applyEdit(src string, edit lint.TextEdit) string {
	return src[:edit.Pos.Offset] + edit.NewText + src[edit.EndPos.Offset:]
}

func TestShadowNoneEndToEnd(t *testing.T) {
	src := `<div className="shadow-none" />`
	sources, err := source.Extract("Widget.tsx", []byte(src), source.DefaultExtractOptions())
	require.NoError(t, err)
	require.Len(t, sources, 1)

	analyzer, err := lint.NewAnalyzer(lint.NewConfig())
	require.NoError(t, err)
	diags := analyzer.AnalyzeFile("Widget.tsx", sources)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, "DS04", d.RuleID)
	assert.Equal(t, "className", d.Context)
	require.Len(t, d.Fixes, 2)

	assert.Equal(t, `<div className="" />`, applyEdit(src, d.Fixes[0].TextEdits[0]))
	assert.Equal(t, `<div className="shadow-sm" />`, applyEdit(src, d.Fixes[1].TextEdits[0]))
}

func TestMultipleOccurrences(t *testing.T) {
	src := `const c = cn("h-8", "w-10")`
	sources, err := source.Extract("a.ts", []byte(src), source.DefaultExtractOptions())
	require.NoError(t, err)

	analyzer, err := lint.NewAnalyzer(lint.NewConfig())
	require.NoError(t, err)
	diags := analyzer.AnalyzeFile("a.ts", sources)
	require.Len(t, diags, 2)
	assert.Equal(t, "h-8", diags[0].ClassName)
	assert.Equal(t, "h-size-sm", diags[0].Suggestion)
	assert.Equal(t, "w-10", diags[1].ClassName)
	assert.Equal(t, "w-size-md", diags[1].Suggestion)
	assert.Equal(t, "cn()", diags[1].Context)
}

func TestExtract_WhitespaceEscapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"newline", `cn("h-8\nw-10")`, "h-8  w-10"},
		{"tab", `cn('h-8\tw-10')`, "h-8  w-10"},
		{"template", "cn(`h-8\\r\\nw-10`)", "h-8    w-10"},
		{"escaped backslash", `cn("h-8\\nw-10")`, `h-8\\nw-10`},
		{"other escape", `cn("h-8\"w-10")`, `h-8\"w-10`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := extract(t, "a.ts", tc.src, source.DefaultExtractOptions())
			require.Len(t, got, 1)
			assert.Equal(t, tc.want, got[0].Value)
		})
	}
}

func TestWhitespaceEscapesEndToEnd(t *testing.T) {
	src := `const c = cn("h-8\nshadow-none")`
	sources, err := source.Extract("a.ts", []byte(src), source.DefaultExtractOptions())
	require.NoError(t, err)

	analyzer, err := lint.NewAnalyzer(lint.NewConfig())
	require.NoError(t, err)
	diags := analyzer.AnalyzeFile("a.ts", sources)
	require.Len(t, diags, 2)

	byClass := map[string]lint.Diagnostic{}
	for _, d := range diags {
		byClass[d.ClassName] = d
	}
	require.Contains(t, byClass, "h-8")
	require.Contains(t, byClass, "shadow-none")

	assert.Equal(t, `const c = cn("h-size-sm\nshadow-none")`, applyEdit(src, byClass["h-8"].Fixes[0].TextEdits[0]))
	assert.Equal(t, `const c = cn("h-8")`, applyEdit(src, byClass["shadow-none"].Fixes[0].TextEdits[0]))
}
