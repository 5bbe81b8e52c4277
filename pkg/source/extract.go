package source

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/leapstack-labs/tokenguard/pkg/core"
	"github.com/leapstack-labs/tokenguard/pkg/token"
)

// Extensions lists the file extensions Extract understands.
var Extensions = []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs", ".mts", ".cts"}

// IsSupported reports whether path has an extension Extract understands.
func IsSupported(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// JSXEnabled reports whether JSX syntax is legal in path.
// Plain .ts files use '<' for type assertions instead.
func JSXEnabled(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".tsx":
		return true
	}
	return false
}

// ExtractOptions controls which literals count as class strings.
type ExtractOptions struct {
	// Callees are the helper functions whose literal arguments are collected.
	Callees []string

	// Attributes are the JSX attribute names whose values are collected.
	Attributes []string

	// SkipSyntaxCheck disables the esbuild parse before scanning.
	SkipSyntaxCheck bool
}

// DefaultExtractOptions returns the options used when nothing is configured.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		Callees:    slices.Clone(core.DefaultCallees),
		Attributes: slices.Clone(core.DefaultAttributes),
	}
}

// OptionsFromConfig converts project configuration into ExtractOptions,
// falling back to the defaults for empty lists.
func OptionsFromConfig(cfg core.ExtractConfig) ExtractOptions {
	opts := DefaultExtractOptions()
	if len(cfg.Callees) > 0 {
		opts.Callees = slices.Clone(cfg.Callees)
	}
	if len(cfg.Attributes) > 0 {
		opts.Attributes = slices.Clone(cfg.Attributes)
	}
	opts.SkipSyntaxCheck = cfg.SkipSyntaxCheck
	return opts
}

// Extract returns every class string in src, in source order.
// Unless opts.SkipSyntaxCheck is set, a file esbuild cannot parse returns a
// *SyntaxError and no sources.
func Extract(path string, src []byte, opts ExtractOptions) ([]core.ClassSource, error) {
	if !opts.SkipSyntaxCheck {
		if err := CheckSyntax(path, src); err != nil {
			return nil, err
		}
	}
	return Collect(Tokenize(src, JSXEnabled(path)), opts), nil
}

// Collect walks a token stream and keeps the literals found in class
// positions. Each open bracket carries the context it was opened in: a call
// to a configured callee or a class attribute's expression container starts
// a new context, a template hole clears it, anything else inherits the
// enclosing one.
func Collect(toks []token.Token, opts ExtractOptions) []core.ClassSource {
	callees := toSet(opts.Callees)
	attrs := toSet(opts.Attributes)

	var (
		out     []core.ClassSource
		stack   = []string{""}
		pending string // class attribute awaiting its value
		prev    token.Token
	)
	top := func() string { return stack[len(stack)-1] }
	pop := func() {
		if len(stack) > 1 {
			stack = stack[:len(stack)-1]
		}
	}
	add := func(t token.Token, context string) {
		if strings.TrimSpace(t.Literal) == "" {
			return
		}
		out = append(out, core.ClassSource{Value: t.Literal, Pos: t.Pos, Context: context})
	}

	for _, t := range toks {
		switch t.Kind {
		case token.JSX_TAG, token.JSX_CLOSE:
			pending = ""
		case token.JSX_ATTR:
			pending = ""
			if attrs[t.Literal] {
				pending = t.Literal
			}
		case token.JSX_STRING:
			if pending != "" {
				add(t, pending)
			}
			pending = ""
		case token.JSX_EXPR:
			// children and non-class attributes reset the context
			stack = append(stack, pending)
			pending = ""
		case token.HOLE_START:
			// template holes are code, not class text
			stack = append(stack, "")
		case token.HOLE_END:
			pop()
		case token.STRING, token.TEMPLATE:
			if ctx := top(); ctx != "" {
				t.Literal = blankEscapes(t.Literal)
				add(t, ctx)
			}
		case token.PUNCT:
			switch t.Literal {
			case "(":
				ctx := top()
				if prev.Kind == token.IDENT && callees[prev.Literal] {
					ctx = prev.Literal + "()"
				}
				stack = append(stack, ctx)
			case "[", "{":
				stack = append(stack, top())
			case ")", "]", "}":
				pop()
			}
		}
		prev = t
	}
	return out
}

// blankEscapes turns whitespace escapes (\n, \t, \r, \f) into two spaces.
// The value then splits where the runtime string does, and every byte still
// lines up with the literal in the file.
func blankEscapes(lit string) string {
	if !strings.Contains(lit, `\`) {
		return lit
	}
	b := []byte(lit)
	for i := 0; i+1 < len(b); i++ {
		if b[i] != '\\' {
			continue
		}
		switch b[i+1] {
		case 'n', 't', 'r', 'f':
			b[i], b[i+1] = ' ', ' '
		}
		i++
	}
	return string(b)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
