// Package token defines the lexical tokens and source positions used when
// scanning JavaScript, TypeScript and JSX files for class strings.
//
// The scanner only needs enough of the language to tell string literals,
// template literals and JSX attribute values apart from comments, regular
// expressions and JSX text, so the token set is deliberately coarse.
package token

// Kind represents the lexical class of a token.
type Kind int

// Token kinds.
//
//nolint:revive // upper-case kind names follow the lexer convention
const (
	EOF Kind = iota
	ILLEGAL

	IDENT    // identifier or keyword
	NUMBER   // 42, 0x1f, 1_000
	STRING   // contents of '...' or "..."
	TEMPLATE // one static chunk (quasi) of a `...` template literal
	REGEX    // /re/flags
	PUNCT    // operators and brackets

	HOLE_START // ${ inside a template literal
	HOLE_END   // } closing a template hole

	JSX_TAG    // opening tag name, e.g. div or Foo.Bar
	JSX_ATTR   // attribute name inside an opening tag
	JSX_STRING // contents of a quoted attribute value
	JSX_EXPR   // { opening an attribute or child expression container
	JSX_CLOSE  // end of an element: /> or the closing tag
)

var kindNames = [...]string{
	EOF:        "EOF",
	ILLEGAL:    "ILLEGAL",
	IDENT:      "IDENT",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	TEMPLATE:   "TEMPLATE",
	REGEX:      "REGEX",
	PUNCT:      "PUNCT",
	HOLE_START: "HOLE_START",
	HOLE_END:   "HOLE_END",
	JSX_TAG:    "JSX_TAG",
	JSX_ATTR:   "JSX_ATTR",
	JSX_STRING: "JSX_STRING",
	JSX_EXPR:   "JSX_EXPR",
	JSX_CLOSE:  "JSX_CLOSE",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// IsLiteral reports whether the kind carries literal string content.
func (k Kind) IsLiteral() bool {
	return k == STRING || k == TEMPLATE || k == JSX_STRING
}

// Token represents a lexical token with position information.
// For literal kinds, Literal holds the raw content without delimiters and Pos
// points at its first byte.
type Token struct {
	Kind    Kind
	Literal string
	Pos     Position
}

// End returns the byte offset just past the token literal.
func (t Token) End() int {
	return t.Pos.Offset + len(t.Literal)
}
