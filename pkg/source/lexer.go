package source

import (
	"strings"

	"github.com/leapstack-labs/tokenguard/pkg/token"
)

type mode int

const (
	modeCode     mode = iota // JavaScript/TypeScript code
	modeTemplate             // inside a template literal
	modeTag                  // inside a JSX opening tag
	modeChildren             // between a JSX opening and closing tag
)

type frame struct {
	mode  mode
	depth int  // open braces of a code frame
	hole  bool // code frame opened by ${ inside a template
}

// keywords after which an expression (and therefore a regex or a JSX
// element) may start.
var exprKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "yield": true, "await": true, "default": true,
}

type lexer struct {
	src   string
	pos   int
	jsx   bool
	lines *token.LineIndex
	stack []frame
	prev  token.Token
	toks  []token.Token
}

// Tokenize scans src and returns the tokens relevant for class extraction.
// Whitespace, comments, JSX text and unknown bytes produce no tokens. When
// jsx is false, '<' is always an operator.
func Tokenize(src []byte, jsx bool) []token.Token {
	l := &lexer{
		src:   string(src),
		jsx:   jsx,
		lines: token.NewLineIndex(src),
		stack: []frame{{mode: modeCode}},
	}
	l.run()
	return l.toks
}

func (l *lexer) run() {
	for l.pos < len(l.src) {
		switch l.top().mode {
		case modeCode:
			l.scanCode()
		case modeTemplate:
			l.scanTemplate()
		case modeTag:
			l.scanTag()
		case modeChildren:
			l.scanChildren()
		}
	}
}

func (l *lexer) top() *frame {
	return &l.stack[len(l.stack)-1]
}

func (l *lexer) push(f frame) {
	l.stack = append(l.stack, f)
}

func (l *lexer) pop() {
	if len(l.stack) > 1 {
		l.stack = l.stack[:len(l.stack)-1]
	}
}

func (l *lexer) peek(n int) byte {
	if l.pos+n < len(l.src) {
		return l.src[l.pos+n]
	}
	return 0
}

func (l *lexer) emit(kind token.Kind, lit string, offset int) {
	tok := token.Token{Kind: kind, Literal: lit, Pos: l.lines.Position(offset)}
	l.toks = append(l.toks, tok)
	l.prev = tok
}

// regexAllowed reports whether an expression may start at the current
// position, judging by the previous token.
func (l *lexer) regexAllowed() bool {
	switch l.prev.Kind {
	case token.IDENT:
		return exprKeywords[l.prev.Literal]
	case token.NUMBER, token.STRING, token.TEMPLATE, token.REGEX, token.JSX_CLOSE:
		return false
	case token.PUNCT:
		switch l.prev.Literal {
		case ")", "]", "}":
			return false
		}
	}
	return true
}

// =============================================================================
// Code
// =============================================================================

func (l *lexer) scanCode() {
	c := l.src[l.pos]
	switch {
	case isSpace(c):
		l.pos++
	case c == '/' && l.peek(1) == '/':
		l.skipLineComment()
	case c == '/' && l.peek(1) == '*':
		l.skipBlockComment()
	case c == '"' || c == '\'':
		l.scanString(c)
	case c == '`':
		l.pos++
		l.push(frame{mode: modeTemplate})
	case c == '/' && l.regexAllowed():
		l.scanRegex()
	case c == '<' && l.jsx && l.regexAllowed() && isTagStart(l.peek(1)):
		l.pos++
		l.scanTagOpen()
	case c == '{':
		l.top().depth++
		l.emit(token.PUNCT, "{", l.pos)
		l.pos++
	case c == '}':
		l.closeBrace()
	case isIdentStart(c):
		start := l.pos
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		l.emit(token.IDENT, l.src[start:l.pos], start)
	case isDigit(c) || (c == '.' && isDigit(l.peek(1))):
		start := l.pos
		for l.pos < len(l.src) && (isIdentPart(l.src[l.pos]) || l.src[l.pos] == '.') {
			l.pos++
		}
		l.emit(token.NUMBER, l.src[start:l.pos], start)
	default:
		l.emit(token.PUNCT, string(c), l.pos)
		l.pos++
	}
}

// closeBrace handles '}' in code: it either closes a block or object, or ends
// the expression container or template hole that opened the frame.
func (l *lexer) closeBrace() {
	f := l.top()
	switch {
	case f.depth > 0:
		f.depth--
		l.emit(token.PUNCT, "}", l.pos)
	case len(l.stack) > 1:
		hole := f.hole
		l.pop()
		if hole {
			l.emit(token.HOLE_END, "}", l.pos)
		} else {
			l.emit(token.PUNCT, "}", l.pos)
		}
	default:
		// unbalanced at top level
		l.emit(token.PUNCT, "}", l.pos)
	}
	l.pos++
}

func (l *lexer) skipLineComment() {
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
}

func (l *lexer) skipBlockComment() {
	end := strings.Index(l.src[l.pos+2:], "*/")
	if end < 0 {
		l.pos = len(l.src)
		return
	}
	l.pos += 2 + end + 2
}

func (l *lexer) scanString(quote byte) {
	l.pos++
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\\' {
			l.pos += 2
			continue
		}
		if c == quote || c == '\n' {
			break
		}
		l.pos++
	}
	if l.pos > len(l.src) {
		l.pos = len(l.src)
	}
	l.emit(token.STRING, l.src[start:l.pos], start)
	if l.pos < len(l.src) && l.src[l.pos] == quote {
		l.pos++
	}
}

func (l *lexer) scanRegex() {
	start := l.pos
	l.pos++
	inClass := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\\' {
			l.pos += 2
			continue
		}
		if c == '\n' {
			break
		}
		l.pos++
		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '/' && !inClass {
			break
		}
	}
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.pos++
	}
	if l.pos > len(l.src) {
		l.pos = len(l.src)
	}
	l.emit(token.REGEX, l.src[start:l.pos], start)
}

// =============================================================================
// Template literals
// =============================================================================

func (l *lexer) scanTemplate() {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\\':
			l.pos += 2
			continue
		case c == '`':
			l.emitChunk(start)
			l.pos++
			l.pop()
			l.prev = token.Token{Kind: token.TEMPLATE}
			return
		case c == '$' && l.peek(1) == '{':
			l.emitChunk(start)
			l.emit(token.HOLE_START, "${", l.pos)
			l.pos += 2
			l.push(frame{mode: modeCode, hole: true})
			return
		}
		l.pos++
	}
	if l.pos > len(l.src) {
		l.pos = len(l.src)
	}
	l.emitChunk(start)
	l.pop()
}

func (l *lexer) emitChunk(start int) {
	if l.pos > start {
		l.emit(token.TEMPLATE, l.src[start:l.pos], start)
	}
}

// =============================================================================
// JSX
// =============================================================================

// scanTagOpen is called just past the '<' of an element or fragment.
func (l *lexer) scanTagOpen() {
	if l.peek(0) == '>' {
		l.emit(token.JSX_TAG, "", l.pos)
		l.pos++
		l.push(frame{mode: modeChildren})
		return
	}

	start := l.pos
	for l.pos < len(l.src) && isTagNameChar(l.src[l.pos]) {
		l.pos++
	}
	if l.top().mode == modeCode && l.atTypeParams() {
		l.skipTypeParams()
		return
	}
	l.emit(token.JSX_TAG, l.src[start:l.pos], start)
	l.push(frame{mode: modeTag})
}

// atTypeParams detects generic arrow functions in .tsx files such as
// <T,>(x: T) => x or <T extends object>(...).
func (l *lexer) atTypeParams() bool {
	rest := strings.TrimLeft(l.src[l.pos:], " \t\r\n")
	return strings.HasPrefix(rest, ",") || strings.HasPrefix(rest, "extends ")
}

func (l *lexer) skipTypeParams() {
	depth := 1
	for l.pos < len(l.src) && depth > 0 {
		switch l.src[l.pos] {
		case '<':
			depth++
		case '>':
			depth--
		}
		l.pos++
	}
	l.prev = token.Token{Kind: token.PUNCT, Literal: ">"}
}

func (l *lexer) scanTag() {
	c := l.src[l.pos]
	switch {
	case isSpace(c):
		l.pos++
	case c == '/' && l.peek(1) == '>':
		l.emit(token.JSX_CLOSE, "/>", l.pos)
		l.pos += 2
		l.pop()
	case c == '/' && l.peek(1) == '/':
		l.skipLineComment()
	case c == '/' && l.peek(1) == '*':
		l.skipBlockComment()
	case c == '>':
		l.pos++
		l.top().mode = modeChildren
	case c == '{':
		l.emit(token.JSX_EXPR, "{", l.pos)
		l.pos++
		l.push(frame{mode: modeCode})
	case c == '"' || c == '\'':
		l.pos++
		start := l.pos
		end := strings.IndexByte(l.src[start:], c)
		if end < 0 {
			end = len(l.src) - start
		}
		l.emit(token.JSX_STRING, l.src[start:start+end], start)
		l.pos = min(start+end+1, len(l.src))
	case isTagNameChar(c):
		start := l.pos
		for l.pos < len(l.src) && isTagNameChar(l.src[l.pos]) {
			l.pos++
		}
		l.emit(token.JSX_ATTR, l.src[start:l.pos], start)
	default:
		// '=' and anything unexpected
		l.pos++
	}
}

func (l *lexer) scanChildren() {
	c := l.src[l.pos]
	switch {
	case c == '<' && l.peek(1) == '/':
		start := l.pos
		end := strings.IndexByte(l.src[l.pos:], '>')
		if end < 0 {
			l.pos = len(l.src)
		} else {
			l.pos += end + 1
		}
		l.pop()
		l.emit(token.JSX_CLOSE, l.src[start:l.pos], start)
	case c == '<' && isTagStart(l.peek(1)):
		l.pos++
		l.scanTagOpen()
	case c == '{':
		l.emit(token.JSX_EXPR, "{", l.pos)
		l.pos++
		l.push(frame{mode: modeCode})
	default:
		// JSX text
		l.pos++
	}
}

// =============================================================================
// Character classes
// =============================================================================

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool {
	return isLetter(c) || c == '_' || c == '$' || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isTagStart(c byte) bool {
	return isIdentStart(c) || c == '>'
}

func isTagNameChar(c byte) bool {
	return isIdentPart(c) || c == '-' || c == ':' || c == '.'
}
