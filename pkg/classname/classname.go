// Package classname splits utility-class strings into individual class tokens.
//
// The tokenizer only sees literal text: callers hand it the contents of a
// className attribute, a template literal quasi, or a string argument of a
// class-joining call. It never inspects syntax.
//
//	for _, tok := range classname.ExtractTailwindClasses("hover:h-10 p-4") {
//		fmt.Println(tok.Variant, tok.Base)
//	}
package classname

import (
	"strings"
	"unicode/utf8"
)

// whitespace is the ASCII whitespace set HTML splits class lists on. Other
// Unicode spaces such as U+00A0 are part of a class name.
const whitespace = " \t\n\f\r"

// IsSpace reports whether c separates classes in a class list.
func IsSpace(c byte) bool {
	return strings.IndexByte(whitespace, c) >= 0
}

// ClassToken is a single utility class as it appears in a class string.
type ClassToken struct {
	Raw       string // full class, e.g. "md:hover:!h-10"
	Variant   string // variant prefix including the trailing colon, e.g. "md:hover:"
	Important bool   // true when the base carries the "!" important modifier
	Base      string // class without variant and important modifier, e.g. "h-10"
	Start     int    // byte offset of Raw in the tokenized value
	End       int    // byte offset just past Raw
}

// Prefix returns everything that must be reattached in front of a replacement
// base class: the variant prefix and, if present, the important modifier.
func (t ClassToken) Prefix() string {
	if t.Important {
		return t.Variant + "!"
	}
	return t.Variant
}

// WithBase returns the class string obtained by swapping the base class while
// keeping the variant prefix and important modifier verbatim.
func (t ClassToken) WithBase(base string) string {
	return t.Prefix() + base
}

// ExtractTailwindClasses splits value on ASCII whitespace and returns the
// class tokens in source order. Empty tokens are dropped; duplicates are kept.
func ExtractTailwindClasses(value string) []ClassToken {
	var tokens []ClassToken
	start := -1
	for i := 0; i < len(value); i++ {
		if IsSpace(value[i]) {
			if start >= 0 {
				tokens = append(tokens, parseAt(value[start:i], start))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, parseAt(value[start:], start))
	}
	return tokens
}

// Parse splits a single raw class into variant prefix and base.
func Parse(raw string) ClassToken {
	return parseAt(strings.Trim(raw, whitespace), 0)
}

func parseAt(raw string, offset int) ClassToken {
	tok := ClassToken{
		Raw:   raw,
		Start: offset,
		End:   offset + len(raw),
	}

	cut := variantEnd(raw)
	tok.Variant = raw[:cut]
	base := raw[cut:]
	if strings.HasPrefix(base, "!") {
		tok.Important = true
		base = base[1:]
	}
	tok.Base = base
	return tok
}

// variantEnd returns the index just past the last ':' that is not inside
// square brackets or parentheses, or 0 when the class has no variant.
func variantEnd(raw string) int {
	depth := 0
	end := 0
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRuneInString(raw[i:])
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				end = i + 1
			}
		}
		i += size
	}
	return end
}
