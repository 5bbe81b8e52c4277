package core

import "github.com/leapstack-labs/tokenguard/pkg/token"

// ClassSource is one literal class string found in a source file: a quoted
// JSX attribute value, a string literal, or one static chunk of a template
// literal.
type ClassSource struct {
	// Value is the raw literal content without quotes.
	Value string `json:"value"`

	// Pos is the position of the first byte of Value in the file.
	Pos token.Position `json:"pos"`

	// Context names where the literal was found: "className", "class" or a
	// call such as "cn()".
	Context string `json:"context"`
}

// PositionOf returns the file position of byte i of Value.
func (s ClassSource) PositionOf(i int) token.Position {
	if i < 0 {
		i = 0
	}
	if i > len(s.Value) {
		i = len(s.Value)
	}
	return s.Pos.Advance(s.Value[:i])
}
