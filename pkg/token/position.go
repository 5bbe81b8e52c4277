package token

import (
	"sort"
	"unicode/utf8"
)

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in runes
	Offset int // 0-based byte offset
}

// Advance returns the position reached after reading text starting at p.
func (p Position) Advance(text string) Position {
	for _, r := range text {
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	p.Offset += len(text)
	return p
}

// LineIndex maps byte offsets of a source file to line/column positions.
type LineIndex struct {
	src   []byte
	lines []int // byte offset of the first byte of each line
}

// NewLineIndex indexes the line starts of src.
func NewLineIndex(src []byte) *LineIndex {
	lines := []int{0}
	for i, b := range src {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &LineIndex{src: src, lines: lines}
}

// Position returns the position of a byte offset. Offsets past the end are
// clamped to the end of the source.
func (li *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(li.src) {
		offset = len(li.src)
	}
	line := sort.Search(len(li.lines), func(i int) bool { return li.lines[i] > offset }) - 1
	start := li.lines[line]
	return Position{
		Line:   line + 1,
		Column: utf8.RuneCount(li.src[start:offset]) + 1,
		Offset: offset,
	}
}
