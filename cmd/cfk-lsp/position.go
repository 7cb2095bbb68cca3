package main

import (
	"unicode/utf16"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// lineIndex maps byte offsets of a text to LSP positions, whose characters
// count UTF-16 code units.
type lineIndex struct {
	d     []byte
	start []int
}

func newLineIndex(d []byte) *lineIndex {
	li := &lineIndex{d: d, start: []int{0}}
	for i, c := range d {
		if c == '\n' {
			li.start = append(li.start, i+1)
		}
	}
	return li
}

func (li *lineIndex) position(off int) protocol.Position {
	off = min(max(off, 0), len(li.d))
	line := 0
	for line+1 < len(li.start) && li.start[line+1] <= off {
		line++
	}
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(li.d[li.start[line]:off])),
	}
}

func (li *lineIndex) offset(p protocol.Position) int {
	line := int(p.Line)
	if line >= len(li.start) {
		return len(li.d)
	}
	i := li.start[line]
	units := 0
	for i < len(li.d) && li.d[i] != '\n' && units < int(p.Character) {
		r, sz := utf8.DecodeRune(li.d[i:])
		units += utf16.RuneLen(r)
		i += sz
	}
	return i
}

func utf16Len(d []byte) int {
	n := 0
	for len(d) > 0 {
		r, sz := utf8.DecodeRune(d)
		d = d[sz:]
		n += max(utf16.RuneLen(r), 1)
	}
	return n
}
