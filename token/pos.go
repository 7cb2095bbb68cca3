package token

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// PosDoc resolves byte offsets of one document to lines and columns.
// Newline offsets are registered by the tokenizer as it scans, so a PosDoc
// can resolve any offset the tokenizer has already passed.
type PosDoc struct {
	name string
	d    []byte
	n    []int
}

func NewPosDoc(name string, d []byte) *PosDoc {
	return &PosDoc{name: name, d: d}
}

// IndexPosDoc returns a PosDoc with every newline of d already registered,
// for resolving offsets without tokenizing.
func IndexPosDoc(name string, d []byte) *PosDoc {
	p := NewPosDoc(name, d)
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *PosDoc) Name() string {
	return p.name
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] >= i {
		return
	}
	if i >= len(p.d) || p.d[i] != '\n' {
		panic(fmt.Sprintf("token: offset %d is not a newline", i))
	}
	p.n = append(p.n, i)
}

// LineCol returns the 0 based line and byte column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

func (p *PosDoc) end() *Pos {
	return p.Pos(len(p.d))
}

// Pos is a byte offset into a document. Line and Col are 0 based; String and
// the error messages built on it report them 1 based.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	line, col := p.LineCol()
	if p.D != nil && p.D.name != "" {
		return fmt.Sprintf("`...%s...` in %s at offset %d (line=%d, col=%d)", sample, p.D.name, p.I, line+1, col+1)
	}
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, line+1, col+1)
}

// Window returns the source line around p, limited to span bytes on either
// side, followed by a line holding a caret under p.
func (p *Pos) Window(span int) string {
	if p.D == nil {
		return ""
	}
	d := p.D.d
	i := min(max(p.I, 0), len(d))
	before := d[max(0, i-span):i]
	if j := bytes.LastIndexByte(before, '\n'); j >= 0 {
		before = before[j+1:]
	}
	after := d[i:min(len(d), i+span)]
	if j := bytes.IndexByte(after, '\n'); j >= 0 {
		after = after[:j]
	}
	var b strings.Builder
	b.Write(before)
	b.Write(after)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", displayWidth(before)))
	b.WriteString("^\n")
	return b.String()
}

// displayWidth counts runes with tabs expanded to 8 column stops.
func displayWidth(d []byte) int {
	w := 0
	for len(d) > 0 {
		r, sz := utf8.DecodeRune(d)
		d = d[sz:]
		if r == '\t' {
			w += 8 - w%8
			continue
		}
		w++
	}
	return w
}
