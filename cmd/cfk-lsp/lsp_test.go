package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/configurik/go-configurik/token"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

func TestLineIndex(t *testing.T) {
	li := newLineIndex([]byte("a: \"é😀\"\nb"))
	pts := []struct {
		off int
		pos protocol.Position
	}{
		{off: 0, pos: protocol.Position{Line: 0, Character: 0}},
		{off: 10, pos: protocol.Position{Line: 0, Character: 7}},
		{off: 12, pos: protocol.Position{Line: 1, Character: 0}},
	}
	for _, pt := range pts {
		if got := li.position(pt.off); got != pt.pos {
			t.Errorf("position(%d) = %v want %v", pt.off, got, pt.pos)
		}
		if got := li.offset(pt.pos); got != pt.off {
			t.Errorf("offset(%v) = %d want %d", pt.pos, got, pt.off)
		}
	}
	if got := li.offset(protocol.Position{Line: 5}); got != 13 {
		t.Errorf("offset past end = %d", got)
	}
}

func TestClassify(t *testing.T) {
	toks, err := token.Tokenize(nil, []byte("a: tag {b /* k */ : 1} // c"))
	if err != nil {
		t.Fatal(err)
	}
	var got []uint32
	for _, st := range classify(toks) {
		got = append(got, st.typ)
	}
	want := []uint32{
		semProperty, semOperator, semEnumMember, semOperator, semProperty,
		semComment, semOperator, semNumber, semOperator, semComment,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("types (-want +got):\n%s", diff)
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines(2, []byte("/* x\ny */"), semComment)
	want := []semToken{{off: 2, end: 6, typ: semComment}, {off: 7, end: 11, typ: semComment}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(semToken{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeTokens(t *testing.T) {
	doc := newDocument("file:///t.cfk", []byte("a: 1\nb: x"), 1)
	got := encodeTokens(doc.lines, documentTokens(doc), 0, len(doc.content))
	want := []uint32{
		0, 0, 1, semProperty, 0,
		0, 1, 1, semOperator, 0,
		0, 2, 1, semNumber, 0,
		1, 0, 1, semProperty, 0,
		0, 1, 1, semOperator, 0,
		0, 2, 1, semEnumMember, 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got = encodeTokens(doc.lines, documentTokens(doc), 5, 9)
	if len(got) != 15 || got[0] != 1 {
		t.Errorf("range: %v", got)
	}
}

func TestValidateDocument(t *testing.T) {
	if ds := validateDocument(newDocument("file:///ok.cfk", []byte("a: 1"), 1)); len(ds) != 0 {
		t.Errorf("unexpected diagnostics %v", ds)
	}
	ds := validateDocument(newDocument("file:///bad.cfk", []byte("x: { a: }"), 1))
	if len(ds) != 1 {
		t.Fatalf("got %v", ds)
	}
	d := ds[0]
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 8},
		End:   protocol.Position{Line: 0, Character: 9},
	}
	if d.Range != want {
		t.Errorf("range %v want %v", d.Range, want)
	}
	if d.Code != "SyntaxError" {
		t.Errorf("code %v", d.Code)
	}
}

func TestHover(t *testing.T) {
	doc := newDocument("file:///h.cfk", []byte("a: 1,\nb: tag [x, 2.50]"), 1)
	hts := []struct {
		off  int
		want string
	}{
		{off: 17, want: "**Type:** Number\n\n**Value:** `2.50` (2.5)"},
		{off: 6, want: "**Key:** `b`\n\n**Type:** Discriminator\n\n**Name:** `tag`\n\n**Payload:** List"},
		{off: 9, want: "**Type:** Discriminator\n\n**Name:** `tag`\n\n**Payload:** List"},
		{off: 13, want: "**Type:** List\n\nlist with 2 elements"},
		{off: 5, want: ""},
	}
	for _, ht := range hts {
		if got := buildHoverText(doc, ht.off); got != ht.want {
			t.Errorf("%d: got %q want %q", ht.off, got, ht.want)
		}
	}
}

func TestHoverTruncatesOnRunes(t *testing.T) {
	long := strings.Repeat("x", 49) + "éé"
	doc := newDocument("file:///s.cfk", []byte(`a: "`+long+`"`), 1)
	got := buildHoverText(doc, 4)
	want := "**Type:** String\n\n**Value:** `" + strings.Repeat("x", 49) + "é...`"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if !utf8.ValidString(got) {
		t.Errorf("invalid utf-8 in %q", got)
	}
}

func TestCompletionItems(t *testing.T) {
	doc := newDocument("file:///c.cfk", []byte("b: tag [x, tag], a: {b: x}"), 1)
	var got []string
	for _, it := range completionItems(doc) {
		got = append(got, it.Label)
	}
	if diff := cmp.Diff([]string{"a", "b", "tag", "x"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
