package token

import (
	"strings"
	"testing"
)

func TestLineCol(t *testing.T) {
	toks, err := Tokenize(nil, []byte("ab\ncd\n\nef"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][2]int{
		"ab": {0, 0},
		"cd": {1, 0},
		"ef": {3, 0},
	}
	for i := range toks {
		tok := &toks[i]
		if tok.Type != TIdent {
			continue
		}
		l, c := tok.Pos.LineCol()
		w := want[tok.String()]
		if l != w[0] || c != w[1] {
			t.Errorf("%s at %d:%d, want %d:%d", tok.String(), l, c, w[0], w[1])
		}
	}
	eof := toks[len(toks)-1]
	if l, c := eof.Pos.LineCol(); l != 3 || c != 2 {
		t.Errorf("eof at %d:%d, want 3:2", l, c)
	}
}

func TestWindow(t *testing.T) {
	d := []byte("x: 1\n{ a: }\nz: 2")
	pd := NewPosDoc("", d)
	pd.nl(4)
	pd.nl(11)
	got := pd.Pos(10).Window(40)
	want := "{ a: }\n     ^\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	got = pd.Pos(0).Window(40)
	if got != "x: 1\n^\n" {
		t.Errorf("got %q", got)
	}
	tabbed := NewPosDoc("", []byte("\tk: ]"))
	got = tabbed.Pos(4).Window(40)
	if !strings.HasSuffix(got, "\n"+strings.Repeat(" ", 11)+"^\n") {
		t.Errorf("tab expansion: got %q", got)
	}
}

func TestPosString(t *testing.T) {
	pd := NewPosDoc("conf.cfk", []byte("a: b"))
	s := pd.Pos(3).String()
	if !strings.Contains(s, "conf.cfk") || !strings.Contains(s, "line=1, col=4") {
		t.Errorf("unexpected %q", s)
	}
}

func TestIndexPosDoc(t *testing.T) {
	pd := IndexPosDoc("", []byte("a\nbc\n\nd"))
	for _, c := range []struct{ off, line, col int }{
		{0, 0, 0}, {2, 1, 0}, {3, 1, 1}, {6, 3, 0},
	} {
		if l, col := pd.LineCol(c.off); l != c.line || col != c.col {
			t.Errorf("%d at %d:%d, want %d:%d", c.off, l, col, c.line, c.col)
		}
	}
}
