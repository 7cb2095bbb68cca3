package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
		if f.Suffix() != "."+f.String() {
			t.Errorf("suffix %q for %s", f.Suffix(), f)
		}
	}
	if f, err := ParseFormat("y"); err != nil || f != YAMLFormat {
		t.Errorf("y: %s %v", f, err)
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v want %v", err, ErrBadFormat)
	}
}

func TestFromSuffix(t *testing.T) {
	fts := []struct {
		path string
		f    Format
		ok   bool
	}{
		{path: "x.cfk", f: CfkFormat, ok: true},
		{path: "a/b/x.json", f: JSONFormat, ok: true},
		{path: "x.yaml", f: YAMLFormat, ok: true},
		{path: "x.cbor", f: CBORFormat, ok: true},
		{path: "x.txt"},
		{path: "-"},
		{path: ""},
	}
	for _, ft := range fts {
		f, ok := FromSuffix(ft.path)
		if ok != ft.ok || (ok && f != ft.f) {
			t.Errorf("%q: got %s %v", ft.path, f, ok)
		}
	}
	if !CBORFormat.IsBinary() || JSONFormat.IsBinary() {
		t.Error("only cbor is binary")
	}
}
