package gomap

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/configurik/go-configurik/format"
	"github.com/configurik/go-configurik/parse"

	"github.com/google/go-cmp/cmp"
)

const sample = "a: 1, b: [x, tag 2], c: {d: \"s\\n\"}, // c\na: 007"

func load(t *testing.T, in string) any {
	t.Helper()
	doc, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	v, err := FromIR(doc)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestFromIR(t *testing.T) {
	obj := load(t, sample).(*Object)
	if diff := cmp.Diff([]string{"a", "b", "c"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	a, _ := obj.Get("a")
	if a != Number("007") {
		t.Errorf("a: %#v", a)
	}
	b, _ := obj.Get("b")
	want := []any{Tag{Name: "x"}, Tag{Name: "tag", Payload: Number("2")}}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("b (-want +got):\n%s", diff)
	}
}

func TestFromIRBadEscape(t *testing.T) {
	doc, err := parse.ParseString(`a: "\q"`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := FromIR(doc); !errors.Is(err, ErrDecode) {
		t.Errorf("got %v want %v", err, ErrDecode)
	}
}

func TestPlain(t *testing.T) {
	got, err := Plain(load(t, sample))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": int64(7),
		"b": []any{"x", map[string]any{"tag": int64(2)}},
		"c": map[string]any{"d": "s\n"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("plain (-want +got):\n%s", diff)
	}
}

func TestNumber(t *testing.T) {
	nts := []struct {
		in     Number
		native any
		json   string
	}{
		{in: "12", native: int64(12), json: "12"},
		{in: "-1.50", native: -1.5, json: "-1.50"},
		{in: "007", native: int64(7), json: "7"},
		{in: "1e2", native: int64(100), json: "1e2"},
		{in: "99999999999999999999", native: 1e20, json: "99999999999999999999"},
	}
	for _, nt := range nts {
		n, err := nt.in.Native()
		if err != nil {
			t.Errorf("%s: %v", nt.in, err)
			continue
		}
		if n != nt.native {
			t.Errorf("%s: native %#v want %#v", nt.in, n, nt.native)
		}
		d, err := json.Marshal(nt.in)
		if err != nil {
			t.Errorf("%s: %v", nt.in, err)
			continue
		}
		if string(d) != nt.json {
			t.Errorf("%s: json %s want %s", nt.in, d, nt.json)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	d, err := Marshal(load(t, sample), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": 7,
  "b": [
    "x",
    {
      "tag": 2
    }
  ],
  "c": {
    "d": "s\n"
  }
}
`
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("json (-want +got):\n%s", diff)
	}
}

func TestMarshalYAML(t *testing.T) {
	d, err := Marshal(load(t, sample), format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	out := string(d)
	for _, s := range []string{"a: 7", "- x", "tag: 2", "c:"} {
		if !strings.Contains(out, s) {
			t.Errorf("%q not in\n%s", s, out)
		}
	}
	if !(strings.Index(out, "a:") < strings.Index(out, "b:") && strings.Index(out, "b:") < strings.Index(out, "c:")) {
		t.Errorf("keys out of order:\n%s", out)
	}
}

func TestMarshalYAMLOutOfRange(t *testing.T) {
	d, err := Marshal(load(t, "big: 1e400, small: 2.5"), format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	out := string(d)
	if strings.Contains(out, "inf") {
		t.Errorf("out of range number became infinite:\n%s", out)
	}
	for _, s := range []string{"1e400", "small: 2.5"} {
		if !strings.Contains(out, s) {
			t.Errorf("%q not in\n%s", s, out)
		}
	}
}

func TestMarshalCBOR(t *testing.T) {
	obj := NewObject()
	obj.Set("b", Number("2"))
	obj.Set("a", "x")
	d, err := Marshal(obj, format.CBORFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xa2, 0x61, 'a', 0x61, 'x', 0x61, 'b', 0x02}
	if !bytes.Equal(d, want) {
		t.Errorf("got % x want % x", d, want)
	}
}

func TestMarshalCfk(t *testing.T) {
	v := load(t, sample)
	d, err := Marshal(v, format.CfkFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := "a: 007,\nb: [x, tag 2],\nc: {\n  d: \"s\\n\",\n},\n"
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("cfk (-want +got):\n%s", diff)
	}
	again := load(t, string(d))
	if diff := cmp.Diff(v, again, cmp.AllowUnexported(Object{})); diff != "" {
		t.Errorf("reload (-want +got):\n%s", diff)
	}
}

func TestToIRErrors(t *testing.T) {
	obj := NewObject()
	obj.Set("not ident", Number("1"))
	if _, err := ToDocument(obj); !errors.Is(err, ErrKey) {
		t.Errorf("got %v want %v", err, ErrKey)
	}
	if _, err := ToIR(struct{}{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v want %v", err, ErrUnsupported)
	}
}

func TestDecodeJSON(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"z": 1, "a": [true, null, "s", {}]}`))
	if err != nil {
		t.Fatal(err)
	}
	obj := v.(*Object)
	if diff := cmp.Diff([]string{"z", "a"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	a, _ := obj.Get("a")
	want := []any{true, nil, "s", NewObject()}
	if diff := cmp.Diff(want, a, cmp.AllowUnexported(Object{})); diff != "" {
		t.Errorf("a (-want +got):\n%s", diff)
	}
	d, err := Marshal(v, format.CfkFormat)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), "z: 1,\na: [true, null, \"s\", {}],\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if _, err := DecodeJSON([]byte(`{} {}`)); !errors.Is(err, ErrDecode) {
		t.Errorf("got %v want %v", err, ErrDecode)
	}
}
