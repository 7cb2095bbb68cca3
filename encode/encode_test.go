package encode_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/configurik/go-configurik/encode"
	"github.com/configurik/go-configurik/ir"
	"github.com/configurik/go-configurik/parse"

	"github.com/fatih/color"
)

var restoreTests = []string{
	"",
	" \n\t",
	"// only a comment",
	"a: 1",
	"a: 1,",
	"a :1 , b: \"two\" /* c */ ,\n",
	"a: [ 1 , 2 , ]",
	"a: {}, b: [], c: {,}, d: [,]",
	"a: { /* only a comment */ }",
	"a: manual",
	"a: manual 100",
	"a: tag // c\n  { b: -1.5e3 }",
	"a: one two three [x]",
	"a: \"\\u00e9\\n\", b: \"é\"",
	"\r\n  a: {\r\n    b: [ x , y ],\r\n  },\r\n",
}

func TestRestore(t *testing.T) {
	for _, in := range restoreTests {
		doc, err := parse.ParseString(in)
		if err != nil {
			t.Errorf("parse %q: %v", in, err)
			continue
		}
		if got := encode.Restore(doc); got != in {
			t.Errorf("restore %q: got %q", in, got)
		}
	}
}

func TestRestoreParts(t *testing.T) {
	doc, err := parse.ParseString("a : [ 1 , tag /* t */ 2 ] ,\n")
	if err != nil {
		t.Fatal(err)
	}
	kv := doc.Pairs()[0]
	if got, want := encode.Restore(kv), "a : [ 1 , tag /* t */ 2 ]"; got != want {
		t.Errorf("key value: got %q want %q", got, want)
	}
	l := kv.Value.(*ir.List)
	if got, want := encode.Restore(&l.Items), " 1 , tag /* t */ 2 "; got != want {
		t.Errorf("list items: got %q want %q", got, want)
	}
	d := l.Items.Content.Rest[0].Value.(*ir.Discriminator)
	if got, want := encode.Restore(d.Payload), " /* t */ 2"; got != want {
		t.Errorf("payload: got %q want %q", got, want)
	}
	if got, want := encode.Restore(doc.Items.Trailing), ",\n"; got != want {
		t.Errorf("trailing: got %q want %q", got, want)
	}
}

func TestRestoreBuilt(t *testing.T) {
	rec := ir.NewRecord(ir.RecordItems{
		Content: &ir.RecordContent{
			Lead: ir.Filler{{Kind: ir.Spacing, Text: " "}},
			First: &ir.KeyValue{
				Key:        "k",
				AfterColon: ir.Filler{{Kind: ir.Spacing, Text: " "}},
				Value: ir.NewDiscriminator("on", ir.NewPayload(
					ir.Filler{{Kind: ir.Spacing, Text: " "}, {Kind: ir.LineComment, Text: " why"}, {Kind: ir.Spacing, Text: "\n"}},
					ir.NewString("x"),
				)),
			},
		},
		Tail: ir.Filler{{Kind: ir.BlockComment, Text: "*"}},
	})
	want := "{ k: on // why\n\"x\"/***/}"
	if got := encode.Restore(rec); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

var escapes = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestEncodeColors(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	in := "a: tag /* c */ [1, \"100%\"], // end\n"
	doc, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	b := &strings.Builder{}
	if err := encode.Encode(doc, b, encode.EncodeColors(encode.NewColors())); err != nil {
		t.Fatal(err)
	}
	got := b.String()
	if !escapes.MatchString(got) {
		t.Errorf("no color escapes in %q", got)
	}
	if plain := escapes.ReplaceAllString(got, ""); plain != in {
		t.Errorf("colored output differs from input: %q", plain)
	}
}

func TestEncodeTrailingCommaColors(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	colors := encode.NewColors()
	tc := &ir.TrailingComma{After: ir.Filler{{Kind: ir.Spacing, Text: " "}}}
	b := &strings.Builder{}
	if err := encode.Encode(tc, b, encode.EncodeColors(colors)); err != nil {
		t.Fatal(err)
	}
	if b.String() != ", " {
		t.Errorf("standalone trailing comma: got %q", b.String())
	}

	doc, err := parse.ParseString("a: {b: 1,}, c: [2,],")
	if err != nil {
		t.Fatal(err)
	}
	b.Reset()
	if err := encode.Encode(doc, b, encode.EncodeColors(colors)); err != nil {
		t.Fatal(err)
	}
	recComma := colors.Color(ir.RecordType, encode.SepColor, ",")
	listComma := colors.Color(ir.ListType, encode.SepColor, ",")
	if recComma == listComma {
		t.Fatalf("record and list separators share a color")
	}
	want := strings.Count(b.String(), recComma)
	if want != 3 {
		t.Errorf("got %d record commas in %q", want, b.String())
	}
	if n := strings.Count(b.String(), listComma); n != 1 {
		t.Errorf("got %d list commas in %q", n, b.String())
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestEncodeWriteError(t *testing.T) {
	doc, err := parse.ParseString("a: 1")
	if err != nil {
		t.Fatal(err)
	}
	if err := encode.Encode(doc, failWriter{}); !errors.Is(err, errWrite) {
		t.Errorf("got %v want %v", err, errWrite)
	}
}
