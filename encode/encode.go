package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/configurik/go-configurik/ir"
)

type EncState struct {
	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the text of node to w. It fails only when w does.
func Encode(node ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	o := &out{w: w, es: es}
	encode(node, o)
	return o.err
}

// Restore returns the text node was parsed from.
func Restore(node ir.Node) string {
	b := &strings.Builder{}
	encode(node, &out{w: b, es: &EncState{}})
	return b.String()
}

type out struct {
	w   io.Writer
	err error
	es  *EncState
}

func (o *out) write(s string) {
	if o.err != nil || s == "" {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

func (o *out) color(t ir.Type, a ColorAttr, s string) {
	if o.es.Color != nil && s != "" {
		s = o.es.Color(t, a, s)
	}
	o.write(s)
}

func encode(node ir.Node, o *out) {
	switch x := node.(type) {
	case *ir.Document:
		recordItems(&x.Items, o)
	case *ir.Record:
		o.color(ir.RecordType, SepColor, "{")
		recordItems(&x.Items, o)
		o.color(ir.RecordType, SepColor, "}")
	case *ir.List:
		o.color(ir.ListType, SepColor, "[")
		listItems(&x.Items, o)
		o.color(ir.ListType, SepColor, "]")
	case *ir.RecordItems:
		recordItems(x, o)
	case *ir.RecordContent:
		recordContent(x, o)
	case *ir.RecordElement:
		recordElement(x, o)
	case *ir.KeyValue:
		keyValue(x, o)
	case *ir.ListItems:
		listItems(x, o)
	case *ir.ListContent:
		listContent(x, o)
	case *ir.ListElement:
		listElement(x, o)
	case *ir.TrailingComma:
		// owner unknown: no color
		o.write(",")
		filler(x.After, o)
	case *ir.Payload:
		filler(x.Sep, o)
		encode(x.Value, o)
	case ir.Filler:
		filler(x, o)
	case ir.Trivia:
		trivia(x, o)
	case *ir.String:
		o.color(ir.StringType, ValueColor, `"`+x.Raw+`"`)
	case *ir.Number:
		o.color(ir.NumberType, ValueColor, x.Raw)
	case *ir.Discriminator:
		o.color(ir.DiscriminatorType, ValueColor, x.Name)
		if x.Payload != nil {
			filler(x.Payload.Sep, o)
			encode(x.Payload.Value, o)
		}
	default:
		panic(fmt.Sprintf("encode: unknown node %T", node))
	}
}

func recordItems(ri *ir.RecordItems, o *out) {
	if ri.Content != nil {
		recordContent(ri.Content, o)
	}
	filler(ri.Tail, o)
	if ri.Trailing != nil {
		trailing(ri.Trailing, ir.RecordType, o)
	}
}

func recordContent(rc *ir.RecordContent, o *out) {
	filler(rc.Lead, o)
	keyValue(rc.First, o)
	for _, e := range rc.Rest {
		recordElement(e, o)
	}
}

func recordElement(re *ir.RecordElement, o *out) {
	filler(re.BeforeComma, o)
	o.color(ir.RecordType, SepColor, ",")
	filler(re.AfterComma, o)
	keyValue(re.Pair, o)
}

func keyValue(kv *ir.KeyValue, o *out) {
	o.color(ir.RecordType, FieldColor, kv.Key)
	filler(kv.BeforeColon, o)
	o.color(ir.RecordType, SepColor, ":")
	filler(kv.AfterColon, o)
	encode(kv.Value, o)
}

func listItems(li *ir.ListItems, o *out) {
	if li.Content != nil {
		listContent(li.Content, o)
	}
	filler(li.Tail, o)
	if li.Trailing != nil {
		trailing(li.Trailing, ir.ListType, o)
	}
}

func listContent(lc *ir.ListContent, o *out) {
	filler(lc.Lead, o)
	encode(lc.First, o)
	for _, e := range lc.Rest {
		listElement(e, o)
	}
}

func listElement(le *ir.ListElement, o *out) {
	filler(le.BeforeComma, o)
	o.color(ir.ListType, SepColor, ",")
	filler(le.AfterComma, o)
	encode(le.Value, o)
}

func trailing(tc *ir.TrailingComma, t ir.Type, o *out) {
	o.color(t, SepColor, ",")
	filler(tc.After, o)
}

func filler(f ir.Filler, o *out) {
	for _, t := range f {
		trivia(t, o)
	}
}

func trivia(t ir.Trivia, o *out) {
	switch t.Kind {
	case ir.LineComment:
		o.color(ir.CommentType, ValueColor, "//"+t.Text)
	case ir.BlockComment:
		o.color(ir.CommentType, ValueColor, "/*"+t.Text+"*/")
	default:
		o.write(t.Text)
	}
}
