package ir

import (
	"github.com/configurik/go-configurik/token"

	"github.com/shopspring/decimal"
)

// Node is any element of a parsed tree.
type Node interface {
	node()
}

// Entity is a value node. It is implemented only by *String, *Number,
// *Discriminator, *List and *Record.
type Entity interface {
	Node
	Type() Type
	entity()
}

type String struct {
	Raw string
}

func NewString(raw string) *String {
	return &String{Raw: raw}
}

func (*String) node()      {}
func (*String) entity()    {}
func (*String) Type() Type { return StringType }

// Value decodes the escape sequences of the string.
func (s *String) Value() (string, error) {
	return token.Unquote(s.Raw)
}

type Number struct {
	Raw string
}

func NewNumber(raw string) *Number {
	return &Number{Raw: raw}
}

func (*Number) node()      {}
func (*Number) entity()    {}
func (*Number) Type() Type { return NumberType }

func (n *Number) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(n.Raw)
}

type Discriminator struct {
	Name    string
	Payload *Payload
}

// Payload is the value carried by a discriminator together with the trivia
// separating it from the name. Sep is never empty.
type Payload struct {
	Sep   Filler
	Value Entity
}

func (*Payload) node() {}

func NewDiscriminator(name string, payload *Payload) *Discriminator {
	return &Discriminator{Name: name, Payload: payload}
}

func NewPayload(sep Filler, v Entity) *Payload {
	if sep.IsEmpty() {
		panic("ir: discriminator payload without separator")
	}
	return &Payload{Sep: sep, Value: v}
}

func (*Discriminator) node()      {}
func (*Discriminator) entity()    {}
func (*Discriminator) Type() Type { return DiscriminatorType }

// Value returns the payload value or nil.
func (d *Discriminator) Value() Entity {
	if d.Payload == nil {
		return nil
	}
	return d.Payload.Value
}

// TrailingComma is a comma after the last element of a container, together
// with the trivia following it.
type TrailingComma struct {
	After Filler
}

func (*TrailingComma) node() {}

type List struct {
	Items ListItems
}

func NewList(items ListItems) *List {
	return &List{Items: items}
}

func (*List) node()      {}
func (*List) entity()    {}
func (*List) Type() Type { return ListType }

func (l *List) Values() []Entity {
	return l.Items.Values()
}

// ListItems is everything between "[" and "]".
type ListItems struct {
	Content  *ListContent
	Tail     Filler
	Trailing *TrailingComma
}

func (*ListItems) node() {}

func (li *ListItems) Values() []Entity {
	if li.Content == nil {
		return nil
	}
	res := make([]Entity, 0, 1+len(li.Content.Rest))
	res = append(res, li.Content.First)
	for _, e := range li.Content.Rest {
		res = append(res, e.Value)
	}
	return res
}

type ListContent struct {
	Lead  Filler
	First Entity
	Rest  []*ListElement
}

func (*ListContent) node() {}

// ListElement is an entity after the first, with the trivia around the comma
// preceding it.
type ListElement struct {
	BeforeComma Filler
	AfterComma  Filler
	Value       Entity
}

func (*ListElement) node() {}

type Record struct {
	Items RecordItems
}

func NewRecord(items RecordItems) *Record {
	return &Record{Items: items}
}

func (*Record) node()      {}
func (*Record) entity()    {}
func (*Record) Type() Type { return RecordType }

func (r *Record) Pairs() []*KeyValue {
	return r.Items.Pairs()
}

func (r *Record) Get(key string) Entity {
	return r.Items.Get(key)
}

// RecordItems is everything between "{" and "}", or a whole document.
type RecordItems struct {
	Content  *RecordContent
	Tail     Filler
	Trailing *TrailingComma
}

func (*RecordItems) node() {}

func (ri *RecordItems) Pairs() []*KeyValue {
	if ri.Content == nil {
		return nil
	}
	res := make([]*KeyValue, 0, 1+len(ri.Content.Rest))
	res = append(res, ri.Content.First)
	for _, e := range ri.Content.Rest {
		res = append(res, e.Pair)
	}
	return res
}

// Get returns the value of the last pair with the given key, or nil.
func (ri *RecordItems) Get(key string) Entity {
	var res Entity
	for _, kv := range ri.Pairs() {
		if kv.Key == key {
			res = kv.Value
		}
	}
	return res
}

type RecordContent struct {
	Lead  Filler
	First *KeyValue
	Rest  []*RecordElement
}

func (*RecordContent) node() {}

type RecordElement struct {
	BeforeComma Filler
	AfterComma  Filler
	Pair        *KeyValue
}

func (*RecordElement) node() {}

type KeyValue struct {
	Key         string
	BeforeColon Filler
	AfterColon  Filler
	Value       Entity
}

func (*KeyValue) node() {}

// Document is the root of a parsed file: a record body without braces.
type Document struct {
	Items RecordItems
}

func (*Document) node() {}

func (d *Document) Pairs() []*KeyValue {
	return d.Items.Pairs()
}

func (d *Document) Get(key string) Entity {
	return d.Items.Get(key)
}
