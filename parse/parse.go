package parse

import (
	"os"

	"github.com/configurik/go-configurik/debug"
	"github.com/configurik/go-configurik/ir"
	"github.com/configurik/go-configurik/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d, token.TokenFilename(pOpts.filename))
	if err != nil {
		return nil, err
	}
	if debug.Lex() {
		token.PrintTokens(os.Stderr, toks, "lex")
	}
	p := &parser{toks: toks, opts: pOpts}
	items, err := p.recordItems(token.TEOF)
	if err != nil {
		return nil, err
	}
	return &ir.Document{Items: items}, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	toks  []token.Token
	i     int
	depth int
	opts  *parseOpts
}

// peek returns the current token. The token slice always ends with TEOF and
// the parser never moves past it.
func (p *parser) peek() *token.Token {
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	t := &p.toks[p.i]
	if t.Type != token.TEOF {
		p.i++
	}
	return t
}

func (p *parser) track(n ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[n] = pos
	}
}

func (p *parser) enter(t *token.Token) error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return &SyntaxErr{Err: ErrDepth, Pos: *t.Pos, Found: t.Describe()}
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// filler consumes the longest run of trivia at the current position.
func (p *parser) filler() ir.Filler {
	var f ir.Filler
	for {
		t := p.peek()
		if !t.Type.IsTrivia() {
			return f
		}
		f = append(f, trivia(t))
		p.i++
	}
}

func trivia(t *token.Token) ir.Trivia {
	switch t.Type {
	case token.TLineComment:
		return ir.Trivia{Kind: ir.LineComment, Text: t.Inner()}
	case token.TBlockComment:
		return ir.Trivia{Kind: ir.BlockComment, Text: t.Inner()}
	default:
		return ir.Trivia{Kind: ir.Spacing, Text: string(t.Bytes)}
	}
}

func closerName(closer token.TokenType) string {
	switch closer {
	case token.TRCurl:
		return `"}"`
	case token.TRSquare:
		return `"]"`
	default:
		return "end of input"
	}
}

// recordItems parses a record body up to, not including, closer.
func (p *parser) recordItems(closer token.TokenType) (ir.RecordItems, error) {
	var items ir.RecordItems
	f := p.filler()
	if p.peek().Type != token.TIdent {
		items.Tail = f
		if p.peek().Type == token.TComma {
			p.next()
			items.Trailing = &ir.TrailingComma{After: p.filler()}
			if t := p.peek(); t.Type != closer {
				return items, unexpected(t, closerName(closer))
			}
			return items, nil
		}
		if t := p.peek(); t.Type != closer {
			return items, unexpected(t, "key", `","`, closerName(closer))
		}
		return items, nil
	}
	kv, err := p.keyValue()
	if err != nil {
		return items, err
	}
	content := &ir.RecordContent{Lead: f, First: kv}
	items.Content = content
	for {
		before := p.filler()
		if p.peek().Type != token.TComma {
			items.Tail = before
			if t := p.peek(); t.Type != closer {
				return items, unexpected(t, `","`, closerName(closer))
			}
			return items, nil
		}
		p.next()
		after := p.filler()
		if p.peek().Type != token.TIdent {
			items.Tail = before
			items.Trailing = &ir.TrailingComma{After: after}
			if t := p.peek(); t.Type != closer {
				return items, unexpected(t, "key", closerName(closer))
			}
			return items, nil
		}
		kv, err := p.keyValue()
		if err != nil {
			return items, err
		}
		content.Rest = append(content.Rest, &ir.RecordElement{
			BeforeComma: before,
			AfterComma:  after,
			Pair:        kv,
		})
	}
}

func (p *parser) keyValue() (*ir.KeyValue, error) {
	key := p.next()
	kv := &ir.KeyValue{Key: string(key.Bytes)}
	kv.BeforeColon = p.filler()
	if t := p.peek(); t.Type != token.TColon {
		return nil, unexpected(t, `":"`)
	}
	p.next()
	kv.AfterColon = p.filler()
	v, err := p.entity()
	if err != nil {
		return nil, err
	}
	kv.Value = v
	p.track(kv, key.Pos)
	return kv, nil
}

// listItems parses a list body up to, not including, "]".
func (p *parser) listItems() (ir.ListItems, error) {
	var items ir.ListItems
	f := p.filler()
	if !p.peek().Type.StartsEntity() {
		items.Tail = f
		if p.peek().Type == token.TComma {
			p.next()
			items.Trailing = &ir.TrailingComma{After: p.filler()}
			if t := p.peek(); t.Type != token.TRSquare {
				return items, unexpected(t, `"]"`)
			}
			return items, nil
		}
		if t := p.peek(); t.Type != token.TRSquare {
			return items, unexpected(t, "value", `","`, `"]"`)
		}
		return items, nil
	}
	first, err := p.entity()
	if err != nil {
		return items, err
	}
	content := &ir.ListContent{Lead: f, First: first}
	items.Content = content
	for {
		before := p.filler()
		if p.peek().Type != token.TComma {
			items.Tail = before
			if t := p.peek(); t.Type != token.TRSquare {
				return items, unexpected(t, `","`, `"]"`)
			}
			return items, nil
		}
		p.next()
		after := p.filler()
		if !p.peek().Type.StartsEntity() {
			items.Tail = before
			items.Trailing = &ir.TrailingComma{After: after}
			if t := p.peek(); t.Type != token.TRSquare {
				return items, unexpected(t, "value", `"]"`)
			}
			return items, nil
		}
		v, err := p.entity()
		if err != nil {
			return items, err
		}
		content.Rest = append(content.Rest, &ir.ListElement{
			BeforeComma: before,
			AfterComma:  after,
			Value:       v,
		})
	}
}

func (p *parser) entity() (ir.Entity, error) {
	t := p.peek()
	if debug.Parse() {
		debug.Logf("entity %s depth %d\n", t.Info(), p.depth)
	}
	switch t.Type {
	case token.TString:
		p.next()
		s := ir.NewString(t.Inner())
		p.track(s, t.Pos)
		return s, nil
	case token.TNumber:
		p.next()
		n := ir.NewNumber(string(t.Bytes))
		p.track(n, t.Pos)
		return n, nil
	case token.TLCurl:
		return p.record()
	case token.TLSquare:
		return p.list()
	case token.TIdent:
		return p.discriminator()
	default:
		return nil, unexpected(t, "value")
	}
}

func (p *parser) record() (ir.Entity, error) {
	open := p.next()
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()
	items, err := p.recordItems(token.TRCurl)
	if err != nil {
		return nil, err
	}
	p.next()
	r := ir.NewRecord(items)
	p.track(r, open.Pos)
	return r, nil
}

func (p *parser) list() (ir.Entity, error) {
	open := p.next()
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()
	items, err := p.listItems()
	if err != nil {
		return nil, err
	}
	p.next()
	l := ir.NewList(items)
	p.track(l, open.Pos)
	return l, nil
}

// discriminator parses a name and, when the name is followed by trivia and
// then by the start of a value, the payload. Trivia followed by anything
// else is left for the enclosing slot.
func (p *parser) discriminator() (ir.Entity, error) {
	name := p.next()
	var payload *ir.Payload
	end := p.i
	for p.toks[end].Type.IsTrivia() {
		end++
	}
	if end > p.i && p.toks[end].Type.StartsEntity() {
		if err := p.enter(&p.toks[end]); err != nil {
			return nil, err
		}
		defer p.leave()
		sep := p.filler()
		v, err := p.entity()
		if err != nil {
			return nil, err
		}
		payload = ir.NewPayload(sep, v)
	}
	d := ir.NewDiscriminator(string(name.Bytes), payload)
	p.track(d, name.Pos)
	return d, nil
}
