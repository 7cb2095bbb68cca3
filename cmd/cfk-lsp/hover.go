package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/configurik/go-configurik/encode"
	"github.com/configurik/go-configurik/ir"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.tree == nil {
		return nil, nil
	}
	off := doc.lines.offset(params.Position)
	hoverText := buildHoverText(doc, off)
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// nodeAt returns the innermost entity whose text contains off, and the
// pair when off lies on a key.
func nodeAt(doc *document, off int) (ir.Entity, *ir.KeyValue) {
	var (
		best ir.Entity
		kv   *ir.KeyValue
	)
	ir.Walk(doc.tree, func(n ir.Node) bool {
		if kv != nil {
			return false
		}
		switch x := n.(type) {
		case *ir.KeyValue:
			pos := doc.positions[x]
			if pos != nil && off >= pos.I && off < pos.I+len(x.Key) {
				best, kv = x.Value, x
				return false
			}
		case ir.Entity:
			pos := doc.positions[x]
			if pos == nil || off < pos.I || off >= pos.I+len(encode.Restore(x)) {
				return false
			}
			best = x
		}
		return true
	})
	return best, kv
}

func buildHoverText(doc *document, off int) string {
	ent, kv := nodeAt(doc, off)
	if ent == nil {
		return ""
	}
	var parts []string
	if kv != nil {
		parts = append(parts, fmt.Sprintf("**Key:** `%s`", kv.Key))
	}
	parts = append(parts, fmt.Sprintf("**Type:** %s", ent.Type()))
	if v := valueInfo(ent); v != "" {
		parts = append(parts, v)
	}
	return strings.Join(parts, "\n\n")
}

const maxHoverRunes = 50

func valueInfo(ent ir.Entity) string {
	switch x := ent.(type) {
	case *ir.String:
		v, err := x.Value()
		if err != nil {
			return fmt.Sprintf("**Error:** %v", err)
		}
		if utf8.RuneCountInString(v) > maxHoverRunes {
			v = string([]rune(v)[:maxHoverRunes]) + "..."
		}
		return fmt.Sprintf("**Value:** `%s`", v)
	case *ir.Number:
		d, err := x.Decimal()
		if err != nil || d.String() == x.Raw {
			return fmt.Sprintf("**Value:** `%s`", x.Raw)
		}
		return fmt.Sprintf("**Value:** `%s` (%s)", x.Raw, d.String())
	case *ir.Discriminator:
		if x.Payload == nil {
			return fmt.Sprintf("**Name:** `%s`", x.Name)
		}
		return fmt.Sprintf("**Name:** `%s`\n\n**Payload:** %s", x.Name, x.Payload.Value.Type())
	case *ir.List:
		return fmt.Sprintf("list with %d elements", len(x.Values()))
	case *ir.Record:
		return fmt.Sprintf("record with %d keys", len(x.Pairs()))
	}
	return ""
}
