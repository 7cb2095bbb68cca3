package gomap

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/configurik/go-configurik/ir"
	"github.com/configurik/go-configurik/token"
)

const indent = "  "

func space(s string) ir.Filler {
	return ir.Filler{{Kind: ir.Spacing, Text: s}}
}

// ToDocument lays out obj as a document with one pair per line.
func ToDocument(obj *Object) (*ir.Document, error) {
	items, err := recordItems(obj, 0)
	if err != nil {
		return nil, err
	}
	return &ir.Document{Items: items}, nil
}

// ToIR lays out v as an entity. Records put one pair per line, lists stay
// on one line.
func ToIR(v any) (ir.Entity, error) {
	return toIR(v, 0)
}

func toIR(v any, depth int) (ir.Entity, error) {
	switch x := v.(type) {
	case *Object:
		if x.Len() == 0 {
			return ir.NewRecord(ir.RecordItems{}), nil
		}
		items, err := recordItems(x, depth+1)
		if err != nil {
			return nil, err
		}
		return ir.NewRecord(items), nil
	case map[string]any:
		obj := NewObject()
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			obj.Set(k, x[k])
		}
		return toIR(obj, depth)
	case []any:
		var items ir.ListItems
		for i, e := range x {
			ent, err := toIR(e, depth)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				items.Content = &ir.ListContent{First: ent}
				continue
			}
			items.Content.Rest = append(items.Content.Rest, &ir.ListElement{
				AfterComma: space(" "),
				Value:      ent,
			})
		}
		return ir.NewList(items), nil
	case string:
		q := token.Quote(x)
		return ir.NewString(q[1 : len(q)-1]), nil
	case Number:
		return ir.NewNumber(string(x)), nil
	case json.Number:
		return ir.NewNumber(string(x)), nil
	case int:
		return ir.NewNumber(strconv.Itoa(x)), nil
	case int64:
		return ir.NewNumber(strconv.FormatInt(x, 10)), nil
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupported, x)
		}
		return ir.NewNumber(formatFloat(x)), nil
	case bool:
		return ir.NewDiscriminator(strconv.FormatBool(x), nil), nil
	case nil:
		return ir.NewDiscriminator("null", nil), nil
	case Tag:
		if !token.IsIdent(x.Name) {
			return nil, fmt.Errorf("%w: discriminator %q", ErrKey, x.Name)
		}
		if x.Payload == nil {
			return ir.NewDiscriminator(x.Name, nil), nil
		}
		p, err := toIR(x.Payload, depth)
		if err != nil {
			return nil, err
		}
		return ir.NewDiscriminator(x.Name, ir.NewPayload(space(" "), p)), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// formatFloat writes a finite f as a number lexeme, which has no "+" in
// exponents.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	return strings.Replace(s, "e+", "e", 1)
}

func recordItems(obj *Object, depth int) (ir.RecordItems, error) {
	var items ir.RecordItems
	if obj.Len() == 0 {
		return items, nil
	}
	nl := "\n" + strings.Repeat(indent, depth)
	var lead ir.Filler
	if depth > 0 {
		lead = space(nl)
	}
	var content *ir.RecordContent
	for _, k := range obj.keys {
		if !token.IsIdent(k) {
			return items, fmt.Errorf("%w: %q", ErrKey, k)
		}
		v, err := toIR(obj.values[k], depth)
		if err != nil {
			return items, fmt.Errorf("%s: %w", k, err)
		}
		kv := &ir.KeyValue{Key: k, AfterColon: space(" "), Value: v}
		if content == nil {
			content = &ir.RecordContent{Lead: lead, First: kv}
			continue
		}
		content.Rest = append(content.Rest, &ir.RecordElement{
			AfterComma: space(nl),
			Pair:       kv,
		})
	}
	items.Content = content
	items.Trailing = &ir.TrailingComma{
		After: space("\n" + strings.Repeat(indent, max(depth-1, 0))),
	}
	return items, nil
}
