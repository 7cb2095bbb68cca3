package gomap

import (
	"fmt"

	"github.com/configurik/go-configurik/ir"
)

// FromIR reduces a document or entity to a plain value.
func FromIR(node ir.Node) (any, error) {
	switch x := node.(type) {
	case *ir.Document:
		return fromPairs(x.Pairs())
	case *ir.Record:
		return fromPairs(x.Pairs())
	case *ir.List:
		vals := x.Values()
		res := make([]any, 0, len(vals))
		for _, e := range vals {
			v, err := FromIR(e)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case *ir.String:
		s, err := x.Value()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return s, nil
	case *ir.Number:
		return Number(x.Raw), nil
	case *ir.Discriminator:
		t := Tag{Name: x.Name}
		if x.Payload != nil {
			v, err := FromIR(x.Payload.Value)
			if err != nil {
				return nil, err
			}
			t.Payload = v
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, node)
	}
}

func fromPairs(pairs []*ir.KeyValue) (*Object, error) {
	obj := NewObject()
	for _, kv := range pairs {
		v, err := FromIR(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kv.Key, err)
		}
		obj.Set(kv.Key, v)
	}
	return obj, nil
}

// Plain converts v to values built only from map[string]any, []any,
// string, int64, float64, bool and nil. Tags become their JSON shape.
func Plain(v any) (any, error) {
	switch x := v.(type) {
	case *Object:
		res := make(map[string]any, x.Len())
		for _, k := range x.keys {
			pv, err := Plain(x.values[k])
			if err != nil {
				return nil, err
			}
			res[k] = pv
		}
		return res, nil
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			pv, err := Plain(e)
			if err != nil {
				return nil, err
			}
			res[k] = pv
		}
		return res, nil
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			pv, err := Plain(e)
			if err != nil {
				return nil, err
			}
			res[i] = pv
		}
		return res, nil
	case Number:
		n, err := x.Native()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return n, nil
	case Tag:
		if x.Payload == nil {
			return x.Name, nil
		}
		pv, err := Plain(x.Payload)
		if err != nil {
			return nil, err
		}
		return map[string]any{x.Name: pv}, nil
	case string, int64, float64, bool, nil:
		return x, nil
	case int:
		return int64(x), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}
