package gomap

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// Object is a record with its keys in source order. Setting a key again
// replaces its value but keeps its first position.
type Object struct {
	keys   []string
	values map[string]any
}

func NewObject() *Object {
	return &Object{values: map[string]any{}}
}

func (o *Object) Set(k string, v any) {
	if _, present := o.values[k]; !present {
		o.keys = append(o.keys, k)
	}
	o.values[k] = v
}

func (o *Object) Get(k string) (any, bool) {
	v, ok := o.values[k]
	return v, ok
}

func (o *Object) Keys() []string {
	return o.keys
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) MarshalJSON() ([]byte, error) {
	b := bytes.NewBuffer(nil)
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kd, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vd, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		b.Write(kd)
		b.WriteByte(':')
		b.Write(vd)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (o *Object) MarshalYAML() (any, error) {
	res := make(yaml.MapSlice, 0, len(o.keys))
	for _, k := range o.keys {
		res = append(res, yaml.MapItem{Key: k, Value: o.values[k]})
	}
	return res, nil
}
