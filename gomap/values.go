package gomap

import (
	"encoding/json"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"
)

// Number is the text of a number lexeme.
type Number string

func (n Number) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(n))
}

var (
	maxInt = decimal.NewFromInt(math.MaxInt64)
	minInt = decimal.NewFromInt(math.MinInt64)
)

// Native returns n as an int64 when it is integral and in range, otherwise
// as the nearest float64, which is infinite when n is out of float64 range.
func (n Number) Native() (any, error) {
	d, err := n.Decimal()
	if err != nil {
		return nil, err
	}
	if d.IsInteger() && d.Cmp(minInt) >= 0 && d.Cmp(maxInt) <= 0 {
		return d.IntPart(), nil
	}
	f, _ := d.Float64()
	return f, nil
}

// MarshalJSON writes n as is when it is valid JSON. Forms JSON lacks, such
// as leading zeros, are normalised.
func (n Number) MarshalJSON() ([]byte, error) {
	if json.Valid([]byte(n)) {
		return []byte(n), nil
	}
	d, err := n.Decimal()
	if err != nil {
		return nil, err
	}
	return []byte(d.String()), nil
}

// MarshalYAML writes n as an int or float. Numbers beyond the float64 range
// keep their text rather than becoming .inf.
func (n Number) MarshalYAML() (any, error) {
	v, err := n.Native()
	if err != nil {
		return nil, err
	}
	if f, ok := v.(float64); ok && math.IsInf(f, 0) {
		return string(n), nil
	}
	return v, nil
}

// Tag is a discriminator. Payload is nil for a bare name.
type Tag struct {
	Name    string
	Payload any
}

func (t Tag) MarshalJSON() ([]byte, error) {
	if t.Payload == nil {
		return json.Marshal(t.Name)
	}
	obj := NewObject()
	obj.Set(t.Name, t.Payload)
	return obj.MarshalJSON()
}

func (t Tag) MarshalYAML() (any, error) {
	if t.Payload == nil {
		return t.Name, nil
	}
	return yaml.MapSlice{{Key: t.Name, Value: t.Payload}}, nil
}
