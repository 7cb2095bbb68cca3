// Package gomap reduces trees to plain Go values and encodes those values.
//
// The reduction drops all trivia: records become ordered *Object values,
// lists become []any, strings are decoded, numbers keep their text as
// Number and discriminators become Tag values.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	v, err := gomap.FromIR(doc)
//	out, err := gomap.Marshal(v, format.YAMLFormat)
//
// Going the other way, ToIR and ToDocument print plain values as freshly
// laid out trees.
//
// # Related Packages
//
//   - github.com/configurik/go-configurik/ir - tree representation
//   - github.com/configurik/go-configurik/format - output formats
package gomap
