// Package format names the output formats of exported values.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	out, err := gomap.Marshal(v, f)
//
// # Related Packages
//
//   - github.com/configurik/go-configurik/gomap - plain values and their encodings
package format
