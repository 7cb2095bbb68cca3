package parse

import (
	"github.com/configurik/go-configurik/ir"
	"github.com/configurik/go-configurik/token"
)

// DefaultMaxDepth bounds the nesting of containers and discriminator
// payloads unless MaxDepth says otherwise.
const DefaultMaxDepth = 1000

type parseOpts struct {
	filename  string
	maxDepth  int
	positions map[ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParsePositions records in m the start position of every entity and
// key/value pair of the tree.
func ParsePositions(m map[ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
