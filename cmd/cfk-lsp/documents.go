package main

import (
	"sync"

	"github.com/configurik/go-configurik/ir"
	"github.com/configurik/go-configurik/parse"
	"github.com/configurik/go-configurik/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text with the result of parsing it. On a parse error
// tree is nil and err is set.
type document struct {
	uri       string
	content   []byte
	version   int32
	lines     *lineIndex
	tree      *ir.Document
	positions map[ir.Node]*token.Pos
	err       error
}

func newDocument(uri string, content []byte, version int32) *document {
	positions := make(map[ir.Node]*token.Pos)
	tree, err := parse.Parse(content, parse.WithFilename(uri), parse.ParsePositions(positions))
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		lines:     newLineIndex(content),
		tree:      tree,
		positions: positions,
		err:       err,
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, []byte(content), version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}
