// Package parse parses Configurik text into ir trees.
//
// # Usage
//
//	doc, err := parse.Parse([]byte(`mode: manual 100, tags: ["a", "b",],`))
//	if err != nil {
//	    return err
//	}
//	text := encode.Restore(doc) // identical to the input
//
//	// Parse with options
//	doc, err := parse.Parse(data, parse.WithFilename("service.cfk"), parse.MaxDepth(64))
//
// The grammar is parsed by recursive descent. Trivia is consumed greedily:
// each filler slot takes the longest run of spacing and comments available
// and a run is only divided where the grammar demands it, which makes the
// resulting tree, and so its restoration, unique.
//
// # Related Packages
//
//   - github.com/configurik/go-configurik/ir - tree representation
//   - github.com/configurik/go-configurik/encode - restore trees to text
//   - github.com/configurik/go-configurik/token - tokenization
package parse
