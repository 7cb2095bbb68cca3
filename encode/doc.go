// Package encode restores ir trees to text.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	text := encode.Restore(doc) // == string(data)
//
//	// Stream with terminal colors
//	err = encode.Encode(doc, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Restoration emits the punctuation owned by each node and the restoration
// of its children in source order. Nothing is normalized, re-indented or
// moved, so any tree produced by the parse package restores to exactly the
// text it was parsed from. Colors only wrap fragments in terminal escapes.
//
// # Related Packages
//
//   - github.com/configurik/go-configurik/ir - tree representation
//   - github.com/configurik/go-configurik/parse - parse text to trees
package encode
