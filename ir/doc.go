// Package ir defines the tree produced by parsing Configurik text.
//
// # Overview
//
// The tree is concrete rather than abstract: besides values it holds every
// piece of insignificant text of the source (spacing, comments, trailing
// commas) in explicit slots, so that restoring a tree with the encode package
// reproduces its source byte for byte.
//
// # Entities
//
// Values are Entities. The set of entity kinds is closed:
//
//   - *String: raw, undecoded content between the quotes
//   - *Number: raw numeric text
//   - *Discriminator: a name with an optional payload entity
//   - *List: bracketed, comma separated entities
//   - *Record: braced, comma separated key/value pairs
//
// A document is an unbraced record body, represented by *Document.
//
// # Filler
//
// A Filler is the ordered Trivia occupying one structural slot of the
// grammar. Every comma and colon has a slot on each side. Slots which may be
// entirely absent from the source (a trailing comma, a discriminator payload,
// the content of a container) are pointers and are nil when absent; an empty
// Filler only ever means "present, with no trivia".
//
// Trees are immutable once built. There is no API for editing them.
package ir
