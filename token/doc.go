// Package token provides tokenization support for Configurik text.
//
// [Tokenize] splits a document into lexemes. Unlike most tokenizers it never
// drops anything: runs of spacing, line comments and block comments are
// returned as tokens of their own so that a parser can keep them in the tree
// and reproduce the input byte for byte.
//
// Every token carries a [Pos] which resolves to a line and column through the
// [PosDoc] shared by all tokens of a document.
package token
