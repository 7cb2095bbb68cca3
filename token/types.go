package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TSpace TokenType = iota
	TLineComment
	TBlockComment
	TIdent
	TString
	TNumber
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
	TEOF
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TSpace:        "TSpace",
		TLineComment:  "TLineComment",
		TBlockComment: "TBlockComment",
		TIdent:        "TIdent",
		TString:       "TString",
		TNumber:       "TNumber",
		TLCurl:        "TLCurl",
		TRCurl:        "TRCurl",
		TLSquare:      "TLSquare",
		TRSquare:      "TRSquare",
		TComma:        "TComma",
		TColon:        "TColon",
		TEOF:          "TEOF",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// IsTrivia reports whether tokens of type t carry no meaning for the grammar
// beyond separating other tokens.
func (t TokenType) IsTrivia() bool {
	switch t {
	case TSpace, TLineComment, TBlockComment:
		return true
	default:
		return false
	}
}

// StartsEntity reports whether a token of type t can begin a value.
func (t TokenType) StartsEntity() bool {
	switch t {
	case TString, TNumber, TIdent, TLCurl, TLSquare:
		return true
	default:
		return false
	}
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// Describe returns a short human readable form of the token for use in
// error messages.
func (t *Token) Describe() string {
	switch t.Type {
	case TEOF:
		return "end of input"
	case TIdent:
		return "identifier " + strconv.Quote(string(t.Bytes))
	case TString:
		return "string " + string(t.Bytes)
	case TNumber:
		return "number " + string(t.Bytes)
	case TSpace:
		return "spacing"
	case TLineComment, TBlockComment:
		return "comment"
	default:
		return strconv.Quote(string(t.Bytes))
	}
}

// Inner returns the token text without its delimiters: the body of a comment
// or the raw, undecoded content of a string.
func (t *Token) Inner() string {
	switch t.Type {
	case TLineComment:
		return string(t.Bytes[2:])
	case TBlockComment:
		return string(t.Bytes[2 : len(t.Bytes)-2])
	case TString:
		return string(t.Bytes[1 : len(t.Bytes)-1])
	default:
		return string(t.Bytes)
	}
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpectedChar, what), p)
}
