package token

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

type tokenOpts struct {
	name string
}

type TokenOpt func(*tokenOpts)

// TokenFilename names the document in positions and error messages.
func TokenFilename(name string) TokenOpt {
	return func(o *tokenOpts) { o.name = name }
}

// Tokenize appends the tokens of src to dst. Every byte of src belongs to
// exactly one token, and the last token appended is always a TEOF token
// positioned at len(src). On error the tokens preceding the failure are
// returned with it.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	o := &tokenOpts{}
	for _, f := range opts {
		f(o)
	}
	posDoc := NewPosDoc(o.name, src)
	i, n := 0, len(src)
	for i < n {
		tok, err := tokenizeOne(src, i, posDoc)
		if err != nil {
			return dst, err
		}
		dst = append(dst, tok)
		i += len(tok.Bytes)
	}
	return append(dst, Token{Type: TEOF, Pos: posDoc.end()}), nil
}

func tokenizeOne(d []byte, i int, posDoc *PosDoc) (Token, error) {
	mk := func(tt TokenType, n int) Token {
		return Token{Type: tt, Pos: posDoc.Pos(i), Bytes: d[i : i+n]}
	}
	c := d[i]
	switch c {
	case ' ', '\t', '\r', '\n':
		j := i
		for j < len(d) && isSpace(d[j]) {
			if d[j] == '\n' {
				posDoc.nl(j)
			}
			j++
		}
		return mk(TSpace, j-i), nil

	case '/':
		if i+1 < len(d) {
			switch d[i+1] {
			case '/':
				j := bytes.IndexByte(d[i:], '\n')
				if j < 0 {
					j = len(d) - i
				}
				return mk(TLineComment, j), nil
			case '*':
				j := bytes.Index(d[i+2:], []byte("*/"))
				if j < 0 {
					return Token{}, NewTokenizeErr(ErrUnterminatedComment, posDoc.Pos(i))
				}
				n := j + 4
				for k := i; k < i+n; k++ {
					if d[k] == '\n' {
						posDoc.nl(k)
					}
				}
				return mk(TBlockComment, n), nil
			}
		}
		return Token{}, UnexpectedErr(`"/"`, posDoc.Pos(i))

	case '"':
		n, err := quoted(d[i:])
		if err != nil {
			return Token{}, NewTokenizeErr(err, posDoc.Pos(i))
		}
		return mk(TString, n), nil

	case '{':
		return mk(TLCurl, 1), nil
	case '}':
		return mk(TRCurl, 1), nil
	case '[':
		return mk(TLSquare, 1), nil
	case ']':
		return mk(TRSquare, 1), nil
	case ',':
		return mk(TComma, 1), nil
	case ':':
		return mk(TColon, 1), nil

	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := number(d[i:])
		if err != nil {
			return Token{}, NewTokenizeErr(err, posDoc.Pos(i))
		}
		return mk(TNumber, n), nil
	}

	if identStart(c) {
		j := i + 1
		for j < len(d) && identPart(d[j]) {
			j++
		}
		return mk(TIdent, j-i), nil
	}
	r, _ := utf8.DecodeRune(d[i:])
	return Token{}, UnexpectedErr(fmt.Sprintf("%q (u+%x)", r, r), posDoc.Pos(i))
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}
