package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/configurik/go-configurik/token"
)

var (
	ErrSyntax = errors.New("syntax error")
	ErrDepth  = errors.New("maximum nesting depth exceeded")
)

// SyntaxErr reports the first token at which the grammar could not continue.
type SyntaxErr struct {
	Err      error
	Pos      token.Pos
	Found    string
	Expected []string
}

func (e *SyntaxErr) Unwrap() error {
	return e.Err
}

func (e *SyntaxErr) Error() string {
	switch len(e.Expected) {
	case 0:
		return fmt.Sprintf("%s: unexpected %s at %s", e.Err, e.Found, e.Pos)
	case 1:
		return fmt.Sprintf("%s: unexpected %s, expected %s at %s", e.Err, e.Found, e.Expected[0], e.Pos)
	default:
		return fmt.Sprintf("%s: unexpected %s, expected one of %s at %s",
			e.Err, e.Found, strings.Join(e.Expected, ", "), e.Pos)
	}
}

func unexpected(t *token.Token, expected ...string) error {
	return &SyntaxErr{
		Err:      ErrSyntax,
		Pos:      *t.Pos,
		Found:    t.Describe(),
		Expected: expected,
	}
}

// Position returns the location of a lexical or syntax error returned by
// Parse.
func Position(err error) (token.Pos, bool) {
	var se *SyntaxErr
	if errors.As(err, &se) {
		return se.Pos, true
	}
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return te.Pos, true
	}
	return token.Pos{}, false
}

// ErrorKind names the class of a Parse error: "LexicalError",
// "SyntaxError" or "" for errors of other origin.
func ErrorKind(err error) string {
	var se *SyntaxErr
	if errors.As(err, &se) {
		return "SyntaxError"
	}
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return "LexicalError"
	}
	return ""
}
