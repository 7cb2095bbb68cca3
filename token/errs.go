package token

import "errors"

var (
	ErrUnexpectedChar      = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrNumber              = errors.New("malformed number")
	ErrBadEscape           = errors.New("bad escape")
	ErrBadUnicode          = errors.New("bad unicode")
)
