package gomap

import "errors"

var (
	ErrDecode      = errors.New("decode error")
	ErrKey         = errors.New("key is not an identifier")
	ErrUnsupported = errors.New("unsupported value")
)
