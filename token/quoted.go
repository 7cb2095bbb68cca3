package token

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// quoted returns the length of the string lexeme at the start of d, which
// must begin with '"'. A backslash escapes whatever byte follows it except a
// newline; the escapes themselves are not checked here.
func quoted(d []byte) (int, error) {
	esc := false
	for i := 1; i < len(d); i++ {
		c := d[i]
		switch {
		case c == '\n':
			return 0, ErrUnterminatedString
		case esc:
			esc = false
		case c == '\\':
			esc = true
		case c == '"':
			return i + 1, nil
		}
	}
	return 0, ErrUnterminatedString
}

// Unquote decodes the escape sequences in raw, the content of a string
// lexeme without its quotes.
func Unquote(raw string) (string, error) {
	if strings.IndexByte(raw, '\\') < 0 {
		return raw, nil
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 == len(raw) {
			return "", fmt.Errorf("%w: trailing backslash at %d", ErrBadEscape, i)
		}
		switch e := raw[i+1]; e {
		case '"', '\\', '/':
			b.WriteByte(e)
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, n, err := unicodeEscape(raw[i:])
			if err != nil {
				return "", fmt.Errorf("%w at %d", err, i)
			}
			b.WriteRune(r)
			i += n
			continue
		default:
			return "", fmt.Errorf("%w %q at %d", ErrBadEscape, raw[i:i+2], i)
		}
		i += 2
	}
	return b.String(), nil
}

// unicodeEscape decodes a \uXXXX sequence at the start of s, combining it
// with a following low surrogate escape when s holds a pair.
func unicodeEscape(s string) (rune, int, error) {
	r, ok := hex4(s)
	if !ok {
		return 0, 0, ErrBadUnicode
	}
	if !utf16.IsSurrogate(r) {
		return r, 6, nil
	}
	if r2, ok := hex4(s[6:]); ok {
		if dr := utf16.DecodeRune(r, r2); dr != utf8.RuneError {
			return dr, 12, nil
		}
	}
	return utf8.RuneError, 6, nil
}

func hex4(s string) (rune, bool) {
	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		return 0, false
	}
	v, err := strconv.ParseUint(s[2:6], 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

// Quote returns v as a string lexeme, escaping quotes, backslashes and
// control characters.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return string(append(d, '"'))
}

// IsIdent reports whether v can be written as a bare identifier.
func IsIdent(v string) bool {
	if v == "" || !identStart(v[0]) {
		return false
	}
	for i := 1; i < len(v); i++ {
		if !identPart(v[i]) {
			return false
		}
	}
	return true
}

func identStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func identPart(c byte) bool {
	return identStart(c) || asciiDigit(c)
}
