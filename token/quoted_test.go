package token

import (
	"errors"
	"testing"
)

type unquoteTest struct {
	in, out string
	err     error
}

func TestUnquote(t *testing.T) {
	uts := []unquoteTest{
		{in: `abc`, out: `abc`},
		{in: `\"'`, out: `"'`},
		{in: `\t\n\r\b\f\/\\`, out: "\t\n\r\b\f/\\"},
		{in: `∞`, out: "∞"},
		{in: `😀`, out: "😀"},
		{in: `\ud83d`, out: "�"},
		{in: `\x`, err: ErrBadEscape},
		{in: `\u12`, err: ErrBadUnicode},
		{in: `\uzzzz`, err: ErrBadUnicode},
	}
	for _, ut := range uts {
		got, err := Unquote(ut.in)
		if ut.err != nil {
			if !errors.Is(err, ut.err) {
				t.Errorf("%q: got error %v, want %v", ut.in, err, ut.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", ut.in, err)
			continue
		}
		if got != ut.out {
			t.Errorf("%q: got %q, want %q", ut.in, got, ut.out)
		}
	}
}

func TestQuote(t *testing.T) {
	for _, s := range []string{
		`"`,
		`\`,
		"\t\n\v\r\b",
		"∞∞",
		`"""''`,
		"plain",
	} {
		q := Quote(s)
		n, err := quoted([]byte(q))
		if err != nil || n != len(q) {
			t.Errorf("Quote(%q) = %q does not lex as one string", s, q)
			continue
		}
		uq, err := Unquote(q[1 : len(q)-1])
		if err != nil {
			t.Errorf("error unquoting %q (from %q): %v", q, s, err)
			continue
		}
		if uq != s {
			t.Errorf("unquote(quote(%q)) = %q", s, uq)
		}
	}
}

func TestIsIdent(t *testing.T) {
	for s, want := range map[string]bool{
		"a":      true,
		"_a1":    true,
		"A_b_C":  true,
		"":       false,
		"1a":     false,
		"a-b":    false,
		"a b":    false,
		"manual": true,
	} {
		if got := IsIdent(s); got != want {
			t.Errorf("IsIdent(%q) = %v", s, got)
		}
	}
}
