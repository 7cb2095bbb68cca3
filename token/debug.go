package token

import (
	"fmt"
	"io"
)

func PrintTokens(w io.Writer, toks []Token, msg string) {
	fmt.Fprintf(w, "%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		line, col := t.Pos.LineCol()
		fmt.Fprintf(w, "\t%d:%d\t%s\t%q\n", line+1, col+1, t.Type, t.Bytes)
	}
}
