package libdiff

import (
	"fmt"
	"strings"

	"github.com/configurik/go-configurik/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Pretty renders the texts merged, with deletions and insertions marked by
// color or, without color, by [-...-] and {+...+}.
func (m *Mismatch) Pretty(color bool) string {
	if color {
		return diffpatch.New().DiffPrettyText(m.Diffs)
	}
	b := &strings.Builder{}
	for _, d := range m.Diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Report locates the first change of m in from and renders the diff.
func (m *Mismatch) Report(from string, color bool) string {
	doc := token.IndexPosDoc("", []byte(from))
	line, col := doc.LineCol(m.Offset)
	b := &strings.Builder{}
	fmt.Fprintf(b, "First difference at line %d, column %d (%d bytes changed):\n", line+1, col+1, m.Size())
	b.WriteString(m.Pretty(color))
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}
