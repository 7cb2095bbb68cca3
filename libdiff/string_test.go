package libdiff

import (
	"strings"
	"testing"
)

func TestDiffStringEqual(t *testing.T) {
	if m := DiffString("a: 1\n", "a: 1\n"); m != nil {
		t.Errorf("got %+v", m)
	}
}

func TestDiffString(t *testing.T) {
	from := "a: 1,\nb: [x, y],\n"
	to := "a: 1,\nb: [x,y],\n"
	m := DiffString(from, to)
	if m == nil {
		t.Fatal("no mismatch")
	}
	if m.Offset != 12 {
		t.Errorf("offset %d", m.Offset)
	}
	if m.Size() != 1 {
		t.Errorf("size %d", m.Size())
	}
	if got := m.Pretty(false); got != "a: 1,\nb: [x,[- -]y],\n" {
		t.Errorf("pretty %q", got)
	}
	r := m.Report(from, false)
	if !strings.HasPrefix(r, "First difference at line 2, column 7 (1 bytes changed):\n") {
		t.Errorf("report %q", r)
	}
}
