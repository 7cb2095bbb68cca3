package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Mismatch is the difference between two texts.
type Mismatch struct {
	// Offset is the byte offset in the first text of the first change.
	Offset int
	Diffs  []diffpatch.Diff
}

// DiffString returns nil when from and to are identical.
func DiffString(from, to string) *Mismatch {
	if from == to {
		return nil
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	off := 0
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			break
		}
		off += len(d.Text)
	}
	return &Mismatch{Offset: off, Diffs: diffs}
}

// Size counts the bytes inserted and deleted.
func (m *Mismatch) Size() int {
	n := 0
	for _, d := range m.Diffs {
		if d.Type != diffpatch.DiffEqual {
			n += len(d.Text)
		}
	}
	return n
}
