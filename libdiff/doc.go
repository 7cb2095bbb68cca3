// Package libdiff compares texts, as when checking a restoration against
// the source it came from.
//
// # Usage
//
//	m := libdiff.DiffString(original, restored)
//	if m != nil {
//	    fmt.Print(m.Report(original, false))
//	}
package libdiff
