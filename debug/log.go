package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/configurik/go-configurik/encode"
	"github.com/configurik/go-configurik/ir"
)

// Logf writes a formatted trace line to stderr. Tree nodes among args are
// rendered as their source text.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ir.Node:
			args[i] = encode.Restore(x)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
