package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex   bool
	Parse bool
	LSP   bool
	Gops  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("CFK_DEBUG_LEX")
	d.Parse = boolEnv("CFK_DEBUG_PARSE")
	d.LSP = boolEnv("CFK_DEBUG_LSP")
	d.Gops = boolEnv("CFK_DEBUG_GOPS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func LSP() bool {
	return d.LSP
}
func Gops() bool {
	return d.Gops
}
