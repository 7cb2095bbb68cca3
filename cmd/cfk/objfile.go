package main

import (
	"fmt"
	"io"
	"os"

	"github.com/configurik/go-configurik/ir"
	"github.com/configurik/go-configurik/parse"

	"github.com/scott-cotton/cli"
)

// inputs returns the files named by args, stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDoc(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Document, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	if path != "-" {
		opts = append(opts, parse.WithFilename(path))
	}
	return parse.Parse(d, opts...)
}
