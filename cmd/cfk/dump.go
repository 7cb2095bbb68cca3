package main

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	p := repr.New(cc.Out, repr.Indent("  "), repr.OmitEmpty(true))
	for _, file := range inputs(args) {
		doc, err := getDoc(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		p.Println(doc)
	}
	return nil
}
