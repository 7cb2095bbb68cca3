package main

import (
	"fmt"

	"github.com/configurik/go-configurik/format"
	"github.com/configurik/go-configurik/gomap"

	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	f := cfg.outFormat(format.JSONFormat)
	if err := cfg.checkOutput(cc.Out, f); err != nil {
		return err
	}
	for _, file := range inputs(args) {
		v, err := loadValue(cc, file)
		if err != nil {
			return err
		}
		d, err := gomap.Marshal(v, f)
		if err != nil {
			return fmt.Errorf("error encoding %s as %s: %w", file, f, err)
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}

func loadValue(cc *cli.Context, file string) (any, error) {
	doc, err := getDoc(cc, file)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	v, err := gomap.FromIR(doc)
	if err != nil {
		return nil, fmt.Errorf("error converting %s: %w", file, err)
	}
	return v, nil
}
