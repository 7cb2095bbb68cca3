package main

import (
	"encoding/json"
	"fmt"

	"github.com/configurik/go-configurik/format"
	"github.com/configurik/go-configurik/gomap"
	"github.com/configurik/go-configurik/libdiff"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a JSON patch argument", cli.ErrUsage)
	}
	ops, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	f := cfg.outFormat(format.JSONFormat)
	if !cfg.Diff {
		if err := cfg.checkOutput(cc.Out, f); err != nil {
			return err
		}
	}
	for _, file := range inputs(args[1:]) {
		v, err := loadValue(cc, file)
		if err != nil {
			return err
		}
		before, after, err := applyPatch(ops, v, f)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if cfg.Diff {
			m := libdiff.DiffString(string(before), string(after))
			if m == nil {
				continue
			}
			fmt.Fprint(cc.Out, m.Report(string(before), cfg.useColor(cc.Out)))
			continue
		}
		if _, err := cc.Out.Write(after); err != nil {
			return err
		}
	}
	return nil
}

// applyPatch returns v encoded in f before and after applying ops to its
// JSON form.
func applyPatch(ops jsonpatch.Patch, v any, f format.Format) ([]byte, []byte, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	jOut, err := ops.Apply(d)
	if err != nil {
		return nil, nil, err
	}
	res, err := gomap.DecodeJSON(jOut)
	if err != nil {
		return nil, nil, err
	}
	before, err := gomap.Marshal(v, f)
	if err != nil {
		return nil, nil, err
	}
	after, err := gomap.Marshal(res, f)
	if err != nil {
		return nil, nil, err
	}
	return before, after, nil
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (jsonpatch.Patch, error) {
	d := []byte(arg)
	if !cfg.String {
		var err error
		d, err = readInput(cc, arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: bad patch: %w", cli.ErrUsage, err)
	}
	return ops, nil
}
