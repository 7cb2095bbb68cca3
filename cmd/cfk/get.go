package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/configurik/go-configurik/format"
	"github.com/configurik/go-configurik/gomap"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/file"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an expression", cli.ErrUsage)
	}
	query := args[0]
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: invalid query %q", cli.ErrUsage, query)
	}
	f := cfg.outFormat(format.JSONFormat)
	if err := cfg.checkOutput(cc.Out, f); err != nil {
		return err
	}
	for _, file := range inputs(args[1:]) {
		v, err := loadValue(cc, file)
		if err != nil {
			return err
		}
		res, err := evalQuery(query, v)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, query, err)
		}
		d, err := gomap.Marshal(res, f)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}

// evalQuery evaluates query with the top level keys of v as variables.
func evalQuery(query string, v any) (any, error) {
	pv, err := gomap.Plain(v)
	if err != nil {
		return nil, err
	}
	env, ok := pv.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: query input is not a record", gomap.ErrUnsupported)
	}
	program, err := expr.Compile(query, expr.Env(env))
	if err != nil {
		return nil, withSuggestion(err, env)
	}
	return expr.Run(program, env)
}

const unknownName = "unknown name "

func withSuggestion(err error, env map[string]any) error {
	var fe *file.Error
	if !errors.As(err, &fe) {
		return err
	}
	name, ok := strings.CutPrefix(fe.Message, unknownName)
	if !ok {
		return err
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	if s := closestKey(name, keys); s != "" {
		return fmt.Errorf("%w (did you mean %q?)", err, s)
	}
	return err
}

// closestKey returns the key that fuzzily contains name, or failing that
// the key within edit distance 2 of it.
func closestKey(name string, keys []string) string {
	sort.Strings(keys)
	ranks := fuzzy.RankFindFold(name, keys)
	if len(ranks) > 0 {
		sort.Stable(ranks)
		return ranks[0].Target
	}
	best, bestDist := "", 3
	for _, k := range keys {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(k)); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
