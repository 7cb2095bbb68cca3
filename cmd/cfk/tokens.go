package main

import (
	"fmt"

	"github.com/configurik/go-configurik/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		toks, err := token.Tokenize(nil, d, token.TokenFilename(file))
		if err != nil {
			return fmt.Errorf("error tokenizing %s: %w", file, err)
		}
		token.PrintTokens(cc.Out, toks, file)
	}
	return nil
}
