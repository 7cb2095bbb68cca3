package main

import (
	"fmt"
	"io"
	"os"

	"github.com/configurik/go-configurik/encode"
	"github.com/configurik/go-configurik/format"
	"github.com/configurik/go-configurik/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// outFormat returns the -O format, else the format named by the suffix of
// the -o file, else def.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := format.FromSuffix(cfg.Out); ok {
		return f
	}
	return def
}

var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// checkOutput refuses to write a binary format to a terminal.
func (cfg *MainConfig) checkOutput(w io.Writer, f format.Format) error {
	if f.IsBinary() && isTerminal(w) {
		return fmt.Errorf("%w: not writing %s to a terminal, use -o", cli.ErrUsage, f)
	}
	return nil
}

// useColor reports whether output to w is colored: always with -color,
// never when -color was given as false, otherwise when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	return isTerminal(w)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.useColor(w) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type VerifyConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`
	Watch bool `cli:"name=watch desc='verify again whenever a file changes'"`

	Verify *cli.Command

	restore    func(ir.Node) string
	onVerified func(file string, status int)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type ExportConfig struct {
	*MainConfig

	Export *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Diff   bool `cli:"name=diff desc='show the changes the patch makes instead of the result'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}
