package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/configurik/go-configurik/encode"
	"github.com/configurik/go-configurik/ir"
	"github.com/configurik/go-configurik/libdiff"
	"github.com/configurik/go-configurik/parse"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"
)

const (
	verifyOK = iota
	verifyParseFailed
	verifyMismatch
)

const contextSpan = 40

func verify(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	if cfg.Watch {
		for _, f := range files {
			if f == "-" {
				return fmt.Errorf("%w: -watch needs file arguments", cli.ErrUsage)
			}
		}
	}
	status := verifyOK
	for _, file := range files {
		status = max(status, verifyFile(cfg, cc, file, len(files) > 1))
	}
	if cfg.Watch {
		ctx := cc.Go
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		return watchFiles(ctx, cfg, cc, files, nil)
	}
	if status != verifyOK {
		return cli.ExitCodeErr(status)
	}
	return nil
}

func verifyFile(cfg *VerifyConfig, cc *cli.Context, file string, header bool) int {
	d, err := readInput(cc, file)
	if err != nil {
		fmt.Fprintf(cc.Out, "Error reading file: %v\n", err)
		return verifyParseFailed
	}
	if header {
		fmt.Fprintf(cc.Out, "==> %s <==\n", file)
	}
	return verifyText(cc.Out, file, d, cfg.restorer(), cfg.Quiet, cfg.useColor(cc.Out))
}

func (cfg *VerifyConfig) restorer() func(ir.Node) string {
	if cfg.restore != nil {
		return cfg.restore
	}
	return encode.Restore
}

// verifyText parses in, restores it with restore and compares, reporting to
// w. It returns the exit status for in.
func verifyText(w io.Writer, name string, in []byte, restore func(ir.Node) string, quiet, color bool) int {
	var opts []parse.ParseOption
	if name != "-" {
		opts = append(opts, parse.WithFilename(name))
	}
	doc, err := parse.Parse(in, opts...)
	if err != nil {
		fmt.Fprintln(w, "Parsing failed!")
		if pos, ok := parse.Position(err); ok {
			line, col := pos.LineCol()
			fmt.Fprintf(w, "Line %d, Column %d:\n", line+1, col+1)
			fmt.Fprintln(w, pos.Window(contextSpan))
		} else {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintf(w, "Error type: %s\n", errorKind(err))
		theLog.Debug("parse failed", "file", name, "error", err)
		return verifyParseFailed
	}
	restored := restore(doc)
	if m := libdiff.DiffString(string(in), restored); m != nil {
		fmt.Fprintln(w, "----- ORIGINAL -----")
		fmt.Fprintln(w, string(in))
		fmt.Fprintln(w, "----- RESTORED -----")
		fmt.Fprintln(w, restored)
		fmt.Fprint(w, m.Report(string(in), color))
		return verifyMismatch
	}
	if !quiet {
		fmt.Fprintln(w, "Restore successful and identical to original.")
	}
	return verifyOK
}

func errorKind(err error) string {
	if kind := parse.ErrorKind(err); kind != "" {
		return kind
	}
	return "Error"
}

// watchFiles verifies files again as they are written, until ctx is done.
// Events come from the directories holding files, so a rename onto a
// watched name counts as a write. When ready is not nil it is closed once
// the watches are in place.
func watchFiles(ctx context.Context, cfg *VerifyConfig, cc *cli.Context, files []string, ready chan<- struct{}) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not watch: %w", err)
	}
	defer w.Close()
	watched := map[string]string{}
	dirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = f
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("could not watch %s: %w", dir, err)
		}
	}
	theLog.Info("watching", "files", len(files))
	if ready != nil {
		close(ready)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			file, ok := watched[abs]
			if !ok {
				continue
			}
			status := verifyFile(cfg, cc, file, true)
			theLog.Info("verified", "file", file, "status", status)
			if cfg.onVerified != nil {
				cfg.onVerified(file, status)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			theLog.Error("watch", "error", err)
		}
	}
}
