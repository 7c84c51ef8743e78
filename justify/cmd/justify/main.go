// Copyright 2026 Tamás Gulácsi. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Command justify re-flows text files into lines of exactly the same number of runes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"

	"github.com/tgulacsi/justify/audit"
	"github.com/tgulacsi/justify/justify"
	"github.com/tgulacsi/justify/term"
	"github.com/tgulacsi/justify/text"
	"github.com/tgulacsi/justify/version"
)

func main() {
	if err := Main(); err != nil {
		slog.Error("main", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	var verbose zlog.VerboseVar
	logger := zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()
	slog.SetDefault(logger)

	app := newCommand(&verbose, os.Stdin, os.Stdout)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return app.ParseAndRun(zlog.NewSContext(ctx, logger), os.Args[1:])
}

type config struct {
	Encoding    string
	Width       int
	Concurrency int
	Paragraphs  bool
	NFC         bool
	Audit       bool
}

func newCommand(verbose flag.Value, stdin io.Reader, stdout io.Writer) *ffcli.Command {
	var cfg config
	FS := flag.NewFlagSet("justify", flag.ContinueOnError)
	FS.IntVar(&cfg.Width, "width", 80, "line width, in runes")
	FS.BoolVar(&cfg.Paragraphs, "paragraphs", false, "justify blank line separated paragraphs separately")
	FS.StringVar(&cfg.Encoding, "encoding", "", "charset of the input and output (default is the locale's charset)")
	FS.BoolVar(&cfg.NFC, "nfc", false, "normalize input to NFC before justifying")
	FS.BoolVar(&cfg.Audit, "audit", false, "warn about lines which won't look aligned on a terminal")
	FS.IntVar(&cfg.Concurrency, "concurrency", 4, "number of files justified concurrently")
	FS.Var(verbose, "v", "verbose logging")
	flagVersion := FS.Bool("version", false, "print version and exit")
	_ = FS.String("config", "", "config file (key value lines)")

	return &ffcli.Command{Name: "justify", FlagSet: FS,
		ShortUsage: "justify [flags] [file ...]",
		ShortHelp:  "justify the files (or stdin) to the given width",
		Options: []ff.Option{
			ff.WithEnvVarPrefix("JUSTIFY"),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ff.PlainParser),
			ff.WithAllowMissingConfigFile(true),
		},
		Exec: func(ctx context.Context, args []string) error {
			if *flagVersion {
				_, err := fmt.Fprintln(stdout, version.Main())
				return err
			}
			if cfg.Encoding == "" {
				cfg.Encoding = localeEncodingName(ctx)
			}
			return run(ctx, stdout, stdin, cfg, args)
		},
	}
}

// localeEncodingName returns the name of the locale's charset,
// or the empty string (UTF-8) if it is unknown.
func localeEncodingName(ctx context.Context) string {
	name := term.GetLangEncodingName(term.Locale(os.Getenv))
	if _, err := text.Lookup(name); err != nil {
		zlog.SFromContext(ctx).Warn("unknown locale charset, using UTF-8", "charset", name, "error", err)
		return ""
	}
	return name
}

// run justifies the named files ("-" is stdin) concurrently,
// and writes them in order to w, separated by an empty line.
func run(ctx context.Context, w io.Writer, stdin io.Reader, cfg config, args []string) error {
	logger := zlog.SFromContext(ctx)
	if cfg.Width < 1 {
		return errors.Wrapf(justify.ErrInvalidWidth, "-width=%d", cfg.Width)
	}
	enc, err := text.Lookup(cfg.Encoding)
	if err != nil {
		return errors.Wrap(err, "-encoding")
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var stdinCount int
	for _, fn := range args {
		if fn == "-" {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return errors.New("stdin (-) can be read only once")
	}
	logger.Debug("run", "files", args, "width", cfg.Width, "encoding", cfg.Encoding, "paragraphs", cfg.Paragraphs)

	results := make([]string, len(args))
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(max(1, cfg.Concurrency))
	for i, fn := range args {
		i, fn := i, fn
		grp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			s, err := justifyFile(grpCtx, stdin, fn, enc, cfg)
			if err != nil {
				return errors.Wrap(err, fn)
			}
			results[i] = s
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	ew := text.NewWriter(w, enc)
	var written bool
	for _, s := range results {
		if s == "" {
			continue
		}
		if written {
			if _, err := io.WriteString(ew, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(ew, s+"\n"); err != nil {
			return err
		}
		written = true
	}
	return ew.Close()
}

func justifyFile(ctx context.Context, stdin io.Reader, fn string, enc encoding.Encoding, cfg config) (string, error) {
	logger := zlog.SFromContext(ctx)
	r := stdin
	if fn != "-" {
		fh, err := os.Open(fn)
		if err != nil {
			return "", err
		}
		defer fh.Close()
		r = fh
	}
	r = text.NewReader(r, enc)
	if cfg.NFC {
		r = text.NewNFCReader(r)
	}
	if cfg.Paragraphs {
		r = justify.NewParagraphReader(r, cfg.Width)
	} else {
		r = justify.NewReader(r, cfg.Width)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	out := string(b)
	logger.Debug("justified", "file", fn, "bytes", len(out))

	if cfg.Audit {
		for _, f := range audit.Check(out, cfg.Width) {
			logger.Warn("audit", "file", fn, "line", f.Line+1, "kind", f.Kind.String(),
				"runes", f.Runes, "cells", f.Cells, "graphemes", f.Graphemes, "text", f.Text)
		}
	}
	return out, nil
}
