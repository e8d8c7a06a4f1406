// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/funlex"
	"gitlab.com/fisherprime/funlex/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("funlex", flag.ContinueOnError)
	fs.SetOutput(stderr)

	debug := fs.Bool("debug", false, "log every lexeme")
	dump := fs.Bool("dump", false, "print the token listing of every module")
	verify := fs.Bool("verify", false, "check round-trip rendering & span continuity")
	color := fs.Bool("color", false, "style diagnostics for a terminal")
	summary := fs.Bool("summary", false, "print per module statistics")
	workers := fs.Int("workers", runtime.GOMAXPROCS(0), "concurrent lexing workers")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: funlex [flags] <module>...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	funlex.SetLogger(logger)

	modules := make([]funlex.Module, 0, fs.NArg())
	for _, path := range fs.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			logger.WithError(err).Error("funlex: read module")
			return 1
		}
		modules = append(modules, funlex.Module{Name: path, Source: string(src)})
	}

	results, err := funlex.LexModules(context.Background(), modules,
		funlex.WithWorkers(*workers),
		funlex.WithVerify(*verify),
		funlex.WithBatchDebug(*debug),
		funlex.WithBatchLogger(logger),
	)

	r := report.New(report.WithColor(*color))
	covered := false
	for index := range results {
		res := &results[index]
		covered = covered || res.Err != nil

		for _, rec := range res.Recovered {
			fmt.Fprint(stderr, r.FormatRecovery(res.Module.Name, res.Module.Source, rec))
		}
		if res.Err != nil {
			fmt.Fprint(stderr, r.Format(res.Module.Name, res.Module.Source, res.Err))
			continue
		}

		if *dump {
			fmt.Fprintf(stdout, "== %s\n%s", res.Module.Name, funlex.Format(res.Lexemes))
		}
	}

	if *summary {
		for _, s := range funlex.Summarize(results) {
			fmt.Fprintln(stdout, s)
		}
	}

	if err != nil {
		// Batch level failures aren't attached to any module.
		if !covered {
			fmt.Fprint(stderr, r.Format("funlex", "", err))
		}
		logger.Debug("funlex: ", err)
		return 1
	}

	return 0
}
