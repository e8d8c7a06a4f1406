// SPDX-License-Identifier: MIT
package funlex

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/funlex/lexer"
	"gitlab.com/fisherprime/funlex/types"
)

type (
	// BatchOption defines the LexModules functional option type.
	BatchOption func(*batch)

	batch struct {
		workers int
		verify  bool
		debug   bool
		logger  logrus.FieldLogger

		lexerOpts []lexer.Option
	}

	// Summary condenses a Result for reporting.
	Summary struct {
		Counts    map[lexer.ItemID]int
		Err       error
		Name      string
		Lexemes   int
		Lines     int
		Recovered int

		// BlankSpaces counts the spaces left on blank lines.
		BlankSpaces int
	}
)

// WithWorkers configures the worker pool size; defaults to GOMAXPROCS.
func WithWorkers(n int) BatchOption { return func(b *batch) { b.workers = n } }

// WithVerify enables round-trip & span verification of every successful Result.
func WithVerify(verify bool) BatchOption { return func(b *batch) { b.verify = verify } }

// WithBatchDebug configures the debug option.
func WithBatchDebug(debug bool) BatchOption { return func(b *batch) { b.debug = debug } }

// WithBatchLogger configures the logger option.
func WithBatchLogger(logger logrus.FieldLogger) BatchOption {
	return func(b *batch) { b.logger = logger }
}

// WithLexerOptions configures the options every Lexer is created with.
func WithLexerOptions(opts ...lexer.Option) BatchOption {
	return func(b *batch) { b.lexerOpts = append(b.lexerOpts, opts...) }
}

// LexModules lexes independent Modules concurrently on a worker pool.
//
// Results follow the order of modules; the failures of all modules are joined into err.
func LexModules(ctx context.Context, modules []Module, opts ...BatchOption) (results []Result, err error) {
	if len(modules) < 1 {
		err = ErrNoModules
		return
	}

	b := &batch{workers: runtime.GOMAXPROCS(0), logger: fLogger}
	for _, opt := range opts {
		opt(b)
	}
	if b.workers < 1 {
		b.workers = 1
	}

	names := make(map[string]int, len(modules))
	for index := range modules {
		if prev, ok := names[modules[index].Name]; ok {
			err = fmt.Errorf("%w: %q (modules %d & %d)", ErrDuplicateMod, modules[index].Name, prev, index)
			return
		}
		names[modules[index].Name] = index
	}

	results = make([]Result, len(modules))
	done := make(chan bool, len(modules))
	errChan := make(chan error, len(modules))

	var lexed types.SafeCounter

	pool, err := ants.NewPoolWithFunc(b.workers, func(arg interface{}) {
		index := arg.(int)

		results[index] = b.lex(ctx, modules[index])
		if e := results[index].Err; e != nil {
			errChan <- fmt.Errorf("%s: %w", modules[index].Name, e)
			return
		}

		lexed.Inc()
		done <- true
	},
		ants.WithLogger(b.logger),
		ants.WithPanicHandler(func(p interface{}) { errChan <- fmt.Errorf("%w: %v", ErrPanicked, p) }),
	)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrWorkerPool, err)
		return
	}
	defer pool.Release()

	for index := range modules {
		if e := pool.Invoke(index); e != nil {
			results[index] = Result{Module: modules[index], Err: e}
			errChan <- fmt.Errorf("%s: %w: %v", modules[index].Name, ErrWorkerPool, e)
		}
	}

	err = types.MonitorChannels(ctx, len(modules), done, errChan, "module")

	sorted := maps.Keys(names)
	slices.Sort(sorted)
	b.logger.WithField("modules", strings.Join(sorted, ",")).
		Debugf("lexed %d/%d modules", lexed.Value(), len(modules))

	return
}

// lex lexes & optionally verifies a Module.
func (b *batch) lex(ctx context.Context, m Module) (r Result) {
	opts := append([]lexer.Option{lexer.WithLogger(b.logger), lexer.WithDebug(b.debug)}, b.lexerOpts...)

	r = Lex(ctx, m, opts...)
	if b.verify && r.Err == nil {
		r.Err = r.Verify()
	}

	if b.debug {
		// Skip expensive operation if not debug.
		b.logger.Debug("batch: ", dump(&r))
	}

	return
}

// Summarize condenses Results, sorted by module name.
func Summarize(results []Result) (list []Summary) {
	list = make([]Summary, len(results))

	for index := range results {
		r := &results[index]
		s := Summary{
			Name:      r.Module.Name,
			Err:       r.Err,
			Lexemes:   len(r.Lexemes),
			Lines:     1 + strings.Count(r.Module.Source, "\n"),
			Recovered: len(r.Recovered),
			Counts:    make(map[lexer.ItemID]int),
		}
		for i := range r.Lexemes {
			s.Counts[r.Lexemes[i].Value.ID()]++

			if n, ok := r.Lexemes[i].Value.(lexer.Newlines); ok {
				s.BlankSpaces += types.Slice[int](n.Blank).Sum()
			}
		}

		list[index] = s
	}

	slices.SortFunc(list, func(a, b Summary) int { return strings.Compare(a.Name, b.Name) })

	return
}

// String is the `fmt.Stringer` implementation for Summary.
func (s Summary) String() string {
	var buffer strings.Builder
	fmt.Fprintf(&buffer, "%s: %d lines, %d lexemes", s.Name, s.Lines, s.Lexemes)

	ids := maps.Keys(s.Counts)
	slices.Sort(ids)
	for _, id := range ids {
		fmt.Fprintf(&buffer, ", %s=%d", id, s.Counts[id])
	}

	if s.BlankSpaces > 0 {
		fmt.Fprintf(&buffer, ", %d spaces on blank lines", s.BlankSpaces)
	}
	if s.Recovered > 0 {
		fmt.Fprintf(&buffer, ", %d recovered", s.Recovered)
	}
	if s.Err != nil {
		fmt.Fprintf(&buffer, ", error: %v", s.Err)
	}

	return buffer.String()
}
