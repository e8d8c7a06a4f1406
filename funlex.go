// SPDX-License-Identifier: MIT

// Package funlex lexes module sources of a statically typed functional language into span
// annotated token streams for the parser.
package funlex

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/funlex/lexer"
)

type (
	// Module is one module's complete source text.
	Module struct {
		Name   string
		Source string
	}

	// Result holds the outcome of lexing a Module.
	//
	// Lexemes holds everything lexed before a failure when Err is set.
	Result struct {
		Module    Module
		Lexemes   []lexer.Lexeme
		Recovered []lexer.Recovery
		Err       error
	}
)

// Module lexing errors.
var (
	ErrRoundTrip    = errors.New("rendering does not reproduce the source")
	ErrSpanGap      = errors.New("lexeme spans are not contiguous")
	ErrNoModules    = errors.New("no modules to lex")
	ErrDuplicateMod = errors.New("duplicate module name")
	ErrWorkerPool   = errors.New("worker pool failure")
	ErrPanicked     = errors.New("recovery from panic")
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// Lex lexes a single Module.
func Lex(ctx context.Context, m Module, opts ...lexer.Option) (r Result) {
	r.Module = m

	opts = append(opts, lexer.WithSource(strings.NewReader(m.Source)))
	l := lexer.New(opts...)

	r.Lexemes, r.Err = l.All(ctx)
	r.Recovered = l.Recovered()

	return
}

// Verify checks a successful Result against the Module's source: rendering must reproduce
// the source & the spans must be contiguous.
func (r *Result) Verify() (err error) {
	if r.Err != nil {
		return r.Err
	}

	if err = VerifyRoundTrip(r.Module.Source, r.Lexemes); err != nil {
		return
	}

	return VerifySpans(r.Lexemes)
}

// VerifyRoundTrip checks that rendering lexemes reproduces src.
func VerifyRoundTrip(src string, lexemes []lexer.Lexeme) error {
	rendered := lexer.Render(lexemes)
	if rendered == src {
		return nil
	}

	offset := 0
	for offset < len(src) && offset < len(rendered) && src[offset] == rendered[offset] {
		offset++
	}

	return fmt.Errorf("%w: first difference at byte %d", ErrRoundTrip, offset)
}

// VerifySpans checks that the lexemes start at 1:1 & each ends where the next starts.
func VerifySpans(lexemes []lexer.Lexeme) error {
	want := lexer.Position{Line: 1, Col: 1}

	for index := range lexemes {
		s := lexemes[index].Span
		if s.Start != want {
			return fmt.Errorf("%w: lexeme %d starts at %s, want %s", ErrSpanGap, index, s.Start, want)
		}
		if !s.Start.Before(s.End) {
			return fmt.Errorf("%w: lexeme %d is empty at %s", ErrSpanGap, index, s.Start)
		}

		want = s.End
	}

	return nil
}

// Format lists the lexemes, one per line: span, kind & description.
func Format(lexemes []lexer.Lexeme) string {
	var buffer strings.Builder

	for index := range lexemes {
		fmt.Fprintf(&buffer, "%-12s %-14s %s\n",
			lexemes[index].Span, lexemes[index].Value.ID(), lexemes[index].Value)
	}

	return buffer.String()
}

// dump renders a Result for debug logs.
func dump(r *Result) string { return spew.Sprintf("%s: %d lexemes, err: %v", r.Module.Name, len(r.Lexemes), r.Err) }
