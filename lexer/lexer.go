// SPDX-License-Identifier: MIT
package lexer

// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// ValidationFunction type for functions that validate rune identities
	ValidationFunction func(rune) bool

	// Lexer converts module source into span annotated Lexemes.
	//
	// A Lexer is single use; lex a new source with a new Lexer.
	Lexer struct {
		debug  bool
		logger logrus.FieldLogger

		bufferSize int

		// c is a channel for communicating lexed Lexemes.
		c chan Lexeme
		// err holds the terminal error; read it after c is closed.
		err error

		// source is the input source.
		source io.RuneReader
		// exhausted is set once the source stops yielding runes.
		exhausted bool
		readErr   error

		// buffer holds the runes of the Lexeme being scanned & any read ahead.
		buffer []rune
		// bufferIndex is the current buffer position.
		//
		// When this value reaches the length of buffer, the buffer is populated from the source.
		bufferIndex int

		// pos is the position of buffer[bufferIndex].
		pos Position

		counts    [ItemInvalid + 1]int
		recovered []Recovery
	}

	// Option defines the Lexer functional option type
	Option func(*Lexer)

	// mark is a cursor snapshot a failed attempt is rewound to.
	mark struct {
		index int
		pos   Position
	}
)

// New creates a new Lexer; the source defaults to empty input.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		logger:     logrus.New(),
		bufferSize: DefaultBufferSize,

		source: strings.NewReader(""),
		pos:    startPosition,
	}

	for _, opt := range opts {
		opt(l)
	}

	l.buffer = make([]rune, 0, l.bufferSize)
	l.c = make(chan Lexeme, l.bufferSize)

	return l
}

// WithConfig applies a Config's entries; a nil Config applies DefaultConfig.
func WithConfig(cfg *Config) Option {
	return func(l *Lexer) {
		if cfg == nil {
			cfg = DefaultConfig()
		}
		cfg.Validate()

		l.debug = cfg.Debug
		l.logger = cfg.Logger
		l.bufferSize = cfg.BufferSize
	}
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithSource configures the source option.
func WithSource(source io.RuneReader) Option { return func(l *Lexer) { l.source = source } }

// WithBufferSize configures the Lexeme channel capacity.
func WithBufferSize(size int) Option {
	return func(l *Lexer) {
		if size > 0 {
			l.bufferSize = size
		}
	}
}

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Count obtains the number of Lexemes of the given kind lexed so far.
func (l *Lexer) Count(id ItemID) int {
	if id <= 0 || int(id) >= len(l.counts) {
		return 0
	}
	return l.counts[id]
}

// Recovered lists the unterminated text literals lexed as Invalid.
func (l *Lexer) Recovered() []Recovery { return l.recovered }

// Scan lexes src into its complete Lexeme sequence.
func Scan(src string, opts ...Option) ([]Lexeme, error) {
	opts = append(opts, WithSource(strings.NewReader(src)))
	return New(opts...).All(context.Background())
}

// All lexes the whole source synchronously.
//
// The Lexemes lexed before a failure are returned alongside the error.
func (l *Lexer) All(ctx context.Context) (lexemes []Lexeme, err error) {
	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
	}

	err = l.run(func(lexeme Lexeme) error {
		lexemes = append(lexemes, lexeme)
		return nil
	})

	return
}

// Lex lexes the source, delivering Lexemes over the Lexer's channel.
//
// The channel is closed at the end of input or on the first error; consult Err afterwards.
func (l *Lexer) Lex(ctx context.Context) {
	defer close(l.c)

	select {
	case <-ctx.Done():
		l.err = ctx.Err()
	default:
		l.err = l.run(func(lexeme Lexeme) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case l.c <- lexeme:
				return nil
			}
		})
	}
}

// Item return a lexed Lexeme from the input.
func (l *Lexer) Item() (lexeme Lexeme, ok bool) {
	lexeme, ok = <-l.c
	return
}

// Err obtains the error that terminated Lex; nil on a complete scan.
func (l *Lexer) Err() error { return l.err }

// run is the driving loop.
func (l *Lexer) run(emit func(Lexeme) error) error {
	for {
		lexeme, end, err := l.step()
		if err != nil {
			return err
		}
		if end {
			return nil
		}

		if err = emit(lexeme); err != nil {
			return err
		}
	}
}

// step tries every rule in priority order at the cursor & commits to the first match.
func (l *Lexer) step() (lexeme Lexeme, end bool, err error) {
	start := l.mark()

	for index := range rules {
		r := &rules[index]

		item, ok := r.scan(l)
		if !ok {
			l.reset(start)
			continue
		}

		if l.bufferIndex == start.index {
			err = fmt.Errorf("%w: %s at %s", ErrNoProgress, r.name, start.pos)
			return
		}

		lexeme = Locate(Span{Start: start.pos, End: l.pos}, item)
		l.emitted(lexeme)

		return
	}

	if l.AtEnd() {
		end = true
		err = l.readErr

		return
	}

	err = l.unexpected(start.pos)

	return
}

// emitted accounts for a committed Lexeme & drops its runes from the buffer.
func (l *Lexer) emitted(lexeme Lexeme) {
	l.counts[lexeme.Value.ID()]++

	if l.debug {
		// Debug operation makes this operation un-inlinable.
		l.logger.Debugf("lexer emit: %s %s", lexeme.Span, spew.Sprint(lexeme.Value))

		if raw, rendered := l.text(), lexeme.Value.Render(); raw != rendered {
			l.logger.Warnf("lexer emit: %s renders %q from %q", lexeme.Span, rendered, raw)
		}
	}

	l.Discard()
}

// unexpected builds the fatal Error for the rune at pos.
func (l *Lexer) unexpected(pos Position) error {
	found, _ := l.Peek()

	e := &Error{
		Position: pos,
		Found:    found,
		Problem:  Problem{Tag: ExpectingEnd},
	}
	for index := range rules {
		e.Tried = append(e.Tried, rules[index].expecting...)
	}
	e.Tried = append(e.Tried, e.Problem)

	l.logger.WithField("position", pos.String()).Debug("lexer: ", e)

	return e
}

// recovery records an unterminated text literal.
func (l *Lexer) recovery(start Position, problems ...Problem) {
	r := Recovery{Span: Span{Start: start, End: l.pos}, Problems: problems}
	l.recovered = append(l.recovered, r)

	l.logger.WithField("span", r.Span.String()).Debugf("lexer: recovered unterminated literal: %v", problems)
}

// Next consumes & returns the next rune; ok is false at the end of input.
func (l *Lexer) Next() (r rune, ok bool) {
	if r, ok = l.Peek(); !ok {
		return
	}
	l.bufferIndex++

	if r == '\n' {
		l.pos.Line++
		l.pos.Col = 1
	} else {
		l.pos.Col++
	}

	return
}

// Peek return the next rune, without updating the index.
func (l *Lexer) Peek() (r rune, ok bool) {
	if l.bufferIndex >= len(l.buffer) && l.fill(l.bufferSize) < 1 {
		return
	}

	return l.buffer[l.bufferIndex], true
}

// AtEnd reports whether the input is exhausted.
func (l *Lexer) AtEnd() bool {
	_, ok := l.Peek()
	return !ok
}

// Accept consumes s if the input continues with it; nothing is consumed otherwise.
func (l *Lexer) Accept(s string) bool {
	m := l.mark()
	for _, want := range s {
		if r, ok := l.Next(); !ok || r != want {
			l.reset(m)
			return false
		}
	}

	return true
}

// AcceptWhile consumes runes while condition is true, returning the amount consumed.
func (l *Lexer) AcceptWhile(fn ValidationFunction) (n int) {
	for {
		r, ok := l.Peek()
		if !ok || !fn(r) {
			return
		}

		l.Next()
		n++
	}
}

// Discard the buffer content before the current buffer index.
func (l *Lexer) Discard() {
	l.buffer = l.buffer[l.bufferIndex:]
	l.bufferIndex = 0
}

// fill reads up to amount runes from the source into the buffer.
func (l *Lexer) fill(amount int) (sourced int) {
	if l.exhausted {
		return
	}

	for ; sourced < amount; sourced++ {
		r, _, err := l.source.ReadRune()
		if err != nil {
			if err != io.EOF {
				l.readErr = err
			}
			l.exhausted = true

			break
		}

		l.buffer = append(l.buffer, r)
	}

	return
}

// text obtains the runes consumed since the last emission.
func (l *Lexer) text() string { return string(l.buffer[:l.bufferIndex]) }

func (l *Lexer) mark() mark { return mark{index: l.bufferIndex, pos: l.pos} }

func (l *Lexer) reset(m mark) {
	l.bufferIndex = m.index
	l.pos = m.pos
}
