// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// Position is a 1-based line & column pair.
	//
	// Columns count runes (Unicode scalar values), not bytes.
	Position struct {
		Line int
		Col  int
	}

	// Span covers the runes consumed while producing a value.
	//
	// End is exclusive: it is the position of the first rune after the value.
	Span struct {
		Start Position
		End   Position
	}

	// Located pairs a value with the Span it was scanned from.
	Located[T any] struct {
		Span  Span
		Value T
	}

	// Lexeme is a lexed Item & its Span.
	Lexeme = Located[Item]
)

// startPosition is where every scan begins.
var startPosition = Position{Line: 1, Col: 1}

// Before reports whether p precedes o.
func (p Position) Before(o Position) bool {
	return p.Line < o.Line || (p.Line == o.Line && p.Col < o.Col)
}

// String is the `fmt.Stringer` implementation for Position.
func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// String is the `fmt.Stringer` implementation for Span.
func (s Span) String() string { return s.Start.String() + "-" + s.End.String() }

// Locate wraps a value with a Span.
func Locate[T any](span Span, value T) Located[T] { return Located[T]{Span: span, Value: value} }
