// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ProblemTag names the construct a scan step expected.
	ProblemTag int

	// Problem is what a scan step expected but did not find.
	//
	// Literal is only set for the literal start & end tags.
	Problem struct {
		Tag     ProblemTag
		Literal LiteralType
	}

	// Error is the fatal, located scan failure.
	//
	// Problem is the final expectation of the driving loop; Tried lists what every rule
	// expected at Position, in priority order.
	Error struct {
		Position Position
		Found    rune
		Problem  Problem
		Tried    []Problem
	}

	// Recovery records an unterminated text literal that was lexed as Invalid.
	Recovery struct {
		Span     Span
		Problems []Problem
	}
)

const (
	_ ProblemTag = iota
	ExpectingToken
	ExpectingSigil
	ExpectingLiteralStart
	ExpectingLiteralEnd
	ExpectingBackslash
	ExpectingAnything
	ExpectingWhitespace
	ExpectingNewline
	ExpectingLineComment
	ExpectingNumericLiteral
	ExpectingEscape
	ExpectingEnd
)

// Lexing errors.
var (
	ErrUnexpectedInput = errors.New("unexpected input")
	ErrNoProgress      = errors.New("rule matched without consuming input")
)

// Expected describes the construct the Problem expected.
func (p Problem) Expected() string {
	switch p.Tag {
	case ExpectingToken:
		return "identifier"
	case ExpectingSigil:
		return "sigil"
	case ExpectingLiteralStart:
		return "start of " + p.Literal.String() + " literal"
	case ExpectingLiteralEnd:
		return "end of " + p.Literal.String() + " literal"
	case ExpectingBackslash:
		return "backslash"
	case ExpectingAnything:
		return "any character"
	case ExpectingWhitespace:
		return "whitespace"
	case ExpectingNewline:
		return "newline"
	case ExpectingLineComment:
		return "line comment"
	case ExpectingNumericLiteral:
		return "numeric literal"
	case ExpectingEscape:
		return "escaped character"
	case ExpectingEnd:
		return "end of input"
	}

	return "unknown construct"
}

// String is the `fmt.Stringer` implementation for Problem.
func (p Problem) String() string { return "expecting " + p.Expected() }

// Error is the `error` implementation for Error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v %q; %s", e.Position, ErrUnexpectedInput, e.Found, e.Problem)
}

// Unwrap exposes ErrUnexpectedInput to errors.Is.
func (e *Error) Unwrap() error { return ErrUnexpectedInput }

// Alternatives lists the expectations of every rule tried, comma separated.
func (e *Error) Alternatives() string {
	list := make([]string, len(e.Tried))
	for index := range e.Tried {
		list[index] = e.Tried[index].Expected()
	}

	return strings.Join(list, ", ")
}
