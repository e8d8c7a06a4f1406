// SPDX-License-Identifier: MIT
package lexer

type (
	// SigilID identifies a fixed punctuation or operator token.
	SigilID int

	// BracketKind is the shape of a bracket sigil.
	BracketKind int

	// BracketRole tells an opening bracket from a closing one.
	BracketRole int
)

const (
	_ SigilID = iota // Consume 0 to start actual numbering at 1.

	SigilRoundOpen
	SigilRoundClose
	SigilSquareOpen
	SigilSquareClose
	SigilCurlyOpen
	SigilCurlyClose

	SigilAssign
	SigilPipe
	SigilComma
	SigilDot
	SigilDoubleDot
	SigilThinArrow
	SigilBackslash
	SigilUnderscore
	SigilColon

	// Binary & logical operators.
	SigilAnd
	SigilAppend
	SigilCons
	SigilEquals
	SigilOr
	SigilGE
	SigilLE
	SigilExponent
	SigilGT
	SigilLT
	SigilSubtract
	SigilAdd
	SigilDivide
	SigilMultiply

	sigilCount
)

const (
	_ BracketKind = iota
	BracketRound
	BracketSquare
	BracketCurly
)

const (
	_ BracketRole = iota
	BracketOpen
	BracketClose
)

var sigilText = [sigilCount]string{
	SigilRoundOpen:   "(",
	SigilRoundClose:  ")",
	SigilSquareOpen:  "[",
	SigilSquareClose: "]",
	SigilCurlyOpen:   "{",
	SigilCurlyClose:  "}",

	SigilAssign:     "=",
	SigilPipe:       "|",
	SigilComma:      ",",
	SigilDot:        ".",
	SigilDoubleDot:  "..",
	SigilThinArrow:  "->",
	SigilBackslash:  `\`,
	SigilUnderscore: "_",
	SigilColon:      ":",

	SigilAnd:      "&&",
	SigilAppend:   "++",
	SigilCons:     "::",
	SigilEquals:   "==",
	SigilOr:       "||",
	SigilGE:       ">=",
	SigilLE:       "<=",
	SigilExponent: "^",
	SigilGT:       ">",
	SigilLT:       "<",
	SigilSubtract: "-",
	SigilAdd:      "+",
	SigilDivide:   "/",
	SigilMultiply: "*",
}

var sigilNames = [sigilCount]string{
	SigilRoundOpen:   "round-open",
	SigilRoundClose:  "round-close",
	SigilSquareOpen:  "square-open",
	SigilSquareClose: "square-close",
	SigilCurlyOpen:   "curly-open",
	SigilCurlyClose:  "curly-close",

	SigilAssign:     "assign",
	SigilPipe:       "pipe",
	SigilComma:      "comma",
	SigilDot:        "dot",
	SigilDoubleDot:  "double-dot",
	SigilThinArrow:  "thin-arrow",
	SigilBackslash:  "backslash",
	SigilUnderscore: "underscore",
	SigilColon:      "colon",

	SigilAnd:      "and",
	SigilAppend:   "append",
	SigilCons:     "cons",
	SigilEquals:   "equals",
	SigilOr:       "or",
	SigilGE:       "ge",
	SigilLE:       "le",
	SigilExponent: "exponent",
	SigilGT:       "gt",
	SigilLT:       "lt",
	SigilSubtract: "subtract",
	SigilAdd:      "add",
	SigilDivide:   "divide",
	SigilMultiply: "multiply",
}

// sigilOrder is the order in which the sigil rule tries its alternatives.
//
// Two-rune sigils come first so that none is pre-empted by its one-rune prefix.
var sigilOrder = [...]SigilID{
	SigilAnd,
	SigilAppend,
	SigilCons,
	SigilEquals,
	SigilOr,
	SigilDoubleDot,
	SigilThinArrow,
	SigilGE,
	SigilLE,

	SigilExponent,
	SigilBackslash,
	SigilUnderscore,
	SigilRoundOpen,
	SigilRoundClose,
	SigilSquareOpen,
	SigilSquareClose,
	SigilCurlyOpen,
	SigilCurlyClose,
	SigilGT,
	SigilLT,
	SigilSubtract,
	SigilAdd,
	SigilAssign,
	SigilDivide,
	SigilMultiply,
	SigilColon,
	SigilComma,
	SigilDot,
	SigilPipe,
}

func (s SigilID) valid() bool { return s > 0 && s < sigilCount }

// Text is the source text of the sigil.
func (s SigilID) Text() string {
	if !s.valid() {
		return ""
	}
	return sigilText[s]
}

// String is the `fmt.Stringer` implementation for SigilID.
func (s SigilID) String() string {
	if !s.valid() {
		return "unknown-sigil"
	}
	return sigilNames[s]
}

// Bracket decomposes a bracket sigil; ok is false for any other sigil.
func (s SigilID) Bracket() (kind BracketKind, role BracketRole, ok bool) {
	switch s {
	case SigilRoundOpen:
		return BracketRound, BracketOpen, true
	case SigilRoundClose:
		return BracketRound, BracketClose, true
	case SigilSquareOpen:
		return BracketSquare, BracketOpen, true
	case SigilSquareClose:
		return BracketSquare, BracketClose, true
	case SigilCurlyOpen:
		return BracketCurly, BracketOpen, true
	case SigilCurlyClose:
		return BracketCurly, BracketClose, true
	}

	return
}

// IsOperator reports whether the sigil wraps a binary or logical operator.
func (s SigilID) IsOperator() bool { return s >= SigilAnd && s <= SigilMultiply }

// BracketSigil composes a bracket sigil from its kind & role.
func BracketSigil(kind BracketKind, role BracketRole) (s SigilID, ok bool) {
	for _, s = range [...]SigilID{
		SigilRoundOpen, SigilRoundClose,
		SigilSquareOpen, SigilSquareClose,
		SigilCurlyOpen, SigilCurlyClose,
	} {
		if k, r, _ := s.Bracket(); k == kind && r == role {
			return s, true
		}
	}

	return 0, false
}
