// SPDX-License-Identifier: MIT
package lexer

import "unicode/utf8"

type (
	// scanFunc attempts one lexical form at the cursor.
	//
	// A scanFunc that reports no match may leave the cursor anywhere; the driving loop rewinds it.
	scanFunc func(*Lexer) (Item, bool)

	rule struct {
		name      string
		expecting []Problem
		scan      scanFunc
	}
)

// rules is the driving loop's priority order.
//
// Comments precede sigils ("--" is not two subtractions); numbers precede sigils ("-5" is a
// single literal).
var rules = [...]rule{
	{name: "identifier", expecting: []Problem{{Tag: ExpectingToken}}, scan: scanIdentifier},
	{name: "numeric literal", expecting: []Problem{{Tag: ExpectingNumericLiteral}}, scan: scanNumericLiteral},
	{name: "text literal", expecting: literalStartProblems(), scan: scanTextLiteral},
	{name: "comment", expecting: []Problem{{Tag: ExpectingLineComment}}, scan: scanComment},
	{name: "sigil", expecting: []Problem{{Tag: ExpectingSigil}}, scan: scanSigil},
	{name: "whitespace", expecting: []Problem{{Tag: ExpectingWhitespace}}, scan: scanWhitespace},
	{name: "newlines", expecting: []Problem{{Tag: ExpectingNewline}}, scan: scanNewlines},
}

// literalOrder tries the triple-quoted form first, its opening delimiter starts with the
// single-quoted one.
var literalOrder = [...]LiteralType{LiteralStringTriple, LiteralStringSingle, LiteralChar}

// Lookup tables for the ASCII rune classes.
var (
	alpha [utf8.RuneSelf]bool
	digit [utf8.RuneSelf]bool
)

func init() {
	for r := 'a'; r <= 'z'; r++ {
		alpha[r] = true
		alpha[r-'a'+'A'] = true
	}
	for r := '0'; r <= '9'; r++ {
		digit[r] = true
	}
}

func literalStartProblems() (list []Problem) {
	for _, kind := range literalOrder {
		list = append(list, Problem{Tag: ExpectingLiteralStart, Literal: kind})
	}

	return
}

func scanIdentifier(l *Lexer) (Item, bool) {
	if r, ok := l.Peek(); !ok || !isAlpha(r) {
		return nil, false
	}
	l.Next()
	l.AcceptWhile(isWord)

	return Token{Text: l.text()}, true
}

func scanNumericLiteral(l *Lexer) (Item, bool) {
	if acceptDigits(l) {
		return NumericLiteral{Text: l.text()}, true
	}

	// The signed form is all or nothing; a lone "-" is left for the sigil rule.
	m := l.mark()
	if l.Accept("-") && acceptDigits(l) {
		return NumericLiteral{Text: l.text()}, true
	}
	l.reset(m)

	return nil, false
}

// acceptDigits consumes a digit & the word runes following it.
func acceptDigits(l *Lexer) bool {
	if r, ok := l.Peek(); !ok || !isDigit(r) {
		return false
	}
	l.Next()
	l.AcceptWhile(isWord)

	return true
}

func scanTextLiteral(l *Lexer) (Item, bool) {
	for _, kind := range literalOrder {
		if item, ok := scanLiteral(l, kind); ok {
			return item, true
		}
	}

	return nil, false
}

// scanLiteral scans a literal of the given kind, escapes stay encoded.
//
// Reaching the end of input before the closing delimiter yields Invalid holding everything
// consumed.
func scanLiteral(l *Lexer, kind LiteralType) (Item, bool) {
	start := l.pos
	delimiter := kind.Delimiter()

	if !l.Accept(delimiter) {
		return nil, false
	}

	for {
		if l.Accept(delimiter) {
			raw := l.text()
			return TextLiteral{Kind: kind, Text: raw[len(delimiter) : len(raw)-len(delimiter)]}, true
		}

		r, ok := l.Next()
		if !ok {
			l.recovery(start,
				Problem{Tag: ExpectingLiteralEnd, Literal: kind},
				Problem{Tag: ExpectingBackslash},
				Problem{Tag: ExpectingAnything},
			)
			return Invalid{Text: l.text()}, true
		}

		// The escaped rune is taken whatever it is, an escaped delimiter doesn't end the literal.
		if r == '\\' {
			if _, ok = l.Next(); !ok {
				l.recovery(start, Problem{Tag: ExpectingEscape})
				return Invalid{Text: l.text()}, true
			}
		}
	}
}

func scanComment(l *Lexer) (Item, bool) {
	if !l.Accept(lineCommentPrefix) {
		return nil, false
	}
	l.AcceptWhile(func(r rune) bool { return r != '\n' })

	return Comment{Kind: CommentLine, Body: l.text()[len(lineCommentPrefix):]}, true
}

func scanSigil(l *Lexer) (Item, bool) {
	for _, s := range sigilOrder {
		if l.Accept(s.Text()) {
			return Sigil{Sigil: s}, true
		}
	}

	return nil, false
}

func scanWhitespace(l *Lexer) (Item, bool) {
	if n := l.AcceptWhile(isSpace); n > 0 {
		return Whitespace{Count: n}, true
	}

	return nil, false
}

func scanNewlines(l *Lexer) (Item, bool) {
	ending, ok := acceptLineEnding(l)
	if !ok {
		return nil, false
	}

	var (
		n       Newlines
		endings = []LineEnding{ending}
	)
	for {
		count := l.AcceptWhile(isSpace)

		if ending, ok = acceptLineEnding(l); !ok {
			n.Indent = count
			break
		}

		n.Blank = append(n.Blank, count)
		endings = append(endings, ending)
	}

	for _, e := range endings {
		if e != LineFeed {
			n.Endings = endings
			break
		}
	}

	return n, true
}

// acceptLineEnding consumes "\n\r" or, failing that, "\n".
func acceptLineEnding(l *Lexer) (LineEnding, bool) {
	if l.Accept(LineFeedReturn.Text()) {
		// The pair ends a single line.
		l.pos.Col = 1
		return LineFeedReturn, true
	}
	if l.Accept(LineFeed.Text()) {
		return LineFeed, true
	}

	return 0, false
}

func isAlpha(r rune) bool { return r < utf8.RuneSelf && alpha[r] }

func isDigit(r rune) bool { return r < utf8.RuneSelf && digit[r] }

func isWord(r rune) bool { return isAlpha(r) || isDigit(r) || r == '_' }

func isSpace(r rune) bool { return r == ' ' }
