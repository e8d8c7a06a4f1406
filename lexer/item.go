// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/fisherprime/funlex/types"
)

type (
	// ItemID int holding an identifier for the Item variants.
	ItemID int

	// Item is a lexical item; the variants are the types in this file.
	//
	// Render is the exact inverse of scanning: concatenating the rendering of every scanned
	// Item reproduces the source.
	Item interface {
		ID() ItemID
		Render() string
		String() string

		item()
	}

	// LiteralType is the kind of a text literal.
	LiteralType int

	// CommentKind is the kind of a comment.
	CommentKind int

	// LineEnding is the rune sequence that ended a line.
	LineEnding int
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_                  ItemID = iota // Consume 0 to start actual numbering at 1.
	ItemSigil                        // Fixed punctuation/operator.
	ItemToken                        // Identifier or keyword.
	ItemNumericLiteral               // Unvalidated number.
	ItemTextLiteral                  // String or char.
	ItemWhitespace                   // Run of spaces.
	ItemNewlines                     // Line breaks & indentation.
	ItemComment                      // Comment.
	ItemInvalid                      // Unterminated text literal.
)

const (
	_ LiteralType = iota
	LiteralStringTriple
	LiteralStringSingle
	LiteralChar
)

const (
	_ CommentKind = iota
	CommentLine
	CommentMultiline
	CommentDoc
)

const (
	// LineFeed is a lone "\n".
	LineFeed LineEnding = iota
	// LineFeedReturn is "\n\r".
	LineFeedReturn
)

const lineCommentPrefix = "--"

// Item variants.
type (
	// Sigil is a fixed punctuation or operator token.
	Sigil struct{ Sigil SigilID }

	// Token is a maximal identifier run; keywords are not told apart at this level.
	Token struct{ Text string }

	// NumericLiteral holds the raw, unvalidated text of a number, sign included.
	NumericLiteral struct{ Text string }

	// TextLiteral holds the interior of a string or char literal with escapes left encoded.
	TextLiteral struct {
		Kind LiteralType
		Text string
	}

	// Whitespace is a run of spaces within a line.
	Whitespace struct{ Count int }

	// Newlines collapses consecutive line breaks.
	//
	// Blank holds the space count of each blank line, Indent the indentation of the first
	// non-blank line. Endings records the ending of every break; nil means all are LineFeed.
	Newlines struct {
		Blank   []int
		Indent  int
		Endings []LineEnding
	}

	// Comment holds the comment body without its delimiters.
	Comment struct {
		Kind CommentKind
		Body string
	}

	// Invalid holds the raw text of a text literal that was opened but never closed.
	Invalid struct{ Text string }
)

var (
	literalDelimiters = [...]string{
		LiteralStringTriple: `"""`,
		LiteralStringSingle: `"`,
		LiteralChar:         `'`,
	}
	literalNames = [...]string{
		LiteralStringTriple: "triple-quoted string",
		LiteralStringSingle: "string",
		LiteralChar:         "char",
	}
	itemNames = [...]string{
		ItemSigil:          "Sigil",
		ItemToken:          "Token",
		ItemNumericLiteral: "NumericLiteral",
		ItemTextLiteral:    "TextLiteral",
		ItemWhitespace:     "Whitespace",
		ItemNewlines:       "Newlines",
		ItemComment:        "Comment",
		ItemInvalid:        "Invalid",
	}
)

// Delimiter is the rune sequence that opens & closes the literal.
func (t LiteralType) Delimiter() string {
	if t <= 0 || int(t) >= len(literalDelimiters) {
		return ""
	}
	return literalDelimiters[t]
}

// String is the `fmt.Stringer` implementation for LiteralType.
func (t LiteralType) String() string {
	if t <= 0 || int(t) >= len(literalNames) {
		return "unknown literal"
	}
	return literalNames[t]
}

// String is the `fmt.Stringer` implementation for CommentKind.
func (k CommentKind) String() string {
	switch k {
	case CommentLine:
		return "line"
	case CommentMultiline:
		return "multiline"
	case CommentDoc:
		return "doc"
	}
	return "unknown"
}

// Text is the rune sequence of the LineEnding.
func (e LineEnding) Text() string {
	if e == LineFeedReturn {
		return "\n\r"
	}
	return "\n"
}

// String is the `fmt.Stringer` implementation for ItemID.
func (id ItemID) String() string {
	if id <= 0 || int(id) >= len(itemNames) {
		return "Unknown"
	}
	return itemNames[id]
}

func (Sigil) item()          {}
func (Token) item()          {}
func (NumericLiteral) item() {}
func (TextLiteral) item()    {}
func (Whitespace) item()     {}
func (Newlines) item()       {}
func (Comment) item()        {}
func (Invalid) item()        {}

func (Sigil) ID() ItemID          { return ItemSigil }
func (Token) ID() ItemID          { return ItemToken }
func (NumericLiteral) ID() ItemID { return ItemNumericLiteral }
func (TextLiteral) ID() ItemID    { return ItemTextLiteral }
func (Whitespace) ID() ItemID     { return ItemWhitespace }
func (Newlines) ID() ItemID       { return ItemNewlines }
func (Comment) ID() ItemID        { return ItemComment }
func (Invalid) ID() ItemID        { return ItemInvalid }

func (s Sigil) Render() string          { return s.Sigil.Text() }
func (t Token) Render() string          { return t.Text }
func (n NumericLiteral) Render() string { return n.Text }
func (w Whitespace) Render() string     { return strings.Repeat(" ", w.Count) }
func (i Invalid) Render() string        { return i.Text }

func (t TextLiteral) Render() string {
	d := t.Kind.Delimiter()
	return d + t.Text + d
}

func (n Newlines) Render() string {
	var b strings.Builder

	for index, count := range n.Blank {
		b.WriteString(n.Ending(index).Text())
		b.WriteString(strings.Repeat(" ", count))
	}
	b.WriteString(n.Ending(len(n.Blank)).Text())
	b.WriteString(strings.Repeat(" ", n.Indent))

	return b.String()
}

func (c Comment) Render() string {
	switch c.Kind {
	case CommentMultiline:
		return "{-" + c.Body + "-}"
	case CommentDoc:
		return "{-|" + c.Body + "-}"
	default:
		return lineCommentPrefix + c.Body
	}
}

// Ending obtains the ending of the index-th line break.
func (n Newlines) Ending(index int) LineEnding {
	if index < len(n.Endings) {
		return n.Endings[index]
	}
	return LineFeed
}

func (s Sigil) String() string          { return fmt.Sprintf("Sigil(%s)", s.Sigil) }
func (t Token) String() string          { return fmt.Sprintf("Token(%q)", t.Text) }
func (n NumericLiteral) String() string { return fmt.Sprintf("NumericLiteral(%q)", n.Text) }
func (w Whitespace) String() string     { return "Whitespace(" + strconv.Itoa(w.Count) + ")" }
func (c Comment) String() string        { return fmt.Sprintf("Comment(%s, %q)", c.Kind, c.Body) }
func (i Invalid) String() string        { return fmt.Sprintf("Invalid(%q)", i.Text) }

func (t TextLiteral) String() string {
	return fmt.Sprintf("TextLiteral(%s, %q)", t.Kind, t.Text)
}

func (n Newlines) String() string {
	return fmt.Sprintf("Newlines(%s, %d)", types.Slice[int](n.Blank), n.Indent)
}

// Render concatenates the rendering of every Lexeme.
func Render(lexemes []Lexeme) string {
	var b strings.Builder
	for index := range lexemes {
		b.WriteString(lexemes[index].Value.Render())
	}

	return b.String()
}
