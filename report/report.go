// SPDX-License-Identifier: MIT

// Package report renders lexing failures & recoveries as human-readable diagnostics.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/fisherprime/funlex/lexer"
)

type (
	// Reporter formats diagnostics, optionally styled for a terminal.
	Reporter struct {
		color bool

		header  lipgloss.Style
		warning lipgloss.Style
		gutter  lipgloss.Style
		caret   lipgloss.Style
		note    lipgloss.Style
	}

	// Option defines the Reporter functional option type.
	Option func(*Reporter)
)

// New instantiates a Reporter; output is plain unless WithColor is set.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		gutter:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		caret:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		note:    lipgloss.NewStyle().Faint(true),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithColor configures terminal styling.
func WithColor(color bool) Option { return func(r *Reporter) { r.color = color } }

// Format renders err for the named module.
//
// A *lexer.Error is shown with the expected construct & the offending source line.
func (r *Reporter) Format(name, source string, err error) string {
	if err == nil {
		return ""
	}

	var scanErr *lexer.Error
	if !errors.As(err, &scanErr) {
		return r.paint(r.header, fmt.Sprintf("%s: %v", name, err)) + "\n"
	}

	var buffer strings.Builder
	buffer.WriteString(r.paint(r.header, fmt.Sprintf("%s:%s: unexpected %s; %s",
		name, scanErr.Position, describe(scanErr.Found), scanErr.Problem)))
	buffer.WriteString("\n")
	r.excerpt(&buffer, source, scanErr.Position)
	buffer.WriteString(r.paint(r.note, "  tried: "+scanErr.Alternatives()))
	buffer.WriteString("\n")

	return buffer.String()
}

// FormatRecovery renders a warning for an unterminated text literal.
func (r *Reporter) FormatRecovery(name, source string, rec lexer.Recovery) string {
	expected := make([]string, len(rec.Problems))
	for index := range rec.Problems {
		expected[index] = rec.Problems[index].Expected()
	}

	var buffer strings.Builder
	buffer.WriteString(r.paint(r.warning, fmt.Sprintf("%s:%s: warning: unterminated literal; expecting %s",
		name, rec.Span.Start, strings.Join(expected, " or "))))
	buffer.WriteString("\n")
	r.excerpt(&buffer, source, rec.Span.Start)

	return buffer.String()
}

// excerpt writes the source line holding pos & a caret under its column.
func (r *Reporter) excerpt(buffer *strings.Builder, source string, pos lexer.Position) {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return
	}

	// A line after a "\n\r" break starts at the rune following the "\r".
	line := strings.TrimPrefix(lines[pos.Line-1], "\r")
	if pos.Line == 1 {
		line = lines[0]
	}

	// Tabs & carriage returns are blanked so the caret lines up.
	line = strings.NewReplacer("\t", " ", "\r", " ").Replace(line)
	number := strconv.Itoa(pos.Line)
	pad := strings.Repeat(" ", len(number))

	fmt.Fprintf(buffer, "%s %s\n", r.paint(r.gutter, number+" |"), line)
	fmt.Fprintf(buffer, "%s %s%s\n", r.paint(r.gutter, pad+" |"),
		strings.Repeat(" ", pos.Col-1), r.paint(r.caret, "^"))
}

func (r *Reporter) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

// describe names a rune for a diagnostic.
func describe(found rune) string {
	switch found {
	case '\t':
		return "tab"
	case '\r':
		return "carriage return"
	}
	return strconv.QuoteRune(found)
}
