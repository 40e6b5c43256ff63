// Package diag implements the front end's single error type: a fatal
// SyntaxError carrying a Kind, a 1-based source position, and an optional
// three-line caret excerpt. Nothing in this front end recovers from an
// error or returns a partial result once one is raised.
package diag

import (
	"fmt"
	"strings"
)

// Kind is the closed set of fatal error kinds this front end can raise.
type Kind string

const (
	IllegalCharacter Kind = "IllegalCharacter"
	MixedIndent      Kind = "MixedIndent"
	MisalignedIndent Kind = "MisalignedIndent"
	TooMuchIndenting Kind = "TooMuchIndenting"
	UnbalancedIndent Kind = "UnbalancedIndent"
	SpuriousIndent   Kind = "SpuriousIndent"
	UnexpectedToken  Kind = "UnexpectedToken"
	UnexpectedEOF    Kind = "UnexpectedEOF"
)

// SyntaxError is the only error type raised by Tokenize/Parse.
type SyntaxError struct {
	Kind    Kind
	Line    int
	Column  int
	Message string
	Excerpt string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: %s: %s", e.Line, e.Column, e.Kind, e.Message)
	if e.Excerpt != "" {
		b.WriteByte('\n')
		b.WriteString(e.Excerpt)
	}
	return b.String()
}

// New builds a SyntaxError, attaching a caret excerpt carved out of source
// when source is non-empty.
func New(kind Kind, line, column int, source, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Kind:    kind,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
		Excerpt: excerpt(source, line, column),
	}
}

// excerpt renders up to three lines of context (the offending line plus
// one line of context on either side, when present) followed by a caret
// line pointing at column.
func excerpt(source string, line, column int) string {
	if source == "" || line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}

	var b strings.Builder
	start := line - 1
	if start < 1 {
		start = 1
	}
	end := line + 1
	if end > len(lines) {
		end = len(lines)
	}

	for n := start; n <= end; n++ {
		fmt.Fprintf(&b, "%4d | %s\n", n, lines[n-1])
		if n == line {
			b.WriteString(strings.Repeat(" ", 7))
			b.WriteString(caretPad(lines[n-1], column))
			b.WriteString("^\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// caretPad reproduces tabs verbatim (as the source line does) up to column
// so the caret lines up under the offending character regardless of the
// reader's tab width, and pads with spaces otherwise.
func caretPad(sourceLine string, column int) string {
	var b strings.Builder
	for i := 1; i < column; i++ {
		if i <= len(sourceLine) && sourceLine[i-1] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
