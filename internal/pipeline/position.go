package pipeline

import "github.com/shapestone/shape-vyper/internal/token"

// annotatePosition is the first pipeline step, annotate_columns, generalised
// to also derive Line: the scanner only stamps ByteIndex, so Line/Column for
// every token (including the line-spanning count inside a DOCSTR) are
// derived here, once, from a single forward pass over source.
type annotatePosition struct {
	up     Stream
	source string
	cursor int // byte offset already scanned for newlines
	line   int
	bol    int // byte offset of the first byte after the last newline seen
}

// AnnotatePosition wraps up, stamping Line and Column on every token it
// relays by walking source forward from wherever the previous token left
// off; since tokens arrive in non-decreasing ByteIndex order this is a
// single O(len(source)) pass over the life of the stream.
func AnnotatePosition(source string, up Stream) Stream {
	return &annotatePosition{up: up, source: source, line: 1}
}

func (a *annotatePosition) Next() (token.Token, bool, error) {
	t, ok, err := a.up.Next()
	if err != nil || !ok {
		return t, ok, err
	}
	a.advanceTo(t.ByteIndex)
	t.Line = a.line
	t.Column = t.ByteIndex - a.bol + 1
	a.advanceTo(t.ByteIndex + len(t.Text))
	return t, true, nil
}

// advanceTo scans source[cursor:target), counting newlines, and leaves
// cursor at target. Called twice per token: once to position at the
// token's start, once more to carry embedded newlines (DOCSTR bodies)
// forward so the next token's line/column is still correct.
func (a *annotatePosition) advanceTo(target int) {
	if target > len(a.source) {
		target = len(a.source)
	}
	for ; a.cursor < target; a.cursor++ {
		if a.source[a.cursor] == '\n' {
			a.line++
			a.bol = a.cursor + 1
		}
	}
}
