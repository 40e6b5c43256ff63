package pipeline

import "github.com/shapestone/shape-vyper/internal/token"

// IndentTracker is the heart of the pipeline: it turns each NEWLINE plus
// the TABs that open the following line into INDENT/DEDENT structure.
// whitespace_style mixing is already fatal at the scanner; this filter
// only ever sees a uniform TAB atom and counts it.
//
// A single NEWLINE can close several nested blocks at once, so the
// tracker's real per-token logic (pull) runs behind a queueStream: pull
// returns the first token itself and pushes any further DEDENTs onto the
// queue, which queueStream drains before calling pull again.
func IndentTracker(source string, up Stream) Stream {
	it := &indentTracker{p: newPeekable(up), source: source}
	it.out = &queueStream{up: streamFunc(it.pull)}
	return it.out
}

// streamFunc adapts a plain pull function to the Stream interface.
type streamFunc func() (token.Token, bool, error)

func (f streamFunc) Next() (token.Token, bool, error) { return f() }

type indentTracker struct {
	p       *peekable
	source  string
	level   int
	out     *queueStream
	lastTok token.Token // most recent token seen, for EOF dedent positions
	sawAny  bool
}

// pull computes the next token, queuing any extra DEDENTs on it.out for
// queueStream to drain before calling back in here.
func (it *indentTracker) pull() (token.Token, bool, error) {
	for {
		t, ok, err := it.p.next()
		if err != nil {
			return token.Token{}, false, err
		}
		if !ok {
			return it.flushEOF()
		}
		it.sawAny = true
		it.lastTok = t

		if t.Kind != token.NEWLINE {
			return t, true, nil
		}

		lvl, err := it.consumeIndentPrefix()
		if err != nil {
			return token.Token{}, false, err
		}
		if lvl < 0 {
			// Blank-but-indented line: no structural change, emit nothing
			// for this line and go round again.
			continue
		}

		nextReal, hasNext, err := it.p.peek()
		if err != nil {
			return token.Token{}, false, err
		}
		pos := t
		if hasNext {
			pos = nextReal
		}

		delta := lvl - it.level
		switch {
		case delta > 1:
			return token.Token{}, false, tooMuchIndenting(it.source, pos)
		case delta == 1:
			it.level++
			return structural(token.INDENT, pos), true, nil
		case delta < 0:
			it.level += delta
			for i := 0; i < -delta; i++ {
				it.out.queue = append(it.out.queue, structural(token.DEDENT, pos))
			}
			return t, true, nil
		default:
			return t, true, nil
		}
	}
}

// consumeIndentPrefix consumes the run of TABs (and, illegally, a
// following SPACE) that opens a new line. It returns -1 for a
// blank-but-indented line (TAB* NEWLINE), which the
// caller must treat as a no-op.
func (it *indentTracker) consumeIndentPrefix() (int, error) {
	lvl := 0
	for {
		nxt, ok, err := it.p.peek()
		if err != nil {
			return 0, err
		}
		if !ok || nxt.Kind != token.TAB {
			break
		}
		it.p.next()
		lvl++
	}

	nxt, ok, err := it.p.peek()
	if err != nil {
		return 0, err
	}
	if ok && nxt.Kind == token.NEWLINE {
		return -1, nil
	}
	if ok && nxt.Kind == token.SPACE {
		return 0, misalignedIndent(it.source, nxt)
	}
	return lvl, nil
}

// flushEOF is the "peek throws" branch of step 4: treat EOF as lvl = 0,
// emitting DEDENTs until indent_level returns to 0.
func (it *indentTracker) flushEOF() (token.Token, bool, error) {
	if it.level > 0 {
		it.level--
		pos := it.lastTok
		if !it.sawAny {
			pos = token.Token{Line: 1, Column: 1}
		}
		return structural(token.DEDENT, pos), true, nil
	}
	return token.Token{}, false, nil
}

func structural(kind token.Kind, pos token.Token) token.Token {
	return token.Token{Kind: kind, ByteIndex: pos.ByteIndex, Line: pos.Line, Column: pos.Column}
}
