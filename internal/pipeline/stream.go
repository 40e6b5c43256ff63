// Package pipeline implements the whitespace pipeline: a chain of small
// lazy filters, each transforming one Stream of tokens into another,
// that turns raw scanner output into the structural INDENT /
// DEDENT / ENDSTMT stream the parser consumes.
//
// Every filter is a state machine driven purely by "give me the next
// token": no coroutines, no buffering beyond a single token of lookahead
// where a filter genuinely needs it.
package pipeline

import "github.com/shapestone/shape-vyper/internal/token"

// Stream is a lazy, forward-only sequence of tokens with at most one
// fatal error, raised the first time it is reached. Once Next returns a
// non-nil error, the stream is done; callers must not call Next again.
type Stream interface {
	Next() (token.Token, bool, error)
}

// sliceStream is the base of every pipeline: the scanner's already fully
// materialised []token.Token, replayed one at a time. The scanner itself
// cannot fail lazily (IllegalCharacter is detected eagerly while draining
// the shape-core Tokenizer), so this base never returns an error.
type sliceStream struct {
	tokens []token.Token
	pos    int
}

// NewBase wraps a fully-scanned token slice as the pipeline's input Stream.
func NewBase(tokens []token.Token) Stream {
	return &sliceStream{tokens: tokens}
}

func (s *sliceStream) Next() (token.Token, bool, error) {
	if s.pos >= len(s.tokens) {
		return token.Token{}, false, nil
	}
	t := s.tokens[s.pos]
	s.pos++
	return t, true, nil
}

// peekable adds a single slot of lookahead atop a Stream: a structure
// holding the upstream and a one-slot look-ahead buffer. Most filters
// below are written directly against Stream; the handful that need to
// see one token before deciding what to do with the current one embed a
// peekable instead.
type peekable struct {
	up     Stream
	buf    token.Token
	bufOK  bool
	filled bool
	err    error
}

func newPeekable(up Stream) *peekable {
	return &peekable{up: up}
}

func (p *peekable) fill() {
	if p.filled || p.err != nil {
		return
	}
	p.buf, p.bufOK, p.err = p.up.Next()
	p.filled = true
}

// peek returns the next token without consuming it.
func (p *peekable) peek() (token.Token, bool, error) {
	p.fill()
	return p.buf, p.bufOK, p.err
}

// next consumes and returns the next token.
func (p *peekable) next() (token.Token, bool, error) {
	p.fill()
	t, ok, err := p.buf, p.bufOK, p.err
	p.filled = false
	return t, ok, err
}

// queueStream emits a fixed slice of already-decided tokens before falling
// back to upstream; several filters (INDENT/DEDENT synthesis in particular)
// need to emit more than one token for a single upstream token.
type queueStream struct {
	queue []token.Token
	up    Stream
}

func (q *queueStream) Next() (token.Token, bool, error) {
	if len(q.queue) > 0 {
		t := q.queue[0]
		q.queue = q.queue[1:]
		return t, true, nil
	}
	return q.up.Next()
}

// Drain exhausts a Stream into a slice, stopping at the first error.
func Drain(s Stream) ([]token.Token, error) {
	var out []token.Token
	for {
		t, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, t)
	}
}
