package pipeline

import "github.com/shapestone/shape-vyper/internal/token"

// StripComments drops COMMENT atoms before the numbered pipeline runs.
// Comments are never emitted downstream; RemoveDoubleNewline later in the
// chain exists specifically to collapse the blank lines this strip can
// leave behind, so the comment strip itself sits ahead of that step.
func StripComments(up Stream) Stream {
	return filterFunc(up, func(t token.Token) bool { return t.Kind != token.COMMENT })
}

// filterFunc is the shared shape behind every simple drop-if filter below:
// pull from upstream until keep(t) holds, or upstream ends.
func filterFunc(up Stream, keep func(token.Token) bool) Stream {
	return &predicateFilter{up: up, keep: keep}
}

type predicateFilter struct {
	up   Stream
	keep func(token.Token) bool
}

func (f *predicateFilter) Next() (token.Token, bool, error) {
	for {
		t, ok, err := f.up.Next()
		if err != nil || !ok {
			return t, ok, err
		}
		if f.keep(t) {
			return t, true, nil
		}
	}
}

// RemoveDoubleNewline is step 2: collapse runs of consecutive NEWLINEs into
// one.
func RemoveDoubleNewline(up Stream) Stream {
	return &dedupNewline{up: up}
}

type dedupNewline struct {
	up       Stream
	lastKind token.Kind
}

func (d *dedupNewline) Next() (token.Token, bool, error) {
	for {
		t, ok, err := d.up.Next()
		if err != nil || !ok {
			return t, ok, err
		}
		if t.Kind == token.NEWLINE && d.lastKind == token.NEWLINE {
			continue
		}
		d.lastKind = t.Kind
		return t, true, nil
	}
}

// AddLastNewline is step 3: append a synthetic trailing NEWLINE if the
// source's last token wasn't already one, so a file missing a final
// newline still terminates its last logical line.
func AddLastNewline(up Stream) Stream {
	return &addLastNewline{up: up}
}

type addLastNewline struct {
	up       Stream
	lastKind token.Kind
	lastPos  token.Token
	sawAny   bool
	synth    bool
	done     bool
}

func (a *addLastNewline) Next() (token.Token, bool, error) {
	if a.done {
		return token.Token{}, false, nil
	}
	t, ok, err := a.up.Next()
	if err != nil {
		return t, false, err
	}
	if ok {
		a.sawAny = true
		a.lastKind = t.Kind
		a.lastPos = t
		return t, true, nil
	}
	a.done = true
	if a.sawAny && a.lastKind != token.NEWLINE {
		synthetic := a.lastPos
		synthetic.Kind = token.NEWLINE
		synthetic.Text = ""
		synthetic.ByteIndex += len(a.lastPos.Text)
		synthetic.Column += len(a.lastPos.Text)
		return synthetic, true, nil
	}
	return token.Token{}, false, nil
}

// DiscardStrayWhitespace is step 5: drop SPACE outright and any TAB not
// consumed by indent_tracker (i.e. a TAB that indentTracker left alone
// because it didn't immediately follow a NEWLINE).
func DiscardStrayWhitespace(up Stream) Stream {
	return filterFunc(up, func(t token.Token) bool {
		return t.Kind != token.SPACE && t.Kind != token.TAB
	})
}

// SkipBeginNewline is step 7: drop a single leading NEWLINE, if present.
func SkipBeginNewline(up Stream) Stream {
	return &skipBeginNewline{up: up}
}

type skipBeginNewline struct {
	up      Stream
	checked bool
}

func (s *skipBeginNewline) Next() (token.Token, bool, error) {
	if !s.checked {
		s.checked = true
		t, ok, err := s.up.Next()
		if err != nil || !ok {
			return t, ok, err
		}
		if t.Kind == token.NEWLINE {
			return s.up.Next()
		}
		return t, true, nil
	}
	return s.up.Next()
}

// SkipAfter is step 8: a NEWLINE immediately following ';', ',', or a
// DOCSTR does not terminate a logical statement and is dropped.
func SkipAfter(up Stream) Stream {
	return &skipAfterFilter{up: up}
}

var skipAfterKinds = map[token.Kind]bool{
	token.SEMI:   true,
	token.COMMA:  true,
	token.DOCSTR: true,
}

type skipAfterFilter struct {
	up       Stream
	lastKind token.Kind
}

func (s *skipAfterFilter) Next() (token.Token, bool, error) {
	for {
		t, ok, err := s.up.Next()
		if err != nil || !ok {
			return t, ok, err
		}
		if t.Kind == token.NEWLINE && skipAfterKinds[s.lastKind] {
			continue
		}
		s.lastKind = t.Kind
		return t, true, nil
	}
}

// SubstituteNewline is step 9: every remaining NEWLINE is a statement
// terminator; rename it to ENDSTMT.
func SubstituteNewline(up Stream) Stream {
	return &substituteNewline{up: up}
}

type substituteNewline struct{ up Stream }

func (s *substituteNewline) Next() (token.Token, bool, error) {
	t, ok, err := s.up.Next()
	if err != nil || !ok {
		return t, ok, err
	}
	if t.Kind == token.NEWLINE {
		t.Kind = token.ENDSTMT
	}
	return t, true, nil
}

// SwapDocstrIndent is step 10: when a DOCSTR immediately precedes the
// INDENT that opens a function body, emit INDENT first. This lets the
// grammar require "DOCSTR as the first statement of the body after
// INDENT" without its own look-ahead.
func SwapDocstrIndent(up Stream) Stream {
	return &swapDocstrIndent{p: newPeekable(up)}
}

type swapDocstrIndent struct {
	p       *peekable
	pending *token.Token
}

func (s *swapDocstrIndent) Next() (token.Token, bool, error) {
	if s.pending != nil {
		t := *s.pending
		s.pending = nil
		return t, true, nil
	}
	t, ok, err := s.p.next()
	if err != nil || !ok {
		return t, ok, err
	}
	if t.Kind == token.DOCSTR {
		nxt, ok, err := s.p.peek()
		if err != nil {
			return token.Token{}, false, err
		}
		if ok && nxt.Kind == token.INDENT {
			s.p.next() // consume the INDENT we just peeked
			docstr := t
			s.pending = &docstr
			return nxt, true, nil
		}
	}
	return t, true, nil
}
