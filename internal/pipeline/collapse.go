package pipeline

import "github.com/shapestone/shape-vyper/internal/token"

// CollapseUnnecessaryMultiline is step 6: an INDENT not preceded by ':' is
// bracketing noise left over from a multi-line parenthesised expression
// that indent_tracker doesn't know is bracketed; both it and its matching
// DEDENT are stripped. Two such noise INDENTs back to back, with nothing
// real between them, is a fatal SpuriousIndent.
func CollapseUnnecessaryMultiline(source string, up Stream) Stream {
	return &collapseMultiline{up: up, source: source}
}

type collapseMultiline struct {
	up              Stream
	source          string
	last            token.Kind
	stack           []bool // per open INDENT: true if kept, false if stripped
	strippedPending bool
}

func (c *collapseMultiline) Next() (token.Token, bool, error) {
	for {
		t, ok, err := c.up.Next()
		if err != nil || !ok {
			return t, ok, err
		}

		switch t.Kind {
		case token.INDENT:
			necessary := c.last == token.COLON
			if !necessary && c.strippedPending {
				return token.Token{}, false, spuriousIndent(c.source, t)
			}
			c.stack = append(c.stack, necessary)
			if necessary {
				c.strippedPending = false
				c.last = token.INDENT
				return t, true, nil
			}
			c.strippedPending = true
			continue

		case token.DEDENT:
			keep := true
			if n := len(c.stack); n > 0 {
				keep = c.stack[n-1]
				c.stack = c.stack[:n-1]
			}
			if keep {
				c.strippedPending = false
				c.last = token.DEDENT
				return t, true, nil
			}
			continue

		default:
			c.strippedPending = false
			c.last = t.Kind
			return t, true, nil
		}
	}
}
