package scanner

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-vyper/internal/token"
)

// docstrMatcher matches """...""" or '''...''', multiline permitted.
// Tried before STRING so a doubled quote of its own kind is never
// misread as an empty single-quoted string.
func docstrMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		quote, ok := stream.PeekChar()
		if !ok || (quote != '"' && quote != '\'') {
			return nil
		}
		if !consumeRune(stream, quote) || !consumeRune(stream, quote) || !consumeRune(stream, quote) {
			return nil
		}

		value := []rune{quote, quote, quote}
		for {
			r, ok := stream.NextChar()
			if !ok {
				return nil // unterminated docstring
			}
			value = append(value, r)
			// Require the full six characters of an empty docstring before
			// treating a run of quotes as the closer, so the opening
			// triple-quote itself is never reread as part of the closer.
			if r == quote && len(value) >= 6 && endsWithRun(value, quote, 3) {
				return tokenizer.NewToken(string(token.DOCSTR), value)
			}
		}
	}
}

// stringMatcher matches "..." or '...', single line.
func stringMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		quote, ok := stream.PeekChar()
		if !ok || (quote != '"' && quote != '\'') {
			return nil
		}
		stream.NextChar()
		value := []rune{quote}
		for {
			r, ok := stream.NextChar()
			if !ok {
				return nil // unterminated string
			}
			if r == '\n' || r == '\r' {
				return nil // single line only
			}
			value = append(value, r)
			if r == quote {
				return tokenizer.NewToken(string(token.STRING), value)
			}
			if r == '\\' {
				esc, ok := stream.NextChar()
				if !ok {
					return nil
				}
				value = append(value, esc)
			}
		}
	}
}

// commentMatcher matches a # through end-of-line. The pipeline discards the
// resulting COMMENT token; nothing downstream of the scanner ever sees one.
func commentMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '#' {
			return nil
		}
		stream.NextChar()
		value := []rune{r}
		for {
			r, ok := stream.PeekChar()
			if !ok || r == '\n' || r == '\r' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		return tokenizer.NewToken(string(token.COMMENT), value)
	}
}

func hexNumMatcher() tokenizer.Matcher { return prefixedDigitsMatcher(token.HEXNUM, 'x', isHexDigit) }
func octNumMatcher() tokenizer.Matcher { return prefixedDigitsMatcher(token.OCTNUM, 'o', isOctDigit) }
func binNumMatcher() tokenizer.Matcher { return prefixedDigitsMatcher(token.BINNUM, 'b', isBinDigit) }

// prefixedDigitsMatcher matches "0" + letter + zero-or-more digits accepted
// by isDigit, per the `0x[0-9a-f]*` / `0o[0-7]*` / `0b[01]*` grammar
// (an empty digit run is grammatically valid here; a later stage is free to
// reject "0x" with no digits as a semantic error).
func prefixedDigitsMatcher(kind token.Kind, letter rune, isDigit func(rune) bool) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '0' {
			return nil
		}
		stream.NextChar()
		r2, ok := stream.PeekChar()
		if !ok || r2 != letter {
			return nil
		}
		stream.NextChar()
		value := []rune{'0', letter}
		for {
			r, ok := stream.PeekChar()
			if !ok || !isDigit(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		return tokenizer.NewToken(string(kind), value)
	}
}

// floatMatcher matches `\d+\.\d*` or `\.\d+`, each with an optional
// exponent, or `\d+` with a required exponent.
func floatMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		intDigits := consumeDigits(stream, &value)

		sawDot := false
		if r, ok := stream.PeekChar(); ok && r == '.' {
			stream.NextChar()
			value = append(value, '.')
			fracDigits := consumeDigits(stream, &value)
			if intDigits == 0 && fracDigits == 0 {
				return nil
			}
			sawDot = true
		}

		hasExponent := consumeExponent(stream, &value)

		if !sawDot && !hasExponent {
			return nil // a bare run of digits is DEC_NUM's job
		}
		if intDigits == 0 && !sawDot {
			return nil
		}
		return tokenizer.NewToken(string(token.FLOAT), value)
	}
}

// decNumMatcher matches `0` or `[1-9][0-9]*`.
func decNumMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r < '0' || r > '9' {
			return nil
		}
		stream.NextChar()
		value := []rune{r}
		if r == '0' {
			return tokenizer.NewToken(string(token.DECNUM), value)
		}
		consumeDigits(stream, &value)
		return tokenizer.NewToken(string(token.DECNUM), value)
	}
}

// nameMatcher matches `[A-Za-z_][A-Za-z0-9_]*`; keyword/boolean re-tagging
// of a matched name happens later, in classify.
func nameMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || !isNameStart(r) {
			return nil
		}
		stream.NextChar()
		value := []rune{r}
		for {
			r, ok := stream.PeekChar()
			if !ok || !isNameContinue(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		return tokenizer.NewToken(string(token.NAME), value)
	}
}

// newlineMatcher collapses a run of consecutive \r/\n into a single NEWLINE
// token.
func newlineMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || (r != '\n' && r != '\r') {
			return nil
		}
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || (r != '\n' && r != '\r') {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		return tokenizer.NewToken(string(token.NEWLINE), value)
	}
}

// tabMatcher matches either a single tab character or exactly four spaces
// as one TAB atom.
func tabMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		if r == '\t' {
			stream.NextChar()
			return tokenizer.NewToken(string(token.TAB), []rune{'\t'})
		}
		if r != ' ' {
			return nil
		}
		var spaces []rune
		for len(spaces) < 4 {
			r, ok := stream.PeekChar()
			if !ok || r != ' ' {
				break
			}
			stream.NextChar()
			spaces = append(spaces, r)
		}
		if len(spaces) == 4 {
			return tokenizer.NewToken(string(token.TAB), spaces)
		}
		return nil
	}
}

// spaceMatcher matches one to three spaces. Tried after
// tabMatcher, which already claims runs of exactly four spaces as TAB; this
// matcher's own three-space cap keeps the two atoms disjoint for
// well-formed (tabs-only or 4-space-only) indentation. A run of five or
// more spaces splits into a TAB atom followed by a short SPACE atom, which
// indent_tracker's MisalignedIndent check rejects.
func spaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != ' ' {
			return nil
		}
		var value []rune
		for len(value) < 3 {
			r, ok := stream.PeekChar()
			if !ok || r != ' ' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		return tokenizer.NewToken(string(token.SPACE), value)
	}
}

// --- shared scanning helpers ---

func consumeRune(stream tokenizer.Stream, want rune) bool {
	r, ok := stream.PeekChar()
	if !ok || r != want {
		return false
	}
	stream.NextChar()
	return true
}

func endsWithRun(value []rune, r rune, n int) bool {
	if len(value) < n {
		return false
	}
	for i := len(value) - n; i < len(value); i++ {
		if value[i] != r {
			return false
		}
	}
	return true
}

func consumeDigits(stream tokenizer.Stream, value *[]rune) int {
	n := 0
	for {
		r, ok := stream.PeekChar()
		if !ok || r < '0' || r > '9' {
			break
		}
		stream.NextChar()
		*value = append(*value, r)
		n++
	}
	return n
}

func consumeExponent(stream tokenizer.Stream, value *[]rune) bool {
	r, ok := stream.PeekChar()
	if !ok || (r != 'e' && r != 'E') {
		return false
	}
	var exp []rune
	stream.NextChar()
	exp = append(exp, r)
	if sign, ok := stream.PeekChar(); ok && (sign == '+' || sign == '-') {
		stream.NextChar()
		exp = append(exp, sign)
	}
	n := consumeDigits(stream, &exp)
	if n == 0 {
		return false
	}
	*value = append(*value, exp...)
	return true
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameContinue(r rune) bool {
	return isNameStart(r) || (r >= '0' && r <= '9')
}

func isHexDigit(r rune) bool { return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') }
func isOctDigit(r rune) bool { return r >= '0' && r <= '7' }
func isBinDigit(r rune) bool { return r == '0' || r == '1' }
