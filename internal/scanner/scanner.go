// Package scanner recognises the source atoms: identifiers and keywords,
// numeric literals, single- and triple-quoted strings, comments,
// operators, newlines, and the raw TAB/SPACE whitespace tokens the
// whitespace pipeline later turns into structure.
//
// It is built from a github.com/shapestone/shape-core/pkg/tokenizer
// Tokenizer assembled from longest-match Matcher functions, in priority
// order so ties resolve to the first-listed atom.
package scanner

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-vyper/internal/diag"
	"github.com/shapestone/shape-vyper/internal/token"
)

// New returns a shape-core Tokenizer configured with every atom matcher in
// the precedence order this grammar requires.
func New() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		docstrMatcher(),
		stringMatcher(),
		commentMatcher(),

		hexNumMatcher(),
		octNumMatcher(),
		binNumMatcher(),
		floatMatcher(),
		decNumMatcher(),

		// Multi-char operators before their single-char prefixes.
		tokenizer.StringMatcherFunc(string(token.ARROW), "->"),
		tokenizer.StringMatcherFunc(string(token.POW), "**"),
		tokenizer.StringMatcherFunc(string(token.SHL), "<<"),
		tokenizer.StringMatcherFunc(string(token.SHR), ">>"),
		tokenizer.StringMatcherFunc(string(token.EQ), "=="),
		tokenizer.StringMatcherFunc(string(token.NE), "!="),
		tokenizer.StringMatcherFunc(string(token.LE), "<="),
		tokenizer.StringMatcherFunc(string(token.GE), ">="),
		tokenizer.StringMatcherFunc(string(token.AUGPOW), "**="),
		tokenizer.StringMatcherFunc(string(token.AUGADD), "+="),
		tokenizer.StringMatcherFunc(string(token.AUGSUB), "-="),
		tokenizer.StringMatcherFunc(string(token.AUGMUL), "*="),
		tokenizer.StringMatcherFunc(string(token.AUGDIV), "/="),
		tokenizer.StringMatcherFunc(string(token.AUGMOD), "%="),

		// Single-char operators and punctuation.
		tokenizer.CharMatcherFunc(string(token.ADD), '+'),
		tokenizer.CharMatcherFunc(string(token.SUB), '-'),
		tokenizer.CharMatcherFunc(string(token.MUL), '*'),
		tokenizer.CharMatcherFunc(string(token.DIV), '/'),
		tokenizer.CharMatcherFunc(string(token.MOD), '%'),
		tokenizer.CharMatcherFunc(string(token.LT), '<'),
		tokenizer.CharMatcherFunc(string(token.GT), '>'),
		tokenizer.CharMatcherFunc(string(token.DOT), '.'),
		tokenizer.CharMatcherFunc(string(token.SEMI), ';'),
		tokenizer.CharMatcherFunc(string(token.ASSIGN), '='),
		tokenizer.CharMatcherFunc(string(token.COMMA), ','),
		tokenizer.CharMatcherFunc(string(token.COLON), ':'),
		tokenizer.CharMatcherFunc(string(token.AT), '@'),
		tokenizer.CharMatcherFunc(string(token.LPAREN), '('),
		tokenizer.CharMatcherFunc(string(token.RPAREN), ')'),
		tokenizer.CharMatcherFunc(string(token.LBRACKET), '['),
		tokenizer.CharMatcherFunc(string(token.RBRACKET), ']'),
		tokenizer.CharMatcherFunc(string(token.LBRACE), '{'),
		tokenizer.CharMatcherFunc(string(token.RBRACE), '}'),

		nameMatcher(),

		newlineMatcher(),
		tabMatcher(),
		spaceMatcher(),
	)
}

// Convert drains a shape-core Tokenizer into our own token.Token stream,
// stopping at the first byte the grammar doesn't recognise (IllegalCharacter).
// source is the text scanned; it is also used to compute the line/column
// and excerpt of an IllegalCharacter or MixedIndent error. Line/Column for
// the tokens themselves are filled in later by pipeline.AnnotatePosition.
func Convert(tok tokenizer.Tokenizer, source string) ([]token.Token, error) {
	tok.Initialize(source)
	var out []token.Token
	consumed := 0
	whitespaceStyle := "" // latched to "tab" or "space" by the first TAB seen
	for {
		t, ok := tok.NextToken()
		if !ok {
			break
		}
		kind, text := classify(t)
		start := t.Offset()
		if start > consumed {
			// The underlying tokenizer skipped bytes no matcher claimed.
			return nil, illegalCharacter(source, consumed)
		}
		if kind == token.TAB {
			style := "tab"
			if text[0] == ' ' {
				style = "space"
			}
			if whitespaceStyle == "" {
				whitespaceStyle = style
			} else if whitespaceStyle != style {
				line, column := lineColumn(source, start)
				return nil, diag.New(diag.MixedIndent, line, column, source,
					"indentation mixes tabs and four-space runs within one file")
			}
		}
		out = append(out, token.Token{Kind: kind, Text: text, ByteIndex: start})
		consumed = start + len(text)
	}
	if consumed < len(source) {
		return nil, illegalCharacter(source, consumed)
	}
	return out, nil
}

// classify turns a shape-core Token's string Kind and rune value into our
// Kind/Text pair, re-tagging NAME tokens that are actually keywords or
// boolean literals.
func classify(t *tokenizer.Token) (token.Kind, string) {
	kind := token.Kind(t.Kind())
	text := t.ValueString()
	if kind == token.NAME {
		if k, ok := token.LookupKeyword(text); ok {
			return k, text
		}
	}
	return kind, text
}

func illegalCharacter(source string, offset int) error {
	line, column := lineColumn(source, offset)
	return diag.New(diag.IllegalCharacter, line, column, source,
		"unrecognized byte %q", byteAt(source, offset))
}

func byteAt(source string, offset int) byte {
	if offset < 0 || offset >= len(source) {
		return 0
	}
	return source[offset]
}

// lineColumn derives 1-based line/column for a byte offset by scanning for
// preceding newlines, the same computation pipeline.AnnotatePosition uses
// for every other token; duplicated narrowly here because a scan failure
// never reaches the pipeline.
func lineColumn(source string, offset int) (line, column int) {
	line = 1
	lastNewline := -1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			lastNewline = i
		}
	}
	return line, offset - lastNewline
}
