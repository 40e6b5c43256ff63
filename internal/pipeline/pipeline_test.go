package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-vyper/internal/pipeline"
	"github.com/shapestone/shape-vyper/internal/scanner"
	"github.com/shapestone/shape-vyper/internal/token"
)

func build(t *testing.T, source string) []token.Token {
	t.Helper()
	scanned, err := scanner.Convert(scanner.New(), source)
	require.NoError(t, err)
	toks, err := pipeline.Drain(pipeline.Build(source, scanned))
	require.NoError(t, err)
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestBuild_SimpleAssign(t *testing.T) {
	toks := build(t, "x: uint256 = 1\n")
	assert.Equal(t, []token.Kind{
		token.NAME, token.COLON, token.NAME, token.ASSIGN, token.DECNUM, token.ENDSTMT,
	}, kinds(toks))
}

func TestBuild_IndentDedentBalanced(t *testing.T) {
	src := "def f():\n\tx: uint256 = 1\n\treturn x\n"
	toks := build(t, src)

	depth := 0
	for _, k := range kinds(toks) {
		switch k {
		case token.INDENT:
			depth++
		case token.DEDENT:
			depth--
			require.GreaterOrEqual(t, depth, 0, "DEDENT without matching INDENT")
		}
	}
	assert.Equal(t, 0, depth, "unbalanced INDENT/DEDENT at end of stream")
}

func TestBuild_DedentLineAtOrAfterMatchingIndent(t *testing.T) {
	src := "def f():\n\tx: uint256 = 1\n\treturn x\ny: uint256 = 2\n"
	toks := build(t, src)

	var indentLines []int
	for _, tok := range toks {
		if tok.Kind == token.INDENT {
			indentLines = append(indentLines, tok.Line)
		}
		if tok.Kind == token.DEDENT {
			require.NotEmpty(t, indentLines)
			openLine := indentLines[len(indentLines)-1]
			indentLines = indentLines[:len(indentLines)-1]
			assert.GreaterOrEqual(t, tok.Line, openLine)
		}
	}
}

func TestBuild_BlankIndentedLineIsNoOp(t *testing.T) {
	src := "def f():\n\tx: uint256 = 1\n\t\n\treturn x\n"
	toks := build(t, src)

	indentCount, dedentCount := 0, 0
	for _, k := range kinds(toks) {
		if k == token.INDENT {
			indentCount++
		}
		if k == token.DEDENT {
			dedentCount++
		}
	}
	assert.Equal(t, 1, indentCount)
	assert.Equal(t, 1, dedentCount)
}

func TestBuild_TooMuchIndenting(t *testing.T) {
	src := "def f():\n\t\tx: uint256 = 1\n"
	_, err := scanAndBuild(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TooMuchIndenting")
}

func TestBuild_MisalignedIndent(t *testing.T) {
	src := "def f():\n\t x: uint256 = 1\n"
	_, err := scanAndBuild(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MisalignedIndent")
}

func scanAndBuild(source string) ([]token.Token, error) {
	scanned, err := scanner.Convert(scanner.New(), source)
	if err != nil {
		return nil, err
	}
	return pipeline.Drain(pipeline.Build(source, scanned))
}

func TestBuild_CommentsAndBlankLinesDropped(t *testing.T) {
	src := "x: uint256 = 1 # comment\n\n\ny: uint256 = 2\n"
	toks := build(t, src)
	for _, tok := range toks {
		assert.NotEqual(t, token.COMMENT, tok.Kind)
	}
	// Exactly two ENDSTMT: the double blank line collapses to nothing extra.
	count := 0
	for _, k := range kinds(toks) {
		if k == token.ENDSTMT {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestBuild_UnnecessaryMultilineIndentStripped(t *testing.T) {
	// The continuation line inside the parens indents by exactly one tab,
	// but since it isn't preceded by ':' collapse_unnecessary_multiline
	// strips the INDENT/DEDENT pair rather than passing it to the parser.
	src := "x: uint256 = foo(\n\ta,\n\tb,\n)\n"
	toks := build(t, src)
	for _, k := range kinds(toks) {
		assert.NotEqual(t, token.INDENT, k)
		assert.NotEqual(t, token.DEDENT, k)
	}
}

func TestBuild_NameMultisetRoundTrips(t *testing.T) {
	src := "x: uint256 = 1\nfoo: bar = baz\n"
	toks := build(t, src)
	var names []string
	for _, tok := range toks {
		if tok.Kind == token.NAME {
			names = append(names, tok.Text)
		}
	}
	assert.ElementsMatch(t, []string{"x", "uint256", "foo", "bar", "baz"}, names)
}
