// Package vyper is the front end's glue layer: the two entry points,
// Tokenize and Parse, wired over the scanner, the whitespace pipeline,
// and the parser.
package vyper

import (
	"github.com/shapestone/shape-vyper/internal/ast"
	"github.com/shapestone/shape-vyper/internal/parser"
	"github.com/shapestone/shape-vyper/internal/pipeline"
	"github.com/shapestone/shape-vyper/internal/scanner"
	"github.com/shapestone/shape-vyper/internal/token"
)

// TokenStream is the lazy, forward-only sequence tokenize() returns. Call
// Next until it reports false; a non-nil error on any call means the
// stream has failed and must not be read further.
type TokenStream struct {
	stream pipeline.Stream
}

// Next returns the stream's next token, or ok=false once it is exhausted.
func (ts *TokenStream) Next() (token.Token, bool, error) {
	return ts.stream.Next()
}

// Tokenize scans text and returns the post-pipeline token stream.
// The scanner itself runs eagerly (shape-core's Tokenizer
// has no natural suspension point mid-file), so a scan-level SyntaxError
// (IllegalCharacter, MixedIndent) surfaces here; everything the
// whitespace pipeline can fail on (MisalignedIndent, TooMuchIndenting,
// SpuriousIndent) surfaces lazily as the returned stream is drained.
func Tokenize(text string) (*TokenStream, error) {
	scanned, err := scanner.Convert(scanner.New(), text)
	if err != nil {
		return nil, err
	}
	return &TokenStream{stream: pipeline.Build(text, scanned)}, nil
}

// Parse eagerly drives Tokenize to completion and returns a Module AST.
func Parse(text string) (*ast.Module, error) {
	scanned, err := scanner.Convert(scanner.New(), text)
	if err != nil {
		return nil, err
	}
	stream := pipeline.Build(text, scanned)
	p, err := parser.New(text, stream)
	if err != nil {
		return nil, err
	}
	return p.ParseModule()
}
