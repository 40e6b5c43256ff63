// Package parser implements a recursive-descent parser, with precedence
// climbing for binary operators, over the pipeline's token stream. Its lookahead machinery is a two-token
// window (current, next) refilled one token at a time from upstream, with
// the grammar itself written as one function per production.
package parser

import (
	"github.com/shapestone/shape-vyper/internal/ast"
	"github.com/shapestone/shape-vyper/internal/diag"
	"github.com/shapestone/shape-vyper/internal/pipeline"
	"github.com/shapestone/shape-vyper/internal/token"
)

// Parser consumes a pipeline.Stream and builds a Module AST. It maintains
// a single lookahead token beyond the current one, enough to disambiguate
// every module_stmt and statement shape in the grammar without
// backtracking.
type Parser struct {
	source  string
	stream  pipeline.Stream
	current token.Token
	hasCur  bool
	next    token.Token
	hasNext bool
}

// New builds a Parser over stream, an already-built pipeline over source
// (source is kept for error excerpts), and primes its two-token lookahead.
// A fatal pipeline error raised while priming (e.g. a TooMuchIndenting on
// the first lines) is returned immediately.
func New(source string, stream pipeline.Stream) (*Parser, error) {
	p := &Parser{source: source, stream: stream}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance shifts next into current and pulls a new next from upstream.
func (p *Parser) advance() error {
	p.current, p.hasCur = p.next, p.hasNext
	t, ok, err := p.stream.Next()
	if err != nil {
		return err
	}
	p.next, p.hasNext = t, ok
	return nil
}

func (p *Parser) at(kind token.Kind) bool {
	return p.hasCur && p.current.Kind == kind
}

func (p *Parser) nextAt(kind token.Kind) bool {
	return p.hasNext && p.next.Kind == kind
}

func (p *Parser) pos() ast.Position {
	if p.hasCur {
		return ast.Position{ByteIndex: p.current.ByteIndex, Line: p.current.Line, Column: p.current.Column}
	}
	return ast.Position{}
}

// expect consumes the current token if it has kind, or raises
// UnexpectedToken / UnexpectedEOF. It returns the consumed token.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if !p.hasCur {
		return token.Token{}, p.unexpectedEOF(kind)
	}
	if p.current.Kind != kind {
		return token.Token{}, p.unexpectedToken(kind)
	}
	t := p.current
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return t, nil
}

func (p *Parser) unexpectedToken(want token.Kind) error {
	return diag.New(diag.UnexpectedToken, p.current.Line, p.current.Column, p.source,
		"expected %s, found %s", want, p.current.Kind)
}

func (p *Parser) unexpectedEOF(want token.Kind) error {
	line, col := p.eofPosition()
	return diag.New(diag.UnexpectedEOF, line, col, p.source,
		"expected %s, found end of input", want)
}

func (p *Parser) eofPosition() (int, int) {
	if p.hasCur {
		return p.current.Line, p.current.Column
	}
	n := len(p.source)
	line := 1
	for i := 0; i < n; i++ {
		if p.source[i] == '\n' {
			line++
		}
	}
	return line, 1
}

// ParseModule is the grammar's start symbol: `module := [DOCSTR] {module_stmt}`.
func (p *Parser) ParseModule() (*ast.Module, error) {
	mod := &ast.Module{}

	if p.at(token.DOCSTR) {
		mod.Doc = p.current.Text
		mod.HasDoc = true
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.skipEndstmts(); err != nil {
			return nil, err
		}
	}

	for p.hasCur {
		if err := p.parseModuleStmt(mod); err != nil {
			return nil, err
		}
		if err := p.skipEndstmts(); err != nil {
			return nil, err
		}
	}
	return mod, nil
}

// skipEndstmts consumes zero or more ENDSTMT tokens, such as the ones left
// between declarations, decorators, or statements once a production has
// consumed its own terminating ENDSTMT (or ends without one).
func (p *Parser) skipEndstmts() error {
	for p.at(token.ENDSTMT) {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseModuleStmt(mod *ast.Module) error {
	switch {
	case p.at(token.IMPORT) || p.at(token.FROM):
		imports, err := p.parseImport()
		if err != nil {
			return err
		}
		mod.Imports = append(mod.Imports, imports...)
	case p.at(token.INTERFACE):
		d, err := p.parseInterface()
		if err != nil {
			return err
		}
		mod.Interfaces = append(mod.Interfaces, d)
	case p.at(token.STRUCT):
		d, err := p.parseStruct()
		if err != nil {
			return err
		}
		mod.Structs = append(mod.Structs, d)
	case p.at(token.EVENT):
		d, err := p.parseEvent()
		if err != nil {
			return err
		}
		mod.Events = append(mod.Events, d)
	case p.at(token.AT) || p.at(token.DEF):
		d, err := p.parseFunction()
		if err != nil {
			return err
		}
		mod.Functions = append(mod.Functions, d)
	case p.at(token.NAME):
		decl, err := p.parseStorageOrConstant()
		if err != nil {
			return err
		}
		switch d := decl.(type) {
		case *ast.StorageDef:
			mod.Storage = append(mod.Storage, d)
		case *ast.ConstantDef:
			mod.Constants = append(mod.Constants, d)
		}
	default:
		return p.unexpectedToken(token.NAME)
	}
	return nil
}
