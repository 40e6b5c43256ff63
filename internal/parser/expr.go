package parser

import (
	"github.com/shapestone/shape-vyper/internal/ast"
	"github.com/shapestone/shape-vyper/internal/token"
)

type assoc int

const (
	leftAssoc assoc = iota
	rightAssoc
	nonAssoc
)

type precInfo struct {
	level int
	assoc assoc
}

// binaryPrec is the precedence table, levels 1 (loosest)
// through 7 used for true infix operators; level 4 (unary) is handled in
// parseUnary, level 8 (augmented assigns) never reaches the expression
// grammar (it is recognised at statement level before a target), and
// level 9 (the attribute/call/index chain) is parsePrimaryChain's postfix
// loop, binding tighter than any entry here.
var binaryPrec = map[token.Kind]precInfo{
	token.ADD: {1, leftAssoc},
	token.SUB: {1, leftAssoc},

	token.MUL: {2, leftAssoc},
	token.DIV: {2, leftAssoc},

	token.AND: {3, leftAssoc},
	token.OR:  {3, leftAssoc},
	token.XOR: {3, leftAssoc},

	token.EQ: {5, nonAssoc},
	token.NE: {5, nonAssoc},
	token.LT: {5, nonAssoc},
	token.GT: {5, nonAssoc},
	token.LE: {5, nonAssoc},
	token.GE: {5, nonAssoc},
	token.IN: {5, nonAssoc},

	token.SHL: {6, nonAssoc},
	token.SHR: {6, nonAssoc},

	token.POW: {7, nonAssoc},
	token.MOD: {7, nonAssoc},
}

func posOf(t token.Token) ast.Position {
	return ast.Position{ByteIndex: t.ByteIndex, Line: t.Line, Column: t.Column}
}

// parseExpr is the expression grammar's entry point.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseBinary(1)
}

// parseBinary implements precedence climbing over binaryPrec, starting no
// lower than minLevel.
func (p *Parser) parseBinary(minLevel int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	lastNonAssoc := 0
	for p.hasCur {
		info, ok := binaryPrec[p.current.Kind]
		if !ok || info.level < minLevel || info.level == lastNonAssoc {
			break
		}
		opTok := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}

		rightMin := info.level + 1
		if info.assoc == rightAssoc {
			rightMin = info.level
		}
		right, err := p.parseBinary(rightMin)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{At: posOf(opTok), Op: opTok.Kind, Left: left, Right: right}

		if info.assoc == nonAssoc {
			// A second operator of the same non-associative level may not
			// chain onto this one; looser operators still may.
			lastNonAssoc = info.level
		}
	}
	return left, nil
}

// parseUnary handles level 4's prefix operators, `-` (USUB) and `not`.
// The operand climbs back into parseBinary at level 4, so operators at
// level 4 or above (comparisons, shifts, `**`) are absorbed into the
// operand — `-a == b` is `-(a == b)`, `-a ** b` is `-(a ** b)` — while
// level 1-3 operators (add/sub, mul/div, and/or/xor) stop it, so
// `-a * b` is `(-a) * b`.
func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.at(token.SUB) || p.at(token.NOT) {
		opTok := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseBinary(4)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{At: posOf(opTok), Op: opTok.Kind, Operand: operand}, nil
	}
	return p.parsePrimaryChain()
}

// parsePrimaryChain parses a primary atom followed by zero or more
// call/attribute/index postfixes, in any sequence. Level 9, the
// tightest-binding production.
func (p *Parser) parsePrimaryChain() (ast.Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.at(token.LPAREN):
			at := p.pos()
			if err := p.advance(); err != nil {
				return nil, err
			}
			args, err := p.parseArguments(token.RPAREN)
			if err != nil {
				return nil, err
			}
			e = &ast.CallExpr{At: at, Callee: e, Args: args}

		case p.at(token.DOT):
			at := p.pos()
			if err := p.advance(); err != nil {
				return nil, err
			}
			nameTok, err := p.expect(token.NAME)
			if err != nil {
				return nil, err
			}
			e = &ast.GetAttrExpr{At: at, Obj: e, Name: nameTok.Text}

		case p.at(token.LBRACKET):
			at := p.pos()
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			e = &ast.GetItemExpr{At: at, Obj: e, Index: idx}

		default:
			return e, nil
		}
	}
}

var literalKinds = map[token.Kind]bool{
	token.DECNUM: true, token.HEXNUM: true, token.OCTNUM: true,
	token.BINNUM: true, token.FLOAT: true, token.STRING: true,
}

// parsePrimary parses a literal, name, parenthesised expression or tuple
// literal, list literal, or dict literal.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	at := p.pos()
	if !p.hasCur {
		return nil, p.unexpectedEOF(token.NAME)
	}

	switch {
	case literalKinds[p.current.Kind]:
		t := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{At: at, Kind: t.Kind, Text: t.Text}, nil

	case p.at(token.BOOL):
		t := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, _ := token.LookupBool(t.Text)
		return &ast.Literal{At: at, Kind: token.BOOL, Text: t.Text, Bool: v}, nil

	case p.at(token.NAME):
		t := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.NameExpr{At: at, Name: t.Text}, nil

	case p.at(token.LPAREN):
		return p.parseParenOrTuple(at)

	case p.at(token.LBRACKET):
		return p.parseListLiteral(at)

	case p.at(token.LBRACE):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseDictBody(at)

	default:
		return nil, p.unexpectedToken(token.NAME)
	}
}

// parseParenOrTuple handles a parenthesised sub-expression, which
// collapses to its inner Expr (parens are inert), or a tuple
// literal `(e, e [, e]…)`, including the one-element form `(e,)`.
func (p *Parser) parseParenOrTuple(at ast.Position) (ast.Expr, error) {
	if err := p.advance(); err != nil { // '('
		return nil, err
	}
	if p.at(token.RPAREN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.TupleLit{At: at}, nil
	}

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.at(token.COMMA) {
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return first, nil
	}

	elems := []ast.Expr{first}
	for p.at(token.COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(token.RPAREN) {
			break
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.TupleLit{At: at, Elems: elems}, nil
}

func (p *Parser) parseListLiteral(at ast.Position) (ast.Expr, error) {
	if err := p.advance(); err != nil { // '['
		return nil, err
	}
	var elems []ast.Expr
	for !p.at(token.RBRACKET) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.at(token.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ListLit{At: at, Elems: elems}, nil
}

// parseDictBody parses `NAME: expr, …` up to and including the closing
// '}'; the caller has already consumed the opening '{'.
func (p *Parser) parseDictBody(at ast.Position) (*ast.DictLit, error) {
	var entries []ast.DictEntry
	for !p.at(token.RBRACE) {
		keyTok, err := p.expect(token.NAME)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.DictEntry{Key: keyTok.Text, Value: val})
		if p.at(token.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.DictLit{At: at, Entries: entries}, nil
}

// parseArguments parses a comma-separated `[NAME =] expr` list up to and
// including closeKind. Trailing commas are allowed.
func (p *Parser) parseArguments(closeKind token.Kind) ([]*ast.Argument, error) {
	var args []*ast.Argument
	for !p.at(closeKind) {
		at := p.pos()
		var name string
		if p.at(token.NAME) && p.nextAt(token.ASSIGN) {
			t, _ := p.expect(token.NAME)
			name = t.Text
			if err := p.advance(); err != nil { // '='
				return nil, err
			}
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, &ast.Argument{At: at, Name: name, Value: val})
		if p.at(token.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if _, err := p.expect(closeKind); err != nil {
		return nil, err
	}
	return args, nil
}
