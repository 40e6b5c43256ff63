package parser

import (
	"github.com/shapestone/shape-vyper/internal/ast"
	"github.com/shapestone/shape-vyper/internal/token"
)

// parseBody parses `INDENT stmt+ DEDENT` (the caller has already consumed
// INDENT and will consume the matching DEDENT); `pass` alone satisfies
// stmt+ for an otherwise-empty body.
func (p *Parser) parseBody() ([]ast.Stmt, error) {
	if err := p.skipEndstmts(); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.at(token.DEDENT) {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)

		for p.at(token.SEMI) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.at(token.DEDENT) || p.at(token.ENDSTMT) {
				break
			}
			s, err := p.parseStmt()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, s)
		}
		if err := p.skipEndstmts(); err != nil {
			return nil, err
		}
	}
	return stmts, nil
}

func (p *Parser) canStartExpr() bool {
	if !p.hasCur {
		return false
	}
	switch p.current.Kind {
	case token.NAME, token.STRING, token.DECNUM, token.HEXNUM, token.OCTNUM, token.BINNUM,
		token.FLOAT, token.BOOL, token.LPAREN, token.LBRACKET, token.LBRACE, token.SUB, token.NOT:
		return true
	default:
		return false
	}
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	at := p.pos()
	switch {
	case p.at(token.PASS):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.PassStmt{At: at}, nil

	case p.at(token.BREAK):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.BreakStmt{At: at}, nil

	case p.at(token.CONTINUE):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{At: at}, nil

	case p.at(token.RETURN):
		if err := p.advance(); err != nil {
			return nil, err
		}
		var e ast.Expr
		if p.canStartExpr() {
			var err error
			e, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		return &ast.ReturnStmt{At: at, Expr: e}, nil

	case p.at(token.RAISE):
		return p.parseRaise(at)

	case p.at(token.ASSERT):
		return p.parseAssert(at)

	case p.at(token.LOG):
		return p.parseLog(at)

	case p.at(token.FOR):
		return p.parseFor()

	case p.at(token.IF):
		return p.parseIf()

	default:
		return p.parseSimpleStmt(at)
	}
}

func (p *Parser) parseRaise(at ast.Position) (ast.Stmt, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	stmt := &ast.RaiseStmt{At: at}
	switch {
	case p.at(token.UNREACHABLE):
		stmt.Unreachable = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	case p.at(token.STRING):
		t, err := p.expect(token.STRING)
		if err != nil {
			return nil, err
		}
		stmt.Message = &ast.Literal{At: at, Kind: token.STRING, Text: t.Text}
	}
	return stmt, nil
}

func (p *Parser) parseAssert(at ast.Position) (ast.Stmt, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	stmt := &ast.AssertStmt{At: at, Cond: cond}
	if p.at(token.COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch {
		case p.at(token.UNREACHABLE):
			stmt.Unreachable = true
			if err := p.advance(); err != nil {
				return nil, err
			}
		default:
			msgAt := p.pos()
			t, err := p.expect(token.STRING)
			if err != nil {
				return nil, err
			}
			stmt.Message = &ast.Literal{At: msgAt, Kind: token.STRING, Text: t.Text}
		}
	}
	return stmt, nil
}

func (p *Parser) parseLog(at ast.Position) (ast.Stmt, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	dictAt := p.pos()
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	dict, err := p.parseDictBody(dictAt)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.LogStmt{At: at, Name: nameTok.Text, Args: dict}, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	at := p.pos()
	if _, err := p.expect(token.FOR); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.IN); err != nil {
		return nil, err
	}
	iter, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.INDENT); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}
	return &ast.ForStmt{At: at, Var: nameTok.Text, Iter: iter, Body: body}, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	at := p.pos()
	if _, err := p.expect(token.IF); err != nil {
		return nil, err
	}
	branch, err := p.parseIfArm()
	if err != nil {
		return nil, err
	}
	branches := []ast.IfBranch{branch}

	for p.at(token.ELIF) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		b, err := p.parseIfArm()
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	if p.at(token.ELSE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.INDENT); err != nil {
			return nil, err
		}
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.DEDENT); err != nil {
			return nil, err
		}
		branches = append(branches, ast.IfBranch{Body: body})
	}

	return &ast.IfStmt{At: at, Branches: branches}, nil
}

// parseIfArm parses the `expr : INDENT body DEDENT` shared by `if` and
// `elif`, with the keyword itself already consumed by the caller.
func (p *Parser) parseIfArm() (ast.IfBranch, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return ast.IfBranch{}, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return ast.IfBranch{}, err
	}
	if _, err := p.expect(token.INDENT); err != nil {
		return ast.IfBranch{}, err
	}
	body, err := p.parseBody()
	if err != nil {
		return ast.IfBranch{}, err
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return ast.IfBranch{}, err
	}
	return ast.IfBranch{Cond: cond, Body: body}, nil
}

var augToBinOp = map[token.Kind]token.Kind{
	token.AUGADD: token.ADD,
	token.AUGSUB: token.SUB,
	token.AUGMUL: token.MUL,
	token.AUGDIV: token.DIV,
	token.AUGPOW: token.POW,
	token.AUGMOD: token.MOD,
}

// parseSimpleStmt handles everything not dispatched by keyword: Allocate,
// Assign, AugAssign (desugared into a plain Assign of a BinaryExpr), and
// bare ExprStmt.
func (p *Parser) parseSimpleStmt(at ast.Position) (ast.Stmt, error) {
	if p.at(token.NAME) && p.nextAt(token.COLON) {
		nameTok, err := p.expect(token.NAME)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ASSIGN); err != nil {
			return nil, err
		}
		init, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.AllocateStmt{At: at, Name: nameTok.Text, Type: typ, Init: init}, nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	switch {
	case p.at(token.COMMA) || p.at(token.ASSIGN):
		first, err := exprToTarget(expr)
		if err != nil {
			return nil, err
		}
		targets := []ast.Target{first}
		for p.at(token.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			t, err := p.parseTarget()
			if err != nil {
				return nil, err
			}
			targets = append(targets, t)
		}
		if _, err := p.expect(token.ASSIGN); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{At: at, Targets: targets, Expr: rhs}, nil

	case augToBinOp[p.current.Kind] != "":
		target, err := exprToTarget(expr)
		if err != nil {
			return nil, err
		}
		baseOp := augToBinOp[p.current.Kind]
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{
			At:      at,
			Targets: []ast.Target{target},
			Expr:    &ast.BinaryExpr{At: at, Op: baseOp, Left: expr, Right: rhs},
		}, nil

	default:
		return &ast.ExprStmt{At: at, Expr: expr}, nil
	}
}

// parseTarget parses a single assignment target: Name, Getattr, Getitem,
// a parenthesised Tuple, or Skip (`_`).
func (p *Parser) parseTarget() (ast.Target, error) {
	at := p.pos()
	if p.at(token.SKIP) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.SkipTarget{At: at}, nil
	}
	if p.at(token.LPAREN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var targets []ast.Target
		for !p.at(token.RPAREN) {
			t, err := p.parseTarget()
			if err != nil {
				return nil, err
			}
			targets = append(targets, t)
			if p.at(token.COMMA) {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.TupleTarget{At: at, Targets: targets}, nil
	}
	expr, err := p.parsePrimaryChain()
	if err != nil {
		return nil, err
	}
	return exprToTarget(expr)
}

// exprToTarget narrows an already-parsed Expr down to a Target, the shapes
// allowed for the left side of an assignment.
func exprToTarget(e ast.Expr) (ast.Target, error) {
	switch v := e.(type) {
	case *ast.NameExpr:
		return &ast.NameTarget{At: v.At, Name: v.Name}, nil
	case *ast.GetAttrExpr:
		return &ast.GetAttrTarget{At: v.At, Obj: v.Obj, Name: v.Name}, nil
	case *ast.GetItemExpr:
		return &ast.GetItemTarget{At: v.At, Obj: v.Obj, Index: v.Index}, nil
	default:
		return nil, unassignableTarget(e)
	}
}
