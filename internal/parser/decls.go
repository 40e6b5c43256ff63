package parser

import (
	"github.com/shapestone/shape-vyper/internal/ast"
	"github.com/shapestone/shape-vyper/internal/token"
)

// parsePath parses `{"."} (relative-dots) followed by dotted identifiers`;
// an all-dots path (bare relative import) is allowed.
func (p *Parser) parsePath() ([]string, error) {
	var segs []string
	for p.at(token.DOT) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(token.DOT) {
			segs = append(segs, "..")
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		segs = append(segs, ".")
	}
	if p.at(token.NAME) {
		t, err := p.expect(token.NAME)
		if err != nil {
			return nil, err
		}
		segs = append(segs, t.Text)
		for p.at(token.DOT) && p.nextAt(token.NAME) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			t, err := p.expect(token.NAME)
			if err != nil {
				return nil, err
			}
			segs = append(segs, t.Text)
		}
	}
	if len(segs) == 0 {
		return nil, p.unexpectedToken(token.NAME)
	}
	return segs, nil
}

// parseImport handles all four import forms. The grouped
// `from path import (a, b)` form yields one *ast.Import per name.
func (p *Parser) parseImport() ([]*ast.Import, error) {
	at := p.pos()

	if p.at(token.IMPORT) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		path, err := p.parsePath()
		if err != nil {
			return nil, err
		}
		alias, err := p.parseOptionalAs()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ENDSTMT); err != nil {
			return nil, err
		}
		return []*ast.Import{{At: at, Path: path, Alias: alias}}, nil
	}

	if _, err := p.expect(token.FROM); err != nil {
		return nil, err
	}
	path, err := p.parsePath()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.IMPORT); err != nil {
		return nil, err
	}

	switch {
	case p.at(token.MUL):
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ENDSTMT); err != nil {
			return nil, err
		}
		return []*ast.Import{{At: at, Path: path, Star: true}}, nil

	case p.at(token.LPAREN):
		if err := p.advance(); err != nil {
			return nil, err
		}
		var imports []*ast.Import
		for !p.at(token.RPAREN) {
			nameTok, err := p.expect(token.NAME)
			if err != nil {
				return nil, err
			}
			alias, err := p.parseOptionalAs()
			if err != nil {
				return nil, err
			}
			imports = append(imports, &ast.Import{At: at, Path: path, Name: nameTok.Text, Alias: alias})
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
		if _, err := p.expect(token.ENDSTMT); err != nil {
			return nil, err
		}
		return imports, nil

	default:
		nameTok, err := p.expect(token.NAME)
		if err != nil {
			return nil, err
		}
		alias, err := p.parseOptionalAs()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ENDSTMT); err != nil {
			return nil, err
		}
		return []*ast.Import{{At: at, Path: path, Name: nameTok.Text, Alias: alias}}, nil
	}
}

func (p *Parser) parseOptionalAs() (string, error) {
	if !p.at(token.AS) {
		return "", nil
	}
	if err := p.advance(); err != nil {
		return "", err
	}
	t, err := p.expect(token.NAME)
	if err != nil {
		return "", err
	}
	return t.Text, nil
}

// parseType parses a type expression: a bare name, an array, a tuple, or
// a HashMap mapping.
func (p *Parser) parseType() (ast.Type, error) {
	at := p.pos()

	if p.at(token.LPAREN) {
		return p.parseTupleType(at)
	}

	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}

	if nameTok.Text == "HashMap" {
		if _, err := p.expect(token.LBRACKET); err != nil {
			return nil, err
		}
		keyAt := p.pos()
		keyTok, err := p.expect(token.NAME)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		val, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
		return &ast.MappingType{At: at, Key: &ast.BaseType{At: keyAt, Name: keyTok.Text}, Val: val}, nil
	}

	base := &ast.BaseType{At: at, Name: nameTok.Text}
	if !p.at(token.LBRACKET) {
		return base, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	arr := &ast.ArrayType{At: at, Elem: base}
	switch {
	case p.at(token.DECNUM):
		t, _ := p.expect(token.DECNUM)
		arr.SizeLiteral = t.Text
	case p.at(token.NAME):
		t, _ := p.expect(token.NAME)
		arr.SizeName = t.Text
	default:
		return nil, p.unexpectedToken(token.DECNUM)
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return arr, nil
}

// parseTupleType handles `(,)`, `(T,)`, and `(T, T {, T} [,])`.
func (p *Parser) parseTupleType(at ast.Position) (ast.Type, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	tup := &ast.TupleType{At: at}

	if p.at(token.COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return tup, nil
	}

	first, err := p.parseType()
	if err != nil {
		return nil, err
	}
	tup.Elems = append(tup.Elems, first)

	for p.at(token.COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(token.RPAREN) {
			break
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		tup.Elems = append(tup.Elems, t)
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return tup, nil
}

// decoratorLike reports whether the parser is looking at `IDENT (`, the
// shape shared by `constant(T)`, `indexed(T)`, and a plain storage
// decorator `name(T)`.
func (p *Parser) decoratorLike() bool {
	return p.at(token.NAME) && p.nextAt(token.LPAREN)
}

// parseStorageOrConstant handles `name : T ;`, `name : decorator(T) ;`,
// and `name : constant(T) = expr ;`.
func (p *Parser) parseStorageOrConstant() (ast.Node, error) {
	at := p.pos()
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}

	if p.decoratorLike() && p.current.Text == "constant" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil { // '('
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ASSIGN); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ENDSTMT); err != nil {
			return nil, err
		}
		return &ast.ConstantDef{At: at, Name: nameTok.Text, Type: typ, Value: value}, nil
	}

	if p.decoratorLike() {
		decAt := p.pos()
		decTok, _ := p.expect(token.NAME)
		if err := p.advance(); err != nil { // '('
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ENDSTMT); err != nil {
			return nil, err
		}
		return &ast.StorageDef{At: at, Name: nameTok.Text, Type: typ,
			Decorator: &ast.Decorator{At: decAt, Name: decTok.Text}}, nil
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ENDSTMT); err != nil {
		return nil, err
	}
	return &ast.StorageDef{At: at, Name: nameTok.Text, Type: typ}, nil
}

// parseStructField is a struct member: `name : T` terminated by ENDSTMT.
func (p *Parser) parseStructField() (ast.Field, error) {
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return ast.Field{}, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return ast.Field{}, err
	}
	typ, err := p.parseType()
	if err != nil {
		return ast.Field{}, err
	}
	if _, err := p.expect(token.ENDSTMT); err != nil {
		return ast.Field{}, err
	}
	return ast.Field{Name: nameTok.Text, Type: typ}, nil
}

// parseEventField is an event member, which may carry `indexed(T)`,
// flattening to `{indexed: true, type: T}`.
func (p *Parser) parseEventField() (ast.Field, error) {
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return ast.Field{}, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return ast.Field{}, err
	}

	if p.decoratorLike() && p.current.Text == "indexed" {
		if err := p.advance(); err != nil {
			return ast.Field{}, err
		}
		if err := p.advance(); err != nil { // '('
			return ast.Field{}, err
		}
		typ, err := p.parseType()
		if err != nil {
			return ast.Field{}, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return ast.Field{}, err
		}
		if _, err := p.expect(token.ENDSTMT); err != nil {
			return ast.Field{}, err
		}
		return ast.Field{Name: nameTok.Text, Type: typ, Indexed: true}, nil
	}

	typ, err := p.parseType()
	if err != nil {
		return ast.Field{}, err
	}
	if _, err := p.expect(token.ENDSTMT); err != nil {
		return ast.Field{}, err
	}
	return ast.Field{Name: nameTok.Text, Type: typ}, nil
}

func (p *Parser) parseStruct() (*ast.StructDef, error) {
	at := p.pos()
	if _, err := p.expect(token.STRUCT); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	members, err := p.parseMemberBody(p.parseStructField)
	if err != nil {
		return nil, err
	}
	return &ast.StructDef{At: at, Name: nameTok.Text, Members: members}, nil
}

func (p *Parser) parseEvent() (*ast.EventDef, error) {
	at := p.pos()
	if _, err := p.expect(token.EVENT); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	members, err := p.parseMemberBody(p.parseEventField)
	if err != nil {
		return nil, err
	}
	return &ast.EventDef{At: at, Name: nameTok.Text, Members: members}, nil
}

// parseMemberBody parses the `: INDENT body DEDENT` shared by struct and
// event headers, where body is `pass ENDSTMT` or a non-empty member list.
func (p *Parser) parseMemberBody(parseOne func() (ast.Field, error)) ([]ast.Field, error) {
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.INDENT); err != nil {
		return nil, err
	}
	if err := p.skipEndstmts(); err != nil {
		return nil, err
	}

	var members []ast.Field
	if p.at(token.PASS) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ENDSTMT); err != nil {
			return nil, err
		}
	} else {
		for !p.at(token.DEDENT) {
			m, err := parseOne()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
			if err := p.skipEndstmts(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}
	return members, nil
}

func (p *Parser) parseInterface() (*ast.InterfaceDef, error) {
	at := p.pos()
	if _, err := p.expect(token.INTERFACE); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.INDENT); err != nil {
		return nil, err
	}
	if err := p.skipEndstmts(); err != nil {
		return nil, err
	}

	var funcs []ast.InterfaceFunc
	if p.at(token.PASS) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ENDSTMT); err != nil {
			return nil, err
		}
	} else {
		for !p.at(token.DEDENT) {
			f, err := p.parseInterfaceFunc()
			if err != nil {
				return nil, err
			}
			funcs = append(funcs, f)
			if err := p.skipEndstmts(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}
	return &ast.InterfaceDef{At: at, Name: nameTok.Text, Functions: funcs}, nil
}

// parseInterfaceFunc is a signature `def NAME ( params ) [-> NAME]`
// followed by `: mutability-name`.
func (p *Parser) parseInterfaceFunc() (ast.InterfaceFunc, error) {
	at := p.pos()
	if _, err := p.expect(token.DEF); err != nil {
		return ast.InterfaceFunc{}, err
	}
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return ast.InterfaceFunc{}, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return ast.InterfaceFunc{}, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return ast.InterfaceFunc{}, err
	}
	var returns ast.Type
	if p.at(token.ARROW) {
		if err := p.advance(); err != nil {
			return ast.InterfaceFunc{}, err
		}
		returns, err = p.parseType()
		if err != nil {
			return ast.InterfaceFunc{}, err
		}
	}
	if _, err := p.expect(token.COLON); err != nil {
		return ast.InterfaceFunc{}, err
	}
	mutTok, err := p.expect(token.NAME)
	if err != nil {
		return ast.InterfaceFunc{}, err
	}
	if _, err := p.expect(token.ENDSTMT); err != nil {
		return ast.InterfaceFunc{}, err
	}
	return ast.InterfaceFunc{At: at, Name: nameTok.Text, Parameters: params, Returns: returns, Mutability: mutTok.Text}, nil
}

// parseParameters parses the comma-separated `name : T [= default]` list
// up to and including the closing ')'. Trailing commas are allowed.
func (p *Parser) parseParameters() ([]*ast.Parameter, error) {
	var params []*ast.Parameter
	if p.at(token.RPAREN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return params, nil
	}
	for {
		at := p.pos()
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
		var def ast.Expr
		if p.at(token.ASSIGN) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			def, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		params = append(params, &ast.Parameter{At: at, Name: nameTok.Text, Type: typ, Default: def})
		if p.at(token.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.at(token.RPAREN) {
				break
			}
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseDecorators() ([]*ast.Decorator, error) {
	var decs []*ast.Decorator
	for p.at(token.AT) {
		at := p.pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.NAME)
		if err != nil {
			return nil, err
		}
		var args []*ast.Argument
		if p.at(token.LPAREN) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			args, err = p.parseArguments(token.RPAREN)
			if err != nil {
				return nil, err
			}
		}
		decs = append(decs, &ast.Decorator{At: at, Name: nameTok.Text, Arguments: args})
		if err := p.skipEndstmts(); err != nil {
			return nil, err
		}
	}
	return decs, nil
}

// parseFunction handles `{decorator} def NAME ( parameters ) [-> NAME] :
// [DOCSTR] body`. The pipeline's swap_order step already reorders a
// leading DOCSTR after its INDENT, so the docstring check below simply
// follows INDENT in token order.
func (p *Parser) parseFunction() (*ast.FunctionDef, error) {
	startAt := p.pos()
	decs, err := p.parseDecorators()
	if err != nil {
		return nil, err
	}
	defAt := p.pos()
	if _, err := p.expect(token.DEF); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	var returns ast.Type
	if p.at(token.ARROW) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		returns, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.INDENT); err != nil {
		return nil, err
	}

	var doc string
	hasDoc := false
	if p.at(token.DOCSTR) {
		doc = p.current.Text
		hasDoc = true
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.skipEndstmts(); err != nil {
			return nil, err
		}
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}

	at := startAt
	if len(decs) == 0 {
		at = defAt
	}
	return &ast.FunctionDef{At: at, Name: nameTok.Text, Parameters: params, Returns: returns,
		Decorators: decs, Doc: doc, HasDoc: hasDoc, Body: body}, nil
}
