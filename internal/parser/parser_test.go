package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-vyper/internal/ast"
	"github.com/shapestone/shape-vyper/internal/pipeline"
	"github.com/shapestone/shape-vyper/internal/scanner"
	"github.com/shapestone/shape-vyper/internal/token"
)

func parseModule(t *testing.T, source string) *ast.Module {
	t.Helper()
	scanned, err := scanner.Convert(scanner.New(), source)
	require.NoError(t, err)
	stream := pipeline.Build(source, scanned)
	p, err := New(source, stream)
	require.NoError(t, err)
	mod, err := p.ParseModule()
	require.NoError(t, err)
	return mod
}

func parseModuleErr(t *testing.T, source string) error {
	t.Helper()
	scanned, err := scanner.Convert(scanner.New(), source)
	if err != nil {
		return err
	}
	stream := pipeline.Build(source, scanned)
	p, err := New(source, stream)
	if err != nil {
		return err
	}
	_, err = p.ParseModule()
	return err
}

func TestParseImport_PlainForm(t *testing.T) {
	mod := parseModule(t, "import foo.bar as fb\n")
	require.Len(t, mod.Imports, 1)
	assert.Equal(t, []string{"foo", "bar"}, mod.Imports[0].Path)
	assert.Equal(t, "fb", mod.Imports[0].Alias)
	assert.False(t, mod.Imports[0].Star)
}

func TestParseImport_StarForm(t *testing.T) {
	mod := parseModule(t, "from foo import *\n")
	require.Len(t, mod.Imports, 1)
	assert.True(t, mod.Imports[0].Star)
	assert.Equal(t, []string{"foo"}, mod.Imports[0].Path)
}

func TestParseImport_SingleNameForm(t *testing.T) {
	mod := parseModule(t, "from foo import bar as baz\n")
	require.Len(t, mod.Imports, 1)
	assert.Equal(t, "bar", mod.Imports[0].Name)
	assert.Equal(t, "baz", mod.Imports[0].Alias)
}

func TestParseImport_GroupedForm(t *testing.T) {
	mod := parseModule(t, "from foo import (bar, baz as qux,)\n")
	require.Len(t, mod.Imports, 2)
	assert.Equal(t, "bar", mod.Imports[0].Name)
	assert.Equal(t, "baz", mod.Imports[1].Name)
	assert.Equal(t, "qux", mod.Imports[1].Alias)
}

func TestParseStorage_MappingType(t *testing.T) {
	mod := parseModule(t, "balances: HashMap[address, uint256]\n")
	require.Len(t, mod.Storage, 1)
	mt, ok := mod.Storage[0].Type.(*ast.MappingType)
	require.True(t, ok)
	assert.Equal(t, "address", mt.Key.Name)
	bt, ok := mt.Val.(*ast.BaseType)
	require.True(t, ok)
	assert.Equal(t, "uint256", bt.Name)
}

func TestParseStorage_PublicDecorator(t *testing.T) {
	mod := parseModule(t, "owner: public(address)\n")
	require.Len(t, mod.Storage, 1)
	require.NotNil(t, mod.Storage[0].Decorator)
	assert.Equal(t, "public", mod.Storage[0].Decorator.Name)
}

func TestParseConstant(t *testing.T) {
	mod := parseModule(t, "MAX_SUPPLY: constant(uint256) = 1000000\n")
	require.Len(t, mod.Constants, 1)
	assert.Equal(t, "MAX_SUPPLY", mod.Constants[0].Name)
	lit, ok := mod.Constants[0].Value.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "1000000", lit.Text)
}

func TestParseStruct(t *testing.T) {
	src := "struct Point:\n\tx: int128\n\ty: int128\n"
	mod := parseModule(t, src)
	require.Len(t, mod.Structs, 1)
	require.Len(t, mod.Structs[0].Members, 2)
	assert.Equal(t, "x", mod.Structs[0].Members[0].Name)
	assert.Equal(t, "y", mod.Structs[0].Members[1].Name)
}

func TestParseEvent_IndexedMember(t *testing.T) {
	src := "event Transfer:\n\tsender: indexed(address)\n\tamount: uint256\n"
	mod := parseModule(t, src)
	require.Len(t, mod.Events, 1)
	require.Len(t, mod.Events[0].Members, 2)
	assert.True(t, mod.Events[0].Members[0].Indexed)
	assert.False(t, mod.Events[0].Members[1].Indexed)
}

func TestParseInterface(t *testing.T) {
	src := "interface ERC20:\n\tdef balanceOf(owner: address) -> uint256: view\n"
	mod := parseModule(t, src)
	require.Len(t, mod.Interfaces, 1)
	require.Len(t, mod.Interfaces[0].Functions, 1)
	fn := mod.Interfaces[0].Functions[0]
	assert.Equal(t, "balanceOf", fn.Name)
	assert.Equal(t, "view", fn.Mutability)
	require.NotNil(t, fn.Returns)
}

func TestParseFunction_DecoratedWithDocstring(t *testing.T) {
	src := "@external\n@view\ndef get() -> uint256:\n\t\"\"\"returns the answer\"\"\"\n\treturn 42\n"
	mod := parseModule(t, src)
	require.Len(t, mod.Functions, 1)
	fn := mod.Functions[0]
	require.Len(t, fn.Decorators, 2)
	assert.Equal(t, "external", fn.Decorators[0].Name)
	assert.Equal(t, "view", fn.Decorators[1].Name)
	assert.True(t, fn.HasDoc)
	require.Len(t, fn.Body, 1)
	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	require.True(t, ok)
	lit, ok := ret.Expr.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "42", lit.Text)
}

func TestParseIfElifElse(t *testing.T) {
	src := "def f(x: uint256) -> uint256:\n" +
		"\tif x == 0:\n" +
		"\t\treturn 0\n" +
		"\telif x == 1:\n" +
		"\t\treturn 1\n" +
		"\telse:\n" +
		"\t\treturn 2\n"
	mod := parseModule(t, src)
	require.Len(t, mod.Functions, 1)
	require.Len(t, mod.Functions[0].Body, 1)
	ifStmt, ok := mod.Functions[0].Body[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, ifStmt.Branches, 3)
	assert.NotNil(t, ifStmt.Branches[0].Cond)
	assert.NotNil(t, ifStmt.Branches[1].Cond)
	assert.Nil(t, ifStmt.Branches[2].Cond)
}

func TestParseAugAssign_DesugarsToBinOp(t *testing.T) {
	src := "def f():\n\tx: uint256 = 0\n\tx += 1\n"
	mod := parseModule(t, src)
	body := mod.Functions[0].Body
	require.Len(t, body, 2)
	assign, ok := body[1].(*ast.AssignStmt)
	require.True(t, ok, "AugAssign must desugar to AssignStmt, not AugAssignStmt")
	bin, ok := assign.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.ADD, bin.Op)
}

func TestParseExpr_PrecedenceClimbing(t *testing.T) {
	// `+` binds looser than `*`, so `1 + 2 * 3` parses as `1 + (2 * 3)`.
	src := "def f():\n\treturn 1 + 2 * 3\n"
	mod := parseModule(t, src)
	ret := mod.Functions[0].Body[0].(*ast.ReturnStmt)
	top, ok := ret.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.ADD, top.Op)
	right, ok := top.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.MUL, right.Op)
}

func TestParseExpr_CallChain(t *testing.T) {
	src := "def f():\n\treturn self.balances[msg.sender]\n"
	mod := parseModule(t, src)
	ret := mod.Functions[0].Body[0].(*ast.ReturnStmt)
	item, ok := ret.Expr.(*ast.GetItemExpr)
	require.True(t, ok)
	attr, ok := item.Obj.(*ast.GetAttrExpr)
	require.True(t, ok)
	assert.Equal(t, "balances", attr.Name)
}

func TestParseExpr_UnaryBindsLooserThanComparison(t *testing.T) {
	// Unary `-` is level 4, comparisons are level 5: `-a == b` parses as
	// `-(a == b)`, not `(-a) == b`.
	src := "def f():\n\treturn -a == b\n"
	mod := parseModule(t, src)
	ret := mod.Functions[0].Body[0].(*ast.ReturnStmt)
	un, ok := ret.Expr.(*ast.UnaryExpr)
	require.True(t, ok, "top-level node must be the unary minus")
	assert.Equal(t, token.SUB, un.Op)
	cmp, ok := un.Operand.(*ast.BinaryExpr)
	require.True(t, ok, "unary's operand must be the == comparison")
	assert.Equal(t, token.EQ, cmp.Op)
}

func TestParseExpr_UnaryBindsLooserThanPow(t *testing.T) {
	// Unary `-` is level 4, `**` is level 7: `-a ** b` parses as
	// `-(a ** b)`.
	src := "def f():\n\treturn -a ** b\n"
	mod := parseModule(t, src)
	ret := mod.Functions[0].Body[0].(*ast.ReturnStmt)
	un, ok := ret.Expr.(*ast.UnaryExpr)
	require.True(t, ok)
	pow, ok := un.Operand.(*ast.BinaryExpr)
	require.True(t, ok, "unary's operand must be the ** expression")
	assert.Equal(t, token.POW, pow.Op)
}

func TestParseExpr_UnaryBindsTighterThanMul(t *testing.T) {
	// Unary `-` is level 4, `*` is level 2: `-a * b` parses as
	// `(-a) * b`.
	src := "def f():\n\treturn -a * b\n"
	mod := parseModule(t, src)
	ret := mod.Functions[0].Body[0].(*ast.ReturnStmt)
	mul, ok := ret.Expr.(*ast.BinaryExpr)
	require.True(t, ok, "top-level node must be the * expression")
	assert.Equal(t, token.MUL, mul.Op)
	_, ok = mul.Left.(*ast.UnaryExpr)
	assert.True(t, ok, "the unary minus must be the left operand of *")
}

func TestParseExpr_NotBindsLooserThanComparison(t *testing.T) {
	// `not a == b` parses as `not (a == b)`.
	src := "def f():\n\treturn not a == b\n"
	mod := parseModule(t, src)
	ret := mod.Functions[0].Body[0].(*ast.ReturnStmt)
	un, ok := ret.Expr.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.NOT, un.Op)
	_, ok = un.Operand.(*ast.BinaryExpr)
	assert.True(t, ok, "not's operand must be the == comparison")
}

func TestParseExpr_ParenCollapses(t *testing.T) {
	src := "def f():\n\treturn (1 + 2)\n"
	mod := parseModule(t, src)
	ret := mod.Functions[0].Body[0].(*ast.ReturnStmt)
	_, isBinary := ret.Expr.(*ast.BinaryExpr)
	assert.True(t, isBinary, "a singly-parenthesized expression collapses to its inner Expr")
}

func TestParseFor(t *testing.T) {
	src := "def f():\n\tfor i in range(10):\n\t\tpass\n"
	mod := parseModule(t, src)
	forStmt, ok := mod.Functions[0].Body[0].(*ast.ForStmt)
	require.True(t, ok)
	assert.Equal(t, "i", forStmt.Var)
	require.Len(t, forStmt.Body, 1)
}

func TestParseLog(t *testing.T) {
	src := "def f():\n\tlog Transfer({sender: msg.sender, amount: 1})\n"
	mod := parseModule(t, src)
	logStmt, ok := mod.Functions[0].Body[0].(*ast.LogStmt)
	require.True(t, ok)
	assert.Equal(t, "Transfer", logStmt.Name)
	require.Len(t, logStmt.Args.Entries, 2)
}

func TestParseError_MisalignedIndent(t *testing.T) {
	err := parseModuleErr(t, "def f():\n\t x = 1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MisalignedIndent")
	assert.Contains(t, err.Error(), "2:")
}

func TestParseError_TooMuchIndenting(t *testing.T) {
	err := parseModuleErr(t, "def f():\n\t\tx = 1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TooMuchIndenting")
	assert.Contains(t, err.Error(), "2:")
}

func TestParseError_UnexpectedToken(t *testing.T) {
	err := parseModuleErr(t, "def f(:\n\tpass\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UnexpectedToken")
}
