package ast

import "github.com/shapestone/shape-vyper/internal/token"

// Expr is implemented by every expression node. Parenthesised
// sub-expressions are never represented: the parser collapses `(e)` to e
// itself; parens are inert once parsed.
type Expr interface {
	Node
	exprNode()
}

// Literal is a DEC_NUM/HEX_NUM/OCT_NUM/BIN_NUM/FLOAT/STRING/BOOL atom.
// Kind records which scanner token produced it so a later stage can apply
// the right numeric parsing rule without re-lexing Text.
type Literal struct {
	At   Position
	Kind token.Kind
	Text string
	Bool bool // meaningful only when Kind == token.BOOL
}

func (e *Literal) Pos() Position { return e.At }
func (*Literal) exprNode()       {}

// NameExpr is a bare identifier reference.
type NameExpr struct {
	At   Position
	Name string
}

func (e *NameExpr) Pos() Position { return e.At }
func (*NameExpr) exprNode()       {}

// UnaryExpr is `-x` (USUB) or `not x`.
type UnaryExpr struct {
	At      Position
	Op      token.Kind
	Operand Expr
}

func (e *UnaryExpr) Pos() Position { return e.At }
func (*UnaryExpr) exprNode()       {}

// BinaryExpr is any of the infix operators in the precedence table. An
// augmented assignment's desugared BinOp uses the plain operator, never
// the AUG* kind (`x += 1` desugars to Assign{target, BinOp(ADD, target, 1)}).
type BinaryExpr struct {
	At    Position
	Op    token.Kind
	Left  Expr
	Right Expr
}

func (e *BinaryExpr) Pos() Position { return e.At }
func (*BinaryExpr) exprNode()       {}

// CallExpr is `callee(args)`.
type CallExpr struct {
	At     Position
	Callee Expr
	Args   []*Argument
}

func (e *CallExpr) Pos() Position { return e.At }
func (*CallExpr) exprNode()       {}

// GetAttrExpr is `obj.name`.
type GetAttrExpr struct {
	At   Position
	Obj  Expr
	Name string
}

func (e *GetAttrExpr) Pos() Position { return e.At }
func (*GetAttrExpr) exprNode()       {}

// GetItemExpr is `obj[index]`.
type GetItemExpr struct {
	At    Position
	Obj   Expr
	Index Expr
}

func (e *GetItemExpr) Pos() Position { return e.At }
func (*GetItemExpr) exprNode()       {}

// TupleLit is `(e, e [, e]…)`.
type TupleLit struct {
	At    Position
	Elems []Expr
}

func (e *TupleLit) Pos() Position { return e.At }
func (*TupleLit) exprNode()       {}

// ListLit is `[e, e, …]`.
type ListLit struct {
	At    Position
	Elems []Expr
}

func (e *ListLit) Pos() Position { return e.At }
func (*ListLit) exprNode()       {}

// DictEntry is one `NAME: expr` pair of a dict literal.
type DictEntry struct {
	Key   string
	Value Expr
}

// DictLit is `{NAME: expr, …}`.
type DictLit struct {
	At      Position
	Entries []DictEntry
}

func (e *DictLit) Pos() Position { return e.At }
func (*DictLit) exprNode()       {}
