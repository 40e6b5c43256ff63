package ast

import "github.com/shapestone/shape-vyper/internal/token"

// Stmt is implemented by every statement node in a function body.
type Stmt interface {
	Node
	stmtNode()
}

// Target is one left-hand side entry of an Assign; it is one of Name,
// Getattr, Getitem, Tuple, or Skip (`_`). A For loop's bound name is a
// plain string (ForStmt.Var), not a Target.
type Target interface {
	Node
	targetNode()
}

// NameTarget assigns to a bare identifier.
type NameTarget struct {
	At   Position
	Name string
}

func (t *NameTarget) Pos() Position { return t.At }
func (*NameTarget) targetNode()     {}

// GetAttrTarget assigns to `obj.name`.
type GetAttrTarget struct {
	At   Position
	Obj  Expr
	Name string
}

func (t *GetAttrTarget) Pos() Position { return t.At }
func (*GetAttrTarget) targetNode()     {}

// GetItemTarget assigns to `obj[index]`.
type GetItemTarget struct {
	At    Position
	Obj   Expr
	Index Expr
}

func (t *GetItemTarget) Pos() Position { return t.At }
func (*GetItemTarget) targetNode()     {}

// TupleTarget destructures a multi-assignment's left-hand side.
type TupleTarget struct {
	At      Position
	Targets []Target
}

func (t *TupleTarget) Pos() Position { return t.At }
func (*TupleTarget) targetNode()     {}

// SkipTarget is `_`: the assigned value is discarded.
type SkipTarget struct {
	At Position
}

func (t *SkipTarget) Pos() Position { return t.At }
func (*SkipTarget) targetNode()     {}

// AllocateStmt is `name : T = init`: a storage-like declaration scoped to
// a function body.
type AllocateStmt struct {
	At   Position
	Name string
	Type Type
	Init Expr
}

func (s *AllocateStmt) Pos() Position { return s.At }
func (*AllocateStmt) stmtNode()       {}

// AssignStmt is `target {, target} = expr`.
type AssignStmt struct {
	At      Position
	Targets []Target
	Expr    Expr
}

func (s *AssignStmt) Pos() Position { return s.At }
func (*AssignStmt) stmtNode()       {}

// AugAssignStmt is `target op= expr`. The parser never constructs one:
// an augmented assignment desugars to an AssignStmt wrapping a BinaryExpr
// at parse time. The type is kept as the undesugared shape for any future
// caller that needs to distinguish `x += 1` from `x = x + 1` in source.
type AugAssignStmt struct {
	At     Position
	Target Target
	Op     token.Kind
	Expr   Expr
}

func (s *AugAssignStmt) Pos() Position { return s.At }
func (*AugAssignStmt) stmtNode()       {}

// ExprStmt is a bare expression evaluated for effect, most commonly a call.
type ExprStmt struct {
	At   Position
	Expr Expr
}

func (s *ExprStmt) Pos() Position { return s.At }
func (*ExprStmt) stmtNode()       {}

type BreakStmt struct{ At Position }

func (s *BreakStmt) Pos() Position { return s.At }
func (*BreakStmt) stmtNode()       {}

type ContinueStmt struct{ At Position }

func (s *ContinueStmt) Pos() Position { return s.At }
func (*ContinueStmt) stmtNode()       {}

type PassStmt struct{ At Position }

func (s *PassStmt) Pos() Position { return s.At }
func (*PassStmt) stmtNode()       {}

// ReturnStmt is `return [expr]`; Expr is nil for a bare return.
type ReturnStmt struct {
	At   Position
	Expr Expr
}

func (s *ReturnStmt) Pos() Position { return s.At }
func (*ReturnStmt) stmtNode()       {}

// RaiseStmt is `raise [STRING | UNREACHABLE]`. Unreachable is set instead
// of Message when the literal keyword form is used.
type RaiseStmt struct {
	At          Position
	Message     Expr
	Unreachable bool
}

func (s *RaiseStmt) Pos() Position { return s.At }
func (*RaiseStmt) stmtNode()       {}

// AssertStmt is `assert expr [, STRING | UNREACHABLE]`.
type AssertStmt struct {
	At          Position
	Cond        Expr
	Message     Expr
	Unreachable bool
}

func (s *AssertStmt) Pos() Position { return s.At }
func (*AssertStmt) stmtNode()       {}

// LogStmt is `log NAME ( dict )`.
type LogStmt struct {
	At   Position
	Name string
	Args *DictLit
}

func (s *LogStmt) Pos() Position { return s.At }
func (*LogStmt) stmtNode()       {}

// ForStmt is `for NAME in expr : body`.
type ForStmt struct {
	At   Position
	Var  string
	Iter Expr
	Body []Stmt
}

func (s *ForStmt) Pos() Position { return s.At }
func (*ForStmt) stmtNode()       {}

// IfBranch is one `cond : body` arm; Cond is nil for a trailing `else`.
type IfBranch struct {
	Cond Expr
	Body []Stmt
}

// IfStmt is `if expr : body {elif expr : body} [else : body]`.
type IfStmt struct {
	At       Position
	Branches []IfBranch
}

func (s *IfStmt) Pos() Position { return s.At }
func (*IfStmt) stmtNode()       {}
