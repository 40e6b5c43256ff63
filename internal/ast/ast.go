// Package ast defines the tree parse produces: a Module and its
// declarations, statements, types and expressions.
// Nodes carry a Position the way shape-core's ast.SchemaNode does,
// but the node set itself is bespoke to this language rather than the
// generic object/literal tree a data-format parser needs.
package ast

import "fmt"

// Position is a byte offset plus its 1-based line/column, copied onto a
// node from the token that introduced it.
type Position struct {
	ByteIndex int
	Line      int
	Column    int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is implemented by the declaration, statement, expression, type and
// target nodes; Pos locates it in source for diagnostics that outlive the
// token stream itself. Module and the member records (Field,
// InterfaceFunc, IfBranch, DictEntry) do not implement it.
type Node interface {
	Pos() Position
}

// Module is the root of a parsed file. Declarations are bucketed by kind
// and kept in source order within each bucket.
type Module struct {
	Doc        string // empty if the module has no leading docstring
	HasDoc     bool
	Imports    []*Import
	Interfaces []*InterfaceDef
	Structs    []*StructDef
	Events     []*EventDef
	Storage    []*StorageDef
	Constants  []*ConstantDef
	Functions  []*FunctionDef
}

// Import is one imported name. A grouped `from x import (a, b)` form
// expands to one Import per name.
type Import struct {
	At    Position
	Path  []string // "." / ".." relative segments (leading dots taken in pairs), then dotted identifiers
	Star  bool      // `from path import *`
	Name  string     // imported identifier; empty when Star is set
	Alias string     // "" if no `as name` clause
}

func (n *Import) Pos() Position { return n.At }

// StorageDef is a `name : T ;` or `name : decorator(T) ;` module member.
type StorageDef struct {
	At        Position
	Name      string
	Type      Type
	Decorator *Decorator
}

func (n *StorageDef) Pos() Position { return n.At }

// ConstantDef is `name : constant(T) = expr ;`.
type ConstantDef struct {
	At    Position
	Name  string
	Type  Type
	Value Expr
}

func (n *ConstantDef) Pos() Position { return n.At }

// Field is a name/type pair shared by struct and event members.
type Field struct {
	Name    string
	Type    Type
	Indexed bool // event members only; always false for struct members
}

// StructDef is `struct Name : INDENT members DEDENT`.
type StructDef struct {
	At      Position
	Name    string
	Members []Field
}

func (n *StructDef) Pos() Position { return n.At }

// EventDef is `event Name : INDENT members DEDENT`.
type EventDef struct {
	At      Position
	Name    string
	Members []Field
}

func (n *EventDef) Pos() Position { return n.At }

// InterfaceFunc is one interface member: a signature plus its declared
// mutability (e.g. `view`, `nonpayable`).
type InterfaceFunc struct {
	At         Position
	Name       string
	Parameters []*Parameter
	Returns    Type // nil if the function returns nothing
	Mutability string
}

// InterfaceDef is `interface Name : INDENT functions DEDENT`.
type InterfaceDef struct {
	At        Position
	Name      string
	Functions []InterfaceFunc
}

func (n *InterfaceDef) Pos() Position { return n.At }

// FunctionDef is a decorated `def` with a parameter list, optional return
// type, optional leading docstring, and a body.
type FunctionDef struct {
	At         Position
	Name       string
	Parameters []*Parameter
	Returns    Type // nil if the function returns nothing
	Decorators []*Decorator
	Doc        string
	HasDoc     bool
	Body       []Stmt
}

func (n *FunctionDef) Pos() Position { return n.At }

// Parameter is `name : T [= default]`.
type Parameter struct {
	At      Position
	Name    string
	Type    Type
	Default Expr // nil if no default
}

func (n *Parameter) Pos() Position { return n.At }

// Decorator is `@name` or `@name(args)`.
type Decorator struct {
	At        Position
	Name      string
	Arguments []*Argument // nil for a bare decorator
}

func (n *Decorator) Pos() Position { return n.At }

// Argument is `[name =] expr` in a call or decorator argument list.
type Argument struct {
	At    Position
	Name  string // "" if positional
	Value Expr
}

func (n *Argument) Pos() Position { return n.At }
