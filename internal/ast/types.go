package ast

// Type is implemented by the four type-expression shapes this language
// allows: a bare name, a fixed-size array, a tuple, or a HashMap mapping.
type Type interface {
	Node
	typeNode()
}

// BaseType is a bare type name: `uint256`, `address`, a struct name, …
type BaseType struct {
	At   Position
	Name string
}

func (t *BaseType) Pos() Position { return t.At }
func (*BaseType) typeNode()       {}

// ArrayType is `T [DEC_NUM|NAME]`. Exactly one of SizeLiteral (a decimal
// literal's text) or SizeName (a named constant) is set.
type ArrayType struct {
	At          Position
	Elem        Type
	SizeLiteral string
	SizeName    string
}

func (t *ArrayType) Pos() Position { return t.At }
func (*ArrayType) typeNode()       {}

// TupleType is `(,)`, `(T,)`, or `(T, T {, T} [,])`.
type TupleType struct {
	At    Position
	Elems []Type
}

func (t *TupleType) Pos() Position { return t.At }
func (*TupleType) typeNode()       {}

// MappingType is `HashMap[BaseKey, ValType]`; the key is always a bare
// name.
type MappingType struct {
	At  Position
	Key *BaseType
	Val Type
}

func (t *MappingType) Pos() Position { return t.At }
func (*MappingType) typeNode()       {}
