package ast

// Type is a type reference in a variable definition.
type Type interface {
	Node
	typeNode()
	// Name returns the underlying named type.
	Name() string
}

// NamedType is a bare type name.
type NamedType struct {
	Base
	Ident string
}

func (t *NamedType) typeNode()        {}
func (t *NamedType) Children() []Node { return nil }
func (t *NamedType) Name() string     { return t.Ident }

// ListType wraps an element type in brackets.
type ListType struct {
	Base
	Elem Type
}

func (t *ListType) typeNode()        {}
func (t *ListType) Children() []Node { return []Node{t.Elem} }
func (t *ListType) Name() string     { return t.Elem.Name() }

// NonNullType marks its inner type non-nullable.
type NonNullType struct {
	Base
	Inner Type
}

func (t *NonNullType) typeNode()        {}
func (t *NonNullType) Children() []Node { return []Node{t.Inner} }
func (t *NonNullType) Name() string     { return t.Inner.Name() }
