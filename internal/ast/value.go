package ast

// Value is a GraphQL input value literal (or variable reference).
type Value interface {
	Node
	valueNode()
}

// Variable references an operation variable ($name).
type Variable struct {
	Base
	Name string
}

func (v *Variable) valueNode()       {}
func (v *Variable) Children() []Node { return nil }

// IntValue is an integer literal, kept as source text.
type IntValue struct {
	Base
	Raw string
}

func (v *IntValue) valueNode()       {}
func (v *IntValue) Children() []Node { return nil }

// FloatValue is a float literal, kept as source text.
type FloatValue struct {
	Base
	Raw string
}

func (v *FloatValue) valueNode()       {}
func (v *FloatValue) Children() []Node { return nil }

// StringValue is a string or block string literal, kept as source text
// including quotes.
type StringValue struct {
	Base
	Raw   string
	Block bool
}

func (v *StringValue) valueNode()       {}
func (v *StringValue) Children() []Node { return nil }

// BooleanValue is true or false.
type BooleanValue struct {
	Base
	Value bool
}

func (v *BooleanValue) valueNode()       {}
func (v *BooleanValue) Children() []Node { return nil }

// NullValue is the null literal.
type NullValue struct {
	Base
}

func (v *NullValue) valueNode()       {}
func (v *NullValue) Children() []Node { return nil }

// EnumValue is a bare name used as a value.
type EnumValue struct {
	Base
	Name string
}

func (v *EnumValue) valueNode()       {}
func (v *EnumValue) Children() []Node { return nil }

// ListValue is a bracketed list of values.
type ListValue struct {
	Base
	Values []Value
}

func (v *ListValue) valueNode() {}

func (v *ListValue) Children() []Node {
	out := make([]Node, len(v.Values))
	for i, val := range v.Values {
		out[i] = val
	}
	return out
}

// ObjectValue is a braced list of fields.
type ObjectValue struct {
	Base
	Fields []*ObjectField
}

func (v *ObjectValue) valueNode() {}

func (v *ObjectValue) Children() []Node {
	out := make([]Node, len(v.Fields))
	for i, f := range v.Fields {
		out[i] = f
	}
	return out
}

// ObjectField is one name:value pair inside an ObjectValue.
type ObjectField struct {
	Base
	Name  string
	Value Value
}

func (f *ObjectField) Children() []Node {
	if f.Value == nil {
		return nil
	}
	return []Node{f.Value}
}
