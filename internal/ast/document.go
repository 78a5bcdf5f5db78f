package ast

// Document is one parsed executable document.
type Document struct {
	Base
	Operations []*OperationDefinition
	Fragments  []*FragmentDefinition
}

func (d *Document) Children() []Node {
	out := make([]Node, 0, len(d.Operations)+len(d.Fragments))
	for _, op := range d.Operations {
		out = append(out, op)
	}
	for _, fr := range d.Fragments {
		out = append(out, fr)
	}
	return out
}

// Operation returns the operation matching name, or the single anonymous
// operation when name is empty and exactly one operation exists.
func (d *Document) Operation(name string) (*OperationDefinition, bool) {
	if name == "" {
		if len(d.Operations) == 1 {
			return d.Operations[0], true
		}
		return nil, false
	}
	for _, op := range d.Operations {
		if op.Name == name {
			return op, true
		}
	}
	return nil, false
}

// Fragment returns the fragment definition with the given name.
func (d *Document) Fragment(name string) (*FragmentDefinition, bool) {
	for _, fr := range d.Fragments {
		if fr.Name == name {
			return fr, true
		}
	}
	return nil, false
}
