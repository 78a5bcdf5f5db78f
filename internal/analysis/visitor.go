package analysis

import (
	"gqlcheck/internal/ast"
)

// Stack capacity constants for the iterative traversal.
const (
	visitorStackInitCap = 64
)

// Visitor performs the single shared traversal pass for one query. Every
// observer receives Enter/Leave for each node, in observer order, before
// the walk moves on. A rescued error stops the walk immediately.
//
// The walk starts at the query's operation and descends through fragment
// spreads into the referenced fragment definitions; a fragment already on
// the current path is not entered again.
type Visitor struct {
	query     *Query
	observers []Analyzer
	rescued   []*Error
	active    map[string]bool // fragments on the current path
}

// NewVisitor builds a visitor over the query with the given observer list.
func NewVisitor(q *Query, observers []Analyzer) *Visitor {
	return &Visitor{
		query:     q,
		observers: observers,
		active:    make(map[string]bool),
	}
}

// Query returns the query being traversed, for observers that need scope
// context at hook time.
func (v *Visitor) Query() *Query {
	return v.query
}

// RescuedErrors returns the analysis errors captured during Visit, without
// propagating them as faults.
func (v *Visitor) RescuedErrors() []*Error {
	return v.rescued
}

// visitFrame tracks one node on the explicit traversal stack. childIdx -1
// means Enter has not fired yet; childIdx == len(children) fires Leave.
type visitFrame struct {
	node     ast.Node
	children []ast.Node
	childIdx int
	release  string // fragment name to release when this frame pops
}

// Visit performs exactly one full pass. Safe to call on a query with no
// resolvable operation (walks the whole document then).
func (v *Visitor) Visit() {
	if v.query == nil || v.query.Doc == nil || len(v.observers) == 0 {
		return
	}

	var root ast.Node
	if op, ok := v.query.Operation(); ok {
		root = op
	} else {
		root = v.query.Doc
	}

	stack := make([]visitFrame, 0, visitorStackInitCap)
	stack = append(stack, visitFrame{node: root, childIdx: -1})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.childIdx == -1 {
			if !v.enter(top.node) {
				return
			}
			top.childIdx = 0
			top.children = v.childrenOf(top.node)
			continue
		}

		if top.childIdx < len(top.children) {
			child := top.children[top.childIdx]
			top.childIdx++

			frame := visitFrame{node: child, childIdx: -1}
			if def, ok := child.(*ast.FragmentDefinition); ok {
				if _, viaSpread := top.node.(*ast.FragmentSpread); viaSpread {
					frame.release = def.Name
					v.active[def.Name] = true
				}
			}
			stack = append(stack, frame)
			continue
		}

		if !v.leave(top.node) {
			return
		}
		if top.release != "" {
			delete(v.active, top.release)
		}
		stack = stack[:len(stack)-1]
	}
}

// enter fires Enter on every observer, in order. Returns false after a
// rescued error; remaining observers and nodes are skipped.
func (v *Visitor) enter(n ast.Node) bool {
	for _, obs := range v.observers {
		if err := obs.Enter(n); err != nil {
			v.rescued = append(v.rescued, asAnalysisError(err))
			return false
		}
	}
	return true
}

func (v *Visitor) leave(n ast.Node) bool {
	for _, obs := range v.observers {
		if err := obs.Leave(n); err != nil {
			v.rescued = append(v.rescued, asAnalysisError(err))
			return false
		}
	}
	return true
}

// childrenOf extends structural children: a fragment spread also descends
// into the referenced fragment definition, unless that fragment is already
// on the current path.
func (v *Visitor) childrenOf(n ast.Node) []ast.Node {
	children := n.Children()

	spread, ok := n.(*ast.FragmentSpread)
	if !ok {
		return children
	}
	if v.active[spread.Name] {
		return children
	}
	def, ok := v.query.Doc.Fragment(spread.Name)
	if !ok {
		return children
	}

	out := make([]ast.Node, 0, len(children)+1)
	out = append(out, children...)
	out = append(out, def)
	return out
}
