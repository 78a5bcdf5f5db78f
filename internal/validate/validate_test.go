package validate

import (
	"testing"

	"gqlcheck/internal/ast"
	"gqlcheck/internal/diag"
	"gqlcheck/internal/parser"
	"gqlcheck/internal/source"
)

func check(t *testing.T, src string) (*ast.Document, *Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.graphql", []byte(src))
	bag := diag.NewBag(32)
	doc := parser.ParseDocument(fs.Get(id), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	res := Document(doc, diag.BagReporter{Bag: bag})
	return doc, res, bag
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestValidDocument(t *testing.T) {
	_, res, bag := check(t, `
		query Hero { hero { ...Named } }
		fragment Named on Character { name }
	`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if !res.DocValid || !res.OperationValid("Hero") {
		t.Fatalf("valid document rejected")
	}
}

func TestDuplicateOperationNames(t *testing.T) {
	_, res, bag := check(t, `
		query A { a }
		query A { b }
	`)
	if !hasCode(bag, diag.ValDuplicateOperation) {
		t.Fatalf("missing duplicate-operation error: %v", bag.Items())
	}
	if res.OperationValid("A") {
		t.Fatalf("duplicated operation still valid")
	}
}

func TestAnonymousMustBeAlone(t *testing.T) {
	_, res, bag := check(t, `
		{ a }
		query B { b }
	`)
	if !hasCode(bag, diag.ValAnonymousNotAlone) {
		t.Fatalf("missing anonymous-not-alone error: %v", bag.Items())
	}
	if res.OperationValid("") {
		t.Fatalf("misplaced anonymous operation still valid")
	}
	if !res.OperationValid("B") {
		t.Fatalf("sibling named operation must stay valid")
	}
}

func TestNoOperations(t *testing.T) {
	_, res, bag := check(t, `fragment F on T { x }`)
	if !hasCode(bag, diag.ValNoOperations) {
		t.Fatalf("missing no-operations error: %v", bag.Items())
	}
	if res.DocValid {
		t.Fatalf("empty document must be invalid")
	}
}

func TestDuplicateFragment(t *testing.T) {
	_, res, bag := check(t, `
		query Q { ...F }
		fragment F on T { a }
		fragment F on T { b }
	`)
	if !hasCode(bag, diag.ValDuplicateFragment) {
		t.Fatalf("missing duplicate-fragment error: %v", bag.Items())
	}
	if res.DocValid {
		t.Fatalf("duplicate fragments invalidate the document")
	}
}

func TestUndefinedFragmentInvalidatesOnlyReachingOperation(t *testing.T) {
	_, res, bag := check(t, `
		query Broken { ...Missing }
		query Fine { ok }
	`)
	if !hasCode(bag, diag.ValUndefinedFragment) {
		t.Fatalf("missing undefined-fragment error: %v", bag.Items())
	}
	if res.OperationValid("Broken") {
		t.Fatalf("operation spreading an undefined fragment must be invalid")
	}
	if !res.OperationValid("Fine") {
		t.Fatalf("unrelated operation must stay valid")
	}
}

func TestFragmentCycle(t *testing.T) {
	_, res, bag := check(t, `
		query Q { ...A }
		fragment A on T { ...B }
		fragment B on T { ...A }
	`)
	if !hasCode(bag, diag.ValFragmentCycle) {
		t.Fatalf("missing fragment-cycle error: %v", bag.Items())
	}
	if res.DocValid {
		t.Fatalf("cyclic fragments invalidate the document")
	}
}

func TestSelfCycle(t *testing.T) {
	_, _, bag := check(t, `
		query Q { ...A }
		fragment A on T { x ...A }
	`)
	if !hasCode(bag, diag.ValFragmentCycle) {
		t.Fatalf("missing self-cycle error: %v", bag.Items())
	}
}

func TestUnusedFragmentWarns(t *testing.T) {
	_, res, bag := check(t, `
		query Q { a }
		fragment Orphan on T { x }
	`)
	if !hasCode(bag, diag.ValUnusedFragment) {
		t.Fatalf("missing unused-fragment warning: %v", bag.Items())
	}
	if bag.HasErrors() {
		t.Fatalf("unused fragment is a warning, not an error: %v", bag.Items())
	}
	if !res.DocValid || !res.OperationValid("Q") {
		t.Fatalf("warning must not invalidate anything")
	}
}

func TestDuplicateVariable(t *testing.T) {
	_, res, bag := check(t, `query Q($x: Int, $x: Int) { a }`)
	if !hasCode(bag, diag.ValDuplicateVariable) {
		t.Fatalf("missing duplicate-variable error: %v", bag.Items())
	}
	if res.OperationValid("Q") {
		t.Fatalf("operation with duplicate variables must be invalid")
	}
}

func TestSpreadsThroughNestedSelections(t *testing.T) {
	_, res, bag := check(t, `
		query Q { a { ... on T { b { ...Gone } } } }
	`)
	if !hasCode(bag, diag.ValUndefinedFragment) {
		t.Fatalf("nested spread not reached: %v", bag.Items())
	}
	if res.OperationValid("Q") {
		t.Fatalf("operation must be invalid")
	}
}
