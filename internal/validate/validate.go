// Package validate performs document-level validation between parsing and
// analysis. It checks the rules that need no schema: name uniqueness,
// fragment resolution, fragment cycles, and anonymous-operation placement.
//
// Validation decides which operations may be analyzed: analysis never
// traverses an operation that failed validation, while the remaining
// operations of the same document still run.
package validate

import (
	"fmt"

	"gqlcheck/internal/ast"
	"gqlcheck/internal/diag"
)

// Result holds the validation outcome for one document.
type Result struct {
	// DocValid is false when a document-level rule failed; every operation
	// in the document is then considered invalid.
	DocValid bool

	// invalidOps holds operation names (ResponseKey-style, "" for the
	// anonymous operation) that failed an operation-level rule.
	invalidOps map[string]bool
}

// OperationValid reports whether the named operation survived validation.
func (r *Result) OperationValid(name string) bool {
	if !r.DocValid {
		return false
	}
	return !r.invalidOps[name]
}

type validator struct {
	doc      *ast.Document
	reporter diag.Reporter
	res      *Result
}

// Document validates doc, reporting problems through r.
func Document(doc *ast.Document, r diag.Reporter) *Result {
	v := &validator{
		doc:      doc,
		reporter: r,
		res:      &Result{DocValid: true, invalidOps: make(map[string]bool)},
	}
	v.checkOperations()
	v.checkFragments()
	v.checkVariables()
	v.checkSpreads()
	return v.res
}

func (v *validator) checkOperations() {
	if len(v.doc.Operations) == 0 {
		diag.ReportError(v.reporter, diag.ValNoOperations, v.doc.Span(),
			"document defines no operations")
		v.res.DocValid = false
		return
	}

	anon := 0
	seen := make(map[string]bool, len(v.doc.Operations))
	for _, op := range v.doc.Operations {
		if op.Name == "" {
			anon++
			continue
		}
		if seen[op.Name] {
			diag.ReportError(v.reporter, diag.ValDuplicateOperation, op.Span(),
				fmt.Sprintf("operation %q is defined more than once", op.Name))
			v.res.invalidOps[op.Name] = true
			continue
		}
		seen[op.Name] = true
	}

	// The shorthand form must be the only operation in the document.
	if anon > 0 && len(v.doc.Operations) > 1 {
		for _, op := range v.doc.Operations {
			if op.Name == "" {
				diag.ReportError(v.reporter, diag.ValAnonymousNotAlone, op.Span(),
					"anonymous operation must be the only operation in the document")
			}
		}
		v.res.invalidOps[""] = true
	}
}

func (v *validator) checkFragments() {
	seen := make(map[string]bool, len(v.doc.Fragments))
	for _, frag := range v.doc.Fragments {
		if seen[frag.Name] {
			diag.ReportError(v.reporter, diag.ValDuplicateFragment, frag.Span(),
				fmt.Sprintf("fragment %q is defined more than once", frag.Name))
			v.res.DocValid = false
			continue
		}
		seen[frag.Name] = true
	}

	v.checkFragmentCycles()
	v.checkUnusedFragments()
}

// checkFragmentCycles runs a three-color DFS over the spread graph.
func (v *validator) checkFragmentCycles() {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(v.doc.Fragments))

	var visit func(name string) bool
	visit = func(name string) bool {
		switch color[name] {
		case gray:
			return false
		case black:
			return true
		}
		color[name] = gray
		frag, ok := v.doc.Fragment(name)
		if ok {
			for _, spread := range spreadsIn(frag.SelectionSet) {
				if !visit(spread.Name) {
					diag.ReportError(v.reporter, diag.ValFragmentCycle, spread.Span(),
						fmt.Sprintf("fragment %q forms a cycle through %q", name, spread.Name))
					v.res.DocValid = false
					color[name] = black
					return true // report each cycle once
				}
			}
		}
		color[name] = black
		return true
	}

	for _, frag := range v.doc.Fragments {
		visit(frag.Name)
	}
}

func (v *validator) checkUnusedFragments() {
	used := make(map[string]bool, len(v.doc.Fragments))
	var mark func(ss *ast.SelectionSet)
	mark = func(ss *ast.SelectionSet) {
		for _, spread := range spreadsIn(ss) {
			if used[spread.Name] {
				continue
			}
			used[spread.Name] = true
			if frag, ok := v.doc.Fragment(spread.Name); ok {
				mark(frag.SelectionSet)
			}
		}
	}
	for _, op := range v.doc.Operations {
		mark(op.SelectionSet)
	}

	for _, frag := range v.doc.Fragments {
		if !used[frag.Name] {
			diag.ReportWarning(v.reporter, diag.ValUnusedFragment, frag.Span(),
				fmt.Sprintf("fragment %q is never used", frag.Name))
		}
	}
}

func (v *validator) checkVariables() {
	for _, op := range v.doc.Operations {
		seen := make(map[string]bool, len(op.Variables))
		for _, vd := range op.Variables {
			if seen[vd.Name] {
				diag.ReportError(v.reporter, diag.ValDuplicateVariable, vd.Span(),
					fmt.Sprintf("variable $%s is declared more than once", vd.Name))
				v.res.invalidOps[op.Name] = true
				continue
			}
			seen[vd.Name] = true
		}
	}
}

// checkSpreads verifies that every spread reachable from each operation
// resolves to a fragment definition. An unresolved spread invalidates only
// the operations that reach it.
func (v *validator) checkSpreads() {
	for _, op := range v.doc.Operations {
		visited := make(map[string]bool)
		if !v.spreadsResolve(op.SelectionSet, visited) {
			v.res.invalidOps[op.Name] = true
		}
	}
}

func (v *validator) spreadsResolve(ss *ast.SelectionSet, visited map[string]bool) bool {
	ok := true
	for _, spread := range spreadsIn(ss) {
		if visited[spread.Name] {
			continue
		}
		visited[spread.Name] = true
		frag, found := v.doc.Fragment(spread.Name)
		if !found {
			diag.ReportError(v.reporter, diag.ValUndefinedFragment, spread.Span(),
				fmt.Sprintf("fragment %q is not defined", spread.Name))
			ok = false
			continue
		}
		if !v.spreadsResolve(frag.SelectionSet, visited) {
			ok = false
		}
	}
	return ok
}

// spreadsIn returns the fragment spreads directly inside ss, descending
// through nested selection sets of fields and inline fragments but not
// through named fragments.
func spreadsIn(ss *ast.SelectionSet) []*ast.FragmentSpread {
	if ss == nil {
		return nil
	}
	var out []*ast.FragmentSpread
	for _, sel := range ss.Selections {
		switch s := sel.(type) {
		case *ast.FragmentSpread:
			out = append(out, s)
		case *ast.Field:
			out = append(out, spreadsIn(s.SelectionSet)...)
		case *ast.InlineFragment:
			out = append(out, spreadsIn(s.SelectionSet)...)
		}
	}
	return out
}
