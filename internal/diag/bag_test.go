package diag

import (
	"testing"

	"gqlcheck/internal/source"
)

func TestBagCapDropsOverflow(t *testing.T) {
	bag := NewBag(2)
	sp := source.Span{File: 0, Start: 0, End: 1}

	if !bag.Add(NewError(SynUnexpectedToken, sp, "one")) {
		t.Fatalf("first add must succeed")
	}
	if !bag.Add(NewError(SynUnexpectedToken, sp, "two")) {
		t.Fatalf("second add must succeed")
	}
	if bag.Add(NewError(SynUnexpectedToken, sp, "three")) {
		t.Fatalf("add past cap must be dropped")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(10)
	sp := source.Span{File: 0, Start: 0, End: 1}

	bag.Add(NewWarning(ValUnusedFragment, sp, "unused"))
	if bag.HasErrors() {
		t.Fatalf("warnings must not count as errors")
	}
	if !bag.HasWarnings() {
		t.Fatalf("expected warnings to be present")
	}

	bag.Add(NewError(ValFragmentCycle, sp, "cycle"))
	if !bag.HasErrors() {
		t.Fatalf("expected errors after adding one")
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	b := NewBag(2)
	sp := source.Span{File: 0, Start: 0, End: 1}

	a.Add(NewError(UnknownCode, sp, "a"))
	b.Add(NewError(UnknownCode, sp, "b1"))
	b.Add(NewError(UnknownCode, sp, "b2"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("expected merged bag to hold 3, got %d", a.Len())
	}
}

func TestBagSortDeterministic(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewError(SynUnexpectedToken, source.Span{File: 1, Start: 5, End: 6}, "later"))
	bag.Add(NewError(LexUnknownChar, source.Span{File: 0, Start: 9, End: 10}, "earlier file"))
	bag.Add(NewWarning(ValUnusedFragment, source.Span{File: 1, Start: 5, End: 6}, "same span warning"))

	bag.Sort()
	items := bag.Items()
	if items[0].Code != LexUnknownChar {
		t.Fatalf("expected file 0 diagnostic first, got %v", items[0].Code)
	}
	// Same span: error sorts before warning.
	if items[1].Severity != SevError || items[2].Severity != SevWarning {
		t.Fatalf("expected severity descending within one span")
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	sp := source.Span{File: 0, Start: 3, End: 7}
	bag.Add(NewError(ValUndefinedFragment, sp, "dup"))
	bag.Add(NewError(ValUndefinedFragment, sp, "dup"))
	bag.Add(NewError(ValUndefinedFragment, source.Span{File: 0, Start: 8, End: 9}, "other span"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("expected 2 after dedup, got %d", bag.Len())
	}
}
