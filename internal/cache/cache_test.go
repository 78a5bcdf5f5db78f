package cache

import (
	"testing"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open("gqlcheck-test", t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := open(t)
	key := Hash([]byte(`{ hero { name } }`))

	in := &Payload{
		Path: "queries/hero.graphql",
		Diagnostics: []DiagRecord{
			{Code: 4001, Severity: 2, Message: "too deep", Line: 1, Col: 3},
		},
		Metrics:    []MetricRecord{{Operation: "Hero", Depth: 2, Complexity: 2}},
		FieldUsage: map[string]int{"hero": 1, "name": 1},
	}
	if err := s.Put(key, in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out Payload
	hit, err := s.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if out.Path != in.Path || out.Digest != key {
		t.Fatalf("payload identity mismatch: %+v", out)
	}
	if len(out.Diagnostics) != 1 || out.Diagnostics[0].Message != "too deep" {
		t.Fatalf("diagnostics mismatch: %+v", out.Diagnostics)
	}
	if out.FieldUsage["hero"] != 1 {
		t.Fatalf("field usage mismatch: %+v", out.FieldUsage)
	}
}

func TestGetMiss(t *testing.T) {
	s := open(t)
	var out Payload
	hit, err := s.Get(Hash([]byte("nope")), &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Fatalf("unexpected hit")
	}
}

func TestDigestChangesWithContent(t *testing.T) {
	a := Hash([]byte("{ a }"))
	b := Hash([]byte("{ b }"))
	if a == b {
		t.Fatalf("distinct content must hash differently")
	}
	if a.IsZero() {
		t.Fatalf("digest of non-empty content is zero")
	}
}

func TestNilStoreIsInert(t *testing.T) {
	var s *Store
	if err := s.Put(Hash([]byte("x")), &Payload{}); err != nil {
		t.Fatalf("nil Put: %v", err)
	}
	var out Payload
	hit, err := s.Get(Hash([]byte("x")), &out)
	if hit || err != nil {
		t.Fatalf("nil Get: hit=%v err=%v", hit, err)
	}
}
