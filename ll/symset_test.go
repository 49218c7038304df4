package ll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSymbolSetOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	S := NewSymbolSet("c", "a")
	if !S.Add("b") {
		t.Errorf("expected Add of new member to report a change")
	}
	if S.Add("a") {
		t.Errorf("expected Add of existing member to report no change")
	}
	if !equalNames(S.Values(), "c", "a", "b") {
		t.Errorf("expected insertion order [c a b], have %v", S.Values())
	}
	if S.String() != "{ c, a, b }" {
		t.Errorf("unexpected string representation %s", S)
	}
}

func TestSymbolSetUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	S := NewSymbolSet("x")
	other := NewSymbolSet("y", EpsilonName, "x")
	if !S.Union(other, true) {
		t.Errorf("expected union to change S")
	}
	if S.ContainsEpsilon() {
		t.Errorf("expected epsilon to be excluded from union")
	}
	if S.Union(other, true) {
		t.Errorf("expected second union to change nothing")
	}
	if !S.Union(other, false) || !S.ContainsEpsilon() {
		t.Errorf("expected epsilon to be included in union")
	}
	if !equalNames(S.Values(), "x", "y", EpsilonName) {
		t.Errorf("unexpected members %v", S.Values())
	}
}

func TestSymbolSetEquals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	S1 := NewSymbolSet("a", "b")
	S2 := NewSymbolSet("b", "a")
	if !S1.Equals(S2) {
		t.Errorf("expected sets to be equal regardless of order")
	}
	S3 := S1.Copy()
	S3.Add("c")
	if S1.Equals(S3) || S1.Size() != 2 {
		t.Errorf("expected copy to be independent of original")
	}
	var nilset *SymbolSet
	if nilset.Size() != 0 || nilset.Contains("a") || nilset.String() != "{ }" {
		t.Errorf("expected nil set to behave like an empty set")
	}
	if !nilset.Equals(NewSymbolSet()) {
		t.Errorf("expected nil set to equal the empty set")
	}
}
