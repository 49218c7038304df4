package ll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLeftRecursionExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g := makeExprGrammar(t)
	fp := g.Fingerprint()
	r, diags := EliminateLeftRecursion(g)
	expected := "E -> T E'\nE' -> + T E' | epsilon\nT -> F T'\nT' -> * F T' | epsilon\nF -> ( E ) | id"
	if r.String() != expected {
		t.Errorf("expected grammar\n%s\nhave\n%s", expected, r)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, have %v", diags)
	}
	if !equalNames(r.NonTerminals(), "E", "T", "F", "E'", "T'") {
		t.Errorf("unexpected non-terminals %v", r.NonTerminals())
	}
	if r.Start() != "E" {
		t.Errorf("expected start symbol to stay E, is %s", r.Start())
	}
	if g.Fingerprint() != fp {
		t.Errorf("input grammar has been modified")
	}
	assertNoLeftRecursion(t, r)
}

func TestLeftRecursionNoBaseCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("NoBase")
	b.LHS("A").N("A").T("a").Or().N("A").T("b").End()
	g, _ := b.Grammar()
	r, diags := EliminateLeftRecursion(g)
	expected := "A -> a A'\nA' -> a A' | b A' | epsilon"
	if r.String() != expected {
		t.Errorf("expected grammar\n%s\nhave\n%s", expected, r)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, have %d", len(diags))
	}
	if diags[0].Kind != NoBaseCase || diags[0].NonTerminal != "A" {
		t.Errorf("expected NoBaseCase diagnostic for A, have %s", diags[0])
	}
	assertNoLeftRecursion(t, r)
}

func TestLeftRecursionEmptyBase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("EmptyBase")
	b.LHS("A").N("A").T("a").Or().End()
	b.LHS("B").N("B").T("b").Or().Epsilon().End()
	g, _ := b.Grammar()
	r, _ := EliminateLeftRecursion(g)
	expected := "A -> A'\nA' -> a A' | epsilon\nB -> B'\nB' -> b B' | epsilon"
	if r.String() != expected {
		t.Errorf("expected grammar\n%s\nhave\n%s", expected, r)
	}
}

func TestLeftRecursionCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Cycle")
	b.LHS("A").N("A").Or().T("b").End()
	g, _ := b.Grammar()
	r, _ := EliminateLeftRecursion(g)
	expected := "A -> b A'\nA' -> epsilon"
	if r.String() != expected {
		t.Errorf("expected grammar\n%s\nhave\n%s", expected, r)
	}
	assertNoLeftRecursion(t, r)
}

func TestLeftRecursionUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	g := makeDanglingElse(t)
	r, diags := EliminateLeftRecursion(g)
	if r.String() != g.String() || len(diags) != 0 {
		t.Errorf("expected grammar without left recursion to be unchanged, have\n%s", r)
	}
}

func assertNoLeftRecursion(t *testing.T, g *Grammar) {
	for _, p := range g.Productions() {
		for _, alt := range p.Alternatives() {
			if len(alt) > 0 && alt[0].Name == p.LHS() {
				t.Errorf("production %s is left recursive", p)
			}
		}
	}
}
