package ll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLeftFactorSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Prefix")
	b.LHS("S").T("a").Or().T("a").T("b").End()
	g, _ := b.Grammar()
	fp := g.Fingerprint()
	f := LeftFactor(g)
	expected := "S -> a S'\nS' -> epsilon | b"
	if f.String() != expected {
		t.Errorf("expected factored grammar\n%s\nhave\n%s", expected, f)
	}
	if !equalNames(f.NonTerminals(), "S", "S'") {
		t.Errorf("unexpected non-terminals %v", f.NonTerminals())
	}
	if g.Fingerprint() != fp {
		t.Errorf("input grammar has been modified")
	}
}

func TestLeftFactorMultiPass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("LongPrefix")
	b.LHS("S").T("a").T("b").T("c").Or().T("a").T("b").T("d").Or().T("e").End()
	g, _ := b.Grammar()
	f := LeftFactor(g)
	expected := "S -> a S' | e\nS' -> b S''\nS'' -> c | d"
	if f.String() != expected {
		t.Errorf("expected factored grammar\n%s\nhave\n%s", expected, f)
	}
}

func TestLeftFactorIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Statements")
	b.LHS("S").T("if").N("E").T("then").N("S").
		Or().T("if").N("E").T("then").N("S").T("else").N("S").
		Or().T("x").End()
	b.LHS("E").T("b").Or().T("b").T("b").End()
	g, _ := b.Grammar()
	f1 := LeftFactor(g)
	f2 := LeftFactor(f1)
	if f1.String() != f2.String() {
		t.Errorf("factoring a factored grammar changed it:\n%s\n---\n%s", f1, f2)
	}
	for _, p := range f1.Productions() {
		seen := make(map[Symbol]bool)
		for _, alt := range p.Alternatives() {
			if len(alt) == 0 || alt.IsEpsilon() {
				continue
			}
			if seen[alt[0]] {
				t.Errorf("production %s still has a common prefix %s", p, alt[0])
			}
			seen[alt[0]] = true
		}
	}
}

func TestLeftFactorEpsilonNotGrouped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Epsilons")
	b.LHS("S").Epsilon().Or().Epsilon().Or().Or().Or().T("a").End()
	g, _ := b.Grammar()
	f := LeftFactor(g)
	if f.String() != g.String() {
		t.Errorf("expected grammar to be unchanged, have\n%s", f)
	}
}

func TestLeftFactorFreshNameCollision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Collision")
	b.LHS("S").T("a").Or().T("a").T("b").Or().N("S'").End()
	b.LHS("S'").T("c").End()
	g, _ := b.Grammar()
	f := LeftFactor(g)
	expected := "S -> a S'' | S'\nS' -> c\nS'' -> epsilon | b"
	if f.String() != expected {
		t.Errorf("expected factored grammar\n%s\nhave\n%s", expected, f)
	}
}
