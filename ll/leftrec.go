package ll

import "fmt"

// EliminateLeftRecursion removes immediate left recursion from a grammar.
// A production
//
//    A -> A γ1 | … | A γm | β1 | … | βn
//
// is rewritten to
//
//    A  -> β1 A' | … | βn A'
//    A' -> γ1 A' | … | γm A' | epsilon
//
// Productions without immediate left recursion are copied unchanged. A cyclic
// alternative A -> A is dropped from A'.
// Indirect left recursion (A -> B …, B -> A …) is not removed.
//
// EliminateLeftRecursion expects at most one production per non-terminal.
//
// If every alternative of A is left recursive, A has no base case and cannot
// derive a finite string. The production is then rewritten using the first
// recursive suffix only,
//
//    A  -> γ1 A'
//
// and a diagnostic of kind NoBaseCase is returned for A.
//
// EliminateLeftRecursion does not modify g.
func EliminateLeftRecursion(g *Grammar) (*Grammar, []Diagnostic) {
	out := g.emptyCopy()
	var diags []Diagnostic
	for _, p := range g.productions {
		A := p.lhs
		var recursive, base []Alternative // suffixes γ of A γ, and β
		for _, alt := range p.alts {
			if len(alt) > 0 && alt[0].Kind == NonTerminal && alt[0].Name == A {
				recursive = append(recursive, alt[1:])
			} else {
				base = append(base, alt)
			}
		}
		if len(recursive) == 0 {
			out.appendProduction(newProduction(A, p.alts))
			continue
		}
		A1 := out.freshNonTerminal(A)
		tail := Symbol{Name: A1, Kind: NonTerminal}
		var alts []Alternative
		if len(base) > 0 {
			for _, beta := range base {
				alts = append(alts, withTail(beta, tail))
			}
		} else {
			tracer().Errorf("non-terminal %s has no base case", A)
			diags = append(diags, Diagnostic{
				Kind:        NoBaseCase,
				NonTerminal: A,
				Message: fmt.Sprintf("every alternative of %s is left recursive; %s derives no finite string",
					A, A),
			})
			alts = append(alts, withTail(recursive[0], tail))
		}
		out.appendProduction(newProduction(A, alts))
		var tails []Alternative
		for _, gamma := range recursive {
			if len(gamma) == 0 { // A -> A adds nothing but a cycle A' -> A'
				tracer().Debugf("dropping cyclic alternative %s -> %s", A, A)
				continue
			}
			tails = append(tails, withTail(gamma, tail))
		}
		tails = append(tails, Alternative{EpsilonSymbol})
		out.appendProduction(newProduction(A1, tails))
		tracer().Debugf("left recursion removed: %s", out.productions[len(out.productions)-2])
		tracer().Debugf("                        %s", out.productions[len(out.productions)-1])
	}
	return out, diags
}

// withTail returns alt followed by symbol tail. An epsilon alternative counts
// as empty.
func withTail(alt Alternative, tail Symbol) Alternative {
	r := make(Alternative, 0, len(alt)+1)
	if !alt.IsEpsilon() {
		r = append(r, alt...)
	}
	return append(r, tail)
}
