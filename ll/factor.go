package ll

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// LeftFactor rewrites a grammar so that no two alternatives of a production
// start with the same symbol. Alternatives sharing a first symbol X
//
//    A -> X β1 | X β2 | γ
//
// are replaced by
//
//    A  -> X A' | γ
//    A' -> β1 | β2
//
// where a missing suffix βi becomes epsilon. New productions are appended to the
// grammar and are themselves subject to factoring, within the same pass.
// Passes are repeated until a pass changes no alternative count, which uncovers
// common prefixes longer than one symbol.
//
// Empty alternatives and epsilon-alternatives are never grouped.
// LeftFactor does not modify g.
func LeftFactor(g *Grammar) *Grammar {
	out := g.emptyCopy()
	worklist := arraylist.New()
	for _, p := range g.productions {
		worklist.Add(newProduction(p.lhs, p.alts))
	}
	changed, pass := true, 0
	for changed {
		changed = false
		pass++
		// the worklist may grow while we iterate over it
		for i := 0; i < worklist.Size(); i++ {
			x, _ := worklist.Get(i)
			p := x.(*Production)
			factored, suffixProds := factorProduction(out, p)
			worklist.Set(i, factored)
			for _, sp := range suffixProds {
				tracer().Debugf("left factoring: new production %s", sp)
				worklist.Add(sp)
			}
			if factored.AltCount() != p.AltCount() {
				tracer().Debugf("left factoring: %s", factored)
				changed = true
			}
		}
		tracer().Debugf("left factoring: pass %d done, %d productions", pass, worklist.Size())
	}
	for _, x := range worklist.Values() {
		out.appendProduction(x.(*Production))
	}
	tracer().Infof("left factoring of grammar %s took %d passes", g.Name, pass)
	return out
}

// factorProduction factors one production p on shared first symbols. It
// returns the new version of p and the productions for the fresh non-terminals.
// Fresh non-terminals are declared in g.
func factorProduction(g *Grammar, p *Production) (*Production, []*Production) {
	var alts []Alternative
	var suffixProds []*Production
	processed := make([]bool, len(p.alts))
	for i, alt := range p.alts {
		if processed[i] {
			continue
		}
		processed[i] = true
		if !groupable(alt) {
			alts = append(alts, alt)
			continue
		}
		group := []int{i}
		for j := i + 1; j < len(p.alts); j++ {
			if !processed[j] && groupable(p.alts[j]) && p.alts[j][0] == alt[0] {
				group = append(group, j)
				processed[j] = true
			}
		}
		if len(group) < 2 { // nothing to factor: copy alternative unchanged
			alts = append(alts, alt)
			continue
		}
		A := g.freshNonTerminal(p.lhs)
		alts = append(alts, Alternative{alt[0], Symbol{Name: A, Kind: NonTerminal}})
		suffixes := make([]Alternative, 0, len(group))
		for _, k := range group {
			suffix := p.alts[k][1:]
			if len(suffix) == 0 {
				suffix = Alternative{EpsilonSymbol}
			}
			suffixes = append(suffixes, suffix)
		}
		suffixProds = append(suffixProds, newProduction(A, suffixes))
	}
	return newProduction(p.lhs, alts), suffixProds
}

func groupable(alt Alternative) bool {
	return len(alt) > 0 && !alt.IsEpsilon()
}
