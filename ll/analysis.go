package ll

// LLAnalysis is an object for grammar analysis (computing FIRST and FOLLOW sets).
// Create one with Analysis(g).
type LLAnalysis struct {
	g      *Grammar
	first  SymbolSets
	follow SymbolSets
}

// Analysis computes FIRST and FOLLOW sets for all non-terminals of a grammar.
func Analysis(g *Grammar) *LLAnalysis {
	ga := &LLAnalysis{g: g}
	ga.first = ComputeFirst(g)
	ga.follow = ComputeFollow(g, ga.first)
	return ga
}

// Grammar returns the grammar this analyser operates on.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(A) for a non-terminal A. The set may contain epsilon.
// For unknown symbols an empty set is returned.
func (ga *LLAnalysis) First(A string) *SymbolSet {
	return ga.first[A].Copy()
}

// Follow returns FOLLOW(A) for a non-terminal A. The set may contain '$'.
// For unknown symbols an empty set is returned.
func (ga *LLAnalysis) Follow(A string) *SymbolSet {
	return ga.follow[A].Copy()
}

// FirstSets returns a copy of all FIRST sets.
func (ga *LLAnalysis) FirstSets() SymbolSets {
	return ga.first.Copy()
}

// FollowSets returns a copy of all FOLLOW sets.
func (ga *LLAnalysis) FollowSets() SymbolSets {
	return ga.follow.Copy()
}

// FirstOfSequence returns FIRST of a sequence of symbols, e.g. of an alternative.
func (ga *LLAnalysis) FirstOfSequence(alt Alternative) *SymbolSet {
	return firstOfSequence(ga.first, alt)
}

// --- FIRST -----------------------------------------------------------------

// ComputeFirst computes FIRST(A) for every non-terminal A of g. Sets are
// computed by iterating over all alternatives of all productions, until a
// sweep adds nothing (i.e., the sets have reached a fixed point).
func ComputeFirst(g *Grammar) SymbolSets {
	first := newSymbolSets(g)
	sweeps := 1
	for firstSweep(g, first) {
		sweeps++
	}
	tracer().Infof("FIRST sets of grammar %s complete after %d sweeps", g.Name, sweeps)
	return first
}

// firstSweep extends FIRST(A) by FIRST(α) for every production A -> α.
// Returns true if any set changed.
func firstSweep(g *Grammar, first SymbolSets) bool {
	changed := false
	for _, p := range g.productions {
		F := first[p.lhs]
		for _, alt := range p.alts {
			if F.Union(firstOfSequence(first, alt), false) {
				changed = true
			}
		}
	}
	return changed
}

// firstOfSequence scans a sequence of symbols left to right. Terminals stop
// the scan; non-terminals contribute their FIRST set and stop the scan unless
// they are nullable. If every symbol is nullable (or the sequence is empty),
// epsilon is part of the result.
func firstOfSequence(first SymbolSets, alt Alternative) *SymbolSet {
	R := NewSymbolSet()
	for _, sym := range alt {
		switch sym.Kind {
		case Epsilon:
			continue
		case NonTerminal:
			F := first[sym.Name]
			R.Union(F, true)
			if !F.ContainsEpsilon() {
				return R
			}
		default: // terminal or end-of-input
			R.Add(sym.Name)
			return R
		}
	}
	R.Add(EpsilonName)
	return R
}

// --- FOLLOW ----------------------------------------------------------------

// ComputeFollow computes FOLLOW(A) for every non-terminal A of g, given the
// FIRST sets of g. FOLLOW(start) contains '$'. Sets are computed by
// iterating until a fixed point is reached.
func ComputeFollow(g *Grammar, first SymbolSets) SymbolSets {
	follow := newSymbolSets(g)
	if S, ok := follow[g.start]; ok {
		S.Add(EOFName)
	}
	sweeps := 1
	for followSweep(g, first, follow) {
		sweeps++
	}
	tracer().Infof("FOLLOW sets of grammar %s complete after %d sweeps", g.Name, sweeps)
	return follow
}

// followSweep inspects every occurrence of a non-terminal X in a production
// A -> … X β: FIRST(β)\{epsilon} is added to FOLLOW(X), and if β is nullable,
// FOLLOW(A) is added to FOLLOW(X). Returns true if any set changed.
func followSweep(g *Grammar, first SymbolSets, follow SymbolSets) bool {
	changed := false
	for _, p := range g.productions {
		for _, alt := range p.alts {
			for k, X := range alt {
				if X.Kind != NonTerminal {
					continue
				}
				FX := follow[X.Name]
				beta := firstOfSequence(first, alt[k+1:])
				if FX.Union(beta, true) {
					changed = true
				}
				if beta.ContainsEpsilon() && FX.Union(follow[p.lhs], false) {
					changed = true
				}
			}
		}
	}
	return changed
}
