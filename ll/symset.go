package ll

import (
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// SymbolSet is an insertion-ordered set of symbol names, used for FIRST and
// FOLLOW sets. Iteration order is the order of first insertion, which makes
// output of the analysis reproducible.
//
// The zero value is not usable; create sets with NewSymbolSet. A nil *SymbolSet
// behaves like an empty set for all read operations.
type SymbolSet struct {
	set *linkedhashset.Set
}

// NewSymbolSet creates a symbol set, optionally with initial members.
func NewSymbolSet(names ...string) *SymbolSet {
	S := &SymbolSet{set: linkedhashset.New()}
	for _, name := range names {
		S.Add(name)
	}
	return S
}

// Add inserts a name, if not already present. Returns true if the set changed.
func (S *SymbolSet) Add(name string) bool {
	if S.set.Contains(name) {
		return false
	}
	S.set.Add(name)
	return true
}

// Union adds all members of other to S, except epsilon if withoutEpsilon is set.
// Returns true if S changed.
func (S *SymbolSet) Union(other *SymbolSet, withoutEpsilon bool) bool {
	changed := false
	for _, name := range other.Values() {
		if withoutEpsilon && name == EpsilonName {
			continue
		}
		if S.Add(name) {
			changed = true
		}
	}
	return changed
}

// Contains checks for membership of name.
func (S *SymbolSet) Contains(name string) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(name)
}

// ContainsEpsilon checks if epsilon is a member of S.
func (S *SymbolSet) ContainsEpsilon() bool {
	return S.Contains(EpsilonName)
}

// Size returns the number of members.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Values returns the members of S in insertion order.
func (S *SymbolSet) Values() []string {
	if S == nil {
		return nil
	}
	vals := make([]string, 0, S.set.Size())
	for _, v := range S.set.Values() {
		vals = append(vals, v.(string))
	}
	return vals
}

// Equals compares the members of two sets, disregarding order.
func (S *SymbolSet) Equals(other *SymbolSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, name := range S.Values() {
		if !other.Contains(name) {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of S.
func (S *SymbolSet) Copy() *SymbolSet {
	return NewSymbolSet(S.Values()...)
}

// String renders S as '{ s1, s2, … }'.
func (S *SymbolSet) String() string {
	if S.Size() == 0 {
		return "{ }"
	}
	return "{ " + strings.Join(S.Values(), ", ") + " }"
}

// SymbolSets maps non-terminals to symbol sets, e.g. FIRST(A) for every
// non-terminal A of a grammar.
type SymbolSets map[string]*SymbolSet

// newSymbolSets creates an empty set for every non-terminal of g.
func newSymbolSets(g *Grammar) SymbolSets {
	sets := make(SymbolSets, len(g.nonterminals))
	for _, A := range g.nonterminals {
		sets[A] = NewSymbolSet()
	}
	return sets
}

// Copy returns a deep copy of sets.
func (sets SymbolSets) Copy() SymbolSets {
	c := make(SymbolSets, len(sets))
	for A, S := range sets {
		c[A] = S.Copy()
	}
	return c
}
