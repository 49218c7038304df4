package ll

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
)

//go:generate stringer -type=SymbolKind,DiagnosticKind

// SymbolKind classifies grammar symbols. The kind of a symbol is decided once,
// when the symbol enters a grammar, and is carried by the symbol from then on.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	NonTerminal SymbolKind = iota
	Terminal
	Epsilon    // the empty string
	EndOfInput // '$'
)

// Reserved symbol names.
const (
	EpsilonName = "epsilon"
	EOFName     = "$"
)

// Symbol is a grammar symbol, i.e. a name together with its kind.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Pre-defined symbols for the empty string and for end-of-input.
var (
	EpsilonSymbol = Symbol{Name: EpsilonName, Kind: Epsilon}
	EOFSymbol     = Symbol{Name: EOFName, Kind: EndOfInput}
)

// IsTerminal is true for terminals and for the end-of-input marker.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal || s.Kind == EndOfInput
}

// IsNonTerminal is true for non-terminals.
func (s Symbol) IsNonTerminal() bool {
	return s.Kind == NonTerminal
}

// IsEpsilon is true for the empty-string symbol.
func (s Symbol) IsEpsilon() bool {
	return s.Kind == Epsilon
}

func (s Symbol) String() string {
	return s.Name
}

// --- Alternatives and productions ------------------------------------------

// Alternative is a right-hand side of a production. The empty production is
// represented as the single-element alternative [epsilon]. An alternative may
// also consist of zero symbols.
type Alternative []Symbol

// IsEpsilon returns true for the alternative [epsilon].
func (a Alternative) IsEpsilon() bool {
	return len(a) == 1 && a[0].Kind == Epsilon
}

// Names returns the symbol names of an alternative.
func (a Alternative) Names() []string {
	names := make([]string, len(a))
	for i, sym := range a {
		names[i] = sym.Name
	}
	return names
}

func (a Alternative) String() string {
	return strings.Join(a.Names(), " ")
}

func (a Alternative) clone() Alternative {
	return append(Alternative{}, a...)
}

// Production is a non-terminal together with its ordered alternatives.
// Productions are immutable; accessors return copies.
type Production struct {
	lhs  string
	alts []Alternative
}

func newProduction(lhs string, alts []Alternative) *Production {
	p := &Production{lhs: lhs, alts: make([]Alternative, len(alts))}
	for i, alt := range alts {
		p.alts[i] = alt.clone()
	}
	return p
}

// LHS returns the name of the left-hand side non-terminal.
func (p *Production) LHS() string {
	return p.lhs
}

// AltCount returns the number of alternatives of p.
func (p *Production) AltCount() int {
	return len(p.alts)
}

// Alternative returns a copy of the i-th alternative of p.
func (p *Production) Alternative(i int) Alternative {
	return p.alts[i].clone()
}

// Alternatives returns a copy of all alternatives of p.
func (p *Production) Alternatives() []Alternative {
	alts := make([]Alternative, len(p.alts))
	for i, alt := range p.alts {
		alts[i] = alt.clone()
	}
	return alts
}

// RuleString returns the i-th alternative of p as a rule 'LHS -> tokens'.
func (p *Production) RuleString(i int) string {
	return p.lhs + " -> " + p.alts[i].String()
}

func (p *Production) String() string {
	var b strings.Builder
	b.WriteString(p.lhs)
	b.WriteString(" ->")
	for i, alt := range p.alts {
		if i > 0 {
			b.WriteString(" |")
		}
		if len(alt) > 0 {
			b.WriteString(" ")
			b.WriteString(alt.String())
		}
	}
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for an ordered list of productions. Non-terminals and
// terminals are kept in order of their first appearance.
//
// A grammar is immutable once it has been handed out by a builder or by a
// transformation stage.
type Grammar struct {
	Name         string
	productions  []*Production
	nonterminals []string
	terminals    []string
	kinds        map[string]SymbolKind
	start        string
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:  name,
		kinds: make(map[string]SymbolKind),
	}
}

// emptyCopy creates a grammar with the symbols and start symbol of g, but
// without productions. Stages use it as the base of their output grammar.
func (g *Grammar) emptyCopy() *Grammar {
	c := newGrammar(g.Name)
	c.nonterminals = append(c.nonterminals, g.nonterminals...)
	c.terminals = append(c.terminals, g.terminals...)
	for name, kind := range g.kinds {
		c.kinds[name] = kind
	}
	c.start = g.start
	return c
}

func (g *Grammar) clone() *Grammar {
	c := g.emptyCopy()
	for _, p := range g.productions {
		c.productions = append(c.productions, newProduction(p.lhs, p.alts))
	}
	return c
}

// Start returns the start symbol of g.
func (g *Grammar) Start() string {
	return g.start
}

// ProductionCount returns the number of productions of g.
func (g *Grammar) ProductionCount() int {
	return len(g.productions)
}

// Production returns the i-th production of g.
func (g *Grammar) Production(i int) *Production {
	return g.productions[i]
}

// Productions returns all productions of g, in order.
func (g *Grammar) Productions() []*Production {
	return append([]*Production(nil), g.productions...)
}

// FindProduction returns the first production with left-hand side A, together
// with its index, or (nil, -1).
func (g *Grammar) FindProduction(A string) (*Production, int) {
	for i, p := range g.productions {
		if p.lhs == A {
			return p, i
		}
	}
	return nil, -1
}

// NonTerminals returns the names of all non-terminals, in order of appearance.
func (g *Grammar) NonTerminals() []string {
	return append([]string(nil), g.nonterminals...)
}

// Terminals returns the names of all terminals, in order of appearance.
// The result never contains 'epsilon' or '$'.
func (g *Grammar) Terminals() []string {
	return append([]string(nil), g.terminals...)
}

// IsNonTerminal checks if name is declared as a non-terminal of g.
func (g *Grammar) IsNonTerminal(name string) bool {
	k, ok := g.kinds[name]
	return ok && k == NonTerminal
}

// IsTerminal checks if name is declared as a terminal of g.
func (g *Grammar) IsTerminal(name string) bool {
	k, ok := g.kinds[name]
	return ok && k == Terminal
}

func (g *Grammar) declared(name string) bool {
	_, ok := g.kinds[name]
	return ok || name == EpsilonName || name == EOFName
}

func (g *Grammar) declare(name string, kind SymbolKind) error {
	if name == "" {
		return fmt.Errorf("grammar %s: empty symbol name", g.Name)
	}
	if name == EpsilonName || name == EOFName {
		return fmt.Errorf("grammar %s: symbol name %q is reserved", g.Name, name)
	}
	if k, ok := g.kinds[name]; ok {
		if k != kind {
			return fmt.Errorf("grammar %s: symbol %q used as %s and as %s", g.Name, name, k, kind)
		}
		return nil
	}
	g.kinds[name] = kind
	if kind == NonTerminal {
		g.nonterminals = append(g.nonterminals, name)
	} else {
		g.terminals = append(g.terminals, name)
	}
	return nil
}

// freshNonTerminal declares and returns a new non-terminal, derived from base by
// appending primes until the name is unused.
func (g *Grammar) freshNonTerminal(base string) string {
	name := base + "'"
	for g.declared(name) {
		name += "'"
	}
	if err := g.declare(name, NonTerminal); err != nil {
		tracer().Errorf("cannot declare fresh non-terminal: %v", err)
	}
	return name
}

func (g *Grammar) appendProduction(p *Production) {
	g.productions = append(g.productions, p)
}

// String returns one line 'LHS -> alt1 | alt2 | …' per production.
func (g *Grammar) String() string {
	var b strings.Builder
	for i, p := range g.productions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.String())
	}
	return b.String()
}

// Dump is a debugging helper: it traces the productions of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s, start symbol %s -------------", g.Name, g.start)
	for i, p := range g.productions {
		tracer().Debugf("%3d: %s", i, p)
	}
	tracer().Debugf("non-terminals: %v", g.nonterminals)
	tracer().Debugf("terminals:     %v", g.terminals)
	tracer().Debugf("-------------------------")
}

// --- Fingerprint -----------------------------------------------------------

type grammarDigest struct {
	Start        string
	NonTerminals []string
	Terminals    []string
	Productions  []productionDigest
}

type productionDigest struct {
	LHS          string
	Alternatives [][]Symbol
}

// Fingerprint returns a hash over the productions, symbols and start symbol of g.
// Two grammars with equal fingerprints are structurally equal (the grammar name
// is not part of the fingerprint).
func (g *Grammar) Fingerprint() string {
	d := grammarDigest{
		Start:        g.start,
		NonTerminals: g.nonterminals,
		Terminals:    g.terminals,
	}
	for _, p := range g.productions {
		pd := productionDigest{LHS: p.lhs}
		for _, alt := range p.alts {
			pd.Alternatives = append(pd.Alternatives, []Symbol(alt))
		}
		d.Productions = append(d.Productions, pd)
	}
	h, err := structhash.Hash(d, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar %s: %v", g.Name, err)
		return ""
	}
	return h
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is a tool for constructing grammars. Create one with
// NewGrammarBuilder and add productions with LHS(…)…End().
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{g: newGrammar(gname)}
}

func (gb *GrammarBuilder) fail(err error) {
	if err != nil && gb.err == nil {
		gb.err = err
	}
}

// LHS starts a new production for non-terminal A. The left-hand side of the
// first production is the start symbol of the grammar.
func (gb *GrammarBuilder) LHS(A string) *ProductionBuilder {
	gb.fail(gb.g.declare(A, NonTerminal))
	if gb.g.start == "" {
		gb.g.start = A
	}
	return &ProductionBuilder{gb: gb, lhs: A}
}

// Err returns the first error of an invalid builder call, if any.
func (gb *GrammarBuilder) Err() error {
	return gb.err
}

// Grammar returns the grammar built so far, or an error if a builder call
// has been invalid.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if len(gb.g.productions) == 0 {
		return nil, fmt.Errorf("grammar %s has no productions", gb.g.Name)
	}
	return gb.g.clone(), nil
}

// ProductionBuilder collects the alternatives of a single production.
type ProductionBuilder struct {
	gb      *GrammarBuilder
	lhs     string
	alts    []Alternative
	current Alternative
	epsilon bool // current alternative contains epsilon
}

// N appends a non-terminal to the current alternative.
func (pb *ProductionBuilder) N(name string) *ProductionBuilder {
	pb.gb.fail(pb.gb.g.declare(name, NonTerminal))
	pb.current = append(pb.current, Symbol{Name: name, Kind: NonTerminal})
	return pb
}

// T appends a terminal to the current alternative. T("$") is equivalent to EOF().
func (pb *ProductionBuilder) T(name string) *ProductionBuilder {
	if name == EOFName {
		return pb.EOF()
	}
	pb.gb.fail(pb.gb.g.declare(name, Terminal))
	pb.current = append(pb.current, Symbol{Name: name, Kind: Terminal})
	return pb
}

// EOF appends the end-of-input marker to the current alternative.
func (pb *ProductionBuilder) EOF() *ProductionBuilder {
	pb.current = append(pb.current, EOFSymbol)
	return pb
}

// Epsilon marks the current alternative as the empty string. Within an
// alternative containing other symbols, epsilon has no effect.
func (pb *ProductionBuilder) Epsilon() *ProductionBuilder {
	pb.epsilon = true
	return pb
}

// Or closes the current alternative and starts the next one.
func (pb *ProductionBuilder) Or() *ProductionBuilder {
	pb.closeAlternative()
	return pb
}

// End closes the production and adds it to the grammar.
func (pb *ProductionBuilder) End() {
	pb.closeAlternative()
	pb.gb.g.appendProduction(newProduction(pb.lhs, pb.alts))
	tracer().Debugf("builder: %s", pb.gb.g.productions[len(pb.gb.g.productions)-1])
}

func (pb *ProductionBuilder) closeAlternative() {
	alt := pb.current
	if len(alt) == 0 && pb.epsilon {
		alt = Alternative{EpsilonSymbol}
	}
	pb.alts = append(pb.alts, alt)
	pb.current = nil
	pb.epsilon = false
}
