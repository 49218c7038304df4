package ll

import (
	"fmt"
	"html"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/llgen/ll/sparse"
)

// ConflictPolicy decides which of several competing alternatives in a table
// cell is the visible entry of the cell.
type ConflictPolicy int8

// Conflict policies. The last writer wins by default.
const (
	LastWriterWins ConflictPolicy = iota
	FirstWriterWins
)

func (p ConflictPolicy) String() string {
	switch p {
	case LastWriterWins:
		return "last-writer-wins"
	case FirstWriterWins:
		return "first-writer-wins"
	}
	return fmt.Sprintf("ConflictPolicy(%d)", int8(p))
}

type config struct {
	policy ConflictPolicy
}

// Option configures table construction.
type Option func(*config)

// WithConflictPolicy sets the policy for contested table cells.
func WithConflictPolicy(p ConflictPolicy) Option {
	return func(c *config) {
		c.policy = p
	}
}

func makeConfig(opts []Option) config {
	c := config{policy: LastWriterWins}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Ref references alternative Alt of production number Production of a grammar.
type Ref struct {
	Production int
	Alt        int
}

func (r Ref) String() string {
	return fmt.Sprintf("(%d,%d)", r.Production, r.Alt)
}

// Conflict reports a table cell with more than one alternative. Refs lists all
// contenders in the order they have been written to the cell.
type Conflict struct {
	NonTerminal string
	Terminal    string
	Refs        []Ref
}

func (c Conflict) String() string {
	refs := make([]string, len(c.Refs))
	for i, r := range c.Refs {
		refs[i] = r.String()
	}
	return fmt.Sprintf("conflict at [%s,%s]: %s", c.NonTerminal, c.Terminal, strings.Join(refs, " "))
}

// --- Table -----------------------------------------------------------------

// Table is an LL(1) parser table. Rows are the non-terminals of a grammar,
// columns are its terminals plus '$'. Every cell keeps all alternatives written
// to it; Entry selects one of them according to the table's ConflictPolicy.
//
// Alternatives are stored in a sparse matrix as serial numbers, counting the
// alternatives of all productions in grammar order.
type Table struct {
	g       *Grammar
	policy  ConflictPolicy
	rows    []string
	columns []string
	rowinx  map[string]int
	colinx  map[string]int
	refs    []Ref // serial number → reference
	offsets []int // production number → serial number of its first alternative
	matrix  *sparse.IntMatrix
}

func newTable(g *Grammar, policy ConflictPolicy) *Table {
	t := &Table{
		g:       g,
		policy:  policy,
		rows:    g.NonTerminals(),
		columns: append(g.Terminals(), EOFName),
		rowinx:  make(map[string]int),
		colinx:  make(map[string]int),
		offsets: make([]int, len(g.productions)),
	}
	for i, A := range t.rows {
		t.rowinx[A] = i
	}
	for j, a := range t.columns {
		t.colinx[a] = j
	}
	for pno, p := range g.productions {
		t.offsets[pno] = len(t.refs)
		for i := range p.alts {
			t.refs = append(t.refs, Ref{Production: pno, Alt: i})
		}
	}
	t.matrix = sparse.NewIntMatrix(len(t.rows), len(t.columns), sparse.DefaultNullValue)
	return t
}

// Grammar returns the grammar the table has been built for.
func (t *Table) Grammar() *Grammar {
	return t.g
}

// Policy returns the conflict policy of t.
func (t *Table) Policy() ConflictPolicy {
	return t.policy
}

// NonTerminals returns the row labels of t.
func (t *Table) NonTerminals() []string {
	return append([]string(nil), t.rows...)
}

// Columns returns the column labels of t, i.e. the terminals of the grammar
// followed by '$'.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Size returns the number of non-empty cells.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

// Entry returns the visible alternative of cell [A,a]. If the cell holds more
// than one alternative, the table's conflict policy selects one. Returns false
// for empty cells and for unknown symbols.
func (t *Table) Entry(A, a string) (Ref, bool) {
	i, j, ok := t.cell(A, a)
	if !ok || t.matrix.Count(i, j) == 0 {
		return Ref{}, false
	}
	v := t.matrix.Last(i, j)
	if t.policy == FirstWriterWins {
		v = t.matrix.Value(i, j)
	}
	return t.refs[v], true
}

// Entries returns all alternatives written to cell [A,a], in write order.
func (t *Table) Entries(A, a string) []Ref {
	i, j, ok := t.cell(A, a)
	if !ok {
		return nil
	}
	return t.refsOf(t.matrix.Values(i, j))
}

// Rule returns a referenced alternative as 'LHS -> tokens'.
func (t *Table) Rule(r Ref) string {
	return t.g.productions[r.Production].RuleString(r.Alt)
}

// Alternative returns a copy of a referenced alternative.
func (t *Table) Alternative(r Ref) Alternative {
	return t.g.productions[r.Production].Alternative(r.Alt)
}

func (t *Table) cell(A, a string) (int, int, bool) {
	i, ok := t.rowinx[A]
	if !ok {
		return 0, 0, false
	}
	j, ok := t.colinx[a]
	return i, j, ok
}

func (t *Table) refsOf(values []int32) []Ref {
	if len(values) == 0 {
		return nil
	}
	refs := make([]Ref, len(values))
	for k, v := range values {
		refs[k] = t.refs[v]
	}
	return refs
}

// write records alternative r in cell [A,a]. Writing the same alternative twice
// has no effect. Returns true if the cell already held a different alternative.
func (t *Table) write(A, a string, r Ref) bool {
	i, j, ok := t.cell(A, a)
	if !ok {
		tracer().Errorf("table has no cell [%s,%s]", A, a)
		return false
	}
	v := int32(t.offsets[r.Production] + r.Alt)
	prev := t.matrix.Values(i, j)
	for _, w := range prev {
		if w == v {
			return false
		}
	}
	if len(prev) == 0 {
		t.matrix.Set(i, j, v)
		return false
	}
	tracer().Infof("table collision at [%s,%s]: %s vs %s", A, a,
		t.Rule(t.refs[prev[len(prev)-1]]), t.Rule(r))
	t.matrix.Add(i, j, v)
	return true
}

func (t *Table) conflicts() []Conflict {
	var conflicts []Conflict
	t.matrix.Each(func(i, j int, values []int32) {
		if len(values) > 1 {
			conflicts = append(conflicts, Conflict{
				NonTerminal: t.rows[i],
				Terminal:    t.columns[j],
				Refs:        t.refsOf(values),
			})
		}
	})
	return conflicts
}

// String renders t as a text grid with one row per non-terminal and one column
// per terminal plus '$'. Cells show the visible entry as 'LHS -> tokens'.
// Column widths are measured in runes.
func (t *Table) String() string {
	cells := make([][]string, len(t.rows))
	widths := make([]int, len(t.columns)+1)
	for i, A := range t.rows {
		cells[i] = make([]string, len(t.columns))
		widths[0] = max(widths[0], utf8.RuneCountInString(A))
		for j, a := range t.columns {
			if r, ok := t.Entry(A, a); ok {
				cells[i][j] = t.Rule(r)
			}
			widths[j+1] = max(widths[j+1], utf8.RuneCountInString(cells[i][j]))
		}
	}
	for j, a := range t.columns {
		widths[j+1] = max(widths[j+1], utf8.RuneCountInString(a))
	}
	var b strings.Builder
	line := func(label string, row []string) {
		b.WriteString(fmt.Sprintf("%-*s", widths[0], label))
		for j, s := range row {
			b.WriteString(" | ")
			b.WriteString(fmt.Sprintf("%-*s", widths[j+1], s))
		}
		b.WriteString("\n")
	}
	line("", t.columns)
	for i, A := range t.rows {
		line(A, cells[i])
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// --- Table construction ----------------------------------------------------

// BuildTable constructs the LL(1) table for g. For every alternative α of a
// production A, α is entered at [A,a] for every terminal a in FIRST(α). If α is
// nullable, it is also entered at [A,b] for every b in FOLLOW(A), where b may
// be '$'.
//
// A cell receiving more than one alternative makes g non-LL(1). All such cells
// are returned as conflicts; the table is built nevertheless.
func BuildTable(g *Grammar, first, follow SymbolSets, opts ...Option) (*Table, []Conflict) {
	cfg := makeConfig(opts)
	t := newTable(g, cfg.policy)
	for pno, p := range g.productions {
		for i, alt := range p.alts {
			r := Ref{Production: pno, Alt: i}
			F := firstOfSequence(first, alt)
			for _, a := range F.Values() {
				if a != EpsilonName {
					t.write(p.lhs, a, r)
				}
			}
			if F.ContainsEpsilon() {
				for _, b := range follow[p.lhs].Values() {
					t.write(p.lhs, b, r)
				}
			}
		}
	}
	conflicts := t.conflicts()
	if len(conflicts) > 0 {
		tracer().Infof("grammar %s is not LL(1): %d conflicts", g.Name, len(conflicts))
	}
	return t, conflicts
}

// TableGenerator is a generator object to construct an LL(1) parser table.
// Clients usually create a Grammar G, then an LLAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTable() constructs
// the parser table for an LL(1) parser recognizing grammar G.
type TableGenerator struct {
	g            *Grammar
	ga           *LLAnalysis
	opts         []Option
	table        *Table
	conflicts    []Conflict
	HasConflicts bool
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LLAnalysis, opts ...Option) *TableGenerator {
	llgen := &TableGenerator{}
	llgen.g = ga.Grammar()
	llgen.ga = ga
	llgen.opts = opts
	return llgen
}

// CreateTable builds the parser table and sets HasConflicts.
func (llgen *TableGenerator) CreateTable() *Table {
	llgen.table, llgen.conflicts = BuildTable(llgen.g, llgen.ga.first, llgen.ga.follow, llgen.opts...)
	llgen.HasConflicts = len(llgen.conflicts) > 0
	return llgen.table
}

// Table returns the parser table. The table has to be built by calling
// CreateTable() previously.
func (llgen *TableGenerator) Table() *Table {
	if llgen.table == nil {
		tracer().Errorf("table not yet initialized")
	}
	return llgen.table
}

// Conflicts returns the conflicts found by CreateTable().
func (llgen *TableGenerator) Conflicts() []Conflict {
	return llgen.conflicts
}

// TableAsHTML exports a parser table in HTML-format. Contested cells list all
// competing alternatives, the visible entry first.
func TableAsHTML(t *Table, w io.Writer) {
	if t == nil {
		tracer().Errorf("table not yet created, cannot export to HTML")
		return
	}
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("LL(1) table of grammar %s, %d entries, policy %s<p>",
		html.EscapeString(t.g.Name), t.Size(), t.policy))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, a := range t.columns {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", html.EscapeString(a)))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	for _, A := range t.rows {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", html.EscapeString(A)))
		for _, a := range t.columns {
			refs := t.Entries(A, a)
			if len(refs) == 0 {
				td = "&nbsp;"
			} else {
				r, _ := t.Entry(A, a)
				rules := []string{html.EscapeString(t.Rule(r))}
				for _, other := range refs {
					if other != r {
						rules = append(rules, html.EscapeString(t.Rule(other)))
					}
				}
				td = strings.Join(rules, "<br/>")
				if len(refs) > 1 {
					td = "<font color=red>" + td + "</font>"
				}
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}
