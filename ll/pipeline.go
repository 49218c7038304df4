package ll

import "fmt"

// Result collects the outcome of every stage of Generate.
type Result struct {
	Original    *Grammar    // input grammar
	Factored    *Grammar    // after left factoring
	Grammar     *Grammar    // after left factoring and removal of left recursion
	Analysis    *LLAnalysis // FIRST and FOLLOW sets of Grammar
	Table       *Table      // LL(1) table for Grammar
	Conflicts   []Conflict
	Diagnostics []Diagnostic
}

// IsLL1 is true if the table has been built without conflicts.
func (r *Result) IsLL1() bool {
	return len(r.Conflicts) == 0
}

// Generate runs the complete pipeline on g: left factoring, removal of
// immediate left recursion, FIRST/FOLLOW analysis and table construction.
// Findings of the stages are reported as diagnostics; none of them stops the
// pipeline. g is not modified.
func Generate(g *Grammar, opts ...Option) *Result {
	r := &Result{Original: g}
	if err := Verify(g); err != nil {
		tracer().Infof("grammar check: %v", err)
		r.Diagnostics = append(r.Diagnostics, Diagnostic{
			Kind:    GrammarCheck,
			Message: err.Error(),
		})
	}
	r.Factored = LeftFactor(g)
	var diags []Diagnostic
	r.Grammar, diags = EliminateLeftRecursion(r.Factored)
	r.Diagnostics = append(r.Diagnostics, diags...)
	r.Analysis = Analysis(r.Grammar)
	gen := NewTableGenerator(r.Analysis, opts...)
	r.Table = gen.CreateTable()
	r.Conflicts = gen.Conflicts()
	for _, c := range r.Conflicts {
		rules := make([]string, len(c.Refs))
		for i, ref := range c.Refs {
			rules[i] = r.Table.Rule(ref)
		}
		r.Diagnostics = append(r.Diagnostics, Diagnostic{
			Kind:        TableConflict,
			NonTerminal: c.NonTerminal,
			Message:     fmt.Sprintf("on %s: %v", c.Terminal, rules),
		})
	}
	return r
}
