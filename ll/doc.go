/*
Package ll implements the construction of predictive (LL(1)) parser tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
productions, consisting of alternatives of non-terminal symbols and terminals.
Every symbol is classified once, by the builder call which adds it.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("E").N("E").T("+").N("T").Or().N("T").End()   // E  ->  E + T | T
    b.LHS("T").T("(").N("E").T(")").Or().T("id").End()  // T  ->  ( E ) | id
    g, err := b.Grammar()

Grammar Transformations

A predictive parser cannot handle left recursion or alternatives sharing a
common prefix. Two transformations prepare a grammar:

    gf := ll.LeftFactor(g)                        // factor out common leading symbols
    gr, diags := ll.EliminateLeftRecursion(gf)    // remove immediate left recursion

Both return a new grammar; their input is never modified. Fresh non-terminals
are named by appending primes: E', E'', …

Static Grammar Analysis

After the transformations, the grammar is analysed. Analysis computes
FIRST and FOLLOW sets for all non-terminals:

    ga := ll.Analysis(gr)
    for _, A := range gr.NonTerminals() {
        fmt.Printf("FIRST(%s) = %v\n", A, ga.First(A))
    }

Table Construction

Using grammar analysis as input, the LL(1) table is built:

    gen := ll.NewTableGenerator(ga)
    table := gen.CreateTable()
    if gen.HasConflicts { ... }  // grammar is not LL(1)

Conflicting cells keep all competing alternatives. Which one is visible as the
cell's entry is decided by a ConflictPolicy.

The whole pipeline is available as a single call:

    result := ll.Generate(g)

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llgen.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llgen.ll")
}
