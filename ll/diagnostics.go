package ll

import "fmt"

// DiagnosticKind classifies findings about a grammar which do not stop the
// pipeline.
type DiagnosticKind int8

// Kinds of diagnostics.
const (
	NoBaseCase    DiagnosticKind = iota // every alternative of a non-terminal is left recursive
	TableConflict                       // a table cell has more than one alternative: not LL(1)
	GrammarCheck                        // undefined or unreachable non-terminals
)

// Diagnostic is a non-fatal finding of one of the pipeline stages.
type Diagnostic struct {
	Kind        DiagnosticKind
	NonTerminal string // non-terminal concerned, if any
	Message     string
}

func (d Diagnostic) String() string {
	if d.NonTerminal == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s(%s): %s", d.Kind, d.NonTerminal, d.Message)
}
