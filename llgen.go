package llgen

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Applications (e.g., the grammar
// loader) define their own constants.
type TokType int

// Tokens represent input tokens. They are produced by a scanner.
//
// An example would be a token for a grammar symbol:
//
//    TokType = Ident       // identifier for this kind of tokens (application specific)
//    Lexeme  = "Expr"      // lexeme how it appeared in the input stream
//    Span    = 4…8         // occured from column 4 in the input line
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
