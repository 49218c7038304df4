/*
Package scanner defines an interface for scanners to be used with the grammar
loader of package gramlang.

A default implementation is provided as an adapter for lexmachine, living in
sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/llgen"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llgen.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF   = scanner.EOF
	Ident = scanner.Ident
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() llgen.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   llgen.TokType
	lexeme string
	Val    interface{}
	span   llgen.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ llgen.TokType, lexeme string, span llgen.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() llgen.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() llgen.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q>%s", t.kind, t.lexeme, t.span)
}
