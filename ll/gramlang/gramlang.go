/*
Package gramlang reads grammars from a simple, line-oriented text format:

    E -> E + T | T
    T -> T * F | F
    F -> ( E ) | id

Every non-empty line holds one production. The left-hand side is a single
symbol; alternatives are separated by '|' and consist of symbols separated by
white space. Symbols starting with an upper case letter are non-terminals, as
are symbols appearing as a left-hand side anywhere in the grammar. All others
are terminals:

    stmts -> stmt ; stmts | epsilon      // 'stmts' is a non-terminal, ';' is not

The symbol 'epsilon' denotes the empty alternative, and '$' denotes end of
input. The left-hand side of the first line is the start
symbol of the grammar.

Right-hand sides are tokenized with lexmachine, by way of package lexmach.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gramlang

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/llgen/ll"
	"github.com/npillmayer/llgen/ll/scanner"
	"github.com/npillmayer/llgen/ll/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
)

// tracer traces with key 'llgen.gramlang'.
func tracer() tracing.Trace {
	return tracing.Select("llgen.gramlang")
}

// Token types of right-hand sides.
const (
	tokSymbol  = scanner.Ident
	tokBar     = '|'
	tokEpsilon = 'ε'
)

var (
	lexer     *lexmach.LMAdapter
	lexerErr  error
	lexerOnce sync.Once
)

// rhsLexer returns the (shared) lexer for right-hand sides. The DFA is compiled
// on first use.
func rhsLexer() (*lexmach.LMAdapter, error) {
	lexerOnce.Do(func() {
		init := func(lx *lexmachine.Lexer) {
			lx.Add([]byte(`[^ \t\r\n\|]+`), lexmach.MakeToken("SYMBOL", tokSymbol))
			lx.Add([]byte(`( |\t|\r|\n)+`), lexmach.Skip)
		}
		tokenIds := map[string]int{"SYMBOL": tokSymbol, "|": tokBar, ll.EpsilonName: tokEpsilon}
		lexer, lexerErr = lexmach.NewLMAdapter(init, []string{"|"}, []string{ll.EpsilonName}, tokenIds)
	})
	return lexer, lexerErr
}

// LineError is an error in a line of a grammar source.
type LineError struct {
	Source string
	Line   int
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse reads a grammar from a string. The grammar will be named "grammar".
func Parse(src string) (*ll.Grammar, error) {
	return Load(strings.NewReader(src), "grammar")
}

// LoadFile reads a grammar from a file. The grammar is named after the file.
func LoadFile(path string) (*ll.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, filepath.Base(path))
}

// Load reads a grammar from r. Errors are reported as *LineError, if they can
// be attributed to a line of the input.
func Load(r io.Reader, name string) (*ll.Grammar, error) {
	type line struct {
		no   int
		text string
	}
	var lines []line
	nonterms := make(map[string]bool)
	input := bufio.NewScanner(r)
	for lineno := 1; input.Scan(); lineno++ {
		text := strings.TrimSpace(input.Text())
		if text == "" {
			continue
		}
		lines = append(lines, line{lineno, text})
		if lhs, _, err := splitLine(text); err == nil {
			nonterms[lhs] = true
		}
	}
	if err := input.Err(); err != nil {
		return nil, fmt.Errorf("reading grammar %s: %w", name, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("grammar %s: no productions", name)
	}
	b := ll.NewGrammarBuilder(name)
	for _, l := range lines {
		if err := parseLine(b, l.text, nonterms); err != nil {
			tracer().Errorf("%s:%d: %v", name, l.no, err)
			return nil, &LineError{Source: name, Line: l.no, Err: err}
		}
	}
	tracer().Debugf("read %d productions from %s", len(lines), name)
	return b.Grammar()
}

// splitLine separates a line at the first '->' into left-hand side and
// right-hand side.
func splitLine(line string) (string, string, error) {
	arrow := strings.Index(line, "->")
	if arrow < 0 {
		return "", "", errors.New("missing '->'")
	}
	lhs := strings.Fields(line[:arrow])
	if len(lhs) != 1 {
		return "", "", fmt.Errorf("left-hand side must be a single symbol, is %q", strings.TrimSpace(line[:arrow]))
	}
	rhs := line[arrow+2:]
	if strings.TrimSpace(rhs) == "" {
		return "", "", fmt.Errorf("empty right-hand side for %s", lhs[0])
	}
	return lhs[0], rhs, nil
}

// parseLine adds the production of a line to b. nonterms holds the left-hand
// sides of all lines of the grammar.
func parseLine(b *ll.GrammarBuilder, line string, nonterms map[string]bool) error {
	lhs, rhs, err := splitLine(line)
	if err != nil {
		return err
	}
	lm, err := rhsLexer()
	if err != nil {
		return err
	}
	scan, err := lm.Scanner(rhs)
	if err != nil {
		return err
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	pb := b.LHS(lhs)
	for tok := scan.NextToken(); tok.TokType() != scanner.EOF; tok = scan.NextToken() {
		switch tok.TokType() {
		case tokBar:
			pb.Or()
		case tokEpsilon:
			pb.Epsilon()
		case tokSymbol:
			appendSymbol(pb, tok.Lexeme(), nonterms)
		}
	}
	pb.End()
	if scanErr != nil {
		return scanErr
	}
	return b.Err()
}

func appendSymbol(pb *ll.ProductionBuilder, name string, nonterms map[string]bool) {
	if name == ll.EOFName {
		pb.EOF()
		return
	}
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsUpper(r) || nonterms[name] {
		pb.N(name)
	} else {
		pb.T(name)
	}
}
