package ll

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/ebnf"
)

// EBNF exports g in the EBNF notation of the Go language specification,
// one production per line. Productions sharing a left-hand side are exported
// as a single EBNF production.
//
// Non-terminal names are transformed into EBNF identifiers: primes become 'ʹ'
// and other characters not allowed in identifiers become '_'. EBNF treats names
// not starting with an upper case letter as lexical, therefore such names
// receive the prefix 'N_'. Terminals are quoted. Nullable alternatives become
// an option group:
//
//    A -> x B | epsilon       ⇒    A = [ "x" B ] .
//
func EBNF(g *Grammar) string {
	// EBNF allows a single production per name, alternatives of repeated
	// left-hand sides are merged in order of appearance
	var lhs []string
	alts := make(map[string][]Alternative)
	for _, p := range g.productions {
		if _, ok := alts[p.lhs]; !ok {
			lhs = append(lhs, p.lhs)
		}
		alts[p.lhs] = append(alts[p.lhs], p.alts...)
	}
	var b strings.Builder
	for _, A := range lhs {
		b.WriteString(ebnfName(A))
		b.WriteString(" = ")
		b.WriteString(ebnfExpression(alts[A]))
		b.WriteString(" .\n")
	}
	return b.String()
}

func ebnfExpression(alts []Alternative) string {
	var seqs []string
	optional := false
	for _, alt := range alts {
		if len(alt) == 0 || alt.IsEpsilon() {
			optional = true
			continue
		}
		seqs = append(seqs, ebnfSequence(alt))
	}
	rhs := strings.Join(seqs, " | ")
	if optional {
		if len(seqs) == 0 {
			rhs = strconv.Quote(EpsilonName)
		}
		rhs = "[ " + rhs + " ]"
	}
	return rhs
}

func ebnfSequence(alt Alternative) string {
	syms := make([]string, 0, len(alt))
	for _, sym := range alt {
		switch sym.Kind {
		case NonTerminal:
			syms = append(syms, ebnfName(sym.Name))
		case Epsilon:
			continue
		default:
			syms = append(syms, strconv.Quote(sym.Name))
		}
	}
	return strings.Join(syms, " ")
}

func ebnfName(name string) string {
	id := strings.Map(func(r rune) rune {
		switch {
		case r == '\'':
			return 'ʹ'
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			return r
		}
		return '_'
	}, name)
	if r := []rune(id); len(r) == 0 || !unicode.IsUpper(r[0]) {
		id = "N_" + id
	}
	return id
}

// Verify checks g for undefined non-terminals (used on a right-hand side, but
// without production) and for productions not reachable from the start symbol.
// The check is done by golang.org/x/exp/ebnf on the EBNF export of g.
func Verify(g *Grammar) error {
	src := EBNF(g)
	eg, err := ebnf.Parse(g.Name, strings.NewReader(src))
	if err != nil {
		tracer().Errorf("EBNF export of grammar %s does not parse:\n%s", g.Name, src)
		return fmt.Errorf("grammar %s: %w", g.Name, err)
	}
	if err = ebnf.Verify(eg, ebnfName(g.start)); err != nil {
		return fmt.Errorf("grammar %s: %w", g.Name, err)
	}
	return nil
}
