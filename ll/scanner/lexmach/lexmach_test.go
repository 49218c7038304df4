package lexmach

import (
	"testing"

	"github.com/npillmayer/llgen/ll/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"a",
	"E + T | T",
	"( E ) | id",
	"epsilon",
	"  F'  |  x1 |",
}

var TokenCounts = []int{1, 5, 5, 1, 4}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(initLexer, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != TokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, TokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMTokenTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(initLexer, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("A |epsilon epsilons")
	expected := []int{tokenIds["SYMBOL"], tokenIds["|"], tokenIds["epsilon"], tokenIds["SYMBOL"]}
	for i, typ := range expected {
		token := sc.NextToken()
		if int(token.TokType()) != typ {
			t.Errorf("expected token #%d (%q) to be of type %d, is %d", i, token.Lexeme(), typ, token.TokType())
		}
	}
	if token := sc.NextToken(); token.TokType() != scanner.EOF {
		t.Errorf("expected EOF, have %q", token.Lexeme())
	}
}

func TestLMErrorHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.scanner")
	defer teardown()
	//
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[a-z]+`), MakeToken("SYMBOL", tokenIds["SYMBOL"]))
		lexer.Add([]byte(`( |\t)+`), Skip)
	}
	LM, err := NewLMAdapter(init, nil, nil, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("ab # cd")
	errcnt := 0
	sc.SetErrorHandler(func(error) { errcnt++ })
	count := 0
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 tokens, have %d", count)
	}
	if errcnt == 0 {
		t.Errorf("expected error handler to be called for '#'")
	}
}

func initLexer(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`[^ \t\r\n\|]+`), MakeToken("SYMBOL", tokenIds["SYMBOL"]))
	lexer.Add([]byte(`( |\t|\r|\n)+`), Skip)
}

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{"|"}
	keywords = []string{"epsilon"}
	tokenIds = make(map[string]int)
	tokenIds["SYMBOL"] = scanner.Ident
	tokenIds["|"] = '|'
	tokenIds["epsilon"] = 'ε'
}
