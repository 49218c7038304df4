package gramlang

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.gramlang")
	defer teardown()
	//
	testCases := []struct {
		name       string
		input      string
		expect     string
		expectErr  bool
		expectLine int // 0 for errors not attributed to a line
	}{
		{
			name:   "expression grammar",
			input:  "E -> E + T | T\nT -> T * F | F\nF -> ( E ) | id\n",
			expect: "E -> E + T | T\nT -> T * F | F\nF -> ( E ) | id",
		},
		{
			name:   "blank lines and extra white space",
			input:  "\n   S ->  a S b |   epsilon \n\n",
			expect: "S -> a S b | epsilon",
		},
		{
			name:   "epsilon within alternative",
			input:  "S -> a epsilon b",
			expect: "S -> a b",
		},
		{
			name:   "end of input marker",
			input:  "S -> A $\nA -> a",
			expect: "S -> A $\nA -> a",
		},
		{
			name:   "no white space around bars",
			input:  "S -> a|b c|B\nB -> d",
			expect: "S -> a | b c | B\nB -> d",
		},
		{
			name:   "zero-length alternative",
			input:  "S -> a | | b",
			expect: "S -> a | | b",
		},
		{
			name:       "missing arrow",
			input:      "S a b",
			expectErr:  true,
			expectLine: 1,
		},
		{
			name:       "two symbols on left-hand side",
			input:      "S -> a\n\nA B -> c",
			expectErr:  true,
			expectLine: 3,
		},
		{
			name:       "empty right-hand side",
			input:      "S -> ",
			expectErr:  true,
			expectLine: 1,
		},
		{
			name:   "lower case left-hand side",
			input:  "S -> a\na -> b",
			expect: "S -> a\na -> b",
		},
		{
			name:   "recursive lower case left-hand side",
			input:  "s -> a s | b",
			expect: "s -> a s | b",
		},
		{
			name:       "reserved left-hand side",
			input:      "epsilon -> a",
			expectErr:  true,
			expectLine: 1,
		},
		{
			name:      "empty input",
			input:     "\n  \n",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g, err := Parse(tc.input)

			if tc.expectErr {
				if !assert.Error(err) {
					return
				}
				var lerr *LineError
				if tc.expectLine > 0 && assert.True(errors.As(err, &lerr), "expected a *LineError") {
					assert.Equal(tc.expectLine, lerr.Line)
				}
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, g.String())
		})
	}
}

func Test_SymbolClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.gramlang")
	defer teardown()
	//
	assert := assert.New(t)
	g, err := Parse("E -> E + T | T\nT -> T * F | F\nF -> ( E ) | id")
	if !assert.NoError(err) {
		return
	}
	assert.Equal("E", g.Start())
	assert.Equal([]string{"E", "T", "F"}, g.NonTerminals())
	assert.Equal([]string{"+", "*", "(", ")", "id"}, g.Terminals())
	assert.True(g.IsTerminal("id"))
	assert.False(g.IsTerminal("epsilon"))
}

func Test_LeftHandSideClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.gramlang")
	defer teardown()
	//
	assert := assert.New(t)
	g, err := Parse("stmts -> stmt ; stmts | epsilon\nstmt -> id")
	if !assert.NoError(err) {
		return
	}
	assert.Equal("stmts", g.Start())
	assert.Equal([]string{"stmts", "stmt"}, g.NonTerminals())
	assert.Equal([]string{";", "id"}, g.Terminals())
	assert.False(g.IsTerminal("stmt"))
}

func Test_LoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgen.gramlang")
	defer teardown()
	//
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "dangling.txt")
	src := "S -> i E t S S2 | a\nS2 -> e S | epsilon\nE -> b\n"
	if !assert.NoError(os.WriteFile(path, []byte(src), 0644)) {
		return
	}
	g, err := LoadFile(path)
	if !assert.NoError(err) {
		return
	}
	assert.Equal("dangling.txt", g.Name)
	assert.Equal(3, g.ProductionCount())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(err)
}
