package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/llgen/ll"
	"github.com/npillmayer/llgen/ll/gramlang"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var traceKeys = []string{"llgen.ll", "llgen.scanner", "llgen.gramlang", "llgen.cli"}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	firstWins := flag.Bool("first-wins", gconf.GetBool("llgen-first-writer-wins"),
		"In contested table cells, the first alternative wins")
	htmlfile := flag.String("html", "", "Export the LL(1) table to an HTML file")
	interactive := flag.Bool("i", false, "Interactive mode")
	flag.Parse()
	setTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	policy := ll.LastWriterWins
	if *firstWins {
		policy = ll.FirstWriterWins
	}
	tracer().Infof("Conflict policy is %s", policy)
	//
	if flag.NArg() == 0 || *interactive {
		repl, err := readline.New("llgen> ")
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(3)
		}
		defer repl.Close()
		intp := &Intp{
			repl:     repl,
			policy:   policy,
			htmlfile: *htmlfile,
		}
		pterm.Info.Println("Welcome to LLGen") // colored welcome message
		pterm.Info.Println("Enter grammar lines, or :run, :show, :reset, :load FILE, :quit")
		if flag.NArg() > 0 {
			intp.load(flag.Arg(0))
		}
		intp.REPL()
		return
	}
	exitcode := 0
	for _, filename := range flag.Args() {
		g, err := gramlang.LoadFile(filename)
		if err != nil {
			pterm.Error.Println(err.Error())
			exitcode = 1
			continue
		}
		result := ll.Generate(g, ll.WithConflictPolicy(policy))
		printResult(result)
		if *htmlfile != "" {
			exportHTML(result.Table, htmlName(*htmlfile, filename, flag.NArg()))
		}
	}
	os.Exit(exitcode)
}

// htmlName derives the HTML output file for a grammar file. With more than one
// grammar file, the grammar's base name is inserted before the extension.
func htmlName(htmlfile, grammarfile string, count int) string {
	if count < 2 {
		return htmlfile
	}
	ext := filepath.Ext(htmlfile)
	base := strings.TrimSuffix(filepath.Base(grammarfile), filepath.Ext(grammarfile))
	return strings.TrimSuffix(htmlfile, ext) + "-" + base + ext
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object. It collects grammar lines and runs the
// pipeline on request.
type Intp struct {
	repl     *readline.Instance
	lines    []string // grammar source entered so far
	policy   ll.ConflictPolicy
	htmlfile string
	lastFP   string     // fingerprint of the grammar of the last run
	last     *ll.Result // result of the last run
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or collects a grammar line.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		if _, err := gramlang.Parse(line); err != nil {
			return false, err
		}
		intp.lines = append(intp.lines, line)
		return false, nil
	}
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		return true, nil
	case ":run":
		return false, intp.run()
	case ":show":
		for i, l := range intp.lines {
			pterm.Println(fmt.Sprintf("%3d  %s", i+1, l))
		}
	case ":reset":
		intp.lines = nil
		pterm.Info.Println("grammar cleared")
	case ":load":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :load FILE")
		}
		intp.load(args[1])
	default:
		return false, fmt.Errorf("unknown command %s", args[0])
	}
	return false, nil
}

func (intp *Intp) load(filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if _, err = gramlang.Parse(string(data)); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	intp.lines = nil
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			intp.lines = append(intp.lines, line)
		}
	}
	pterm.Info.Println(fmt.Sprintf("loaded %d grammar lines from %s", len(intp.lines), filename))
}

func (intp *Intp) run() error {
	if len(intp.lines) == 0 {
		return fmt.Errorf("no grammar lines entered")
	}
	g, err := gramlang.Parse(strings.Join(intp.lines, "\n"))
	if err != nil {
		return err
	}
	if fp := g.Fingerprint(); fp != "" && fp == intp.lastFP {
		tracer().Infof("grammar unchanged, fingerprint %s", fp)
		pterm.Info.Println("grammar unchanged")
	} else {
		intp.last = ll.Generate(g, ll.WithConflictPolicy(intp.policy))
		intp.lastFP = fp
	}
	printResult(intp.last)
	if intp.htmlfile != "" {
		exportHTML(intp.last.Table, intp.htmlfile)
	}
	return nil
}

// --- Output ----------------------------------------------------------------

func printResult(r *ll.Result) {
	pterm.DefaultSection.Println("Original grammar")
	pterm.Println(r.Original.String())
	pterm.DefaultSection.Println("Grammar after left factoring")
	pterm.Println(r.Factored.String())
	pterm.DefaultSection.Println("Grammar after removal of left recursion")
	pterm.Println(r.Grammar.String())
	//
	pterm.DefaultSection.Println("FIRST and FOLLOW sets")
	first, follow := r.Analysis.FirstSets(), r.Analysis.FollowSets()
	sets := pterm.TableData{{"", "FIRST", "FOLLOW"}}
	for _, A := range r.Grammar.NonTerminals() {
		sets = append(sets, []string{A, first[A].String(), follow[A].String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(sets).Render()
	//
	pterm.DefaultSection.Println("LL(1) table")
	header := append([]string{""}, r.Table.Columns()...)
	table := pterm.TableData{header}
	for _, A := range r.Table.NonTerminals() {
		row := []string{A}
		for _, a := range r.Table.Columns() {
			cell := ""
			if ref, ok := r.Table.Entry(A, a); ok {
				cell = r.Table.Rule(ref)
			}
			row = append(row, cell)
		}
		table = append(table, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(table).Render()
	//
	for _, d := range r.Diagnostics {
		pterm.Warning.Println(d.String())
	}
	if r.IsLL1() {
		pterm.Success.Println("grammar is LL(1)")
	} else {
		pterm.Warning.Println(fmt.Sprintf("grammar is not LL(1): %d conflicts, policy %s",
			len(r.Conflicts), r.Table.Policy()))
	}
}

func exportHTML(table *ll.Table, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	defer f.Close()
	ll.TableAsHTML(table, f)
	pterm.Info.Println(fmt.Sprintf("table written to %s", filename))
}

// --- Tracing ---------------------------------------------------------------

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
