/*
Package llgen is a generator for predictive (LL(1)) parser tables.

LLGen takes a context-free grammar, prepares it for top-down parsing and
constructs the decision table a predictive parser needs. Package structure is
as follows:

■ ll: Package ll implements the grammar model, the grammar transformations
(left factoring, removal of immediate left recursion), FIRST/FOLLOW analysis and
the construction of the LL(1) table.

■ ll/gramlang: Package gramlang reads grammars from a line-oriented text format.

■ ll/scanner: Package scanner defines the tokenizer interface used by the grammar
loader, with a lexmachine adapter in sub-package lexmach.

■ cmd/llgen: A command line tool to run the pipeline on grammar files, either
in batch mode or interactively.

The base package contains data types which are used by the scanner packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package llgen
