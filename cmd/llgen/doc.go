/*
Command llgen runs the LL(1) table generator on a grammar file, or interactively
on grammar lines entered at a prompt.

Usage:

    llgen [flags] [grammar-file]

    -trace level     Trace level [Debug|Info|Error]
    -first-wins      in contested table cells, the first alternative wins
    -html file       export the LL(1) table to an HTML file
    -i               interactive mode

The grammar format is described in package gramlang. In interactive mode,
grammar lines are collected until one of the following commands is entered:

    :run             run the pipeline on the collected grammar
    :show            list the collected grammar lines
    :reset           discard the collected grammar lines
    :load FILE       replace the collected grammar lines by a file's content
    :quit            leave (as does <ctrl>D)

The default for -first-wins may be configured with the boolean configuration
key 'llgen-first-writer-wins'.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llgen.cli'
func tracer() tracing.Trace {
	return tracing.Select("llgen.cli")
}
