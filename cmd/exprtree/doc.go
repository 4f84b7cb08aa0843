/*
Command exprtree is an interactive command line tool for converting expression
graphs into homogenous trees. Expression graphs are entered in the notation of
package exprlang, e.g.

    exprtree> (qt all (decl p (sig this/Person)) (binary in (var p "{this/Person}") (subsig this/Student)))

For every expression, exprtree prints the tree in readable and in bracket
notation, together with a structural fingerprint, and displays the tree on the
terminal. Functions defined with (fun …) or (pred …) stay available for
subsequent input.

Commands:

    :ted E1 E2     print the tree edit distance between the trees of E1 and E2
    :funcs         list the functions defined so far
    :quit          leave exprtree (same as <ctrl>D)

Flags:

    -trace LEVEL   trace level [Debug|Info|Error]
    -init FILE     read expressions and definitions from FILE before going interactive
    -anon          label variables with aliases var0, var1, …
    -sort          sort operands of commutative operators

Remaining arguments are read as input before going interactive.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exprtree.lang'
func tracer() tracing.Trace {
	return tracing.Select("exprtree.lang")
}
