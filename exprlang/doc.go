/*
Package exprlang provides a textual notation for expression graphs.

Expression graphs are written as s-expressions, one form per kind of expression:

    (unary OP E)                       ; OP is e.g. "no", "!" or "NOOP"
    (list OP E…)                       ; OP is e.g. AND, OR
    (ite C T E)
    (qt OP (decl [disj] (NAME…) E)… BODY)
    (binary OP L R)
    (var NAME TYPE)                    ; TYPE is e.g. {this/Person}
    (const TEXT)
    (sig NAME)
    (subsig NAME)
    (call NAME ARG…)
    (field NAME SIG E)
    (let NAME E BODY)
    (other TAG TEXT)

Functions and predicates are defined at the top level with

    (fun NAME (decl …)… BODY)
    (pred NAME (decl …)… BODY)

A call has to reference a function defined earlier, or the function currently
being defined. Atoms are bare words or double-quoted strings, as in

    (unary "one of" (sig this/Person))

Comments start with ';' and extend to the end of the line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package exprlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exprtree.lang'
func tracer() tracing.Trace {
	return tracing.Select("exprtree.lang")
}
