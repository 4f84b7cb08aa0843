/*
Package build converts expression graphs into homogenous trees.

A Builder visits an expression graph top-down and creates one tree node for
every expression it visits. Labels are chosen by the kind of expression:

    Unary        operator name, one child (the operand)
    List         operator name, one child per argument
    ITE          "ite", condition and then-branch
    Quantified   quantifier name, one child per declaration bound, then the body
    Binary       operator name, left and right operand
    Var          "var/" + element type
    Constant     literal
    PrimSig      signature name
    SubsetSig    signature name
    Call         "call", the callee's body, then one child per argument
    Field        "field", the declaring expression

The identity operator NOOP is elided: the builder continues with its operand.
Call sites are inlined, i.e. the body of the callee is rebuilt at every call.
Other kinds of expressions, including let-expressions, are rejected with an
UnsupportedNodeKindError.

Node IDs are drawn from an IDSource owned by the builder. Every builder starts
with its own counter, so builders are independent of each other and may be used
in parallel. A single builder is not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package build

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exprtree.build'.
func tracer() tracing.Trace {
	return tracing.Select("exprtree.build")
}
