/*
Package ted computes the tree edit distance between homogenous trees.

Trees are either given as *exprtree.Node or in bracket notation, as produced by
(*exprtree.Node).Canonical:

    {all{one of{this/Person}}{in{var/this/Person}{this/Student}}}

The distance is the minimum number of node insertions, deletions and renamings
transforming one tree into the other (unit cost model).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ted

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exprtree.ted'.
func tracer() tracing.Trace {
	return tracing.Select("exprtree.ted")
}
