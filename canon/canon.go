/*
Package canon brings homogenous trees into a canonical order.

For commutative operators the order of operands carries no meaning: 'a && b'
and 'b && a' are the same formula. Tree edit distance, however, is sensitive to
the order of children. Canonicalizing sorts the children of commutative
operators by their bracket notation, so that equivalent formulas result in
identical trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package canon

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/exprtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exprtree.canon'.
func tracer() tracing.Trace {
	return tracing.Select("exprtree.canon")
}

// commutativeOps holds the upper-case names of commutative operators.
var commutativeOps = hashset.New()

func init() {
	commutativeOps.Add("AND", "OR", "&&", "||", "&", "=", "!=", "<=>", "IFF", "+")
}

// IsCommutative returns true if op is the name of a commutative operator.
// Comparison ignores case.
func IsCommutative(op string) bool {
	return commutativeOps.Contains(strings.ToUpper(op))
}

// Canonicalize sorts the children of commutative operators, bottom-up, by their
// canonical string. Sorting is done in place. Canonicalize returns its argument.
func Canonicalize(tree *exprtree.Node) *exprtree.Node {
	if tree == nil {
		return nil
	}
	for _, ch := range tree.Children {
		Canonicalize(ch)
	}
	if len(tree.Children) > 1 && IsCommutative(tree.Label) {
		sortChildren(tree)
	}
	return tree
}

type keyed struct {
	key  string
	node *exprtree.Node
}

func byKey(a, b interface{}) int {
	return utils.StringComparator(a.(keyed).key, b.(keyed).key)
}

func sortChildren(tree *exprtree.Node) {
	list := arraylist.New()
	for _, ch := range tree.Children {
		list.Add(keyed{key: ch.Canonical(), node: ch})
	}
	list.Sort(byKey)
	it := list.Iterator()
	for it.Next() {
		tree.Children[it.Index()] = it.Value().(keyed).node
	}
	tracer().Debugf("sorted %d operands of commutative %s", len(tree.Children), tree.Label)
}
