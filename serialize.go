package exprtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
)

// String returns the readable form of a tree, intended for debugging and inspection.
//
// A leaf is printed as its label. Other nodes are printed as
//
//     (label [ child1, child2, … ])
//
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b bytes.Buffer
	n.readable(&b)
	return b.String()
}

func (n *Node) readable(b *bytes.Buffer) {
	if n.IsLeaf() {
		b.WriteString(n.Label)
		return
	}
	b.WriteString("(")
	b.WriteString(n.Label)
	b.WriteString(" [ ")
	for i, ch := range n.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		ch.readable(b)
	}
	b.WriteString(" ])")
}

// Canonical returns the bracket notation of a tree, as consumed by tree edit
// distance tools:
//
//     {label{child1…}{child2…}…}
//
// There are no separators and no escaping. Labels must not contain curly braces,
// otherwise the result is ambiguous. This is not checked.
func (n *Node) Canonical() string {
	if n == nil {
		return ""
	}
	var b bytes.Buffer
	n.canonical(&b)
	return b.String()
}

func (n *Node) canonical(b *bytes.Buffer) {
	b.WriteByte('{')
	b.WriteString(n.Label)
	for _, ch := range n.Children {
		ch.canonical(b)
	}
	b.WriteByte('}')
}

// --- Fingerprints ----------------------------------------------------------

// shape is the hashable structure of a node, leaving out its ID.
type shape struct {
	Label    string
	Children []shape
}

func shapeOf(n *Node) shape {
	s := shape{Label: n.Label}
	if len(n.Children) > 0 {
		s.Children = make([]shape, len(n.Children))
		for i, ch := range n.Children {
			s.Children[i] = shapeOf(ch)
		}
	}
	return s
}

// Fingerprint returns a hash over labels and shape of a tree. Trees which are
// Equal have the same fingerprint; node IDs do not contribute.
func Fingerprint(n *Node) (string, error) {
	if n == nil {
		return "", fmt.Errorf("cannot fingerprint a nil tree")
	}
	return structhash.Hash(shapeOf(n), 1)
}
