package exprtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync/atomic"
)

// --- Node identity ---------------------------------------------------------

// NodeID identifies a tree node. IDs are handed out by an IDSource in strictly
// increasing order. They serve identification and debugging only and never take part
// in structural comparison.
type NodeID uint64

// NoNodeID is the zero value, never handed out by an IDSource.
const NoNodeID NodeID = 0

// IsValid returns true if the ID has been assigned by an IDSource.
func (id NodeID) IsValid() bool {
	return id != NoNodeID
}

// IDSource hands out node IDs. Every call to NextID returns an ID greater than
// all IDs returned before.
type IDSource interface {
	NextID() NodeID
}

// Counter is an IDSource local to its owner, usually a single tree builder.
// It is not safe for concurrent use. The zero value is ready to use and will
// start with ID 1.
type Counter struct {
	last NodeID
}

// NextID is part of interface IDSource.
func (c *Counter) NextID() NodeID {
	c.last++
	return c.last
}

// Last returns the most recently assigned ID, or NoNodeID.
func (c *Counter) Last() NodeID {
	return c.last
}

type globalIDs struct {
	last uint64
}

func (g *globalIDs) NextID() NodeID {
	return NodeID(atomic.AddUint64(&g.last, 1))
}

// GlobalIDs is a process-wide IDSource, safe for concurrent use. Use it if IDs
// have to be unique across trees built independently.
var GlobalIDs IDSource = &globalIDs{}

// --- Tree nodes ------------------------------------------------------------

// Node is a node of a homogenous tree. A node carries a label, describing an
// operator, a variable type, a constant value or a declaration, and an ordered
// list of children. Children are owned exclusively by their parent.
type Node struct {
	ID       NodeID
	Label    string
	Children []*Node
}

// NewNode creates a tree node with the next ID from ids. ids may not be nil.
func NewNode(ids IDSource, label string, children ...*Node) *Node {
	return &Node{
		ID:       ids.NextID(),
		Label:    label,
		Children: children,
	}
}

// Leaf returns a node without children.
func Leaf(ids IDSource, label string) *Node {
	return NewNode(ids, label)
}

// IsLeaf returns true if n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Size counts the nodes of the tree rooted at n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	size := 1
	for _, ch := range n.Children {
		size += ch.Size()
	}
	return size
}

// Depth returns the number of nodes on the longest path from n to a leaf.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	d := 0
	for _, ch := range n.Children {
		if cd := ch.Depth(); cd > d {
			d = cd
		}
	}
	return d + 1
}

// Walk visits the tree top-down, left to right. If visit returns false, the
// children of the node will not be visited.
func (n *Node) Walk(visit func(node *Node, level int) bool) {
	n.walk(visit, 0)
}

func (n *Node) walk(visit func(*Node, int) bool, level int) {
	if n == nil {
		return
	}
	if !visit(n, level) {
		return
	}
	for _, ch := range n.Children {
		ch.walk(visit, level+1)
	}
}

// Equal returns true if two trees have identical labels and shapes. IDs are not
// considered.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Label != other.Label || len(n.Children) != len(other.Children) {
		return false
	}
	for i, ch := range n.Children {
		if !ch.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// GoString is a debugging representation, including node IDs.
func (n *Node) GoString() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("<node #%d %q |%d|>", n.ID, n.Label, len(n.Children))
}
