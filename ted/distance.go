package ted

import (
	"strings"

	"github.com/npillmayer/exprtree"
)

// Distance returns the tree edit distance between a and b. Inserting or
// deleting a node costs 1, renaming a node costs 1 if the labels differ. A nil
// tree is treated as the empty tree.
//
// The distance is computed with the algorithm of Zhang and Shasha.
func Distance(a, b *exprtree.Node) int {
	if a == nil {
		return b.Size()
	}
	if b == nil {
		return a.Size()
	}
	t1, t2 := postorder(a), postorder(b)
	td := make([][]int, len(t1.labels))
	for i := range td {
		td[i] = make([]int, len(t2.labels))
	}
	for _, i := range t1.keyroots {
		for _, j := range t2.keyroots {
			forestDist(t1, t2, i, j, td)
		}
	}
	d := td[len(t1.labels)-1][len(t2.labels)-1]
	tracer().Debugf("distance(%s, %s) = %d", a.Canonical(), b.Canonical(), d)
	return d
}

// DistanceStrings returns the edit distance between two trees in bracket
// notation. Double quotes are removed from both inputs, and each input is put
// below an artificial root labeled "root", so inputs may consist of more than
// one tree.
func DistanceStrings(a, b string) (int, error) {
	t1, err := Parse(rooted(a))
	if err != nil {
		return 0, err
	}
	t2, err := Parse(rooted(b))
	if err != nil {
		return 0, err
	}
	return Distance(t1, t2), nil
}

func rooted(s string) string {
	return "{root" + strings.Replace(s, `"`, "", -1) + "}"
}

// --- Zhang-Shasha ----------------------------------------------------------

// indexedTree holds a tree's nodes in post-order.
type indexedTree struct {
	labels   []string
	lld      []int // post-order index of the leftmost leaf descendant
	keyroots []int // ascending
}

func postorder(root *exprtree.Node) *indexedTree {
	t := &indexedTree{}
	var visit func(n *exprtree.Node) int
	visit = func(n *exprtree.Node) int {
		leftmost := -1
		for i, ch := range n.Children {
			l := visit(ch)
			if i == 0 {
				leftmost = l
			}
		}
		inx := len(t.labels)
		if leftmost < 0 {
			leftmost = inx
		}
		t.labels = append(t.labels, n.Label)
		t.lld = append(t.lld, leftmost)
		return leftmost
	}
	visit(root)
	// a keyroot is the highest node for its leftmost leaf
	highest := make(map[int]int, len(t.lld))
	for i, l := range t.lld {
		highest[l] = i
	}
	for i, l := range t.lld {
		if highest[l] == i {
			t.keyroots = append(t.keyroots, i)
		}
	}
	return t
}

// forestDist computes the distances of all subtree pairs below keyroots i and j
// and stores them in td.
func forestDist(t1, t2 *indexedTree, i, j int, td [][]int) {
	ioff, joff := t1.lld[i]-1, t2.lld[j]-1
	m, n := i-ioff+1, j-joff+1
	fd := make([][]int, m)
	for x := range fd {
		fd[x] = make([]int, n)
		fd[x][0] = x
	}
	for y := 1; y < n; y++ {
		fd[0][y] = y
	}
	for x := 1; x < m; x++ {
		for y := 1; y < n; y++ {
			i1, j1 := x+ioff, y+joff
			if t1.lld[i1] == t1.lld[i] && t2.lld[j1] == t2.lld[j] {
				rename := 0
				if t1.labels[i1] != t2.labels[j1] {
					rename = 1
				}
				fd[x][y] = min3(fd[x-1][y]+1, fd[x][y-1]+1, fd[x-1][y-1]+rename)
				td[i1][j1] = fd[x][y]
			} else {
				p, q := t1.lld[i1]-1-ioff, t2.lld[j1]-1-joff
				fd[x][y] = min3(fd[x-1][y]+1, fd[x][y-1]+1, fd[p][q]+td[i1][j1])
			}
		}
	}
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
