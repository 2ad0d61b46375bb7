package tree

import (
	"iter"

	"github.com/wippyai/bstcodec/errors"
)

// Side identifies how a node hangs off its parent.
type Side uint8

const (
	SideRoot Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideRoot:
		return "root"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// VisitFunc is called for each node during Walk. Returning false stops the walk.
type VisitFunc[K any] func(n *Node[K], depth int, side Side) bool

// Walk visits nodes in pre-order: node, left subtree, right subtree.
// The root has depth 0.
func (t *Tree[K]) Walk(fn VisitFunc[K]) {
	walk(t.root, 0, SideRoot, fn)
}

func walk[K any](n *Node[K], depth int, side Side, fn VisitFunc[K]) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth, side) {
		return false
	}
	return walk(n.left, depth+1, SideLeft, fn) && walk(n.right, depth+1, SideRight, fn)
}

// All returns the keys in ascending order.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(t.root, yield)
	}
}

func inOrder[K any](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.key) && inOrder(n.right, yield)
}

// Keys returns the keys in ascending order.
func (t *Tree[K]) Keys() []K {
	var keys []K
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of nodes.
func (t *Tree[K]) Len() int {
	n := 0
	t.Walk(func(*Node[K], int, Side) bool {
		n++
		return true
	})
	return n
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
func (t *Tree[K]) Height() int {
	return height(t.root)
}

func height[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Validate checks the strict ordering invariant for every node. Trees built
// only through Insert always pass; shapes assembled with AttachLeft and
// AttachRight may not.
func (t *Tree[K]) Validate() error {
	return t.validate(t.root, nil, nil, nil)
}

func (t *Tree[K]) validate(n *Node[K], lo, hi *K, path []string) error {
	if n == nil {
		return nil
	}
	if lo != nil && t.compare(n.key, *lo) <= 0 {
		return errors.OrderViolation(path, n.key, *lo, "greater")
	}
	if hi != nil && t.compare(n.key, *hi) >= 0 {
		return errors.OrderViolation(path, n.key, *hi, "less")
	}
	if err := t.validate(n.left, lo, &n.key, appendPath(path, "l")); err != nil {
		return err
	}
	return t.validate(n.right, &n.key, hi, appendPath(path, "r"))
}

// appendPath copies so sibling branches never share a backing array.
func appendPath(path []string, step string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, step)
}

// Equal reports whether a and b have the same shape with equal keys at every
// position. Keys are compared with a's ordering.
func Equal[K any](a, b *Tree[K]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return equalNodes(a.root, b.root, a.compare)
}

func equalNodes[K any](x, y *Node[K], compare CompareFunc[K]) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return compare(x.key, y.key) == 0 &&
		equalNodes(x.left, y.left, compare) &&
		equalNodes(x.right, y.right, compare)
}
