package tree

import (
	"cmp"

	"github.com/wippyai/bstcodec/errors"
)

// CompareFunc returns a negative number when a < b, zero when a == b and a
// positive number when a > b. It must define a total order.
type CompareFunc[K any] func(a, b K) int

// Tree is an unbalanced binary search tree. The zero value is not usable;
// construct trees with New or NewFunc.
//
// A Tree is not safe for concurrent mutation.
type Tree[K any] struct {
	root    *Node[K]
	compare CompareFunc[K]
}

// New returns an empty tree ordered by cmp.Compare.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{compare: cmp.Compare[K]}
}

// NewFunc returns an empty tree ordered by compare.
func NewFunc[K any](compare CompareFunc[K]) *Tree[K] {
	if compare == nil {
		panic("tree: nil compare function")
	}
	return &Tree[K]{compare: compare}
}

// FromRoot adopts root, with any descendants already attached to it, as the
// root of a new tree ordered by cmp.Compare. A nil root yields an empty tree.
func FromRoot[K cmp.Ordered](root *Node[K]) (*Tree[K], error) {
	return FromRootFunc(root, cmp.Compare[K])
}

// FromRootFunc is FromRoot with a custom ordering. The shape is taken as is;
// call Validate to check it against compare.
func FromRootFunc[K any](root *Node[K], compare CompareFunc[K]) (*Tree[K], error) {
	t := NewFunc(compare)
	if root == nil {
		return t, nil
	}
	if root.owned {
		return nil, errors.InvalidArgument(errors.PhaseInsert, "node already belongs to a tree")
	}
	root.owned = true
	t.root = root
	return t, nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Empty reports whether the tree has no nodes.
func (t *Tree[K]) Empty() bool {
	return t.root == nil
}

// Compare returns the ordering used by the tree.
func (t *Tree[K]) Compare() CompareFunc[K] {
	return t.compare
}

// Insert places node in the tree. The node must be a bare leaf that is not
// owned by any tree. A node whose key is already present is dropped and the
// tree is left unchanged.
func (t *Tree[K]) Insert(node *Node[K]) error {
	if err := checkBare(node); err != nil {
		return err
	}
	t.insert(node)
	return nil
}

// InsertKey wraps key in a new node and inserts it. It reports whether the
// key was added.
func (t *Tree[K]) InsertKey(key K) bool {
	return t.insert(NewNode(key))
}

func (t *Tree[K]) insert(node *Node[K]) bool {
	if t.root == nil {
		node.owned = true
		t.root = node
		return true
	}

	current := t.root
	for {
		c := t.compare(node.key, current.key)
		switch {
		case c < 0:
			if current.left == nil {
				node.owned = true
				current.left = node
				return true
			}
			current = current.left
		case c > 0:
			if current.right == nil {
				node.owned = true
				current.right = node
				return true
			}
			current = current.right
		default:
			return false
		}
	}
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K]) Contains(key K) bool {
	current := t.root
	for current != nil {
		c := t.compare(key, current.key)
		switch {
		case c < 0:
			current = current.left
		case c > 0:
			current = current.right
		default:
			return true
		}
	}
	return false
}
