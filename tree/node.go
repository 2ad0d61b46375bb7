package tree

import (
	"github.com/wippyai/bstcodec/errors"
)

// Node is a single tree element. It exclusively owns its children.
type Node[K any] struct {
	key   K
	left  *Node[K]
	right *Node[K]
	owned bool
}

// NewNode returns a bare leaf holding key.
func NewNode[K any](key K) *Node[K] {
	return &Node[K]{key: key}
}

func (n *Node[K]) Key() K          { return n.key }
func (n *Node[K]) Left() *Node[K]  { return n.left }
func (n *Node[K]) Right() *Node[K] { return n.right }
func (n *Node[K]) HasLeft() bool   { return n.left != nil }
func (n *Node[K]) HasRight() bool  { return n.right != nil }

// HasChild reports whether n has at least one child.
func (n *Node[K]) HasChild() bool {
	return n.left != nil || n.right != nil
}

// Owned reports whether n has been placed in a tree, as root or descendant.
func (n *Node[K]) Owned() bool {
	return n.owned
}

// AttachLeft sets child as the left child of n. The slot must be empty and
// child must be a bare, unowned node. No ordering check is made; use
// Tree.Insert for ordered placement and Tree.Validate to check a hand-built
// shape.
func (n *Node[K]) AttachLeft(child *Node[K]) error {
	if n.left != nil {
		return errors.InvalidArgument(errors.PhaseInsert, "left child already set")
	}
	if err := checkBare(child); err != nil {
		return err
	}
	child.owned = true
	n.left = child
	return nil
}

// AttachRight sets child as the right child of n, see AttachLeft.
func (n *Node[K]) AttachRight(child *Node[K]) error {
	if n.right != nil {
		return errors.InvalidArgument(errors.PhaseInsert, "right child already set")
	}
	if err := checkBare(child); err != nil {
		return err
	}
	child.owned = true
	n.right = child
	return nil
}

func checkBare[K any](n *Node[K]) error {
	switch {
	case n == nil:
		return errors.InvalidArgument(errors.PhaseInsert, "node must not be nil")
	case n.HasChild():
		return errors.InvalidArgument(errors.PhaseInsert, "node must not have children")
	case n.owned:
		return errors.InvalidArgument(errors.PhaseInsert, "node already belongs to a tree")
	}
	return nil
}
