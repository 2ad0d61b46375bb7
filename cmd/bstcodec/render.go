package main

import (
	"strconv"

	"github.com/xlab/treeprint"

	"github.com/wippyai/bstcodec/tree"
)

func renderTree(t *tree.Tree[int]) string {
	if t.Empty() {
		return "(empty)\n"
	}
	root := treeprint.NewWithRoot(strconv.Itoa(t.Root().Key()))
	addChildren(root, t.Root())
	return root.String()
}

func addChildren(branch treeprint.Tree, n *tree.Node[int]) {
	if n.HasLeft() {
		addChild(branch, "l", n.Left())
	}
	if n.HasRight() {
		addChild(branch, "r", n.Right())
	}
}

func addChild(branch treeprint.Tree, side string, n *tree.Node[int]) {
	label := side + ": " + strconv.Itoa(n.Key())
	if !n.HasChild() {
		branch.AddNode(label)
		return
	}
	addChildren(branch.AddBranch(label), n)
}
