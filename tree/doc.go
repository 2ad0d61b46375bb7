// Package tree implements an unbalanced binary search tree.
//
// Keys are ordered by a CompareFunc; New uses cmp.Compare for ordered types
// and NewFunc accepts any total order. Insertion order fully determines the
// shape: there is no rebalancing and no deletion. Duplicate keys are dropped
// without error.
//
//	t := tree.New[int]()
//	for _, k := range []int{5, 3, 8} {
//		if err := t.Insert(tree.NewNode(k)); err != nil {
//			return err
//		}
//	}
//	t.Keys() // [3 5 8]
//
// Every node is owned by exactly one parent. Insert and the Attach methods
// reject nil nodes, nodes that already have children and nodes that already
// belong to a tree.
package tree
