// Package codec converts binary search trees to and from a compact text form.
//
// Grammar:
//
//	tree := "" | node
//	node := KEY [ "(l" node ")" ] [ "(r" node ")" ]
//
// Nodes are written in pre-order, a left group always precedes a right group
// and there is no whitespace, so each tree has exactly one encoding:
//
//	t := tree.New[int]()
//	for _, k := range []int{5, 3, 8, 1} {
//		t.InsertKey(k)
//	}
//	codec.Encode(t) // "5(l3(l1))(r8)"
//
// Decode is the inverse: codec.Encode(must(codec.Decode(s))) == s for every
// s produced by Encode. Decoding a node's right group first skips the whole
// left group by brace-depth counting, so arbitrarily deep left subtrees are
// handled.
//
// The package-level functions work on int keys. For other key types build a
// Codec with New or NewFunc and a KeyFormat:
//
//	c := codec.New(codec.Int64, codec.WithStrictOrder())
//	t, err := c.Decode("9(l-4)")
//
// Decode does not check the search order by default; "5(l9)" decodes to the
// shape it describes. WithStrictOrder rejects such input.
package codec
