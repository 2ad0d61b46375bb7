// Package bstcodec is a binary search tree with a canonical text encoding.
//
// The module is organized into small packages with distinct responsibilities:
//
//	bstcodec/           Root package, documentation only
//	├── tree/           Generic unbalanced binary search tree
//	├── codec/          Text encoder/decoder for trees
//	├── errors/         Structured error types for debugging
//	└── cmd/bstcodec/   Round-trip driver and interactive viewer
//
// # Quick Start
//
// Build a tree, encode it and decode it back:
//
//	t := tree.New[int]()
//	for _, k := range []int{5, 3, 8} {
//	    t.InsertKey(k)
//	}
//
//	s := codec.Encode(t) // "5(l3)(r8)"
//
//	back, err := codec.Decode(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	codec.Encode(back) == s // true
//
// # Text Format
//
// A node is its key followed by an optional "(l...)" group holding the left
// subtree and an optional "(r...)" group holding the right subtree. An empty
// tree is the empty string. Keys of the built-in format are base-10 integers.
//
//	5            single node
//	5(l3)(r8)    root 5, left 3, right 8
//	5(l3(l1))    left chain 5 -> 3 -> 1
//
// # Errors
//
// Insertion rejects nil nodes, nodes with children and nodes owned by another
// tree with an invalid_argument error. Decoding reports malformed text with
// format, unbalanced, invalid_key or duplicate_child errors carrying the byte
// offset; see the errors package.
package bstcodec
