package codec

import (
	"github.com/wippyai/bstcodec/tree"
)

// Encode returns the canonical text of t. An empty or nil tree encodes to "".
func (c *Codec[K]) Encode(t *tree.Tree[K]) string {
	return string(c.Append(nil, t))
}

// Append appends the canonical text of t to dst.
func (c *Codec[K]) Append(dst []byte, t *tree.Tree[K]) []byte {
	if t == nil || t.Empty() {
		return dst
	}
	return c.appendNode(dst, t.Root())
}

func (c *Codec[K]) appendNode(dst []byte, n *tree.Node[K]) []byte {
	dst = c.keys.AppendKey(dst, n.Key())
	if n.HasLeft() {
		dst = append(dst, openBrace, leftSymbol)
		dst = c.appendNode(dst, n.Left())
		dst = append(dst, closeBrace)
	}
	if n.HasRight() {
		dst = append(dst, openBrace, rightSymbol)
		dst = c.appendNode(dst, n.Right())
		dst = append(dst, closeBrace)
	}
	return dst
}
