package codec

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/bstcodec/errors"
	"github.com/wippyai/bstcodec/tree"
)

// Decode rebuilds a tree from its canonical text. Empty input yields an
// empty tree. Malformed input fails with an *errors.Error whose IsFormat
// reports true; no partial tree is returned.
func (c *Codec[K]) Decode(s string) (*tree.Tree[K], error) {
	t, err := c.decode(s)
	if err != nil {
		fields := []zap.Field{zap.Int("input_len", len(s)), zap.Error(err)}
		if e, ok := err.(*errors.Error); ok {
			fields = append(fields, zap.String("kind", string(e.Kind)), zap.Int("offset", e.Offset))
		}
		Logger().Debug("decode failed", fields...)
		return nil, err
	}
	return t, nil
}

func (c *Codec[K]) decode(s string) (*tree.Tree[K], error) {
	if s == "" {
		return tree.NewFunc(c.compare), nil
	}
	if err := checkBalance(s); err != nil {
		return nil, err
	}

	d := &decoder[K]{src: s, keys: c.keys}
	root, err := d.decodeRoot()
	if err != nil {
		return nil, err
	}

	t, err := tree.FromRootFunc(root, c.compare)
	if err != nil {
		return nil, err
	}
	if c.opts.strictOrder {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// checkBalance rejects text whose braces do not pair up. The structural
// parsers below tolerate missing closers, so "5(l" would otherwise decode
// to a lone root.
func checkBalance(s string) error {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case openBrace:
			depth++
		case closeBrace:
			if depth == 0 {
				return errors.Unbalanced(s, i, 0)
			}
			depth--
		}
	}
	if depth > 0 {
		return errors.Unbalanced(s, len(s), depth)
	}
	return nil
}

// decoder walks src by absolute offsets. Every search below is relative to
// the offset it starts from, and a relative index of 0 counts as "not
// found", matching how the grammar is sliced.
type decoder[K any] struct {
	src  string
	keys KeyFormat[K]
}

func (d *decoder[K]) decodeRoot() (*tree.Node[K], error) {
	next := strings.IndexByte(d.src, openBrace)
	end := len(d.src)
	if next > 0 {
		end = next
	}

	key, err := d.parseKey(0, end, nil)
	if err != nil {
		return nil, err
	}
	root := tree.NewNode(key)

	if next > 0 {
		sub := end + 1
		if err := d.decodeChild(root, nil, sub); err != nil {
			return nil, err
		}
		if err := d.decodeRight(root, nil, sub); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// decodeChild parses the group starting at off, just inside a '(', and
// attaches it to parent on the side named by its symbol.
func (d *decoder[K]) decodeChild(parent *tree.Node[K], path []string, off int) error {
	i := off
	for i < len(d.src) && (d.src[i] == openBrace || d.src[i] == closeBrace) {
		i++
	}
	if i+1 >= len(d.src) {
		return nil
	}

	symbol := d.src[i]
	if i != off && symbol != leftSymbol && symbol != rightSymbol {
		return errors.New(errors.PhaseDecode, errors.KindFormat).
			At(d.src, i).
			Path(path...).
			Value(symbol).
			Detail("expected '%c' or '%c', got '%c'", leftSymbol, rightSymbol, symbol).
			Build()
	}

	start := i + 1
	rest := d.src[start:]
	nextOpen := strings.IndexByte(rest, openBrace)
	nextClose := strings.IndexByte(rest, closeBrace)
	if max(nextOpen, nextClose) <= 0 {
		e := errors.Format(d.src, start, "key is not terminated")
		e.Path = path
		return e
	}

	end := nextClose
	if nextOpen > 0 && nextOpen < nextClose {
		end = nextOpen
	}
	if end < 0 {
		e := errors.Format(d.src, start, "key is not terminated by ')'")
		e.Path = path
		return e
	}

	side, attach := "r", parent.AttachRight
	if symbol == leftSymbol {
		side, attach = "l", parent.AttachLeft
	}
	childPath := appendPath(path, side)

	key, err := d.parseKey(start, start+end, childPath)
	if err != nil {
		return err
	}
	child := tree.NewNode(key)
	if err := attach(child); err != nil {
		e := errors.DuplicateChild(d.src, i, sideName(side))
		e.Path = childPath
		e.Cause = err
		return e
	}

	if end == nextOpen {
		sub := start + end + 1
		if err := d.decodeChild(child, childPath, sub); err != nil {
			return err
		}
		return d.decodeRight(child, childPath, sub)
	}
	return nil
}

// decodeRight skips past the group that began at off, counting depth from one
// already-open brace, then decodes a sibling group for parent if one follows.
func (d *decoder[K]) decodeRight(parent *tree.Node[K], path []string, off int) error {
	depth := 1
	i := off
	for depth > 0 && i < len(d.src) {
		switch d.src[i] {
		case openBrace:
			depth++
		case closeBrace:
			depth--
		}
		i++
	}

	if i < len(d.src) && d.src[i] != closeBrace {
		return d.decodeChild(parent, path, i+1)
	}
	return nil
}

func (d *decoder[K]) parseKey(start, end int, path []string) (K, error) {
	text := d.src[start:end]
	key, err := d.keys.ParseKey(text)
	if err != nil {
		var zero K
		e := errors.InvalidKey(d.src, start, text, err)
		e.Path = path
		return zero, e
	}
	return key, nil
}

func appendPath(path []string, side string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, side)
}

func sideName(side string) string {
	if side == "l" {
		return "left"
	}
	return "right"
}
