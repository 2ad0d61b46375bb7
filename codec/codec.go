package codec

import (
	"cmp"

	"github.com/wippyai/bstcodec/tree"
)

const (
	openBrace   = '('
	closeBrace  = ')'
	leftSymbol  = 'l'
	rightSymbol = 'r'
)

// Option configures a Codec.
type Option func(*options)

type options struct {
	strictOrder bool
}

// WithStrictOrder makes Decode reject trees whose shape breaks the search
// order, e.g. "5(l9)".
func WithStrictOrder() Option {
	return func(o *options) {
		o.strictOrder = true
	}
}

// Codec encodes and decodes trees with keys of type K.
// A Codec holds no mutable state and may be shared.
type Codec[K any] struct {
	keys    KeyFormat[K]
	compare tree.CompareFunc[K]
	opts    options
}

// New returns a codec for ordered keys. Decoded trees are ordered by
// cmp.Compare.
func New[K cmp.Ordered](keys KeyFormat[K], opts ...Option) *Codec[K] {
	return NewFunc(keys, cmp.Compare[K], opts...)
}

// NewFunc returns a codec whose decoded trees use compare.
func NewFunc[K any](keys KeyFormat[K], compare tree.CompareFunc[K], opts ...Option) *Codec[K] {
	c := &Codec[K]{keys: keys, compare: compare}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// RoundTripResult holds both encodings produced by RoundTrip.
type RoundTripResult[K any] struct {
	Tree      *tree.Tree[K]
	Encoded   string
	Reencoded string
}

// OK reports whether re-encoding reproduced the original text.
func (r RoundTripResult[K]) OK() bool {
	return r.Encoded == r.Reencoded
}

// RoundTrip encodes t, decodes the result and encodes the decoded tree again.
func (c *Codec[K]) RoundTrip(t *tree.Tree[K]) (RoundTripResult[K], error) {
	res := RoundTripResult[K]{Encoded: c.Encode(t)}
	decoded, err := c.Decode(res.Encoded)
	if err != nil {
		return res, err
	}
	res.Tree = decoded
	res.Reencoded = c.Encode(decoded)
	return res, nil
}

var (
	ints       = New(Int)
	strictInts = New(Int, WithStrictOrder())
)

// Encode returns the canonical text of an int tree.
func Encode(t *tree.Tree[int]) string {
	return ints.Encode(t)
}

// Decode rebuilds an int tree from text produced by Encode.
func Decode(s string) (*tree.Tree[int], error) {
	return ints.Decode(s)
}

// DecodeStrict is Decode that also enforces the search order.
func DecodeStrict(s string) (*tree.Tree[int], error) {
	return strictInts.Decode(s)
}

// RoundTrip runs an int tree through Encode, Decode and Encode.
func RoundTrip(t *tree.Tree[int]) (RoundTripResult[int], error) {
	return ints.RoundTrip(t)
}
