package codec

import (
	"strconv"
)

// KeyFormat converts keys to and from their textual form.
//
// AppendKey must never write '(' or ')' and must produce non-empty text.
// ParseKey(AppendKey(nil, k)) must return a key equal to k; otherwise
// re-encoding a decoded tree will not reproduce the input.
type KeyFormat[K any] interface {
	AppendKey(dst []byte, key K) []byte
	ParseKey(text string) (K, error)
}

// Int is the key format for int keys: base-10, optional leading sign.
var Int KeyFormat[int] = intFormat{}

// Int64 is the key format for int64 keys.
var Int64 KeyFormat[int64] = int64Format{}

type intFormat struct{}

func (intFormat) AppendKey(dst []byte, key int) []byte {
	return strconv.AppendInt(dst, int64(key), 10)
}

func (intFormat) ParseKey(text string) (int, error) {
	return strconv.Atoi(text)
}

type int64Format struct{}

func (int64Format) AppendKey(dst []byte, key int64) []byte {
	return strconv.AppendInt(dst, key, 10)
}

func (int64Format) ParseKey(text string) (int64, error) {
	return strconv.ParseInt(text, 10, 64)
}

// KeyFuncs adapts a pair of functions to KeyFormat.
type KeyFuncs[K any] struct {
	Format func(K) string
	Parse  func(string) (K, error)
}

func (f KeyFuncs[K]) AppendKey(dst []byte, key K) []byte {
	return append(dst, f.Format(key)...)
}

func (f KeyFuncs[K]) ParseKey(text string) (K, error) {
	return f.Parse(text)
}
