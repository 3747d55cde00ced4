// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Package merkletree provides an immutable, incrementally-growable balanced
// binary hash tree, bound at construction time to a value type, a chain of
// digest functions and a value codec.
//
// Insertion is append-only and runs in logarithmic time. Every mutating
// operation returns a new tree value; the original is never modified, and
// unchanged subtrees are shared between versions. The resulting shape is a
// deterministic function of the insertion sequence alone, so two trees built
// from the same ordered values over the same digest chain carry identical
// root hashes. Trees serialize to and from a JSON document; see ToDocument
// and FromDocument.
package merkletree

import (
	"fmt"
)

// Tree is an immutable balanced binary hash tree over values of type V. The
// digest chain and value codec are fixed when the tree is created and apply
// to every version derived from it, which keeps hashes comparable across
// operations on the same lineage.
//
// The zero value is not usable; construct trees with New, Singleton,
// FromSlice or FromDocument.
type Tree[V comparable] struct {
	root  node[V]
	chain DigestChain
	codec Codec[V]
}

// New returns an empty tree using the given digest chain and codec. A nil or
// empty chain selects DefaultChain.
func New[V comparable](chain DigestChain, codec Codec[V]) *Tree[V] {
	if len(chain) == 0 {
		chain = DefaultChain()
	}
	return &Tree[V]{root: &empty[V]{}, chain: chain, codec: codec}
}

// Singleton returns a tree holding exactly one value. The leaf is wrapped in
// a single-child branch paired with a vacant sibling, so the tree reports
// depth 1.
func Singleton[V comparable](chain DigestChain, codec Codec[V], value V) (*Tree[V], error) {
	t := New(chain, codec)
	data, err := codec.Serialize(value)
	if err != nil {
		return nil, fmt.Errorf("serializing value: %w", err)
	}
	t.root = singletonNode(t.chain, 1, value, t.chain.Combine(data))
	return t, nil
}

// FromSlice folds Insert over values in order, starting from an empty tree:
// the i-th element of values is the i-th insertion.
func FromSlice[V comparable](chain DigestChain, codec Codec[V], values []V) (*Tree[V], error) {
	return New(chain, codec).InsertAll(values...)
}

// Insert appends value and returns the resulting tree. The receiver is left
// untouched and remains valid; the two versions share every subtree the
// insertion did not pass through. An error is only ever reported by the
// value codec.
func (t *Tree[V]) Insert(value V) (*Tree[V], error) {
	data, err := t.codec.Serialize(value)
	if err != nil {
		return nil, fmt.Errorf("serializing value: %w", err)
	}
	sum := t.chain.Combine(data)

	var next node[V]
	switch b := t.root.(type) {
	case *branch[V]:
		m := ceilPow2(b.n)
		if b.n > 1 && b.n == m {
			// The root sits at a power-of-two capacity boundary. Double the
			// capacity by pairing it with a fresh chain of equal depth
			// holding the new value.
			next = newBranch[V](t.chain, b, singletonNode(t.chain, log2Pow2(m), value, sum))
		} else {
			next = b.insert(value, sum, m/2, t.chain)
		}
	default:
		next = t.root.insert(value, sum, 0, t.chain)
	}
	return &Tree[V]{root: next, chain: t.chain, codec: t.codec}, nil
}

// InsertAll appends each value in order, as if by repeated Insert.
func (t *Tree[V]) InsertAll(values ...V) (*Tree[V], error) {
	next := t
	for _, v := range values {
		var err error
		if next, err = next.Insert(v); err != nil {
			return nil, err
		}
	}
	return next, nil
}

// Count reports the number of occupied leaves in the tree.
func (t *Tree[V]) Count() uint64 {
	return t.root.count()
}

// RootHash reports the digest of the root node, or "" for an empty tree.
func (t *Tree[V]) RootHash() string {
	return t.root.hash()
}
