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

package merkletree

import (
	"encoding/json"

	"golang.org/x/sync/errgroup"
)

type (
	// node is one slot of the recursive tree: vacant, a single hashed
	// value, or an interior branch. Implementations are immutable once
	// built; insert returns a fresh node and shares untouched children.
	node[V comparable] interface {
		// count reports the number of occupied leaves in this subtree.
		count() uint64

		// hash reports the cached digest of this subtree. It is never
		// stale: every constructor recomputes it from its children.
		hash() string

		// insert places (value, sum) in the slot addressed by the target
		// index and returns the updated subtree.
		insert(value V, sum string, index uint64, chain DigestChain) node[V]

		// verify recomputes this subtree's digests bottom-up and reports
		// the first mismatch. Sibling subtrees may be verified on the
		// group's goroutines.
		verify(g *errgroup.Group, chain DigestChain, serialize func(V) (json.RawMessage, error)) error

		// document renders this subtree as the json.Marshal-able form of
		// the document schema, truncating hashes to mask characters.
		document(mask int, serialize func(V) (json.RawMessage, error)) (any, error)

		flattenInto(entries []Entry[V]) []Entry[V]
		find(value V, entries []Entry[V]) []Entry[V]
		has(value V) bool
		depth() int
		toDot(parent, path string) string
	}

	// empty is a vacant leaf slot, the placeholder for the missing
	// sibling of an unbalanced subtree.
	empty[V comparable] struct{}

	// leaf is a terminal occupied slot. sum is the digest-chain output
	// over the codec-serialized value.
	leaf[V comparable] struct {
		val V
		sum string
	}

	// branch is an interior node. n counts the occupied leaves beneath
	// it; sum combines the children's digests under the duplication rule.
	branch[V comparable] struct {
		n     uint64
		sum   string
		left  node[V]
		right node[V]
	}
)

func (*empty[V]) count() uint64 { return 0 }

func (*empty[V]) hash() string { return "" }

func (*leaf[V]) count() uint64 { return 1 }

func (l *leaf[V]) hash() string { return l.sum }

func (b *branch[V]) count() uint64 { return b.n }

func (b *branch[V]) hash() string { return b.sum }

func (*empty[V]) insert(value V, sum string, _ uint64, _ DigestChain) node[V] {
	return &leaf[V]{val: value, sum: sum}
}

// insert on an occupied leaf promotes it: the leaf becomes the left child of
// a two-leaf branch, with the new value on the right.
func (l *leaf[V]) insert(value V, sum string, _ uint64, chain DigestChain) node[V] {
	return newBranch[V](chain, l, &leaf[V]{val: value, sum: sum})
}

func (b *branch[V]) insert(value V, sum string, index uint64, chain DigestChain) node[V] {
	switch {
	case childWeight(b.left) < index:
		return newBranch[V](chain, b.left.insert(value, sum, index/2, chain), b.right)
	case b.n > 1 && b.n == index:
		// This subtree is at a power-of-two boundary below the root: the
		// new value completes the level as a fresh chain in the vacant
		// sibling slot.
		return newBranch[V](chain, b.left, singletonNode(chain, log2Pow2(b.n), value, sum))
	default:
		return newBranch[V](chain, b.left, b.right.insert(value, sum, index/2, chain))
	}
}

// childWeight is the descent weight of a child: a branch weighs its occupied
// count, while vacant and occupied leaves both weigh one.
func childWeight[V comparable](nd node[V]) uint64 {
	if b, ok := nd.(*branch[V]); ok {
		return b.n
	}
	return 1
}

// newBranch builds a branch over the given children, deriving its count and
// digest from them.
func newBranch[V comparable](chain DigestChain, left, right node[V]) *branch[V] {
	return &branch[V]{
		n:     left.count() + right.count(),
		sum:   combineChildren(chain, left, right),
		left:  left,
		right: right,
	}
}

// combineChildren derives a branch digest from its children. A vacant right
// sibling duplicates the left digest as both operands. A vacant left slot
// cannot be produced by insertion, so reaching one here means the tree shape
// is corrupt and continuing would break the determinism guarantee.
func combineChildren[V comparable](chain DigestChain, left, right node[V]) string {
	lh, lok := occupiedHash(left)
	rh, rok := occupiedHash(right)
	switch {
	case lok && rok:
		return chain.Combine([]byte(lh + rh))
	case lok:
		return chain.Combine([]byte(lh + lh))
	default:
		panic("merkletree: branch built over a vacant left child")
	}
}

// occupiedHash reports a child's digest, with ok false for a vacant slot.
func occupiedHash[V comparable](nd node[V]) (string, bool) {
	if _, vacant := nd.(*empty[V]); vacant {
		return "", false
	}
	return nd.hash(), true
}

// singletonNode wraps a fresh leaf in depth single-child branches, each
// pairing its child with a vacant right sibling. Depth 1 is the Singleton
// shape; insertion grafts deeper chains when a level fills up.
func singletonNode[V comparable](chain DigestChain, depth int, value V, sum string) node[V] {
	nd := node[V](&leaf[V]{val: value, sum: sum})
	for i := 0; i < depth; i++ {
		nd = newBranch[V](chain, nd, &empty[V]{})
	}
	return nd
}
