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

// Entry pairs an occupied leaf's value with its digest.
type Entry[V any] struct {
	Value V
	Hash  string
}

// Contains reports whether some occupied leaf holds value. The traversal is
// left-first and stops at the first match.
func (t *Tree[V]) Contains(value V) bool {
	return t.root.has(value)
}

// Get returns every occupied leaf equal to value, in left-to-right order,
// which is insertion order for trees built through Insert.
func (t *Tree[V]) Get(value V) []Entry[V] {
	return t.root.find(value, nil)
}

// Flatten returns every occupied leaf in left-to-right order, which is the
// full insertion order.
func (t *Tree[V]) Flatten() []Entry[V] {
	return t.root.flattenInto(nil)
}

// Depth reports the branch depth of the tree: 0 for an empty or single-leaf
// tree. After n plain insertions from empty the depth is ceil(log2 n).
func (t *Tree[V]) Depth() int {
	return t.root.depth()
}

func (*empty[V]) has(V) bool { return false }

func (*empty[V]) find(_ V, entries []Entry[V]) []Entry[V] { return entries }

func (*empty[V]) flattenInto(entries []Entry[V]) []Entry[V] { return entries }

func (*empty[V]) depth() int { return 0 }

func (l *leaf[V]) has(value V) bool {
	return l.val == value
}

func (l *leaf[V]) find(value V, entries []Entry[V]) []Entry[V] {
	if l.val == value {
		entries = append(entries, Entry[V]{Value: l.val, Hash: l.sum})
	}
	return entries
}

func (l *leaf[V]) flattenInto(entries []Entry[V]) []Entry[V] {
	return append(entries, Entry[V]{Value: l.val, Hash: l.sum})
}

func (*leaf[V]) depth() int { return 0 }

func (b *branch[V]) has(value V) bool {
	return b.left.has(value) || b.right.has(value)
}

func (b *branch[V]) find(value V, entries []Entry[V]) []Entry[V] {
	return b.right.find(value, b.left.find(value, entries))
}

func (b *branch[V]) flattenInto(entries []Entry[V]) []Entry[V] {
	return b.right.flattenInto(b.left.flattenInto(entries))
}

func (b *branch[V]) depth() int {
	return 1 + max(b.left.depth(), b.right.depth())
}
