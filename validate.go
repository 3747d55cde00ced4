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
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

var (
	errHashMismatch = errors.New("stored hash does not match recomputation")
	errVacantLeft   = errors.New("occupied child beneath a vacant left sibling")
)

// IsValid recomputes every node's digest bottom-up with the tree's own chain
// and reports whether each matches the stored one. A single tampered value
// or digest anywhere makes the whole tree invalid.
func (t *Tree[V]) IsValid() bool {
	return t.IsValidWith(nil)
}

// IsValidWith is IsValid under a different digest chain. A nil or empty
// chain falls back to the tree's own. Validating with a chain other than the
// one the tree was built with fails as soon as the two disagree on any input
// actually hashed in the tree.
//
// Sibling subtrees have no ordering dependency, so they are reverified in
// parallel up to a GOMAXPROCS goroutine budget.
func (t *Tree[V]) IsValidWith(chain DigestChain) bool {
	if len(chain) == 0 {
		chain = t.chain
	}
	g := &errgroup.Group{}
	g.SetLimit(runtime.GOMAXPROCS(0))
	err := t.root.verify(g, chain, t.codec.Serialize)
	if werr := g.Wait(); err == nil {
		err = werr
	}
	return err == nil
}

func (*empty[V]) verify(*errgroup.Group, DigestChain, func(V) (json.RawMessage, error)) error {
	return nil
}

func (l *leaf[V]) verify(_ *errgroup.Group, chain DigestChain, serialize func(V) (json.RawMessage, error)) error {
	data, err := serialize(l.val)
	if err != nil {
		return fmt.Errorf("reserializing leaf value: %w", err)
	}
	if chain.Combine(data) != l.sum {
		return errHashMismatch
	}
	return nil
}

func (b *branch[V]) verify(g *errgroup.Group, chain DigestChain, serialize func(V) (json.RawMessage, error)) error {
	lh, lok := occupiedHash(b.left)
	rh, rok := occupiedHash(b.right)

	var want string
	switch {
	case lok && rok:
		want = chain.Combine([]byte(lh + rh))
	case lok:
		want = chain.Combine([]byte(lh + lh))
	default:
		// Insertion can't build this shape, but a hostile document can.
		return errVacantLeft
	}
	if want != b.sum {
		return errHashMismatch
	}

	// TryGo keeps nested scheduling deadlock-free: when the group is at its
	// limit, recurse on this goroutine instead of waiting for a slot.
	for _, child := range []node[V]{b.left, b.right} {
		child := child
		if !g.TryGo(func() error { return child.verify(g, chain, serialize) }) {
			if err := child.verify(g, chain, serialize); err != nil {
				return err
			}
		}
	}
	return nil
}
