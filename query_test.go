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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetReturnsDuplicatesInInsertionOrder(t *testing.T) {
	t.Parallel()

	tr := intTree(t, 7, 3, 7, 9, 7)

	entries := tr.Get(7)
	require.Len(t, entries, 3)
	wantSum := DefaultChain().Combine([]byte("7"))
	for _, e := range entries {
		require.Equal(t, 7, e.Value)
		require.Equal(t, wantSum, e.Hash)
	}

	require.Len(t, tr.Get(3), 1)
	require.Len(t, tr.Get(9), 1)
	require.Empty(t, tr.Get(4))
}

func TestGetHashFollowsTheChain(t *testing.T) {
	t.Parallel()

	chain := DigestChain{SHA3Hex, SHA256Hex}
	tr, err := FromSlice(chain, JSONCodec[int](), []int{12})
	require.NoError(t, err)

	entries := tr.Get(12)
	require.Len(t, entries, 1)
	require.Equal(t, chain.Combine([]byte("12")), entries[0].Hash)
}

func TestContainsAgreesWithGet(t *testing.T) {
	t.Parallel()

	tr := intTree(t, 2, 4, 6, 8, 10)
	for v := -1; v <= 11; v++ {
		require.Equal(t, len(tr.Get(v)) > 0, tr.Contains(v), "value %d", v)
	}
}

func TestEmptyTreeQueries(t *testing.T) {
	t.Parallel()

	tr := New(nil, JSONCodec[int]())
	require.False(t, tr.Contains(1))
	require.Empty(t, tr.Get(1))
	require.Empty(t, tr.Flatten())
	require.Equal(t, 0, tr.Depth())
	require.Equal(t, uint64(0), tr.Count())
	require.Equal(t, "", tr.RootHash())
}

func TestSingleLeafTreeHasDepthZero(t *testing.T) {
	t.Parallel()

	tr := intTree(t, 1)
	require.Equal(t, 0, tr.Depth())
	require.Equal(t, uint64(1), tr.Count())
}
