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

func TestDefaultChainIsSHA256Hex(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		DefaultChain().Combine([]byte("abc")))
}

func TestCombineAppliesEveryFunctionToTheSameInput(t *testing.T) {
	t.Parallel()

	f := func(data []byte) string { return "f:" + string(data) }
	g := func(data []byte) string { return "g:" + string(data) }

	require.Equal(t, "f:xg:x", DigestChain{f, g}.Combine([]byte("x")))
	require.Equal(t, "g:xf:x", DigestChain{g, f}.Combine([]byte("x")))
}

func TestCombineConcatenatesRealDigests(t *testing.T) {
	t.Parallel()

	input := []byte("carrot")
	chain := DigestChain{SHA256Hex, SHA3Hex}
	require.Equal(t, SHA256Hex(input)+SHA3Hex(input), chain.Combine(input))
}

func TestEmptyChainCombinesLikeDefault(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		DefaultChain().Combine([]byte("x")),
		DigestChain(nil).Combine([]byte("x")))
}

func TestSHA3Vectors(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		SHA3Hex(nil))
	require.Equal(t,
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		Keccak256Hex(nil))
}
