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
	"encoding/hex"
	"strings"

	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/sha3"
)

// HashFunc digests an input into an opaque hash string, typically a hex
// encoding of a cryptographic digest.
type HashFunc func(data []byte) string

// DigestChain is a non-empty ordered sequence of hash functions. A tree's
// chain is fixed at construction; swapping it requires rebuilding the tree,
// which is what keeps hashes comparable across operations.
type DigestChain []HashFunc

// Combine applies every function in the chain to the same input and
// concatenates the results in chain order. An empty chain behaves like
// DefaultChain.
func (c DigestChain) Combine(data []byte) string {
	if len(c) == 0 {
		c = DefaultChain()
	}
	var sb strings.Builder
	for _, f := range c {
		sb.WriteString(f(data))
	}
	return sb.String()
}

// DefaultChain returns the chain used when none is supplied: a single
// SHA-256 hex digest.
func DefaultChain() DigestChain {
	return DigestChain{SHA256Hex}
}

// SHA256Hex is the reference hash function: hex-encoded SHA-256.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SHA3Hex is a hex-encoded SHA3-256 digest.
func SHA3Hex(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Keccak256Hex is a hex-encoded legacy Keccak-256 digest, the variant used
// by Ethereum.
func Keccak256Hex(data []byte) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
