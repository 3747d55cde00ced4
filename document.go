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
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

var (
	errMissingHash   = errors.New("node object is missing its hash")
	errMissingChild  = errors.New("branch object is missing a child slot")
	errAmbiguousNode = errors.New("node object carries both leaf and branch fields")
	errUnknownNode   = errors.New("unrecognized node object")
)

// Document schema, one JSON rendering per node variant:
//
//	Node   := null | Leaf | Branch
//	Leaf   := {"hash": string, "data": <codec-serialized value>}
//	Branch := {"count": integer, "hash": string, "left": Node, "right": Node}
type (
	leafDocument struct {
		Hash string          `json:"hash"`
		Data json.RawMessage `json:"data"`
	}

	branchDocument struct {
		Count uint64 `json:"count"`
		Hash  string `json:"hash"`
		Left  any    `json:"left"`
		Right any    `json:"right"`
	}

	// nodeDocument is the parse-side superposition of the three forms;
	// field presence decides which one an object is.
	nodeDocument struct {
		Count *uint64         `json:"count"`
		Hash  *string         `json:"hash"`
		Data  json.RawMessage `json:"data"`
		Left  json.RawMessage `json:"left"`
		Right json.RawMessage `json:"right"`
	}
)

// ToDocument renders the tree as a JSON document. indent is the
// pretty-printing width in spaces, 0 for a compact single line. hashMask
// truncates every displayed hash to its first hashMask characters, 0 for the
// full hash; truncation is display-only and lossy, so a masked document
// parsed back with FromDocument will no longer validate.
func (t *Tree[V]) ToDocument(indent, hashMask int) ([]byte, error) {
	doc, err := t.root.document(hashMask, t.codec.Serialize)
	if err != nil {
		return nil, err
	}
	if indent <= 0 {
		return json.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", strings.Repeat(" ", indent))
}

// FromDocument parses a document produced by ToDocument into a tree over the
// given chain and codec. Digests are taken from the document as-is; call
// IsValid afterwards if integrity matters. Malformed or schema-violating
// input is reported as an error, never silently dropped.
func FromDocument[V comparable](chain DigestChain, codec Codec[V], doc []byte) (*Tree[V], error) {
	t := New(chain, codec)
	root, err := decodeNode(doc, codec.Deserialize)
	if err != nil {
		return nil, errors.Wrap(err, "parsing tree document")
	}
	t.root = root
	return t, nil
}

func (*empty[V]) document(int, func(V) (json.RawMessage, error)) (any, error) {
	return nil, nil
}

func (l *leaf[V]) document(mask int, serialize func(V) (json.RawMessage, error)) (any, error) {
	data, err := serialize(l.val)
	if err != nil {
		return nil, errors.Wrap(err, "serializing leaf value")
	}
	return &leafDocument{Hash: maskHash(l.sum, mask), Data: data}, nil
}

func (b *branch[V]) document(mask int, serialize func(V) (json.RawMessage, error)) (any, error) {
	left, err := b.left.document(mask, serialize)
	if err != nil {
		return nil, err
	}
	right, err := b.right.document(mask, serialize)
	if err != nil {
		return nil, err
	}
	return &branchDocument{
		Count: b.n,
		Hash:  maskHash(b.sum, mask),
		Left:  left,
		Right: right,
	}, nil
}

func decodeNode[V comparable](raw []byte, deserialize func(json.RawMessage) (V, error)) (node[V], error) {
	if isNullDocument(raw) {
		return &empty[V]{}, nil
	}

	var doc nodeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	switch {
	case doc.Data != nil && doc.Count != nil:
		return nil, errAmbiguousNode

	case doc.Data != nil:
		if doc.Hash == nil {
			return nil, errMissingHash
		}
		value, err := deserialize(doc.Data)
		if err != nil {
			return nil, errors.Wrap(err, "decoding leaf value")
		}
		return &leaf[V]{val: value, sum: *doc.Hash}, nil

	case doc.Count != nil:
		if doc.Hash == nil {
			return nil, errMissingHash
		}
		if doc.Left == nil || doc.Right == nil {
			return nil, errMissingChild
		}
		left, err := decodeNode(doc.Left, deserialize)
		if err != nil {
			return nil, err
		}
		right, err := decodeNode(doc.Right, deserialize)
		if err != nil {
			return nil, err
		}
		return &branch[V]{n: *doc.Count, sum: *doc.Hash, left: left, right: right}, nil

	default:
		return nil, errUnknownNode
	}
}

func isNullDocument(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// maskHash truncates a hash to its leading mask characters for display.
func maskHash(sum string, mask int) string {
	if mask <= 0 || mask >= len(sum) {
		return sum
	}
	return sum[:mask]
}
