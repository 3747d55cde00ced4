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

import "fmt"

// Dot renders the tree in graphviz dot format, for debugging.
func (t *Tree[V]) Dot() string {
	return fmt.Sprintf("digraph T {\nnode [shape=rect]\n%s}\n", t.root.toDot("", ""))
}

func (*empty[V]) toDot(string, string) string { return "" }

func (l *leaf[V]) toDot(parent, path string) string {
	ret := fmt.Sprintf("leaf%s [label=\"%.8s\\n%v\"]\n", path, l.sum, l.val)
	if len(parent) > 0 {
		ret += fmt.Sprintf("%s -> leaf%s\n", parent, path)
	}
	return ret
}

func (b *branch[V]) toDot(parent, path string) string {
	me := fmt.Sprintf("branch%s", path)
	ret := fmt.Sprintf("%s [label=\"n=%d\\n%.8s\"]\n", me, b.n, b.sum)
	if len(parent) > 0 {
		ret += fmt.Sprintf("%s -> %s\n", parent, me)
	}
	ret += b.left.toDot(me, path+"0")
	ret += b.right.toDot(me, path+"1")
	return ret
}
