// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"
)

// UnknownOrderNotice is written before falling back to in-order.
const UnknownOrderNotice = "Unknown traversal type. Using inorder by default."

// FormatList renders keys as "[k1, k2, ..., kn]".
func FormatList[K cmp.Ordered](keys []K) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, k)
	}
	sb.WriteByte(']')
	return sb.String()
}

// PrintAsList writes the traversal selected by order to standard output.
func (t *Tree[K]) PrintAsList(order string) {
	t.FprintAsList(os.Stdout, order)
}

// FprintAsList writes "<label>: [k1, ..., kn]" for the traversal named by
// order ("inorder", "preorder", "postorder" or "levelorder"; empty means
// "inorder"). An unknown name writes UnknownOrderNotice on its own line and
// falls back to in-order.
func (t *Tree[K]) FprintAsList(w io.Writer, order string) {
	o, err := ParseOrder(order)
	if err != nil {
		fmt.Fprintln(w, UnknownOrderNotice)
	}
	fmt.Fprintf(w, "%s: %s\n", o.Label(), FormatList(t.Traverse(o)))
}

// String draws the tree sideways, right subtree on top. Meant for small
// trees only.
func (t *Tree[K]) String() string {
	if t == nil || t.root == nil {
		return "────┤ empty"
	}
	var sb strings.Builder
	drawNode(&sb, t.root, "", false, true)
	return sb.String()
}

func drawNode[K cmp.Ordered](sb *strings.Builder, n *node[K], prefix string, tail bool, isRoot bool) {
	if n.right != nil {
		next := prefix + "\t"
		if tail {
			next = prefix + "│\t"
		}
		drawNode(sb, n.right, next, false, false)
	}

	switch {
	case isRoot:
		sb.WriteString(prefix + "───")
	case tail:
		sb.WriteString(prefix + "└──")
	default:
		sb.WriteString(prefix + "┌──")
	}
	fmt.Fprintf(sb, "─┤ %v (h=%d)\n", n.key, n.height)

	if n.left != nil {
		next := prefix + "│\t"
		if tail || isRoot {
			next = prefix + "\t"
		}
		drawNode(sb, n.left, next, true, false)
	}
}
