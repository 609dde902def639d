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
	"errors"
	"fmt"
	"strings"
)

// Order selects one of the four traversals.
type Order int

const (
	OrderIn Order = iota
	OrderPre
	OrderPost
	OrderLevel
)

var ErrUnknownOrder = errors.New("unknown traversal order")

var orderNames = [...]string{
	OrderIn:    "inorder",
	OrderPre:   "preorder",
	OrderPost:  "postorder",
	OrderLevel: "levelorder",
}

var orderLabels = [...]string{
	OrderIn:    "In-order traversal (sorted)",
	OrderPre:   "Pre-order traversal",
	OrderPost:  "Post-order traversal",
	OrderLevel: "Level-order traversal",
}

// Orders lists every traversal in display order.
func Orders() []Order {
	return []Order{OrderIn, OrderPre, OrderPost, OrderLevel}
}

// ParseOrder maps a name such as "levelorder" to its Order. The empty string
// selects OrderIn. Unknown names return OrderIn together with an error
// wrapping ErrUnknownOrder.
func ParseOrder(name string) (Order, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return OrderIn, nil
	}
	for i, n := range orderNames {
		if n == name {
			return Order(i), nil
		}
	}
	return OrderIn, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// Label is the heading printed in front of a rendered traversal.
func (o Order) Label() string {
	if o < 0 || int(o) >= len(orderLabels) {
		return o.String()
	}
	return orderLabels[o]
}

// Traverse returns the keys in the given order. An out of range Order falls
// back to in-order.
func (t *Tree[K]) Traverse(order Order) []K {
	switch order {
	case OrderPre:
		return t.PreOrder()
	case OrderPost:
		return t.PostOrder()
	case OrderLevel:
		return t.LevelOrder()
	default:
		return t.InOrder()
	}
}

// InOrder returns the keys in ascending order.
func (t *Tree[K]) InOrder() []K {
	result := make([]K, 0, t.count)
	inOrder(t.root, &result)
	return result
}

// PreOrder returns the keys root first, then the left and right subtrees.
func (t *Tree[K]) PreOrder() []K {
	result := make([]K, 0, t.count)
	preOrder(t.root, &result)
	return result
}

// PostOrder returns the keys of the left and right subtrees before the root.
func (t *Tree[K]) PostOrder() []K {
	result := make([]K, 0, t.count)
	postOrder(t.root, &result)
	return result
}

// LevelOrder returns the keys breadth first, left to right within a depth.
func (t *Tree[K]) LevelOrder() []K {
	result := make([]K, 0, t.count)
	if t.root == nil {
		return result
	}

	queue := []*node[K]{t.root}
	for len(queue) > 0 {
		current := queue[0]
		queue[0] = nil
		queue = queue[1:]

		result = append(result, current.key)
		if current.left != nil {
			queue = append(queue, current.left)
		}
		if current.right != nil {
			queue = append(queue, current.right)
		}
	}
	return result
}

func inOrder[K cmp.Ordered](n *node[K], result *[]K) {
	if n == nil {
		return
	}
	inOrder(n.left, result)
	*result = append(*result, n.key)
	inOrder(n.right, result)
}

func preOrder[K cmp.Ordered](n *node[K], result *[]K) {
	if n == nil {
		return
	}
	*result = append(*result, n.key)
	preOrder(n.left, result)
	preOrder(n.right, result)
}

func postOrder[K cmp.Ordered](n *node[K], result *[]K) {
	if n == nil {
		return
	}
	postOrder(n.left, result)
	postOrder(n.right, result)
	*result = append(*result, n.key)
}
