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

import "cmp"

// node owns its children outright; there are no parent links.
type node[K cmp.Ordered] struct {
	key    K
	left   *node[K]
	right  *node[K]
	height int // empty subtree is 0, a leaf is 1
}

func newNode[K cmp.Ordered](key K) *node[K] {
	return &node[K]{key: key, height: 1}
}

func height[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight[K cmp.Ordered](n *node[K]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balanceFactor is height(left) - height(right).
func balanceFactor[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func findMin[K cmp.Ordered](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func findMax[K cmp.Ordered](n *node[K]) *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}
