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

// Tree is an AVL tree of unique keys. The zero value is an empty tree ready
// to use.
type Tree[K cmp.Ordered] struct {
	root  *node[K]
	count int
}

// New returns an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.count
}

func (t *Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the tree: 0 when empty, 1 for a single key.
func (t *Tree[K]) Height() int {
	return height(t.root)
}

// Clear drops every node.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.count = 0
}

// Min returns the smallest key, or false when the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return findMin(t.root).key, true
}

// Max returns the largest key, or false when the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return findMax(t.root).key, true
}

// Insert adds key to the tree and reports whether it was added. Inserting a
// key that is already present leaves the tree unchanged.
func (t *Tree[K]) Insert(key K) bool {
	var added bool
	t.root, added = insert(t.root, key)
	if added {
		t.count++
	}
	return added
}

// Remove deletes key from the tree and reports whether it was present.
func (t *Tree[K]) Remove(key K) bool {
	var removed bool
	t.root, removed = remove(t.root, key)
	if removed {
		t.count--
	}
	return removed
}

// Contains reports whether key is in the tree. Keys are ordered by
// cmp.Compare, so a floating-point NaN sorts before every other key.
func (t *Tree[K]) Contains(key K) bool {
	current := t.root
	for current != nil {
		switch cmp.Compare(key, current.key) {
		case -1:
			current = current.left
		case 1:
			current = current.right
		default:
			return true
		}
	}
	return false
}

// insert returns the new root of the subtree.
func insert[K cmp.Ordered](n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return newNode(key), true
	}

	var added bool
	switch cmp.Compare(key, n.key) {
	case -1:
		n.left, added = insert(n.left, key)
	case 1:
		n.right, added = insert(n.right, key)
	default:
		return n, false
	}

	if !added {
		return n, false
	}
	return rebalance(n), true
}

// remove returns the new root of the subtree. With two children only the
// successor key is copied into n; the successor node itself is removed from
// the right subtree.
func remove[K cmp.Ordered](n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch cmp.Compare(key, n.key) {
	case -1:
		n.left, removed = remove(n.left, key)
	case 1:
		n.right, removed = remove(n.right, key)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		successor := findMin(n.right)
		n.key = successor.key
		n.right, _ = remove(n.right, successor.key)
		removed = true
	}

	if !removed {
		return n, false
	}
	return rebalance(n), true
}

func rotateLeft[K cmp.Ordered](n *node[K]) *node[K] {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

func rotateRight[K cmp.Ordered](n *node[K]) *node[K] {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rebalance recomputes the height of n and restores the balance property
// with at most two rotations. A child with a zero balance factor takes the
// single rotation.
func rebalance[K cmp.Ordered](n *node[K]) *node[K] {
	updateHeight(n)

	bf := balanceFactor(n)

	// Left-heavy
	if bf > 1 {
		if balanceFactor(n.left) >= 0 {
			return rotateRight(n)
		}
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}

	// Right-heavy
	if bf < -1 {
		if balanceFactor(n.right) <= 0 {
			return rotateLeft(n)
		}
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}
