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
)

var (
	ErrOrderViolation   = errors.New("key out of order")
	ErrBalanceViolation = errors.New("subtree out of balance")
	ErrHeightMismatch   = errors.New("cached height is stale")
	ErrCountMismatch    = errors.New("node count differs from tree size")
)

// Validate walks the whole tree and returns an error describing the first
// broken invariant, or nil.
func (t *Tree[K]) Validate() error {
	nodes, _, err := check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if nodes != t.count {
		return fmt.Errorf("%w: counted %d, size %d", ErrCountMismatch, nodes, t.count)
	}
	return nil
}

// check verifies the subtree at n against the exclusive bounds lo and hi
// and returns its node count and computed height.
func check[K cmp.Ordered](n *node[K], lo, hi *K) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && cmp.Compare(n.key, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: %v is not greater than %v", ErrOrderViolation, n.key, *lo)
	}
	if hi != nil && cmp.Compare(n.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: %v is not less than %v", ErrOrderViolation, n.key, *hi)
	}

	ln, lh, err := check(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rn, rh, err := check(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}

	h := max(lh, rh) + 1
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: node %v caches %d, actual %d", ErrHeightMismatch, n.key, n.height, h)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, 0, fmt.Errorf("%w: node %v has balance factor %d", ErrBalanceViolation, n.key, bf)
	}
	return ln + rn + 1, h, nil
}
