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

package avl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avltree/avl"
)

func scenarioTree() *avl.Tree[int] {
	tree := avl.New[int]()
	for _, key := range []int{10, 20, 30, 40, 50, 25} {
		tree.Insert(key)
	}
	return tree
}

func TestParseOrder(t *testing.T) {
	cases := []struct {
		name    string
		want    avl.Order
		wantErr bool
	}{
		{"inorder", avl.OrderIn, false},
		{"preorder", avl.OrderPre, false},
		{"postorder", avl.OrderPost, false},
		{"levelorder", avl.OrderLevel, false},
		{"  LevelOrder ", avl.OrderLevel, false},
		{"", avl.OrderIn, false},
		{"sideways", avl.OrderIn, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := avl.ParseOrder(tc.name)
			assert.Equal(t, tc.want, got)
			if tc.wantErr {
				require.ErrorIs(t, err, avl.ErrUnknownOrder)
				assert.Contains(t, err.Error(), tc.name)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestOrderNamesRoundTrip(t *testing.T) {
	for _, o := range avl.Orders() {
		parsed, err := avl.ParseOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
		assert.NotEmpty(t, o.Label())
	}
	assert.Equal(t, "Order(9)", avl.Order(9).String())
}

func TestTraverseDispatch(t *testing.T) {
	tree := scenarioTree()
	assert.Equal(t, tree.InOrder(), tree.Traverse(avl.OrderIn))
	assert.Equal(t, tree.PreOrder(), tree.Traverse(avl.OrderPre))
	assert.Equal(t, tree.PostOrder(), tree.Traverse(avl.OrderPost))
	assert.Equal(t, tree.LevelOrder(), tree.Traverse(avl.OrderLevel))
	assert.Equal(t, tree.InOrder(), tree.Traverse(avl.Order(-1)))
}

func TestTraversalsOnEmptyTree(t *testing.T) {
	tree := avl.New[int]()
	for _, o := range avl.Orders() {
		keys := tree.Traverse(o)
		assert.NotNil(t, keys, o.String())
		assert.Empty(t, keys, o.String())
	}
}

func TestTraversalIsSnapshot(t *testing.T) {
	tree := scenarioTree()
	levels := tree.LevelOrder()
	levels[0] = -1

	assert.Equal(t, 30, tree.LevelOrder()[0])

	tree.Insert(60)
	assert.Len(t, levels, 6, "earlier snapshot does not grow")
}

func TestLevelOrderVisitsByDepth(t *testing.T) {
	tree := avl.New[int]()
	for key := 1; key <= 15; key++ {
		tree.Insert(key)
	}
	// ascending inserts of 2^k-1 keys build a perfect tree
	assert.Equal(t, []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15}, tree.LevelOrder())
}

func TestFprintAsList(t *testing.T) {
	tree := scenarioTree()

	cases := []struct {
		order string
		want  string
	}{
		{"inorder", "In-order traversal (sorted): [10, 20, 25, 30, 40, 50]\n"},
		{"", "In-order traversal (sorted): [10, 20, 25, 30, 40, 50]\n"},
		{"preorder", "Pre-order traversal: [30, 20, 10, 25, 40, 50]\n"},
		{"postorder", "Post-order traversal: [10, 25, 20, 50, 40, 30]\n"},
		{"levelorder", "Level-order traversal: [30, 20, 40, 10, 25, 50]\n"},
		{"zigzag", avl.UnknownOrderNotice + "\nIn-order traversal (sorted): [10, 20, 25, 30, 40, 50]\n"},
	}

	for _, tc := range cases {
		t.Run(tc.order, func(t *testing.T) {
			var buf bytes.Buffer
			tree.FprintAsList(&buf, tc.order)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "[]", avl.FormatList([]int{}))
	assert.Equal(t, "[7]", avl.FormatList([]int{7}))
	assert.Equal(t, "[a, b]", avl.FormatList([]string{"a", "b"}))
}

func TestStringDrawsEveryKey(t *testing.T) {
	assert.Equal(t, "────┤ empty", avl.New[int]().String())

	drawing := scenarioTree().String()
	lines := strings.Split(strings.TrimRight(drawing, "\n"), "\n")
	require.Len(t, lines, 6)
	// right subtree on top, so the largest key is drawn first
	assert.Contains(t, lines[0], "50")
	assert.Contains(t, lines[len(lines)-1], "10")
	assert.Contains(t, drawing, "─┤ 30 (h=3)")
}
