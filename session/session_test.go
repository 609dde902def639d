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

package session

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avltree/avl"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return New(DefaultConfig(), zerolog.Nop())
}

func TestSessionInsertRemoveContains(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, 6, s.Insert(10, 20, 30, 40, 50, 25))
	assert.Equal(t, 0, s.Insert(10, 20), "duplicates are not counted")
	assert.Equal(t, []int{30, 20, 40, 10, 25, 50}, s.Traverse(avl.OrderLevel))

	assert.Equal(t, 1, s.Remove(30, 31))
	assert.Equal(t, []int{10, 20, 25, 40, 50}, s.Traverse(avl.OrderIn))
	assert.True(t, s.Contains(25))
	assert.False(t, s.Contains(30))
	require.NoError(t, s.Validate())
}

func TestSessionTraverseCacheIsFlushedOnMutation(t *testing.T) {
	s := newTestSession(t)
	s.Insert(3, 1, 2)

	first := s.Traverse(avl.OrderIn)
	assert.Equal(t, 1, s.Stats().CachedViews)

	first[0] = 99
	assert.Equal(t, []int{1, 2, 3}, s.Traverse(avl.OrderIn), "callers get a copy")

	s.Insert(4)
	assert.Equal(t, 0, s.Stats().CachedViews)
	assert.Equal(t, []int{1, 2, 3, 4}, s.Traverse(avl.OrderIn))

	s.Insert(4)
	assert.Equal(t, 1, s.Stats().CachedViews, "no-op insert keeps the cache")

	s.Remove(1)
	assert.Equal(t, 0, s.Stats().CachedViews)
}

func TestSessionCacheExpires(t *testing.T) {
	config := DefaultConfig()
	config.CacheExpiration = 20 * time.Millisecond
	config.CacheCleanup = 10 * time.Millisecond
	s := New(config, zerolog.Nop())
	s.Insert(1, 2)

	s.Traverse(avl.OrderPre)
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, 0, s.Stats().CachedViews)
	assert.Equal(t, []int{2, 1}, s.Traverse(avl.OrderPost))
}

func TestSessionFilterSkipsDescent(t *testing.T) {
	s := newTestSession(t)
	s.Insert(1, 2, 3)

	assert.False(t, s.Contains(1_000_000))
	assert.Equal(t, 0, s.Remove(2_000_000))
	// a false positive is possible but vanishingly rare with 64k bits and 3 keys
	assert.Equal(t, 2, s.Stats().FilterSkips)
}

func TestSessionFilterRebuild(t *testing.T) {
	var logs bytes.Buffer
	config := DefaultConfig()
	config.RebuildRatio = 0.5
	s := New(config, zerolog.New(&logs).Level(zerolog.DebugLevel))

	keys := make([]int, 0, 10)
	for key := range 10 {
		keys = append(keys, key)
	}
	s.Insert(keys...)

	s.Remove(0, 1, 2)
	assert.Equal(t, 3, s.Stats().StaleKeys, "3 stale of 7 live stays under the ratio")

	s.Remove(3)
	assert.Equal(t, 0, s.Stats().StaleKeys, "4 stale of 6 live triggers a rebuild")
	assert.Contains(t, logs.String(), "membership filter rebuilt")

	assert.False(t, s.filter.MayContain(3))
	for key := 4; key < 10; key++ {
		assert.True(t, s.Contains(key))
	}
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t)
	s.Insert(5, 6, 7)
	s.Traverse(avl.OrderIn)

	s.Reset()
	assert.Equal(t, Stats{}, s.Stats())
	assert.False(t, s.Contains(5))
	assert.Empty(t, s.Traverse(avl.OrderLevel))
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Config{}, zerolog.Nop())
	assert.Equal(t, DefaultConfig().FilterBits, s.config.FilterBits)
	assert.Equal(t, DefaultConfig().FilterHashes, s.config.FilterHashes)
	assert.Equal(t, DefaultConfig().RebuildRatio, s.config.RebuildRatio)
}

func TestMembershipFilter(t *testing.T) {
	f := NewMembershipFilter(1024, 3)
	f.Add(-7)
	f.Add(42)
	assert.True(t, f.MayContain(-7))
	assert.True(t, f.MayContain(42))

	f.MarkRemoved()
	assert.Equal(t, 1, f.Stale())

	f.Rebuild([]int{42})
	assert.Equal(t, 0, f.Stale())
	assert.True(t, f.MayContain(42))
}

func TestSessionReadOnlyView(t *testing.T) {
	s := newTestSession(t)
	s.Insert(1, 2, 3, 4)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 3, s.Height())
	require.NoError(t, s.Validate())
	assert.Contains(t, s.String(), "─┤ 2 (h=3)")

	var out bytes.Buffer
	s.FprintAsList(&out, "preorder")
	s.FprintAsList(&out, "sideways")
	assert.Equal(t, "Pre-order traversal: [2, 1, 3, 4]\n"+
		avl.UnknownOrderNotice+"\nIn-order traversal (sorted): [1, 2, 3, 4]\n", out.String())
	assert.Equal(t, 2, s.Stats().CachedViews, "printing goes through the view cache")

	s.Remove(3)
	out.Reset()
	s.FprintAsList(&out, "inorder")
	assert.Equal(t, "In-order traversal (sorted): [1, 2, 4]\n", out.String())
}
