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

// Package session wraps one integer AVL tree for the lifetime of a CLI run
// or an interactive shell, adding a membership pre-filter and a cache of
// materialised traversals. The tree is never handed out, so every mutation
// goes through the session and keeps the filter and cache in step.
package session

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/cybrota/avltree/avl"
)

type Config struct {
	FilterBits      uint
	FilterHashes    uint
	RebuildRatio    float64 // rebuild the filter once stale removals exceed this share of live keys
	CacheExpiration time.Duration
	CacheCleanup    time.Duration
}

func DefaultConfig() Config {
	return Config{
		FilterBits:      1 << 16,
		FilterHashes:    4,
		RebuildRatio:    0.25,
		CacheExpiration: defaultViewExpiration,
		CacheCleanup:    defaultViewCleanup,
	}
}

// Stats is a point in time summary of a session.
type Stats struct {
	Size        int
	Height      int
	StaleKeys   int
	CachedViews int
	FilterSkips int
}

// Session is not safe for concurrent use, same as the tree it owns.
type Session struct {
	tree   *avl.Tree[int]
	filter *MembershipFilter
	views  *viewCache
	config Config
	log    zerolog.Logger
	skips  int
}

func New(config Config, log zerolog.Logger) *Session {
	defaults := DefaultConfig()
	if config.FilterBits == 0 {
		config.FilterBits = defaults.FilterBits
	}
	if config.FilterHashes == 0 {
		config.FilterHashes = defaults.FilterHashes
	}
	if config.RebuildRatio <= 0 {
		config.RebuildRatio = defaults.RebuildRatio
	}

	return &Session{
		tree:   avl.New[int](),
		filter: NewMembershipFilter(config.FilterBits, config.FilterHashes),
		views:  newViewCache(config.CacheExpiration, config.CacheCleanup),
		config: config,
		log:    log,
	}
}

func (s *Session) Len() int {
	return s.tree.Len()
}

func (s *Session) Height() int {
	return s.tree.Height()
}

// Validate checks the tree invariants.
func (s *Session) Validate() error {
	return s.tree.Validate()
}

// String draws the tree.
func (s *Session) String() string {
	return s.tree.String()
}

// FprintAsList writes the same line as the tree's FprintAsList, served from
// the traversal cache.
func (s *Session) FprintAsList(w io.Writer, order string) {
	o, err := avl.ParseOrder(order)
	if err != nil {
		fmt.Fprintln(w, avl.UnknownOrderNotice)
	}
	fmt.Fprintf(w, "%s: %s\n", o.Label(), avl.FormatList(s.Traverse(o)))
}

// Insert adds keys and returns how many were new.
func (s *Session) Insert(keys ...int) int {
	added := 0
	for _, key := range keys {
		if s.tree.Insert(key) {
			s.filter.Add(key)
			added++
		}
	}
	if added > 0 {
		s.views.flush()
	}
	s.log.Debug().Int("requested", len(keys)).Int("added", added).Int("size", s.tree.Len()).Msg("insert")
	return added
}

// Remove deletes keys and returns how many were present.
func (s *Session) Remove(keys ...int) int {
	removed := 0
	for _, key := range keys {
		if !s.filter.MayContain(key) {
			s.skips++
			continue
		}
		if s.tree.Remove(key) {
			s.filter.MarkRemoved()
			removed++
		}
	}
	if removed > 0 {
		s.views.flush()
		s.maybeRebuildFilter()
	}
	s.log.Debug().Int("requested", len(keys)).Int("removed", removed).Int("size", s.tree.Len()).Msg("remove")
	return removed
}

// Contains skips the tree descent when the filter rules the key out.
func (s *Session) Contains(key int) bool {
	if !s.filter.MayContain(key) {
		s.skips++
		return false
	}
	return s.tree.Contains(key)
}

// Traverse returns a copy of the keys in the given order.
func (s *Session) Traverse(order avl.Order) []int {
	if keys, ok := s.views.get(order); ok {
		return keys
	}
	keys := s.tree.Traverse(order)
	s.views.put(order, keys)
	return keys
}

// Reset empties the tree, the filter and the cache.
func (s *Session) Reset() {
	s.tree.Clear()
	s.filter.Rebuild(nil)
	s.views.flush()
	s.skips = 0
	s.log.Debug().Msg("session reset")
}

func (s *Session) Stats() Stats {
	return Stats{
		Size:        s.tree.Len(),
		Height:      s.tree.Height(),
		StaleKeys:   s.filter.Stale(),
		CachedViews: s.views.len(),
		FilterSkips: s.skips,
	}
}

func (s *Session) maybeRebuildFilter() {
	live := s.tree.Len()
	if float64(s.filter.Stale()) <= s.config.RebuildRatio*float64(live) {
		return
	}
	stale := s.filter.Stale()
	s.filter.Rebuild(s.tree.InOrder())
	s.log.Debug().Int("stale", stale).Int("live", live).Msg("membership filter rebuilt")
}
