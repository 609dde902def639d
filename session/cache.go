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
	"slices"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avltree/avl"
)

const (
	// Keep materialised traversals for 5 minutes
	defaultViewExpiration = 5 * time.Minute
	// Clean up expired entries every 10 minutes
	defaultViewCleanup = 10 * time.Minute
)

// viewCache holds materialised traversals keyed by order name. It must be
// flushed whenever the tree changes.
type viewCache struct {
	c          *cache.Cache
	expiration time.Duration
}

func newViewCache(expiration, cleanup time.Duration) *viewCache {
	if expiration <= 0 {
		expiration = defaultViewExpiration
	}
	if cleanup <= 0 {
		cleanup = defaultViewCleanup
	}
	return &viewCache{
		c:          cache.New(expiration, cleanup),
		expiration: expiration,
	}
}

func (v *viewCache) put(order avl.Order, keys []int) {
	v.c.Set(order.String(), slices.Clone(keys), v.expiration)
}

// get returns a copy so callers can never alias the cached slice.
func (v *viewCache) get(order avl.Order) ([]int, bool) {
	val, ok := v.c.Get(order.String())
	if !ok {
		return nil, false
	}
	return slices.Clone(val.([]int)), true
}

func (v *viewCache) flush() {
	v.c.Flush()
}

func (v *viewCache) len() int {
	return v.c.ItemCount()
}
