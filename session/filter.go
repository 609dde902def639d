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
	"encoding/binary"

	"github.com/willf/bloom"
)

// MembershipFilter answers "definitely absent" for keys never inserted.
// Bloom filters cannot forget, so removed keys stay as stale positives until
// Rebuild is called with the live key set.
type MembershipFilter struct {
	bits   *bloom.BloomFilter
	m, k   uint
	stale  int
	buffer [8]byte
}

func NewMembershipFilter(m, k uint) *MembershipFilter {
	return &MembershipFilter{
		bits: bloom.New(m, k),
		m:    m,
		k:    k,
	}
}

func (f *MembershipFilter) encode(key int) []byte {
	binary.BigEndian.PutUint64(f.buffer[:], uint64(key))
	return f.buffer[:]
}

func (f *MembershipFilter) Add(key int) {
	f.bits.Add(f.encode(key))
}

// MayContain is false only when key was never added since the last rebuild.
func (f *MembershipFilter) MayContain(key int) bool {
	return f.bits.Test(f.encode(key))
}

// MarkRemoved records that a key left the tree but not the filter.
func (f *MembershipFilter) MarkRemoved() {
	f.stale++
}

// Stale is the number of removals since the last rebuild.
func (f *MembershipFilter) Stale() int {
	return f.stale
}

// Rebuild clears the filter and adds keys.
func (f *MembershipFilter) Rebuild(keys []int) {
	f.bits.ClearAll()
	for _, key := range keys {
		f.Add(key)
	}
	f.stale = 0
}
