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

// Package avl implements a height balanced binary search tree over unique
// ordered keys.
//
// Every node caches the height of its subtree. After an insert or a remove
// each node on the path back to the root has its height recomputed and is
// rotated if the heights of its children differ by more than one.
//
// A Tree is not safe for concurrent use. Access it from a single goroutine
// or guard it with a sync.Mutex/sync.RWMutex.
package avl
