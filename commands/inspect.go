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

package commands

import (
	"fmt"
	"slices"

	"github.com/cybrota/avltree/session"
)

type drawHandler struct{}

func (h *drawHandler) SupportsCommand(name string) bool {
	return slices.Contains([]string{"tree", "draw"}, name)
}

func (h *drawHandler) Priority() int { return 60 }
func (h *drawHandler) Usage() string { return "tree: draw the tree sideways, root on the left" }

func (h *drawHandler) Run(s *session.Session, _ *Command) (string, error) {
	return s.String(), nil
}

type statsHandler struct{}

func (h *statsHandler) SupportsCommand(name string) bool {
	return slices.Contains([]string{"stats", "size", "height"}, name)
}

func (h *statsHandler) Priority() int { return 70 }
func (h *statsHandler) Usage() string { return "stats: size, height and cache counters" }

func (h *statsHandler) Run(s *session.Session, _ *Command) (string, error) {
	st := s.Stats()
	return fmt.Sprintf("size=%d height=%d stale_filter_keys=%d cached_views=%d filter_skips=%d",
		st.Size, st.Height, st.StaleKeys, st.CachedViews, st.FilterSkips), nil
}

type validateHandler struct{}

func (h *validateHandler) SupportsCommand(name string) bool {
	return slices.Contains([]string{"validate", "check"}, name)
}

func (h *validateHandler) Priority() int { return 80 }
func (h *validateHandler) Usage() string { return "validate: check ordering, balance and heights" }

func (h *validateHandler) Run(s *session.Session, _ *Command) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tree is valid (%d keys, height %d)", s.Len(), s.Height()), nil
}

type clearHandler struct{}

func (h *clearHandler) SupportsCommand(name string) bool {
	return slices.Contains([]string{"clear", "reset"}, name)
}

func (h *clearHandler) Priority() int { return 90 }
func (h *clearHandler) Usage() string { return "clear: remove every key" }

func (h *clearHandler) Run(s *session.Session, _ *Command) (string, error) {
	s.Reset()
	return "Tree cleared", nil
}

type helpHandler struct {
	manager *Manager
}

func (h *helpHandler) SupportsCommand(name string) bool {
	return slices.Contains([]string{"help", "?"}, name)
}

func (h *helpHandler) Priority() int { return 100 }
func (h *helpHandler) Usage() string { return "help: show this list" }

func (h *helpHandler) Run(_ *session.Session, _ *Command) (string, error) {
	return "# Commands\n\n" + h.manager.Usage(), nil
}
