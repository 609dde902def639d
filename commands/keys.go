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
	"strings"

	"github.com/cybrota/avltree/session"
)

func keyArgs(cmd *Command) ([]int, error) {
	if !cmd.HasArgs(1) {
		return nil, ErrMissingKeys
	}
	return cmd.IntArgs()
}

type insertHandler struct{}

func (h *insertHandler) SupportsCommand(name string) bool {
	return slices.Contains([]string{"insert", "add", "ins"}, name)
}

func (h *insertHandler) Priority() int { return 10 }
func (h *insertHandler) Usage() string { return "insert KEY...: add keys, duplicates are ignored" }

func (h *insertHandler) Run(s *session.Session, cmd *Command) (string, error) {
	keys, err := keyArgs(cmd)
	if err != nil {
		return "", err
	}
	added := s.Insert(keys...)
	return fmt.Sprintf("Inserted %d of %d keys (size %d)", added, len(keys), s.Len()), nil
}

type removeHandler struct{}

func (h *removeHandler) SupportsCommand(name string) bool {
	return slices.Contains([]string{"remove", "rm", "delete", "del"}, name)
}

func (h *removeHandler) Priority() int { return 20 }
func (h *removeHandler) Usage() string { return "remove KEY...: delete keys, absent keys are ignored" }

func (h *removeHandler) Run(s *session.Session, cmd *Command) (string, error) {
	keys, err := keyArgs(cmd)
	if err != nil {
		return "", err
	}
	removed := s.Remove(keys...)
	return fmt.Sprintf("Removed %d of %d keys (size %d)", removed, len(keys), s.Len()), nil
}

type containsHandler struct{}

func (h *containsHandler) SupportsCommand(name string) bool {
	return slices.Contains([]string{"contains", "has", "find"}, name)
}

func (h *containsHandler) Priority() int { return 30 }
func (h *containsHandler) Usage() string { return "contains KEY...: report whether each key is present" }

func (h *containsHandler) Run(s *session.Session, cmd *Command) (string, error) {
	keys, err := keyArgs(cmd)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("Tree contains %d? %s", key, yesNo(s.Contains(key))))
	}
	return strings.Join(lines, "\n"), nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
