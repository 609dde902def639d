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
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/cybrota/avltree/session"
)

// Handler defines the interface for a single shell command
type Handler interface {
	Run(s *session.Session, cmd *Command) (string, error)
	SupportsCommand(name string) bool
	Priority() int // Lower number = higher priority
	Usage() string
}

// Command represents a parsed command line with its parts
type Command struct {
	Parts    []string
	BaseCmd  string
	Args     []string
	FullName string
}

// NewCommand creates a new Command from command parts
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		BaseCmd:  strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// Parse splits a line the way a shell would. Commas are accepted as
// separators so "insert 1,2,3" works.
func Parse(line string) (*Command, error) {
	parts, err := shellwords.Parse(strings.ReplaceAll(line, ",", " "))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", line, err)
	}
	return NewCommand(parts), nil
}

// HasArgs checks if command has at least n arguments
func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

// GetArg returns the nth argument (0-indexed)
func (c *Command) GetArg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// IntArgs converts every argument to an integer key.
func (c *Command) IntArgs() ([]int, error) {
	keys := make([]int, 0, len(c.Args))
	for _, arg := range c.Args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadKey, arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
