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
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/cybrota/avltree/session"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingKeys    = errors.New("at least one key is required")
	ErrBadKey         = errors.New("key is not an integer")
)

// Manager dispatches parsed lines to registered handlers
type Manager struct {
	handlers []Handler
}

// Option customises a Manager at construction.
type Option func(*managerOptions)

type managerOptions struct {
	clipboardWrite func(string) error
	defaultOrder   string
}

// WithClipboard replaces the system clipboard used by "copy".
func WithClipboard(write func(string) error) Option {
	return func(o *managerOptions) {
		o.clipboardWrite = write
	}
}

// WithDefaultOrder sets the traversal used by "print" and "copy" without an
// argument.
func WithDefaultOrder(order string) Option {
	return func(o *managerOptions) {
		o.defaultOrder = order
	}
}

// NewManager creates a manager with every built-in command
func NewManager(opts ...Option) *Manager {
	options := managerOptions{
		clipboardWrite: clipboard.WriteAll,
		defaultOrder:   "inorder",
	}
	for _, opt := range opts {
		opt(&options)
	}

	manager := &Manager{}
	manager.RegisterHandler(&insertHandler{})
	manager.RegisterHandler(&removeHandler{})
	manager.RegisterHandler(&containsHandler{})
	manager.RegisterHandler(&printHandler{defaultOrder: options.defaultOrder})
	manager.RegisterHandler(&copyHandler{defaultOrder: options.defaultOrder, write: options.clipboardWrite})
	manager.RegisterHandler(&drawHandler{})
	manager.RegisterHandler(&statsHandler{})
	manager.RegisterHandler(&validateHandler{})
	manager.RegisterHandler(&clearHandler{})
	manager.RegisterHandler(&helpHandler{manager: manager})

	return manager
}

// RegisterHandler registers a new handler, keeping priority order
func (m *Manager) RegisterHandler(handler Handler) {
	m.handlers = append(m.handlers, handler)
	sort.SliceStable(m.handlers, func(i, j int) bool {
		return m.handlers[i].Priority() < m.handlers[j].Priority()
	})
}

// Execute parses line and runs the best handler for it
func (m *Manager) Execute(s *session.Session, line string) (string, error) {
	cmd, err := Parse(line)
	if err != nil {
		return "", err
	}
	if cmd.BaseCmd == "" {
		return "", ErrEmptyCommand
	}

	for _, handler := range m.handlers {
		if handler.SupportsCommand(cmd.BaseCmd) {
			out, err := handler.Run(s, cmd)
			if err != nil {
				return out, fmt.Errorf("%s: %w", cmd.BaseCmd, err)
			}
			return out, nil
		}
	}

	return "", fmt.Errorf("%w %q, try \"help\"", ErrUnknownCommand, cmd.BaseCmd)
}

// Usage lists every handler as a markdown bullet list
func (m *Manager) Usage() string {
	var sb strings.Builder
	for _, handler := range m.handlers {
		fmt.Fprintf(&sb, "* %s\n", handler.Usage())
	}
	return sb.String()
}
