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

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/session"
)

// selectOrder resolves an order name, falling back to in-order with a
// notice line for names it does not know.
func selectOrder(name string) (avl.Order, string) {
	order, err := avl.ParseOrder(name)
	if err != nil {
		return order, avl.UnknownOrderNotice + "\n"
	}
	return order, ""
}

func renderTraversal(s *session.Session, order avl.Order) string {
	return fmt.Sprintf("%s: %s", order.Label(), avl.FormatList(s.Traverse(order)))
}

type printHandler struct {
	defaultOrder string
}

func (h *printHandler) SupportsCommand(name string) bool {
	return slices.Contains([]string{"print", "show", "ls"}, name)
}

func (h *printHandler) Priority() int { return 40 }
func (h *printHandler) Usage() string {
	return "print [inorder|preorder|postorder|levelorder|all]: list keys in a traversal order"
}

func (h *printHandler) Run(s *session.Session, cmd *Command) (string, error) {
	name := h.defaultOrder
	if cmd.HasArgs(1) {
		name = cmd.GetArg(0)
	}

	if strings.EqualFold(name, "all") {
		lines := make([]string, 0, len(avl.Orders()))
		for _, order := range avl.Orders() {
			lines = append(lines, renderTraversal(s, order))
		}
		return strings.Join(lines, "\n"), nil
	}

	order, notice := selectOrder(name)
	return notice + renderTraversal(s, order), nil
}

type copyHandler struct {
	defaultOrder string
	write        func(string) error
}

func (h *copyHandler) SupportsCommand(name string) bool {
	return slices.Contains([]string{"copy", "yank"}, name)
}

func (h *copyHandler) Priority() int { return 50 }
func (h *copyHandler) Usage() string { return "copy [ORDER]: copy a traversal to the clipboard" }

func (h *copyHandler) Run(s *session.Session, cmd *Command) (string, error) {
	name := h.defaultOrder
	if cmd.HasArgs(1) {
		name = cmd.GetArg(0)
	}
	order, notice := selectOrder(name)

	if err := h.write(avl.FormatList(s.Traverse(order))); err != nil {
		return notice, fmt.Errorf("clipboard: %w", err)
	}
	return fmt.Sprintf("%sCopied %s to clipboard", notice, strings.ToLower(order.Label())), nil
}
