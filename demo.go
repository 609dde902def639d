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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/avltree/avl"
)

func joinKeys(keys []int) string {
	return strings.Trim(avl.FormatList(keys), "[]")
}

// runDemo inserts, prints every traversal, removes and probes, in that order.
func runDemo(w io.Writer, tree *avl.Tree[int], demo DemoConfig) {
	fmt.Fprintf(w, "Inserting values: %s\n", joinKeys(demo.Insert))
	for _, key := range demo.Insert {
		tree.Insert(key)
	}

	for _, order := range avl.Orders() {
		tree.FprintAsList(w, order.String())
	}

	if len(demo.Remove) > 0 {
		if len(demo.Remove) == 1 {
			fmt.Fprintf(w, "\nRemoving value %d...\n", demo.Remove[0])
		} else {
			fmt.Fprintf(w, "\nRemoving values %s...\n", joinKeys(demo.Remove))
		}
		for _, key := range demo.Remove {
			tree.Remove(key)
		}
		tree.FprintAsList(w, avl.OrderIn.String())
	}

	for i, key := range demo.Probe {
		if i == 0 {
			fmt.Fprintln(w)
		}
		answer := "No"
		if tree.Contains(key) {
			answer = "Yes"
		}
		fmt.Fprintf(w, "Tree contains %d? %s\n", key, answer)
	}
}
