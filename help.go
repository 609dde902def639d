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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"

	"github.com/cybrota/avltree/commands"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

A self-balancing binary search tree of integer keys with every classic traversal.

Built with Go %s

# 1. Features
* Insert, remove and look up keys while the tree stays height balanced
* In-order, pre-order, post-order and level-order traversals
* Load keys from files or stdin with a progress bar
* Interactive shell with command history

# 2. Commands
* demo: run the built-in walkthrough (default)
* traverse: build a tree from --keys and print one or all traversals
* load FILE: read keys from FILE ("-" for stdin)
* shell: open the interactive shell
* config: show the effective settings in ~/.avltree.yaml

# 3. Shell commands
%s
# Please be aware
* The copy command on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), commands.NewManager().Usage())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
