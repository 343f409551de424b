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

package avl

// Node is a single dictionary entry. Key and Value never change after the
// node is created; Height, Left and Right are rewritten by rotations.
type Node struct {
	Key    string // Source word (e.g., "fox")
	Value  string // Translation (e.g., "zorro")
	Height int    // Cached height of the subtree rooted here, leaf = 1
	Left   *Node
	Right  *Node
}

func newLeaf(key, value string) *Node {
	return &Node{Key: key, Value: value, Height: 1}
}

// Height returns the cached height of node, or 0 for an empty subtree.
func Height(node *Node) int {
	if node == nil {
		return 0
	}
	return node.Height
}

// BalanceFactor is the cached height of the left subtree minus the right one.
func BalanceFactor(node *Node) int {
	if node == nil {
		return 0
	}
	return Height(node.Left) - Height(node.Right)
}

func updateHeight(node *Node) {
	node.Height = max(Height(node.Left), Height(node.Right)) + 1
}

// ComputeHeight walks the whole subtree and ignores cached heights.
func ComputeHeight(node *Node) int {
	if node == nil {
		return 0
	}
	return max(ComputeHeight(node.Left), ComputeHeight(node.Right)) + 1
}
