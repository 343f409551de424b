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

// Package avl implements the height-balanced search tree that stores the
// dictionary. Keys are ordered by plain byte-wise string comparison.
//
// A Tree is not safe for concurrent use. If several goroutines access the
// same tree and at least one of them inserts, access must be synchronized
// externally.
package avl

import "math"

type Tree struct {
	Root *Node
	size int
}

func NewTree() *Tree {
	return &Tree{Root: nil}
}

// Insert adds key with value. An existing key keeps its first value and
// Insert reports false.
func (tree *Tree) Insert(key, value string) bool {
	var added bool
	tree.Root, added = insertRecursive(tree.Root, key, value)
	if added {
		tree.size++
	}
	return added
}

// Search returns the value stored for key and whether the key was found.
func (tree *Tree) Search(key string) (string, bool) {
	return Search(tree.Root, key)
}

// Height is the cached height of the root.
func (tree *Tree) Height() int {
	return Height(tree.Root)
}

// ComputeHeight recomputes the height of the whole tree from scratch.
func (tree *Tree) ComputeHeight() int {
	return ComputeHeight(tree.Root)
}

// Len returns the number of distinct keys.
func (tree *Tree) Len() int {
	return tree.size
}

// Check verifies ordering, cached heights and balance of every node.
func (tree *Tree) Check() error {
	return Check(tree.Root)
}

// Insert adds key into the subtree rooted at root and returns the new
// subtree root, which the caller must store in place of root.
func Insert(root *Node, key, value string) *Node {
	node, _ := insertRecursive(root, key, value)
	return node
}

func insertRecursive(node *Node, key, value string) (*Node, bool) {
	if node == nil {
		return newLeaf(key, value), true
	}

	var added bool
	if key < node.Key {
		node.Left, added = insertRecursive(node.Left, key, value)
	} else if key > node.Key {
		node.Right, added = insertRecursive(node.Right, key, value)
	} else {
		// First write wins, the stored value is never replaced
		return node, false
	}

	if !added {
		return node, false
	}

	updateHeight(node)

	balanceFactor := BalanceFactor(node)
	if balanceFactor > 1 {
		if key < node.Left.Key {
			return rotateRight(node), true
		}
		// Left-Right case
		node.Left = rotateLeft(node.Left)
		return rotateRight(node), true
	} else if balanceFactor < -1 {
		if key > node.Right.Key {
			return rotateLeft(node), true
		}
		// Right-Left case
		node.Right = rotateRight(node.Right)
		return rotateLeft(node), true
	}

	return node, true
}

// rotateLeft promotes node.Right. node.Right must not be nil.
func rotateLeft(node *Node) *Node {
	pivot := node.Right

	node.Right = pivot.Left
	pivot.Left = node

	// Child first, the pivot's height depends on it
	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rotateRight promotes node.Left. node.Left must not be nil.
func rotateRight(node *Node) *Node {
	pivot := node.Left

	node.Left = pivot.Right
	pivot.Right = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// Search looks for key in the subtree rooted at node.
// A missing key is reported through the boolean, not an error.
func Search(node *Node, key string) (string, bool) {
	if node == nil {
		return "", false
	}

	if key < node.Key {
		return Search(node.Left, key)
	} else if key > node.Key {
		return Search(node.Right, key)
	}
	return node.Value, true
}

// MaxHeight is the worst-case height of an AVL tree holding n keys.
func MaxHeight(n int) float64 {
	return 1.44 * math.Log2(float64(n+2))
}
