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

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type AVLTestCase struct {
	Name          string
	KeysToInsert  []string
	ExpectedRoot  string
	ExpectedOrder []string // In-order traversal expectation after operations
}

func TestTreeInsertOrdering(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Single Insertion",
			KeysToInsert:  []string{"apple"},
			ExpectedRoot:  "apple",
			ExpectedOrder: []string{"apple"},
		},
		{
			Name:          "Ascending Insertion (Right-Right)",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedRoot:  "banana",
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Descending Insertion (Left-Left)",
			KeysToInsert:  []string{"cherry", "banana", "apple"},
			ExpectedRoot:  "banana",
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Right-Left",
			KeysToInsert:  []string{"apple", "cherry", "banana"},
			ExpectedRoot:  "banana",
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Duplicates Ignored",
			KeysToInsert:  []string{"dog", "cat", "dog", "elephant", "cat", "bird"},
			ExpectedRoot:  "dog",
			ExpectedOrder: []string{"bird", "cat", "dog", "elephant"},
		},
		{
			Name:          "Empty Key",
			KeysToInsert:  []string{"b", "", "a"},
			ExpectedRoot:  "a",
			ExpectedOrder: []string{"", "a", "b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := NewTree()
			for _, key := range tc.KeysToInsert {
				tree.Insert(key, "v-"+key)
			}

			require.NotNil(t, tree.Root)
			assert.Equal(t, tc.ExpectedRoot, tree.Root.Key)
			assert.Equal(t, tc.ExpectedOrder, inOrderKeys(tree.Root))
			assert.Equal(t, len(tc.ExpectedOrder), tree.Len())
			require.NoError(t, tree.Check())
		})
	}
}

func TestLeftLeftRotation(t *testing.T) {
	tree := NewTree()
	for _, key := range []string{"c", "b", "a"} {
		tree.Insert(key, key)
	}

	require.NotNil(t, tree.Root)
	assert.Equal(t, "b", tree.Root.Key)
	assert.Equal(t, "a", tree.Root.Left.Key)
	assert.Equal(t, "c", tree.Root.Right.Key)
	assert.Equal(t, 2, tree.Root.Height)
	assert.Equal(t, 1, tree.Root.Left.Height)
	assert.Equal(t, 1, tree.Root.Right.Height)
}

func TestLeftRightRotation(t *testing.T) {
	var root *Node
	for _, key := range []string{"c", "a", "b"} {
		root = Insert(root, key, key)
	}

	require.NotNil(t, root)
	assert.Equal(t, "b", root.Key)
	assert.Equal(t, "a", root.Left.Key)
	assert.Equal(t, "c", root.Right.Key)
	assert.Equal(t, 2, root.Height)
}

func TestRotateRight(t *testing.T) {
	// c(a(-, b)) is not an AVL shape, but a rotation only needs a left child
	b := &Node{Key: "b", Height: 1}
	a := &Node{Key: "a", Height: 2, Right: b}
	c := &Node{Key: "c", Height: 3, Left: a}

	root := rotateRight(c)

	assert.Same(t, a, root)
	assert.Same(t, c, root.Right)
	assert.Same(t, b, c.Left, "promoted node's right child moves under the old root")
	assert.Equal(t, 2, c.Height)
	assert.Equal(t, 3, root.Height)
}

func TestRotateLeft(t *testing.T) {
	b := &Node{Key: "b", Height: 1}
	c := &Node{Key: "c", Height: 2, Left: b}
	a := &Node{Key: "a", Height: 3, Right: c}

	root := rotateLeft(a)

	assert.Same(t, c, root)
	assert.Same(t, a, root.Left)
	assert.Same(t, b, a.Right)
	assert.Equal(t, 2, a.Height)
	assert.Equal(t, 3, root.Height)
}

func TestDuplicateInsertKeepsFirstValue(t *testing.T) {
	tree := NewTree()

	assert.True(t, tree.Insert("hello", "hola"))
	assert.False(t, tree.Insert("hello", "buenas"))

	value, ok := tree.Search("hello")
	assert.True(t, ok)
	assert.Equal(t, "hola", value)
	assert.Equal(t, 1, tree.Len())
}

func TestSearchEmptyTree(t *testing.T) {
	tree := NewTree()

	value, ok := tree.Search("anything")
	assert.False(t, ok)
	assert.Empty(t, value)
	assert.Equal(t, 0, tree.Height())
	assert.Equal(t, 0, tree.ComputeHeight())
	assert.NoError(t, tree.Check())
}

func TestSearchEmptyValue(t *testing.T) {
	tree := NewTree()
	tree.Insert("blank", "")

	value, ok := tree.Search("blank")
	assert.True(t, ok, "an empty value is still a hit")
	assert.Empty(t, value)
}

func TestRandomInsertKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := NewTree()
	first := map[string]string{}

	for i := 0; i < 2000; i++ {
		key := randomKey(rng)
		value := fmt.Sprintf("value-%d", i)
		added := tree.Insert(key, value)

		_, seen := first[key]
		assert.Equal(t, !seen, added, "insert of %q", key)
		if !seen {
			first[key] = value
		}
		require.NoError(t, tree.Check(), "after inserting %q", key)
		require.LessOrEqual(t, float64(tree.Height()), MaxHeight(tree.Len()), "after inserting %q", key)
	}

	assert.Equal(t, len(first), tree.Len())
	for key, want := range first {
		got, ok := tree.Search(key)
		require.True(t, ok, "key %q", key)
		assert.Equal(t, want, got, "key %q", key)
	}

	for i := 0; i < 200; i++ {
		key := "missing-" + randomKey(rng)
		_, ok := tree.Search(key)
		assert.False(t, ok, "key %q was never inserted", key)
	}

	keys := make([]string, 0, len(first))
	for key := range first {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	assert.Equal(t, keys, inOrderKeys(tree.Root))
}

func TestNonASCIIKeysOrderByteWise(t *testing.T) {
	tree := NewTree()
	for _, key := range []string{"é", "z", "a", "日本", "Z", "ñu", "e"} {
		tree.Insert(key, key)
	}

	require.NoError(t, tree.Check())
	assert.Equal(t, []string{"Z", "a", "e", "z", "é", "ñu", "日本"}, inOrderKeys(tree.Root))

	value, ok := tree.Search("é")
	assert.True(t, ok)
	assert.Equal(t, "é", value)
	_, ok = tree.Search("e\u0301")
	assert.False(t, ok, "decomposed form is a different key")
}

func TestHeightBound(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 100, 1000, 4096} {
		t.Run(fmt.Sprintf("%d sorted keys", n), func(t *testing.T) {
			tree := NewTree()
			for i := 0; i < n; i++ {
				tree.Insert(fmt.Sprintf("%08d", i), "")
			}

			require.NoError(t, tree.Check())
			assert.LessOrEqual(t, float64(tree.Height()), MaxHeight(n))
			assert.Equal(t, tree.ComputeHeight(), tree.Height())
		})
	}
}

func TestComputeHeightIgnoresCache(t *testing.T) {
	leaf := &Node{Key: "b", Height: 1}
	root := &Node{Key: "a", Height: 7, Right: leaf}

	assert.Equal(t, 7, Height(root))
	assert.Equal(t, 2, ComputeHeight(root))
	assert.Equal(t, 0, Height(nil))
	assert.Equal(t, 0, BalanceFactor(nil))
	assert.Equal(t, -1, BalanceFactor(root))
}

// Multi-byte letters exercise byte-wise ordering beyond ASCII.
var keyLetters = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "é", "ñ", "ü", "ß", "日"}

func randomKey(rng *rand.Rand) string {
	n := 1 + rng.Intn(4)
	key := ""
	for i := 0; i < n; i++ {
		key += keyLetters[rng.Intn(len(keyLetters))]
	}
	return key
}

func inOrderKeys(node *Node) []string {
	var keys []string
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		keys = append(keys, n.Key)
		walk(n.Right)
	}
	walk(node)
	return keys
}
