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
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("keys out of order")
	ErrHeight  = errors.New("cached height differs from recomputed height")
	ErrBalance = errors.New("subtree out of balance")
)

// Check walks the subtree and returns the first broken invariant it finds.
// It only reports; nothing is repaired.
func Check(root *Node) error {
	_, err := checkNode(root, nil, nil)
	return err
}

// checkNode returns the recomputed height of node. low and high bound the
// keys allowed in this subtree, nil meaning unbounded.
func checkNode(node *Node, low, high *string) (int, error) {
	if node == nil {
		return 0, nil
	}
	if low != nil && node.Key <= *low {
		return 0, fmt.Errorf("%w: %q must sort after %q", ErrOrder, node.Key, *low)
	}
	if high != nil && node.Key >= *high {
		return 0, fmt.Errorf("%w: %q must sort before %q", ErrOrder, node.Key, *high)
	}

	left, err := checkNode(node.Left, low, &node.Key)
	if err != nil {
		return 0, err
	}
	right, err := checkNode(node.Right, &node.Key, high)
	if err != nil {
		return 0, err
	}

	height := max(left, right) + 1
	if node.Height != height {
		return 0, fmt.Errorf("%w: node %q caches %d, actual %d", ErrHeight, node.Key, node.Height, height)
	}
	if bf := left - right; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("%w: node %q has balance factor %d", ErrBalance, node.Key, bf)
	}
	return height, nil
}
