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
	"github.com/cybrota/lexitree/avl"
)

// Dictionary owns the word tree and the optional filter guarding it.
// Like the tree itself, it must not be shared between goroutines.
type Dictionary struct {
	tree   *avl.Tree
	filter *KeyFilter
	Source string // Where the entries were loaded from, for reports
}

// NewDictionary builds an empty dictionary. A nil filter sends every lookup
// straight to the tree.
func NewDictionary(filter *KeyFilter) *Dictionary {
	return &Dictionary{
		tree:   avl.NewTree(),
		filter: filter,
	}
}

// NewDictionaryFromConfig builds an empty dictionary with the filter
// described by the lookup settings.
func NewDictionaryFromConfig(config LookupConfig) *Dictionary {
	if !config.UseBloomFilter || config.BloomFilterSize == 0 || config.BloomFilterHashes == 0 {
		return NewDictionary(nil)
	}
	return NewDictionary(NewKeyFilter(config.BloomFilterSize, config.BloomFilterHashes))
}

// Add stores key unless it is already present. The first translation wins.
func (d *Dictionary) Add(key, value string) bool {
	added := d.tree.Insert(key, value)
	if added && d.filter != nil {
		d.filter.Add(key)
	}
	return added
}

// Lookup returns the translation for key. filtered is true when the key
// filter rejected the word without a tree search.
func (d *Dictionary) Lookup(key string) (value string, found bool, filtered bool) {
	if d.filter != nil && !d.filter.MayContain(key) {
		return "", false, true
	}
	value, found = d.tree.Search(key)
	return value, found, false
}

func (d *Dictionary) Len() int {
	return d.tree.Len()
}

func (d *Dictionary) Height() int {
	return d.tree.Height()
}

func (d *Dictionary) ComputeHeight() int {
	return d.tree.ComputeHeight()
}

func (d *Dictionary) Check() error {
	return d.tree.Check()
}

func (d *Dictionary) Filter() *KeyFilter {
	return d.filter
}
