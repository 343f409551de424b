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
	"math"

	"github.com/willf/bloom"
)

// KeyFilter answers "definitely not in the dictionary" without touching the
// tree. It never yields false negatives, so a rejected word is a certain miss.
type KeyFilter struct {
	bloomFilter *bloom.BloomFilter
	count       uint
}

func NewKeyFilter(size, hashes uint) *KeyFilter {
	return &KeyFilter{
		bloomFilter: bloom.New(size, hashes),
	}
}

func (kf *KeyFilter) Add(key string) {
	kf.bloomFilter.AddString(key)
	kf.count++
}

// MayContain reports false only for keys that were never added.
func (kf *KeyFilter) MayContain(key string) bool {
	return kf.bloomFilter.TestString(key)
}

// FalsePositiveRate estimates the chance that MayContain lies for an absent
// key, given the number of keys added so far: (1 - e^(-kn/m))^k.
func (kf *KeyFilter) FalsePositiveRate() float64 {
	m := float64(kf.bloomFilter.Cap())
	k := float64(kf.bloomFilter.K())
	if m == 0 {
		return 1
	}
	return math.Pow(1-math.Exp(-k*float64(kf.count)/m), k)
}

func (kf *KeyFilter) Count() uint {
	return kf.count
}
