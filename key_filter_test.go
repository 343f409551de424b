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
	"testing"
)

func TestKeyFilterNoFalseNegatives(t *testing.T) {
	kf := NewKeyFilter(10000, 5)
	for i := 0; i < 500; i++ {
		kf.Add(fmt.Sprintf("word-%d", i))
	}

	for i := 0; i < 500; i++ {
		key := fmt.Sprintf("word-%d", i)
		if !kf.MayContain(key) {
			t.Errorf("MayContain(%q) = false for an added key", key)
		}
	}
	if kf.Count() != 500 {
		t.Errorf("Count() = %d; want 500", kf.Count())
	}
}

func TestKeyFilterRejectsMostUnknownKeys(t *testing.T) {
	kf := NewKeyFilter(10000, 5)
	for i := 0; i < 500; i++ {
		kf.Add(fmt.Sprintf("word-%d", i))
	}

	falsePositives := 0
	for i := 0; i < 1000; i++ {
		if kf.MayContain(fmt.Sprintf("other-%d", i)) {
			falsePositives++
		}
	}
	// Expected rate is well under 1% for this load
	if falsePositives > 50 {
		t.Errorf("%d of 1000 unknown keys passed the filter", falsePositives)
	}
}

func TestKeyFilterFalsePositiveRate(t *testing.T) {
	kf := NewKeyFilter(1000, 3)
	if rate := kf.FalsePositiveRate(); rate != 0 {
		t.Errorf("FalsePositiveRate() on an empty filter = %v; want 0", rate)
	}

	previous := 0.0
	for i := 0; i < 200; i++ {
		kf.Add(fmt.Sprintf("k%d", i))
		rate := kf.FalsePositiveRate()
		if rate < previous || rate > 1 {
			t.Fatalf("FalsePositiveRate() = %v after %d keys; want a rate growing from %v", rate, i+1, previous)
		}
		previous = rate
	}
}
