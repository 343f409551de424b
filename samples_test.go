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

import "testing"

func TestGetRandomSample(t *testing.T) {
	known := make(map[string]bool, len(samples))
	for _, s := range samples {
		known[s] = true
	}
	for i := 0; i < 20; i++ {
		if s := GetRandomSample(); !known[s] {
			t.Errorf("GetRandomSample() = %q; not one of the samples", s)
		}
	}
}

func TestPickRandomStringEmpty(t *testing.T) {
	if got := pickRandomString(nil); got != "" {
		t.Errorf("pickRandomString(nil) = %q; want empty string", got)
	}
}
