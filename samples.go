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
	"math/rand"
)

const demoSentence = "The quick brown fox jump over the lazy dog"

var samples = []string{
	demoSentence,
	"The cat sleeps on the red chair",
	"My friend reads a good book every night",
	"We eat bread and cheese in the morning",
	"The children play in the big garden",
	"She drinks water after the long walk",
	"The old man sells fresh fish at the market",
	"I have a small house near the river",
	"The sun is hot and the sky is blue",
	"Open the window, please",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.Intn(len(list))]
}

// GetRandomSample returns a sentence to try the dictionary with.
func GetRandomSample() string {
	return pickRandomString(samples)
}
