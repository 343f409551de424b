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
	"regexp"
	"strings"

	"github.com/patrickmn/go-cache"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Token is one word of the input after lookup.
type Token struct {
	Source string // Lowercased word with punctuation stripped
	Output string // Translation on a hit, Source otherwise
	Hit    bool
}

type TranslatorStats struct {
	Hits      int
	Misses    int
	Filtered  int // Misses answered by the key filter alone
	CacheHits int
}

// Translator substitutes dictionary words in free text.
type Translator struct {
	dict  *Dictionary
	cache *cache.Cache
	stats TranslatorStats
}

// NewTranslator returns a translator over dict. c may be nil to disable
// memoization.
func NewTranslator(dict *Dictionary, c *cache.Cache) *Translator {
	return &Translator{dict: dict, cache: c}
}

// normalizeToken keeps only ASCII letters and digits.
func normalizeToken(word string) string {
	return nonAlphanumeric.ReplaceAllString(word, "")
}

// Tokenize lowercases text, splits it on whitespace runs and strips every
// character outside [a-z0-9]. Words with nothing left are dropped.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if token := normalizeToken(field); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// TranslateTokens looks up every word of text and counts hits and misses.
func (t *Translator) TranslateTokens(text string) []Token {
	return t.lookupTokens(text, true)
}

// Preview looks up every word of text without touching the counters, for
// callers that retranslate the same text while it is being typed.
func (t *Translator) Preview(text string) []Token {
	return t.lookupTokens(text, false)
}

func (t *Translator) lookupTokens(text string, record bool) []Token {
	words := Tokenize(text)
	tokens := make([]Token, 0, len(words))
	for _, word := range words {
		value, found, filtered := t.dict.Lookup(word)
		if found {
			tokens = append(tokens, Token{Source: word, Output: value, Hit: true})
		} else {
			tokens = append(tokens, Token{Source: word, Output: word})
		}
		if !record {
			continue
		}

		switch {
		case found:
			t.stats.Hits++
		case filtered:
			t.stats.Misses++
			t.stats.Filtered++
		default:
			t.stats.Misses++
		}
	}
	return tokens
}

// Translate replaces every known word of text with its translation and keeps
// unknown words as they are.
func (t *Translator) Translate(text string) string {
	if t.cache != nil {
		if cached, ok := GetCachedTranslation(t.cache, text); ok {
			t.stats.CacheHits++
			return cached
		}
	}

	result := JoinTokens(t.TranslateTokens(text))

	if t.cache != nil {
		CacheTranslation(t.cache, text, result)
	}
	return result
}

// JoinTokens joins token outputs with single spaces.
func JoinTokens(tokens []Token) string {
	outputs := make([]string, len(tokens))
	for i, token := range tokens {
		outputs[i] = token.Output
	}
	return strings.TrimSpace(strings.Join(outputs, " "))
}

// Flush forgets memoized translations. Call it after the dictionary changes.
func (t *Translator) Flush() {
	if t.cache != nil {
		t.cache.Flush()
	}
}

func (t *Translator) Stats() TranslatorStats {
	return t.stats
}

func (t *Translator) Dictionary() *Dictionary {
	return t.dict
}
