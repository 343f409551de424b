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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultTranslationExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	translationCacheCleanup = 5 * time.Minute
)

// NewTranslationCache creates a cache for finished sentence translations.
// A non-positive expiration falls back to the default.
func NewTranslationCache(expiration time.Duration) *cache.Cache {
	if expiration <= 0 {
		expiration = defaultTranslationExpiration
	}
	return cache.New(expiration, translationCacheCleanup)
}

func CacheTranslation(c *cache.Cache, text string, translation string) {
	c.Set(text, translation, cache.DefaultExpiration)
}

func GetCachedTranslation(c *cache.Cache, text string) (string, bool) {
	val, ok := c.Get(text)
	if !ok {
		return "", false
	}
	translation, ok := val.(string)
	return translation, ok
}
