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
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// LoadStats counts what happened to each line of a dictionary source.
type LoadStats struct {
	Lines      int
	Inserted   int
	Duplicates int
	Malformed  int
}

// NormalizeKey is applied to every source word before it is stored.
func NormalizeKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// parseEntry splits "source<sep>target". Columns after the second are
// ignored and the target is kept exactly as written.
func parseEntry(line, sep string) (key, value string, ok bool) {
	parts := strings.Split(line, sep)
	if len(parts) < 2 {
		return "", "", false
	}
	return NormalizeKey(parts[0]), parts[1], true
}

// LoadDictionary reads one entry per line from r into dict. Malformed lines
// are logged and skipped; only read errors abort the load.
func LoadDictionary(r io.Reader, dict *Dictionary, sep string) (*LoadStats, error) {
	if sep == "" {
		sep = defaultConfig.Dictionary.Separator
	}
	stats := &LoadStats{}

	scanner := bufio.NewScanner(r)
	// Some word lists carry long example sentences in the second column
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		stats.Lines++
		key, value, ok := parseEntry(scanner.Text(), sep)
		if !ok {
			stats.Malformed++
			log.Printf("Skipping malformed dictionary line %d: missing %q separated translation", stats.Lines, sep)
			continue
		}

		if dict.Add(key, value) {
			stats.Inserted++
		} else {
			stats.Duplicates++
		}
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read dictionary at line %d: %w", stats.Lines+1, err)
	}

	return stats, nil
}

// LoadDictionaryFile loads the dictionary stored at path ("~/" is expanded).
func LoadDictionaryFile(path string, dict *Dictionary, sep string, showProgress bool) (*LoadStats, error) {
	path = expandHome(path)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dictionary file %s not found. Pass --dict or set dictionary.path in ~/%s", path, configFileName)
		}
		return nil, err
	}
	defer file.Close()

	var reader io.Reader = file
	if showProgress {
		var size int64 = -1
		if stat, err := file.Stat(); err == nil {
			size = stat.Size()
		}
		bar := progressbar.NewOptions64(size,
			progressbar.OptionSetDescription("📖 Loading dictionary..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
		defer bar.Finish()
		reader = io.TeeReader(file, bar)
	}

	stats, err := LoadDictionary(reader, dict, sep)
	if err != nil {
		return stats, err
	}
	dict.Source = path

	return stats, nil
}
