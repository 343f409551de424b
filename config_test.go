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
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigFrom returned error: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want defaults %+v", *config, defaultConfig)
	}
}

func TestLoadConfigFromPartialFile(t *testing.T) {
	path := writeConfig(t, `dictionary:
  path: /tmp/words.tsv
  separator: "\t"
lookup:
  use_bloom_filter: false
`)

	config, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom returned error: %v", err)
	}

	if config.Dictionary.Path != "/tmp/words.tsv" {
		t.Errorf("Dictionary.Path = %q; want /tmp/words.tsv", config.Dictionary.Path)
	}
	if config.Dictionary.Separator != "\t" {
		t.Errorf("Dictionary.Separator = %q; want a tab", config.Dictionary.Separator)
	}
	if config.Lookup.UseBloomFilter {
		t.Error("Lookup.UseBloomFilter = true; want false from the file")
	}
	// Keys the file leaves out keep their defaults
	if config.Lookup.BloomFilterSize != defaultConfig.Lookup.BloomFilterSize {
		t.Errorf("Lookup.BloomFilterSize = %d; want default %d", config.Lookup.BloomFilterSize, defaultConfig.Lookup.BloomFilterSize)
	}
	if config.Display != defaultConfig.Display {
		t.Errorf("Display = %+v; want default %+v", config.Display, defaultConfig.Display)
	}
}

func TestLoadConfigFromEmptySeparator(t *testing.T) {
	path := writeConfig(t, "dictionary:\n  separator: \"\"\n")

	config, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom returned error: %v", err)
	}
	if config.Dictionary.Separator != "," {
		t.Errorf("Dictionary.Separator = %q; want \",\"", config.Dictionary.Separator)
	}
}

func TestLoadConfigFromInvalidYAML(t *testing.T) {
	path := writeConfig(t, "dictionary: [unclosed\n")

	config, err := LoadConfigFrom(path)
	if err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
	if config == nil || *config != defaultConfig {
		t.Errorf("config = %+v; want defaults alongside the error", config)
	}
}

func TestDefaultConfigIsACopy(t *testing.T) {
	config := DefaultConfig()
	config.Dictionary.Path = "/elsewhere"

	if defaultConfig.Dictionary.Path == "/elsewhere" {
		t.Error("Modifying DefaultConfig() changed the package defaults")
	}
}

func TestCreateDefaultConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatalf("createDefaultConfigFile returned error: %v", err)
	}

	config, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom returned error: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want defaults %+v", *config, defaultConfig)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/words.csv", filepath.Join(home, "words.csv")},
		{"~", home},
		{"/abs/words.csv", "/abs/words.csv"},
		{"relative/words.csv", "relative/words.csv"},
		{"~other/words.csv", "~other/words.csv"},
	}

	for _, tc := range tests {
		if got := expandHome(tc.input); got != tc.expected {
			t.Errorf("expandHome(%q) = %q; want %q", tc.input, got, tc.expected)
		}
	}
}
