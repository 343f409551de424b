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
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = ".lexitree.yaml"

// themeAuto detects the terminal background instead of forcing one
const themeAuto = "auto"

type DictionaryConfig struct {
	Path      string `yaml:"path"`
	Separator string `yaml:"separator"`
}

type LookupConfig struct {
	UseBloomFilter         bool `yaml:"use_bloom_filter"`
	BloomFilterSize        uint `yaml:"bloom_filter_size"`
	BloomFilterHashes      uint `yaml:"bloom_filter_hashes"`
	CacheTranslations      bool `yaml:"cache_translations"`
	CacheExpirationMinutes int  `yaml:"cache_expiration_minutes"`
}

type DisplayConfig struct {
	Highlight    bool   `yaml:"highlight"`
	ShowProgress bool   `yaml:"show_progress"`
	Theme        string `yaml:"theme"` // auto, light or dark
}

type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Lookup     LookupConfig     `yaml:"lookup"`
	Display    DisplayConfig    `yaml:"display"`
}

var defaultConfig = Config{
	Dictionary: DictionaryConfig{
		Path:      "~/.lexitree/english_spanish.csv",
		Separator: ",",
	},
	Lookup: LookupConfig{
		UseBloomFilter:         true,
		BloomFilterSize:        100000,
		BloomFilterHashes:      5,
		CacheTranslations:      true,
		CacheExpirationMinutes: 30,
	},
	Display: DisplayConfig{
		Highlight:    true,
		ShowProgress: true,
		Theme:        themeAuto,
	},
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() *Config {
	config := defaultConfig
	return &config
}

// LoadConfig reads ~/.lexitree.yaml. Any problem with the file falls back to
// the defaults so the CLI always starts.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at configPath. Keys missing from the file
// keep their default values.
func LoadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse %s: %v", configPath, err)
	}

	if config.Dictionary.Separator == "" {
		config.Dictionary.Separator = defaultConfig.Dictionary.Separator
	}
	return config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(configPath string) {
	config, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Lexitree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("📖 %sDictionary:%s\n", Green, Reset)
	fmt.Printf("  • %spath%s: %s\n", Green, Reset, config.Dictionary.Path)
	fmt.Printf("  • %sseparator%s: %q\n\n", Green, Reset, config.Dictionary.Separator)

	fmt.Printf("🔍 %sLookup:%s\n", Green, Reset)
	fmt.Printf("  • %suse_bloom_filter%s: %t\n", Green, Reset, config.Lookup.UseBloomFilter)
	if config.Lookup.UseBloomFilter {
		fmt.Printf("    %d bits, %d hash functions\n", config.Lookup.BloomFilterSize, config.Lookup.BloomFilterHashes)
	}
	fmt.Printf("  • %scache_translations%s: %t\n", Green, Reset, config.Lookup.CacheTranslations)
	if config.Lookup.CacheTranslations {
		fmt.Printf("    entries expire after %d minutes\n", config.Lookup.CacheExpirationMinutes)
	}
	fmt.Println()

	fmt.Printf("🎨 %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %shighlight%s: %t\n", Green, Reset, config.Display.Highlight)
	fmt.Printf("  • %sshow_progress%s: %t\n", Green, Reset, config.Display.ShowProgress)
	fmt.Printf("  • %stheme%s: %s\n\n", Green, Reset, config.Display.Theme)

	fmt.Printf("💡 Point the dictionary at any two-column file, one pair per line:\n")
	fmt.Printf("   dictionary:\n     path: ~/words/english_spanish.csv\n\n")
}
