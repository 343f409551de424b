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
	"log"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// loadTranslator reads the configuration and dictionary named by the
// command's flags and wires a translator over them.
func loadTranslator(cmd *cobra.Command) (*Translator, *LoadStats, *Config) {
	config := loadConfigForCommand(cmd)
	InitializeColors(config.Display.Theme)

	dict := NewDictionaryFromConfig(config.Lookup)
	showProgress := config.Display.ShowProgress && isatty.IsTerminal(os.Stderr.Fd())
	load, err := LoadDictionaryFile(config.Dictionary.Path, dict, config.Dictionary.Separator, showProgress)
	if err != nil {
		log.Fatalf("Error loading dictionary: %v", err)
	}

	var translator *Translator
	if config.Lookup.CacheTranslations {
		expiration := time.Duration(config.Lookup.CacheExpirationMinutes) * time.Minute
		translator = NewTranslator(dict, NewTranslationCache(expiration))
	} else {
		translator = NewTranslator(dict, nil)
	}
	return translator, load, config
}

func loadConfigForCommand(cmd *cobra.Command) *Config {
	var config *Config
	var err error
	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		config, err = LoadConfigFrom(expandHome(configPath))
	} else {
		config, err = LoadConfig()
	}
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	if dictPath, _ := cmd.Flags().GetString("dict"); dictPath != "" {
		config.Dictionary.Path = dictPath
	}
	if sep, _ := cmd.Flags().GetString("separator"); sep != "" {
		config.Dictionary.Separator = sep
	}
	return config
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func printTranslation(translator *Translator, text string, highlight bool) {
	if highlight {
		fmt.Println(renderTokens(translator.TranslateTokens(text), NewStyles(GetColorScheme())))
		return
	}
	fmt.Println(translator.Translate(text))
}

func main() {
	asciiLogo := `
  _           _ _
 | | _____ _(_) |_ _ __ ___  ___
 | |/ _ \ \/ / | __| '__/ _ \/ _ \
 | |  __/>  <| | |_| | |  __/  __/
 |_|\___/_/\_\_|\__|_|  \___|\___|
Word-by-word translation on a balanced search tree [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	runUI := func(cmd *cobra.Command, args []string) {
		translator, load, config := loadTranslator(cmd)
		if err := runBubbleTeaApp(translator, load, config); err != nil {
			log.Fatalf("Error running translator UI: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the live translation UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens a text box that translates as you type`),
		Args:  cobra.MinimumNArgs(0),
		Run:   runUI,
	}

	var cmdTranslate = &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text word by word",
		Long: fmt.Sprintf("%s\n%s", asciiLogo, `Translate the given words. Without arguments every line of standard input
is translated, or the demo sentence when standard input is a terminal.`),
		Run: func(cmd *cobra.Command, args []string) {
			translator, _, config := loadTranslator(cmd)

			if showHeight, _ := cmd.Flags().GetBool("height"); showHeight {
				fmt.Printf("Height of the AVL tree: %d\n", translator.Dictionary().Height())
			}

			highlight := config.Display.Highlight && stdoutIsTerminal()
			if cmd.Flags().Changed("highlight") {
				highlight, _ = cmd.Flags().GetBool("highlight")
			}

			if len(args) > 0 {
				printTranslation(translator, strings.Join(args, " "), highlight)
				return
			}
			if stdinIsTerminal() {
				printTranslation(translator, demoSentence, highlight)
				return
			}

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				printTranslation(translator, scanner.Text(), highlight)
			}
			if err := scanner.Err(); err != nil {
				log.Fatalf("Error reading input: %v", err)
			}
		},
	}
	cmdTranslate.Flags().Bool("height", false, "print the tree height before translating")
	cmdTranslate.Flags().Bool("highlight", true, "color translated words")

	var cmdLookup = &cobra.Command{
		Use:   "lookup WORD...",
		Short: "Look up single words",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			translator, _, _ := loadTranslator(cmd)
			dict := translator.Dictionary()

			missing := 0
			for _, word := range args {
				key := NormalizeKey(word)
				if value, found, _ := dict.Lookup(key); found {
					fmt.Printf("%s%s%s → %s\n", Green, key, Reset, value)
				} else {
					fmt.Printf("%s%s%s: not found\n", Warning, key, Reset)
					missing++
				}
			}
			if missing > 0 {
				os.Exit(1)
			}
		},
	}

	var cmdStats = &cobra.Command{
		Use:   "stats",
		Short: "Print dictionary and tree statistics",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			translator, load, _ := loadTranslator(cmd)
			report := BuildReport(translator.Dictionary(), load)

			md := report.Markdown()
			if plain, _ := cmd.Flags().GetBool("plain"); plain || !stdoutIsTerminal() {
				fmt.Print(md)
			} else {
				fmt.Print(renderMarkdown(md, 80))
			}
			if !report.Healthy() {
				os.Exit(2)
			}
		},
	}
	cmdStats.Flags().Bool("plain", false, "print raw markdown")

	var cmdInspect = &cobra.Command{
		Use:   "inspect",
		Short: "Open the tree health dashboard",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			translator, load, _ := loadTranslator(cmd)
			if err := runDashboard(translator, load); err != nil {
				log.Fatalf("Error running dashboard: %v", err)
			}
		},
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Interactive prompt to translate, look up and add words",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			translator, _, _ := loadTranslator(cmd)
			fmt.Println("Type help for commands, quit to leave.")
			if err := NewShell(translator, os.Stdin, os.Stdout).Run(); err != nil {
				log.Fatalf("Error reading input: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the active settings, creating a default config file if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				var err error
				if configPath, err = getConfigPath(); err != nil {
					fmt.Printf("❌ Failed to get config path: %v\n", err)
					return
				}
			}
			displaySettings(expandHome(configPath))
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Lexitree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the lexitree CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Lexitree version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "lexitree",
		Version: version,
		Long:    asciiLogo,
		// Default to the live translation UI when no subcommand is provided
		Run: runUI,
	}
	rootCmd.PersistentFlags().StringP("dict", "d", "", "dictionary file (overrides dictionary.path)")
	rootCmd.PersistentFlags().String("separator", "", "column separator of the dictionary file")
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/"+configFileName+")")

	rootCmd.AddCommand(cmdRun, cmdTranslate, cmdLookup, cmdStats, cmdInspect, cmdShell, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
