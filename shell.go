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
	"strings"

	"github.com/mattn/go-shellwords"
)

const shellHelp = `Commands:
  translate TEXT...        translate a sentence (alias: t)
  lookup WORD...           look up single words, quote multi-word keys (alias: l)
  add WORD TRANSLATION     add an entry; existing words keep their translation
  height                   cached and recomputed tree height
  stats                    dictionary statistics
  help                     show this text
  quit                     leave the shell (alias: exit)`

// Shell is a line-oriented prompt over a translator.
type Shell struct {
	translator *Translator
	in         io.Reader
	out        io.Writer
	prompt     string
}

func NewShell(translator *Translator, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		translator: translator,
		in:         in,
		out:        out,
		prompt:     "lexitree> ",
	}
}

// Run reads commands until quit or end of input.
func (s *Shell) Run() error {
	scanner := bufio.NewScanner(s.in)
	fmt.Fprint(s.out, s.prompt)
	for scanner.Scan() {
		quit, err := s.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "%serror:%s %v\n", Error, Reset, err)
		}
		if quit {
			return nil
		}
		fmt.Fprint(s.out, s.prompt)
	}
	fmt.Fprintln(s.out)
	return scanner.Err()
}

// Execute runs a single command line and reports whether the shell should stop.
func (s *Shell) Execute(line string) (bool, error) {
	args, err := splitCommand(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}

	dict := s.translator.Dictionary()
	switch args[0] {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(s.out, shellHelp)
	case "translate", "t":
		if len(args) < 2 {
			return false, fmt.Errorf("translate needs some text")
		}
		fmt.Fprintln(s.out, s.translator.Translate(strings.Join(args[1:], " ")))
	case "lookup", "l":
		if len(args) < 2 {
			return false, fmt.Errorf("lookup needs at least one word")
		}
		for _, word := range args[1:] {
			key := NormalizeKey(word)
			if value, found, _ := dict.Lookup(key); found {
				fmt.Fprintf(s.out, "%s → %s\n", key, value)
			} else {
				fmt.Fprintf(s.out, "%s: not found\n", key)
			}
		}
	case "add":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: add WORD TRANSLATION")
		}
		key := NormalizeKey(args[1])
		if dict.Add(key, args[2]) {
			s.translator.Flush()
			fmt.Fprintf(s.out, "added %s → %s\n", key, args[2])
		} else {
			existing, _, _ := dict.Lookup(key)
			fmt.Fprintf(s.out, "%s already translates to %s\n", key, existing)
		}
	case "height":
		fmt.Fprintf(s.out, "Height of the AVL tree: %d (recomputed: %d)\n", dict.Height(), dict.ComputeHeight())
	case "stats":
		fmt.Fprint(s.out, BuildReport(dict, nil).Markdown())
	default:
		return false, fmt.Errorf("unknown command %q, type help", args[0])
	}
	return false, nil
}

// splitCommand splits a command line into words, honoring shell quoting.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %v", line, err)
	}
	return args, nil
}
