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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Lexitree %s**

Word-by-word translation backed by a balanced search tree. Load a two-column word list once,
then translate sentences, look up words or inspect how well the tree is balanced.

Built with Go %s

# 1. Features
* Live translation UI with known words highlighted
* Sentence translation from arguments or standard input
* Interactive shell to look up and add words
* Tree statistics and an integrity check of every node

# 2. Dictionary format
One pair per line, source word first:

    the,el
    quick,rapido
    fox,zorro

Source words are trimmed and lowercased. When a word appears twice the first translation is kept.

# 3. Commands
* run: live translation UI (default)
* translate: translate arguments or standard input
* lookup: look up single words
* shell: interactive prompt
* stats: dictionary statistics
* inspect: tree health dashboard
* settings: show or create ~/.lexitree.yaml

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
