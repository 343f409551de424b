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
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/cybrota/lexitree/avl"
)

// Report is a snapshot of the dictionary's shape.
type Report struct {
	Source         string
	Entries        int
	CachedHeight   int
	ComputedHeight int
	HeightBound    float64
	CheckErr       error
	Load           *LoadStats
	FilterEnabled  bool
	FilterFPRate   float64
}

func BuildReport(dict *Dictionary, load *LoadStats) Report {
	report := Report{
		Source:         dict.Source,
		Entries:        dict.Len(),
		CachedHeight:   dict.Height(),
		ComputedHeight: dict.ComputeHeight(),
		HeightBound:    avl.MaxHeight(dict.Len()),
		CheckErr:       dict.Check(),
		Load:           load,
	}
	if filter := dict.Filter(); filter != nil {
		report.FilterEnabled = true
		report.FilterFPRate = filter.FalsePositiveRate()
	}
	return report
}

// Healthy is true when every invariant holds and both height measures agree.
func (r Report) Healthy() bool {
	return r.CheckErr == nil && r.CachedHeight == r.ComputedHeight
}

func (r Report) Markdown() string {
	var sb strings.Builder

	sb.WriteString("# Dictionary statistics\n\n")
	if r.Source != "" {
		fmt.Fprintf(&sb, "Loaded from `%s`\n\n", r.Source)
	}

	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Entries | %d |\n", r.Entries)
	fmt.Fprintf(&sb, "| Cached height | %d |\n", r.CachedHeight)
	fmt.Fprintf(&sb, "| Recomputed height | %d |\n", r.ComputedHeight)
	fmt.Fprintf(&sb, "| AVL height bound | %.2f |\n", r.HeightBound)
	if r.FilterEnabled {
		fmt.Fprintf(&sb, "| Key filter false positive rate | %.4f%% |\n", r.FilterFPRate*100)
	} else {
		sb.WriteString("| Key filter | disabled |\n")
	}
	sb.WriteString("\n")

	if r.Load != nil {
		sb.WriteString("## Load\n\n")
		fmt.Fprintf(&sb, "* %d lines read\n", r.Load.Lines)
		fmt.Fprintf(&sb, "* %d entries inserted\n", r.Load.Inserted)
		fmt.Fprintf(&sb, "* %d duplicate words kept their first translation\n", r.Load.Duplicates)
		fmt.Fprintf(&sb, "* %d malformed lines skipped\n\n", r.Load.Malformed)
	}

	sb.WriteString("## Integrity\n\n")
	if r.Healthy() {
		sb.WriteString("All ordering, height and balance checks passed.\n")
	} else if r.CheckErr != nil {
		fmt.Fprintf(&sb, "**Check failed:** %v\n", r.CheckErr)
	} else {
		sb.WriteString("**Cached and recomputed heights disagree.**\n")
	}

	return sb.String()
}

// renderMarkdown renders md for the terminal, falling back to the raw text.
func renderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
