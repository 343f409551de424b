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
	"math"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// heightBars lists the bars of the height chart: actual heights next to
// the best and worst case for the same number of entries.
func heightBars(r Report) ([]float64, []string) {
	minHeight := 0.0
	if r.Entries > 0 {
		minHeight = math.Ceil(math.Log2(float64(r.Entries + 1)))
	}
	return []float64{
			float64(r.CachedHeight),
			float64(r.ComputedHeight),
			minHeight,
			math.Floor(r.HeightBound),
		}, []string{
			"cached",
			"recomputed",
			"perfect",
			"AVL max",
		}
}

// balancePercent is how much of the worst-case AVL height the tree uses.
func balancePercent(r Report) int {
	if r.HeightBound <= 0 {
		return 0
	}
	percent := int(100 * float64(r.CachedHeight) / r.HeightBound)
	if percent > 100 {
		percent = 100
	}
	return percent
}

func summaryText(r Report, ts TranslatorStats) string {
	integrity := "[passed](fg:green)"
	if !r.Healthy() {
		integrity = fmt.Sprintf("[failed: %v](fg:red)", r.CheckErr)
	}

	source := r.Source
	if source == "" {
		source = "(in memory)"
	}

	text := fmt.Sprintf(`Source:     %s
Entries:    %d
Height:     %d (recomputed %d)
Integrity:  %s
Lookups:    %d hits, %d misses (%d answered by filter)`,
		source, r.Entries, r.CachedHeight, r.ComputedHeight, integrity,
		ts.Hits, ts.Misses, ts.Filtered)

	if r.Load != nil {
		text += fmt.Sprintf("\nLoad:       %d lines, %d duplicates, %d malformed",
			r.Load.Lines, r.Load.Duplicates, r.Load.Malformed)
	}
	return text
}

// runDashboard shows the tree health dashboard until the user quits.
func runDashboard(translator *Translator, load *LoadStats) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	scheme := GetColorScheme()
	report := BuildReport(translator.Dictionary(), load)

	summaryPara := widgets.NewParagraph()
	summaryPara.Title = " Dictionary "
	summaryPara.Text = summaryText(report, translator.Stats())
	summaryPara.TextStyle = StyleText()
	summaryPara.BorderStyle = StyleBorder(true)

	heightChart := widgets.NewBarChart()
	heightChart.Title = " Tree Height "
	heightChart.Data, heightChart.Labels = heightBars(report)
	heightChart.BarWidth = 10
	heightChart.BarColors = []ui.Color{scheme.Success, scheme.Info, scheme.Accent, scheme.Warning}
	heightChart.LabelStyles = []ui.Style{StyleText()}
	heightChart.NumStyles = []ui.Style{ui.NewStyle(scheme.OnPrimary)}
	heightChart.BorderStyle = StyleBorder(false)

	balanceGauge := widgets.NewGauge()
	balanceGauge.Title = " Height vs. AVL worst case "
	balanceGauge.Percent = balancePercent(report)
	balanceGauge.BarColor = scheme.Primary
	balanceGauge.BorderStyle = StyleBorder(false)

	filterGauge := widgets.NewGauge()
	filterGauge.Title = " Key filter false positives "
	if report.FilterEnabled {
		filterGauge.Percent = int(math.Round(report.FilterFPRate * 100))
		filterGauge.Label = fmt.Sprintf("%.4f%%", report.FilterFPRate*100)
	} else {
		filterGauge.Label = "disabled"
	}
	filterGauge.BarColor = scheme.Warning
	filterGauge.BorderStyle = StyleBorder(false)

	keyboardPara := widgets.NewParagraph()
	keyboardPara.Title = " Keyboard Shortcuts "
	keyboardPara.Text = `[r](fg:green) -> Re-run the integrity check
[q](fg:green), [<esc>](fg:green) or [<ctrl> + c](fg:green) -> Quit`
	keyboardPara.BorderStyle = StyleBorder(false)

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.35,
			ui.NewCol(0.6, summaryPara),
			ui.NewCol(0.4, keyboardPara),
		),
		ui.NewRow(0.45, heightChart),
		ui.NewRow(0.2,
			ui.NewCol(0.5, balanceGauge),
			ui.NewCol(0.5, filterGauge),
		),
	)
	ui.Render(grid)

	refresh := func() {
		start := time.Now()
		report = BuildReport(translator.Dictionary(), load)
		summaryPara.Text = summaryText(report, translator.Stats()) +
			fmt.Sprintf("\nChecked in: %s", time.Since(start).Round(time.Microsecond))
		heightChart.Data, heightChart.Labels = heightBars(report)
		balanceGauge.Percent = balancePercent(report)
		ui.Render(grid)
	}

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "r":
			refresh()
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
			ui.Render(grid)
		}
	}
}
