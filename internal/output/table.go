// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	yaml "gopkg.in/yaml.v2"

	"github.com/tfrun/tfrun/internal/config"
	"github.com/tfrun/tfrun/internal/log"
)

// Table renders rows in the hidden-border tabular form used by all listing
// commands. Headers are shown only when titles is true. Output is written to
// w; if w is nil, os.Stdout is used.
func Table(headers []string, rows [][]string, titles bool, colored bool, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if colored {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(2)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}

	fmt.Fprintln(w, t)
}

// Listing writes the dataset in the requested format: "json", "yaml", or a
// table for anything else. The rows are derived from the dataset in header
// order, so the three formats stay consistent.
func Listing(format string, headers []string, dataset []map[string]interface{}, titles, colored bool, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case "json":
		jsonOutput, err := json.Marshal(dataset)
		if err != nil {
			log.Errorf("Listing json marshal: %v", err)
			return
		}
		w.Write(jsonOutput)
		fmt.Fprintln(w)
	case "yaml":
		yamlOutput, err := yaml.Marshal(dataset)
		if err != nil {
			log.Errorf("Listing yaml marshal: %v", err)
			return
		}
		w.Write(yamlOutput)
	default:
		rows := make([][]string, 0, len(dataset))
		for _, row := range dataset {
			cells := make([]string, 0, len(headers))
			for _, header := range headers {
				cells = append(cells, toString(row[header], "-"))
			}
			rows = append(rows, cells)
		}
		Table(headers, rows, titles, colored, w)
	}
}

// toString converts supported primitive values to a string, substituting
// empty for nil or zero values.
func toString(value interface{}, empty string) string {
	switch v := value.(type) {
	case nil:
		return empty
	case string:
		if v == "" {
			return empty
		}
		return v
	case bool:
		return fmt.Sprintf("%t", v)
	case int:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// getColors returns configured color values for table rendering. Each color
// is selected based on terminal background brightness so output stays
// visible across terminal themes; explicit values in the config win.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
