// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/factsctl/factsctl/internal/config"
	"github.com/factsctl/factsctl/internal/filters"
	"github.com/factsctl/factsctl/internal/log"
)

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		if value == "" {
			return emptyValue[0]
		}
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		// Our current use cases have no need for an actual float, so we just
		// return an integer.
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// SliceDiceSpit orchestrates filtering, column selection, sorting and
// rendering of a dataset according to command flags. columns is the default
// column order; --attrs narrows or reorders it.
func SliceDiceSpit(rows []map[string]interface{}, columns []string, cmd *cli.Command, w io.Writer) {
	// Default to stdout.
	if w == nil {
		w = os.Stdout
	}

	// Filter out the rows we don't want first so the following phases work on
	// a smaller dataset.
	rows = filters.FilterDataset(rows, cmd.String("filter"))

	if extras := cmd.String("attrs"); extras != "" {
		columns = splitColumns(extras)
	}

	SortDataset(rows, cmd.String("sort"))

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.Marshal(rows)
		if err != nil {
			log.Errorf("SliceDiceSpit json marshal: %v", err)
		}
		fmt.Fprintln(w, string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(rows)
		if err != nil {
			log.Errorf("SliceDiceSpit yaml marshal: %v", err)
		}
		_, _ = w.Write(yamlOutput)
	case "raw":
		for _, row := range rows {
			values := make([]string, len(columns))
			for i, c := range columns {
				values[i] = InterfaceToString(columnValue(row, c))
			}
			fmt.Fprintln(w, strings.Join(values, "\t"))
		}
	default:
		TableWriter(rows, columns, cmd, w)
	}
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options. Output is written to w. If w is nil, os.Stdout
// is used.
func TableWriter(
	resultSet []map[string]interface{},
	columns []string,
	cmd *cli.Command,
	w io.Writer) {

	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(resultSet) == 0 {
		return
	}

	// We initialize the table styles.
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	// And then color styles if --color is present.
	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	// We build the table rows from the result set.
	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(columns))
		for _, c := range columns {
			row = append(row, InterfaceToString(columnValue(result, c), "-"))
		}
		rows = append(rows, row)
	}

	pad := int(cmd.Int("padding"))
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
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	// We add column headers if titles are enabled.
	if cmd.Bool("titles") {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(columns...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// columnValue extracts a column from a row. Plain keys hit the map directly;
// dotted keys are resolved as gjson paths over the marshaled row.
func columnValue(row map[string]interface{}, column string) interface{} {
	if v, ok := row[column]; ok {
		return v
	}

	if !strings.Contains(column, ".") {
		return nil
	}

	jsonBytes, err := json.Marshal(row)
	if err != nil {
		return nil
	}
	return gjson.GetBytes(jsonBytes, column).Value()
}

// splitColumns parses a comma-separated --attrs spec.
func splitColumns(spec string) []string {
	//nolint:prealloc
	var columns []string
	for _, c := range strings.Split(spec, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			columns = append(columns, c)
		}
	}
	return columns
}

// getColors returns configured color values for table rendering. Each color
// is selected based on terminal background color so output stays visible for
// all(?) terminal themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the
	// user to choose appropriate colors for their theme. If not found, pick a
	// reasonable default based on terminal background.
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
