// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one selectable relation file and its pending change counts.
type Item struct {
	Filename string
	Inserts  int
	Deletes  int
}

var (
	cursorStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// SelectRelations runs an interactive picker over the touched relation
// files. It returns the filenames the user confirmed, or nil if the
// user quit without confirming.
func SelectRelations(items []Item) ([]string, error) {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/ "
	ti.CharLimit = 128

	m := model{items: items, filter: ti, selected: map[string]bool{}}
	// Everything starts selected so enter-with-no-edits applies it all.
	for _, it := range items {
		m.selected[it.Filename] = true
	}

	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, err
	}
	final := out.(model)
	if !final.confirmed {
		return nil, nil
	}

	picked := make([]string, 0, len(items))
	for _, it := range items {
		if final.selected[it.Filename] {
			picked = append(picked, it.Filename)
		}
	}
	return picked, nil
}

type model struct {
	items     []Item
	filter    textinput.Model
	cursor    int
	selected  map[string]bool
	confirmed bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filter.Focused() {
		switch key.String() {
		case "enter", "esc":
			m.filter.Blur()
			m.cursor = 0
			return m, nil
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.cursor = 0
			return m, cmd
		}
	}

	visible := m.visible()
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "/":
		m.filter.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor < len(visible) {
			f := visible[m.cursor].Filename
			m.selected[f] = !m.selected[f]
		}
	case "a":
		for _, it := range m.items {
			m.selected[it.Filename] = true
		}
	case "n":
		for _, it := range m.items {
			m.selected[it.Filename] = false
		}
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("Select relations to rewrite:\n\n")
	for i, it := range m.visible() {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if m.selected[it.Filename] {
			mark = "x"
		}
		line := fmt.Sprintf("%s [%s] %-24s +%d -%d", cursor, mark, it.Filename, it.Inserts, it.Deletes)
		if m.cursor == i {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + m.filter.View() + "\n")
	b.WriteString(dimStyle.Render("SPACE: toggle, A: all, N: none, /: filter, ENTER: go, Q/ESCAPE: quit") + "\n")
	return b.String()
}

// visible returns the items matching the current filter text.
func (m model) visible() []Item {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if needle == "" {
		return m.items
	}
	var out []Item
	for _, it := range m.items {
		if strings.Contains(strings.ToLower(it.Filename), needle) {
			out = append(out, it)
		}
	}
	return out
}
