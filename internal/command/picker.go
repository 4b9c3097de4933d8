// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tfrun/tfrun/internal/env"
	"github.com/tfrun/tfrun/internal/log"
)

// pickerItem is one selectable environment in the picker list.
type pickerItem struct {
	name   string
	status string
}

func (i pickerItem) Title() string       { return i.name }
func (i pickerItem) Description() string { return i.status }
func (i pickerItem) FilterValue() string { return i.name }

// pickerModel is the Bubble Tea model for the environment picker.
type pickerModel struct {
	list   list.Model
	choice string
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(pickerItem); ok {
				m.choice = item.name
			}
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}

// pickEnvironment offers an interactive list of the discovered environments
// when stdin is a terminal and the registry is non-empty. Returns false when
// the picker is unavailable or the user backed out, in which case the caller
// keeps its hard "environment required" error.
func pickEnvironment(manager *env.Manager) (string, bool) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", false
	}

	names := manager.Names()
	if len(names) == 0 {
		return "", false
	}

	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		e, _ := manager.Get(name)
		status := "incomplete"
		if e.IsValid() {
			status = "ready"
		} else if e.IsPartiallyValid() {
			status = "vars only"
		}
		items = append(items, pickerItem{name: name, status: status})
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 48, 16)
	l.Title = "Select an environment"
	// Terraform purple, same as the engine's own branding.
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color("#623CE4")).
		Padding(0, 1)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	final, err := tea.NewProgram(pickerModel{list: l}).Run()
	if err != nil {
		log.Debugf("picker err: err=%v", err)
		return "", false
	}

	model, ok := final.(pickerModel)
	if !ok || model.choice == "" {
		return "", false
	}
	return model.choice, true
}
