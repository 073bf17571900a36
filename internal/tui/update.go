package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/uikit/internal/ui/dom"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.doc.Tab()
	case key.Matches(msg, m.keys.Prev):
		m.doc.ShiftTab()
	case key.Matches(msg, m.keys.Enter):
		m.doc.KeyDown(m.doc.ActiveElement(), dom.KeyEnter)
	case key.Matches(msg, m.keys.Space):
		m.doc.KeyDown(m.doc.ActiveElement(), dom.KeySpace)
	case key.Matches(msg, m.keys.Click):
		m.doc.Click(m.doc.ActiveElement())
	}
	return m, nil
}
