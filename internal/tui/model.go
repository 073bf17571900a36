// Package tui implements the interactive button gallery shown by
// `uikit preview`.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	"github.com/alexisbeaulieu97/uikit/internal/ui/dom"
)

const maxActivity = 5

// entry is one example in the gallery together with its rendered host node.
type entry struct {
	name   string
	button *components.Button
	node   *dom.Node
}

// activity records button events. It is shared by pointer because the
// button callbacks outlive any single Model value.
type activity struct {
	lines []string
}

func (a *activity) add(format string, args ...any) {
	a.lines = append(a.lines, fmt.Sprintf(format, args...))
	if len(a.lines) > maxActivity {
		a.lines = a.lines[len(a.lines)-maxActivity:]
	}
}

// Model contains the Bubbletea state for the button gallery.
type Model struct {
	theme    components.Theme
	entries  []entry
	doc      *dom.Document
	activity *activity

	keys     keyMap
	help     help.Model
	width    int
	quitting bool
}

// NewModel renders every example into a single document. Diagnostics raised
// while rendering go to reporter, which may be nil.
func NewModel(examples []components.ButtonExample, theme components.Theme, reporter components.Reporter) Model {
	m := Model{
		theme:    theme,
		doc:      dom.NewDocument(),
		activity: &activity{},
		keys:     defaultKeyMap(),
		help:     help.New(),
	}

	ctx := components.DefaultContext().WithTheme(theme).WithReporter(reporter)
	root := dom.NewElement("main")
	log := m.activity
	for _, ex := range examples {
		cfg := ex.Config
		name := ex.Name
		cfg.OnClick = func(ev *dom.Event) {
			log.add("%s activated (%s)", name, describe(ev))
		}
		cfg.OnFocus = func(*dom.Event) {
			log.add("%s focused", name)
		}

		button := components.NewButton(cfg)
		node := button.Render(ctx)
		root.AppendChild(node)
		m.entries = append(m.entries, entry{name: name, button: button, node: node})
	}
	m.doc.Mount(root)

	return m
}

func describe(ev *dom.Event) string {
	if ev.Type == dom.EventKeyDown {
		if ev.Key == dom.KeySpace {
			return "Space"
		}
		return ev.Key
	}
	return string(ev.Type)
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focused returns the name of the focused example, or "".
func (m Model) Focused() string {
	active := m.doc.ActiveElement()
	for _, e := range m.entries {
		if e.node == active {
			return e.name
		}
	}
	return ""
}

// Activity returns the most recent button events, oldest first.
func (m Model) Activity() []string {
	return append([]string(nil), m.activity.lines...)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
