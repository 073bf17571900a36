package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

const defaultWidth = 60

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{titleStyle.Render("uikit • Button gallery")}

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	buttonWidth := width - lipgloss.Width(nameStyle.Render("")) - 2
	if buttonWidth < 10 {
		buttonWidth = 10
	}

	active := m.doc.ActiveElement()
	ctx := components.DefaultContext().WithTheme(m.theme).WithParentWidth(buttonWidth)

	rows := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		focused := e.node == active
		cursor := "  "
		if focused {
			cursor = cursorStyle.Render("›") + " "
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			cursor,
			nameStyle.Render(e.name),
			e.button.ViewWithContext(ctx.WithFocus(focused)),
		)
		rows = append(rows, row)
	}
	sections = append(sections, sectionStyle.Render("Buttons"), strings.Join(rows, "\n"))

	sections = append(sections, sectionStyle.Render("Activity"))
	if lines := m.activity.lines; len(lines) > 0 {
		for _, line := range lines {
			sections = append(sections, activityStyle.Render(line))
		}
	} else {
		sections = append(sections, mutedStyle.Render("press tab to focus a button"))
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
