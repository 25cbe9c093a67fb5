package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "Phonebook"

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	b.WriteString(m.fieldView(focusSearch, "filter shown with"))
	b.WriteString("\n")

	b.WriteString(subtitleStyle.Render("add a new"))
	b.WriteString("\n")
	b.WriteString(m.fieldView(focusName, "name"))
	b.WriteString("\n")
	b.WriteString(m.fieldView(focusNumber, "number"))
	b.WriteString("\n")

	b.WriteString(subtitleStyle.Render("Numbers"))
	b.WriteString("\n")
	b.WriteString(m.listView())

	if n := m.notificationsView(); n != "" {
		b.WriteString("\n")
		b.WriteString(n)
	}

	if m.confirm != nil {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render(m.confirm.Prompt + "\n\n" + m.help.ShortHelpView(keys.confirmHelp())))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(keys)))

	return appStyle.Render(b.String())
}

func (m model) headerView() string {
	header := titleStyle.Render(appTitle)

	version := "client " + m.buildInfo.Version()
	if m.serverVersion != "" {
		version += "  server " + m.serverVersion
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", versionStyle.Render(version))
}

func (m model) fieldView(f focusArea, label string) string {
	marker := "  "
	if m.focus == f {
		marker = "> "
	}
	return fmt.Sprintf("%s%-18s %s", marker, label+":", m.inputs[f].View())
}

func (m model) listView() string {
	if len(m.snap.Visible) == 0 {
		if m.snap.Search != "" {
			return "  no matches\n"
		}
		return "  no entries\n"
	}

	var b strings.Builder
	for i, p := range m.snap.Visible {
		line := fmt.Sprintf("%s %s", p.Name, p.Number)
		if i == m.cursor && m.focus == focusList {
			b.WriteString(selectedStyle.Render("> " + line))
		} else if i == m.cursor {
			b.WriteString("* " + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) notificationsView() string {
	var boxes []string
	if m.snap.Info != "" {
		boxes = append(boxes, infoStyle.Render(m.snap.Info))
	}
	if m.snap.Error != "" {
		boxes = append(boxes, errorStyle.Render(m.snap.Error))
	}
	if len(boxes) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}
