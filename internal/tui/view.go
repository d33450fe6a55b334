package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const panelWidth = 24

var fieldLabels = [numFields]string{"width", "height", "hexes", "margin"}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}

	header := titleStyle.Render(" hexview ─ honeycomb layout preview ")

	panel := panelStyle.Width(panelWidth - 2).Render(m.renderPanel())

	mapWidth := m.width - panelWidth - 1
	if mapWidth < 10 {
		mapWidth = 10
	}
	canvas := m.renderLayout(mapWidth, contentHeight)
	mapView := lipgloss.NewStyle().Width(mapWidth).Height(contentHeight).Render(canvas)

	content := lipgloss.JoinHorizontal(lipgloss.Top, panel, " ", mapView)

	status := m.status
	if m.layout == nil {
		status = errStyle.Render(status)
	}
	footer := status
	if m.helpVisible {
		footer += "\n" + dimStyle.Render("tab/↑↓ field · o orientation · x partial · s start side · enter apply · h help · q quit")
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, content, footer))
}

func (m Model) renderPanel() string {
	var b strings.Builder
	for i := range m.inputs {
		cursor := "  "
		if i == m.focus {
			cursor = titleStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%-7s %s\n", cursor, fieldLabels[i], m.inputs[i].View())
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  orient  %s\n", m.orientation)
	fmt.Fprintf(&b, "  partial %v\n", m.allowPartial)
	side := "min"
	if !m.startFromMin {
		side = "max"
	}
	fmt.Fprintf(&b, "  rows    from %s", side)
	return b.String()
}
