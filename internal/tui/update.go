package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"hexcomb/hexgrid"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focus + 1) % numFields)
		case "shift+tab", "up":
			m.setFocus((m.focus + numFields - 1) % numFields)
		case "o":
			if m.orientation == hexgrid.PointyTop {
				m.orientation = hexgrid.FlatTop
			} else {
				m.orientation = hexgrid.PointyTop
			}
			m.recompute()
		case "x":
			m.allowPartial = !m.allowPartial
			m.recompute()
		case "s":
			m.startFromMin = !m.startFromMin
			m.recompute()
		case "h":
			m.helpVisible = !m.helpVisible
		case "enter":
			m.recompute()
		default:
			// Numeric fields only; everything else is a command key.
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			m.recompute()
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// recompute re-parses the parameter fields and rebuilds the layout,
// surfacing any engine error in the status line.
func (m *Model) recompute() {
	w, errW := strconv.ParseFloat(m.inputs[fieldWidth].Value(), 64)
	h, errH := strconv.ParseFloat(m.inputs[fieldHeight].Value(), 64)
	numX, errN := strconv.Atoi(m.inputs[fieldNumX].Value())
	margin, errM := strconv.ParseFloat(m.inputs[fieldMargin].Value(), 64)
	if errW != nil || errH != nil || errN != nil || errM != nil {
		m.layout = nil
		m.status = "waiting for numeric parameters"
		return
	}

	l, err := hexgrid.ComputeLayout(w, h, numX, margin, hexgrid.LayoutOptions{
		Orientation:  m.orientation,
		StartFromMin: m.startFromMin,
		AllowPartial: m.allowPartial,
	})
	if err != nil {
		m.layout = nil
		m.status = err.Error()
		return
	}
	m.layout = l
	m.faceW, m.faceH = w, h
	m.status = fmt.Sprintf("%d hexes  radius %.3f  hex width %.3f  rows %d",
		len(l.Centers), l.Radius, l.Dim.HexWidth, len(l.Rows()))
}
