package tui

import (
	textinput "github.com/charmbracelet/bubbles/textinput"

	"hexcomb/hexgrid"
)

// Parameter field indices.
const (
	fieldWidth = iota
	fieldHeight
	fieldNumX
	fieldMargin
	numFields
)

type Model struct {
	width  int
	height int

	// Parameter panel
	inputs [numFields]textinput.Model
	focus  int

	orientation  hexgrid.Orientation
	allowPartial bool
	startFromMin bool

	// Current layout (nil while inputs are invalid)
	layout *hexgrid.Layout
	faceW  float64
	faceH  float64

	status      string
	helpVisible bool
}

func New() Model {
	m := Model{
		startFromMin: true,
		helpVisible:  true,
	}
	defaults := [numFields]string{"100", "60", "8", "2"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.SetValue(defaults[i])
		ti.CharLimit = 10
		ti.Width = 8
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[m.focus].Focus()
	m.recompute()
	return m
}
