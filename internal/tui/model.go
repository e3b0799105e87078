// Package tui implements an interactive single-filing calculator: enter the
// filing fields, hit enter, and see the computed liability.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taxfile/internal/calculation"
	"taxfile/internal/classifier"
	"taxfile/internal/domain"
)

// Field indices: the four monetary inputs plus the status selector.
const (
	fieldGross = iota
	fieldMortgage
	fieldCharity
	fieldMedical
	fieldStatus
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Gross income",
	"Mortgage interest",
	"Charitable donations",
	"Medical expenses",
	"Filing status",
}

var statuses = []domain.FilingStatus{
	domain.StatusSingle,
	domain.StatusMarriedSeparate,
	domain.StatusJoint,
}

// Model holds the form state and the computed result.
type Model struct {
	inputs      [4]textinput.Model
	statusIndex int
	focus       int

	engine *calculation.Engine

	result *domain.ResultRecord
	err    error

	width  int
	height int
}

// NewModel creates the application model over the given policy and
// predictor.
func NewModel(policy *domain.TaxPolicy, predictor classifier.Predictor) Model {
	m := Model{
		engine: calculation.NewEngine(policy, predictor),
		width:  80,
		height: 24,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.Prompt = "$ "
		ti.CharLimit = 12
		m.inputs[i] = ti
	}
	m.inputs[fieldGross].Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
