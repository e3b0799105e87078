package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"taxfile/internal/domain"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			return m.moveFocus(1), nil

		case "shift+tab", "up":
			return m.moveFocus(-1), nil

		case "left", "right":
			if m.focus == fieldStatus {
				step := 1
				if msg.String() == "left" {
					step = len(statuses) - 1
				}
				m.statusIndex = (m.statusIndex + step) % len(statuses)
				return m, nil
			}

		case "enter":
			m.compute()
			return m, nil
		}
	}

	// Route everything else to the focused text input.
	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) moveFocus(delta int) Model {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
	return m
}

// compute parses the form into a FilingRecord and runs the engine. Parse and
// validation failures land in m.err and leave the previous result cleared.
func (m *Model) compute() {
	m.result = nil
	m.err = nil

	values := [4]decimal.Decimal{}
	for i, input := range m.inputs {
		raw := input.Value()
		if raw == "" {
			raw = "0"
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			m.err = err
			return
		}
		values[i] = value
	}

	record := domain.FilingRecord{
		Status:              statuses[m.statusIndex],
		GrossIncome:         values[fieldGross],
		MortgageInterest:    values[fieldMortgage],
		CharitableDonations: values[fieldCharity],
		MedicalExpenses:     values[fieldMedical],
	}

	result, err := m.engine.Process(record)
	if err != nil {
		m.err = err
		return
	}
	m.result = &result
}
