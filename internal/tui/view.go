package tui

import (
	"fmt"
	"strings"

	"taxfile/internal/output"
)

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("taxfile — income tax calculator"))
	sb.WriteString("\n")

	for i, input := range m.inputs {
		sb.WriteString(m.labelFor(i))
		sb.WriteString(input.View())
		sb.WriteString("\n")
	}

	sb.WriteString(m.labelFor(fieldStatus))
	sb.WriteString(StatusValueStyle.Render("< " + string(statuses[m.statusIndex]) + " >"))
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(ErrorStyle.Render("error: " + m.err.Error()))
		sb.WriteString("\n")
	}

	if m.result != nil {
		r := m.result
		kind := "standard"
		if r.Itemized {
			kind = "itemized"
		}
		body := fmt.Sprintf("Deductions (%s): %s\nTaxable income:      %s\nTax owed:            %s",
			kind,
			output.FormatCurrency(r.Deductions),
			output.FormatCurrency(r.TaxableIncome),
			TaxOwedStyle.Render(output.FormatCurrency(r.TaxOwed)))
		sb.WriteString(ResultBoxStyle.Render(body))
		sb.WriteString("\n")
	}

	sb.WriteString(HelpStyle.Render("tab/↑↓ move · ←/→ filing status · enter calculate · esc quit"))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) labelFor(field int) string {
	label := fieldLabels[field] + ":"
	if field == m.focus {
		return FocusedLabelStyle.Render(label)
	}
	return LabelStyle.Render(label)
}
