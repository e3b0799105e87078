package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taxfile/internal/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	amountStyle = lipgloss.NewStyle().Bold(true)
	owedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// ConsoleFormatter renders results as a styled per-filing breakdown.
type ConsoleFormatter struct{}

// Name implements Formatter.
func (cf *ConsoleFormatter) Name() string { return "console" }

// Format implements Formatter.
func (cf *ConsoleFormatter) Format(results []domain.ResultRecord) (string, error) {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("TAX LIABILITY REPORT"))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 50))
	sb.WriteString("\n\n")

	for i, r := range results {
		fmt.Fprintf(&sb, "FILING %d (%s)\n", i+1, r.Status)
		sb.WriteString(strings.Repeat("-", 30))
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Render("Gross Income:   "), amountStyle.Render(FormatCurrency(r.GrossIncome)))
		fmt.Fprintf(&sb, "  %s %s (%s)\n", labelStyle.Render("Deductions:     "), amountStyle.Render(FormatCurrency(r.Deductions)), deductionKind(&r))
		fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Render("Taxable Income: "), amountStyle.Render(FormatCurrency(r.TaxableIncome)))
		fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Render("Tax Owed:       "), owedStyle.Render(FormatCurrency(r.TaxOwed)))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
