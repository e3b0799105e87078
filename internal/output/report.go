package output

import (
	"github.com/shopspring/decimal"

	"taxfile/internal/domain"
)

// Formatter renders a batch of results in one output format.
type Formatter interface {
	Format(results []domain.ResultRecord) (string, error)
	Name() string
}

// GetFormatterByName returns the formatter registered under name, or nil if
// no such format exists.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console", "table", "":
		return &ConsoleFormatter{}
	case "csv":
		return &CSVFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	}
	return nil
}

// FormatCurrency formats a decimal as a dollar amount.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// deductionKind labels how the deduction was chosen.
func deductionKind(r *domain.ResultRecord) string {
	if r.Itemized {
		return "itemized"
	}
	return "standard"
}
