package output

import (
	"encoding/csv"
	"strings"

	"taxfile/internal/domain"
)

// CSVFormatter formats results as CSV, one row per filing.
type CSVFormatter struct{}

// Name implements Formatter.
func (cf *CSVFormatter) Name() string { return "csv" }

// Format implements Formatter.
func (cf *CSVFormatter) Format(results []domain.ResultRecord) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Filing Status",
		"Gross Income",
		"Deductions",
		"Deduction Type",
		"Taxable Income",
		"Tax Owed",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, r := range results {
		row := []string{
			string(r.Status),
			r.GrossIncome.StringFixed(2),
			r.Deductions.StringFixed(2),
			deductionKind(&r),
			r.TaxableIncome.StringFixed(2),
			r.TaxOwed.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
