package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxfile/internal/domain"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeTempFile(t, `
classifier: rule
filings:
  - status: single
    gross_income: 75000
    mortgage_interest: 12000
    charitable_donations: 2500
    medical_expenses: 5000
  - status: joint
    gross_income: 250000
    mortgage_interest: 50000
    charitable_donations: 10000
    medical_expenses: 30000
`)

	batch, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "rule", batch.Classifier)
	require.Len(t, batch.Filings, 2)
	assert.Equal(t, domain.StatusSingle, batch.Filings[0].Status)
	assert.True(t, batch.Filings[0].GrossIncome.Equal(decimal.NewFromInt(75000)))
	assert.Equal(t, domain.StatusJoint, batch.Filings[1].Status)
	assert.True(t, batch.Filings[1].MedicalExpenses.Equal(decimal.NewFromInt(30000)))

	// No inline policy: the built-in 2025 tables apply.
	require.NotNil(t, batch.Policy)
	assert.Equal(t, 2025, batch.Policy.Year)
}

func TestLoadFromFileMissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileMalformedYAML(t *testing.T) {
	path := writeTempFile(t, "filings: [status: {")
	_, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromFileNoFilings(t *testing.T) {
	path := writeTempFile(t, "classifier: tree\n")
	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no filings")
}

func TestLoadFromFileBadRecordCarriesIndex(t *testing.T) {
	path := writeTempFile(t, `
filings:
  - status: single
    gross_income: 50000
    mortgage_interest: 0
    charitable_donations: 0
    medical_expenses: 0
  - status: divorced
    gross_income: 60000
    mortgage_interest: 0
    charitable_donations: 0
    medical_expenses: 0
`)
	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFilingData)
	assert.Contains(t, err.Error(), "filing 1")
}

func TestLoadFromFileNegativeField(t *testing.T) {
	path := writeTempFile(t, `
filings:
  - status: single
    gross_income: 50000
    mortgage_interest: 0
    charitable_donations: 0
    medical_expenses: -100
`)
	_, err := NewInputParser().LoadFromFile(path)
	assert.ErrorIs(t, err, domain.ErrNegativeField)
}

// A filing that omits a required field must be rejected, not defaulted to
// zero: income of zero and income never supplied are different records.
func TestLoadFromFileMissingRequiredField(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name: "Missing gross income",
			content: `
filings:
  - status: single
    mortgage_interest: 12000
    charitable_donations: 2500
    medical_expenses: 5000
`,
			field: "gross_income",
		},
		{
			name: "Missing status",
			content: `
filings:
  - gross_income: 50000
    mortgage_interest: 0
    charitable_donations: 0
    medical_expenses: 0
`,
			field: "status",
		},
		{
			name: "Missing medical expenses",
			content: `
filings:
  - status: joint
    gross_income: 250000
    mortgage_interest: 50000
    charitable_donations: 10000
`,
			field: "medical_expenses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.content)
			_, err := NewInputParser().LoadFromFile(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidFilingData)
			assert.Contains(t, err.Error(), tt.field)
			assert.Contains(t, err.Error(), "filing 0")
		})
	}
}

func TestLoadPolicy(t *testing.T) {
	path := writeTempFile(t, `
year: 2026
medical_floor: 0.075
standard_deductions:
  single: 15000
  married_separate: 15000
  joint: 30000
brackets:
  single:
    - {threshold: 0, rate: 0.10}
    - {threshold: 12000, rate: 0.12}
  married_separate:
    - {threshold: 0, rate: 0.10}
    - {threshold: 12000, rate: 0.12}
  joint:
    - {threshold: 0, rate: 0.10}
    - {threshold: 24000, rate: 0.12}
`)

	policy, err := NewInputParser().LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, 2026, policy.Year)
	assert.True(t, policy.StandardDeduction(domain.StatusJoint).Equal(decimal.NewFromInt(30000)))
	require.Len(t, policy.Brackets[domain.StatusSingle], 2)
	assert.True(t, policy.Brackets[domain.StatusSingle][1].Threshold.Equal(decimal.NewFromInt(12000)))
}

func TestLoadPolicyRejectsBadShape(t *testing.T) {
	path := writeTempFile(t, `
year: 2026
medical_floor: 0.075
brackets:
  single:
    - {threshold: 100, rate: 0.10}
`)
	_, err := NewInputParser().LoadPolicy(path)
	assert.Error(t, err)
}
