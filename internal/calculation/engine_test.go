package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxfile/internal/classifier"
	"taxfile/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	policy := domain.Policy2025()
	return NewEngine(policy, classifier.NewRule(policy))
}

func TestProcessSingleFiler(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Process(domain.FilingRecord{
		Status:              domain.StatusSingle,
		GrossIncome:         decimal.NewFromInt(75000),
		MortgageInterest:    decimal.NewFromInt(12000),
		CharitableDonations: decimal.NewFromInt(2500),
		MedicalExpenses:     decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	// Deductible medical is zero (floor 5625), itemized total 14500 loses to
	// the 14600 standard deduction.
	assert.True(t, result.Deductions.Equal(decimal.NewFromInt(14600)))
	assert.False(t, result.Itemized)
	assert.True(t, result.TaxableIncome.Equal(decimal.NewFromInt(60400)))
	assert.True(t, result.TaxOwed.Equal(decimal.NewFromInt(8341)),
		"Expected 8341, got %s", result.TaxOwed)
}

func TestProcessJointFiler(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Process(domain.FilingRecord{
		Status:              domain.StatusJoint,
		GrossIncome:         decimal.NewFromInt(250000),
		MortgageInterest:    decimal.NewFromInt(50000),
		CharitableDonations: decimal.NewFromInt(10000),
		MedicalExpenses:     decimal.NewFromInt(30000),
	})
	require.NoError(t, err)

	// Deductible medical 11250, itemized total 71250 beats the 29200
	// standard deduction.
	assert.True(t, result.Deductions.Equal(decimal.NewFromInt(71250)))
	assert.True(t, result.Itemized)
	assert.True(t, result.TaxableIncome.Equal(decimal.NewFromInt(178750)))
	assert.True(t, result.TaxOwed.Equal(decimal.NewFromInt(29431)),
		"Expected 29431, got %s", result.TaxOwed)
}

func TestProcessDeductionsExceedIncome(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.Process(domain.FilingRecord{
		Status:      domain.StatusSingle,
		GrossIncome: decimal.NewFromInt(9000),
	})
	require.NoError(t, err)

	assert.True(t, result.TaxableIncome.IsZero())
	assert.True(t, result.TaxOwed.IsZero())
}

func TestProcessValidation(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name     string
		record   domain.FilingRecord
		expected error
	}{
		{
			name: "Unrecognized filing status",
			record: domain.FilingRecord{
				Status:      domain.FilingStatus("divorced"),
				GrossIncome: decimal.NewFromInt(50000),
			},
			expected: domain.ErrInvalidFilingData,
		},
		{
			name:     "Missing status",
			record:   domain.FilingRecord{GrossIncome: decimal.NewFromInt(50000)},
			expected: domain.ErrInvalidFilingData,
		},
		{
			name: "Negative medical expenses",
			record: domain.FilingRecord{
				Status:          domain.StatusSingle,
				GrossIncome:     decimal.NewFromInt(50000),
				MedicalExpenses: decimal.NewFromInt(-100),
			},
			expected: domain.ErrNegativeField,
		},
		{
			name: "Negative gross income",
			record: domain.FilingRecord{
				Status:      domain.StatusJoint,
				GrossIncome: decimal.NewFromInt(-1),
			},
			expected: domain.ErrNegativeField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Process(tt.record)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestProcessIdempotence(t *testing.T) {
	engine := newTestEngine(t)
	record := domain.FilingRecord{
		Status:              domain.StatusMarriedSeparate,
		GrossIncome:         decimal.NewFromInt(130000),
		MortgageInterest:    decimal.NewFromInt(24000),
		CharitableDonations: decimal.NewFromInt(1000),
		MedicalExpenses:     decimal.NewFromInt(20000),
	}

	first, err := engine.Process(record)
	require.NoError(t, err)
	second, err := engine.Process(record)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProcessBatchPreservesOrder(t *testing.T) {
	engine := newTestEngine(t)

	records := []domain.FilingRecord{
		{Status: domain.StatusSingle, GrossIncome: decimal.NewFromInt(30000)},
		{Status: domain.StatusJoint, GrossIncome: decimal.NewFromInt(90000)},
		{Status: domain.StatusMarriedSeparate, GrossIncome: decimal.NewFromInt(60000)},
	}

	results, err := engine.ProcessBatch(records)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, record := range records {
		assert.Equal(t, record.Status, results[i].Status)
		assert.True(t, results[i].GrossIncome.Equal(record.GrossIncome))
	}
}

func TestProcessBatchAbortsOnFirstInvalidRecord(t *testing.T) {
	engine := newTestEngine(t)

	records := []domain.FilingRecord{
		{Status: domain.StatusSingle, GrossIncome: decimal.NewFromInt(30000)},
		{Status: domain.FilingStatus("divorced"), GrossIncome: decimal.NewFromInt(90000)},
		{Status: domain.StatusSingle, GrossIncome: decimal.NewFromInt(60000)},
	}

	results, err := engine.ProcessBatch(records)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, domain.ErrInvalidFilingData)
	assert.Contains(t, err.Error(), "filing 1")
}

func TestFeatures(t *testing.T) {
	engine := newTestEngine(t)

	features := engine.Features(&domain.FilingRecord{
		Status:              domain.StatusJoint,
		GrossIncome:         decimal.NewFromInt(250000),
		MortgageInterest:    decimal.NewFromInt(50000),
		CharitableDonations: decimal.NewFromInt(10000),
		MedicalExpenses:     decimal.NewFromInt(30000),
	})

	require.Len(t, features, classifier.NumFeatures)
	assert.Equal(t, 250000.0, features[0])
	assert.Equal(t, 50000.0, features[1])
	assert.Equal(t, 10000.0, features[2])
	assert.Equal(t, 11250.0, features[3])
	assert.Equal(t, 2.0, features[4])
}
