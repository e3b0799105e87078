package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Validation and calculation errors. Callers match with errors.Is; the
// wrapped message carries the record index and field name.
var (
	ErrInvalidIncome     = errors.New("taxable income cannot be negative")
	ErrInvalidFilingData = errors.New("invalid filing data")
	ErrNegativeField     = errors.New("monetary field cannot be negative")
	ErrInvalidFeatures   = errors.New("invalid feature vector")
)

// FilingStatus identifies which bracket schedule and standard deduction apply.
type FilingStatus string

const (
	StatusSingle          FilingStatus = "single"
	StatusMarriedSeparate FilingStatus = "married_separate"
	StatusJoint           FilingStatus = "joint"
)

// ParseFilingStatus converts the external string form into a FilingStatus.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch FilingStatus(s) {
	case StatusSingle, StatusMarriedSeparate, StatusJoint:
		return FilingStatus(s), nil
	}
	return "", fmt.Errorf("%w: unrecognized filing status %q", ErrInvalidFilingData, s)
}

// Code returns the numeric feature encoding of the status
// (0=single, 1=married_separate, 2=joint).
func (fs FilingStatus) Code() int {
	switch fs {
	case StatusMarriedSeparate:
		return 1
	case StatusJoint:
		return 2
	default:
		return 0
	}
}

// Valid reports whether the status is one of the recognized values.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case StatusSingle, StatusMarriedSeparate, StatusJoint:
		return true
	}
	return false
}

// FilingRecord is a single filer's input. For joint filings the caller has
// already summed both spouses into the combined fields.
type FilingRecord struct {
	Status              FilingStatus    `yaml:"status" json:"status"`
	GrossIncome         decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	MortgageInterest    decimal.Decimal `yaml:"mortgage_interest" json:"mortgage_interest"`
	CharitableDonations decimal.Decimal `yaml:"charitable_donations" json:"charitable_donations"`
	MedicalExpenses     decimal.Decimal `yaml:"medical_expenses" json:"medical_expenses"`
}

// Validate checks the record before any computation: a recognized status and
// non-negative monetary fields.
func (fr *FilingRecord) Validate() error {
	if !fr.Status.Valid() {
		return fmt.Errorf("%w: unrecognized filing status %q", ErrInvalidFilingData, string(fr.Status))
	}
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"gross_income", fr.GrossIncome},
		{"mortgage_interest", fr.MortgageInterest},
		{"charitable_donations", fr.CharitableDonations},
		{"medical_expenses", fr.MedicalExpenses},
	}
	for _, f := range fields {
		if f.value.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: %s is %s", ErrNegativeField, f.name, f.value.StringFixed(2))
		}
	}
	return nil
}

// ResultRecord is the computed outcome for one filing. Immutable once
// produced.
type ResultRecord struct {
	Status        FilingStatus    `json:"status"`
	GrossIncome   decimal.Decimal `json:"gross_income"`
	Deductions    decimal.Decimal `json:"deductions"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	TaxOwed       decimal.Decimal `json:"tax_owed"`
	Itemized      bool            `json:"itemized"`
}
