package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bracket is one tier of a progressive schedule. Rate applies to income in
// [Threshold, next tier's Threshold); the top tier is unbounded.
type Bracket struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// StandardDeductions contains the fixed deduction amounts by filing status.
type StandardDeductions struct {
	Single          decimal.Decimal `yaml:"single" json:"single"`
	MarriedSeparate decimal.Decimal `yaml:"married_separate" json:"married_separate"`
	Joint           decimal.Decimal `yaml:"joint" json:"joint"`
}

// TaxPolicy is the year's regulatory data: bracket schedules and standard
// deductions per filing status, plus the medical-expense deductibility floor.
// Constructed once at startup and treated as read-only afterwards.
type TaxPolicy struct {
	Year               int                        `yaml:"year" json:"year"`
	Brackets           map[FilingStatus][]Bracket `yaml:"brackets" json:"brackets"`
	StandardDeductions StandardDeductions         `yaml:"standard_deductions" json:"standard_deductions"`
	MedicalFloor       decimal.Decimal            `yaml:"medical_floor" json:"medical_floor"`
}

// Policy2025 returns the built-in 2025 filing configuration. Joint thresholds
// and standard deduction are exactly double the single amounts;
// married-filing-separately shares the single schedule.
func Policy2025() *TaxPolicy {
	single := []Bracket{
		{decimal.Zero, decimal.NewFromFloat(0.10)},
		{decimal.NewFromInt(11600), decimal.NewFromFloat(0.12)},
		{decimal.NewFromInt(47150), decimal.NewFromFloat(0.22)},
		{decimal.NewFromInt(100525), decimal.NewFromFloat(0.24)},
		{decimal.NewFromInt(191950), decimal.NewFromFloat(0.32)},
		{decimal.NewFromInt(243725), decimal.NewFromFloat(0.35)},
	}
	joint := make([]Bracket, len(single))
	for i, b := range single {
		joint[i] = Bracket{Threshold: b.Threshold.Mul(decimal.NewFromInt(2)), Rate: b.Rate}
	}
	return &TaxPolicy{
		Year: 2025,
		Brackets: map[FilingStatus][]Bracket{
			StatusSingle:          single,
			StatusMarriedSeparate: single,
			StatusJoint:           joint,
		},
		StandardDeductions: StandardDeductions{
			Single:          decimal.NewFromInt(14600),
			MarriedSeparate: decimal.NewFromInt(14600),
			Joint:           decimal.NewFromInt(29200),
		},
		MedicalFloor: decimal.NewFromFloat(0.075),
	}
}

// StandardDeduction returns the fixed deduction for the given status.
func (tp *TaxPolicy) StandardDeduction(status FilingStatus) decimal.Decimal {
	switch status {
	case StatusMarriedSeparate:
		return tp.StandardDeductions.MarriedSeparate
	case StatusJoint:
		return tp.StandardDeductions.Joint
	default:
		return tp.StandardDeductions.Single
	}
}

// Validate enforces the schedule shape invariants: every status has a
// schedule, thresholds start at zero and strictly ascend, rates are within
// [0, 1), and the deduction amounts and medical floor are sane.
func (tp *TaxPolicy) Validate() error {
	for _, status := range []FilingStatus{StatusSingle, StatusMarriedSeparate, StatusJoint} {
		brackets, ok := tp.Brackets[status]
		if !ok || len(brackets) == 0 {
			return fmt.Errorf("no bracket schedule for filing status %q", status)
		}
		if !brackets[0].Threshold.IsZero() {
			return fmt.Errorf("%s schedule must start at a zero threshold, got %s", status, brackets[0].Threshold)
		}
		for i, b := range brackets {
			if b.Rate.LessThan(decimal.Zero) || b.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
				return fmt.Errorf("%s bracket %d rate %s out of range", status, i, b.Rate)
			}
			if i > 0 && b.Threshold.LessThanOrEqual(brackets[i-1].Threshold) {
				return fmt.Errorf("%s bracket thresholds must strictly ascend at index %d", status, i)
			}
		}
		if tp.StandardDeduction(status).LessThan(decimal.Zero) {
			return fmt.Errorf("standard deduction for %s cannot be negative", status)
		}
	}
	if tp.MedicalFloor.LessThan(decimal.Zero) || tp.MedicalFloor.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("medical floor %s must be in [0, 1)", tp.MedicalFloor)
	}
	return nil
}
