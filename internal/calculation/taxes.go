package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"taxfile/internal/domain"
)

// Calculator computes progressive income tax from a TaxPolicy. The policy is
// read-only after construction, so a single Calculator is safe to share.
type Calculator struct {
	policy *domain.TaxPolicy
}

// NewCalculator creates a tax calculator over the given policy.
func NewCalculator(policy *domain.TaxPolicy) *Calculator {
	return &Calculator{policy: policy}
}

// Tax computes the tax owed on taxableIncome for the given filing status.
//
// Brackets are walked in ascending order as half-open intervals: tier i taxes
// income in [threshold[i], threshold[i+1]), with the top tier unbounded.
// Income exactly at a threshold therefore starts the higher tier, and the
// threshold dollar is never taxed twice. The result is rounded to cents with
// banker's rounding (round half to even).
func (c *Calculator) Tax(status domain.FilingStatus, taxableIncome decimal.Decimal) (decimal.Decimal, error) {
	if taxableIncome.LessThan(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: got %s", domain.ErrInvalidIncome, taxableIncome.StringFixed(2))
	}

	brackets, ok := c.policy.Brackets[status]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no bracket schedule for status %q", domain.ErrInvalidFilingData, status)
	}

	total := decimal.Zero
	for i, bracket := range brackets {
		if taxableIncome.LessThanOrEqual(bracket.Threshold) {
			break
		}
		ceiling := taxableIncome
		if i+1 < len(brackets) {
			ceiling = decimal.Min(taxableIncome, brackets[i+1].Threshold)
		}
		total = total.Add(ceiling.Sub(bracket.Threshold).Mul(bracket.Rate))
	}

	return total.RoundBank(2), nil
}
