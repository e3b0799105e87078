package calculation

import (
	"github.com/shopspring/decimal"

	"taxfile/internal/domain"
)

// DeductionResolver turns an advisory itemize decision into the final
// deduction amount, enforcing the standard-deduction floor.
type DeductionResolver struct {
	policy *domain.TaxPolicy
}

// NewDeductionResolver creates a resolver over the given policy.
func NewDeductionResolver(policy *domain.TaxPolicy) *DeductionResolver {
	return &DeductionResolver{policy: policy}
}

// DeductibleMedical returns the portion of medical expenses above the
// income-based floor: max(0, medical - gross * floor).
func (dr *DeductionResolver) DeductibleMedical(grossIncome, medical decimal.Decimal) decimal.Decimal {
	deductible := medical.Sub(grossIncome.Mul(dr.policy.MedicalFloor))
	if deductible.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return deductible
}

// Resolve computes the deduction for one filing. When attemptItemize is set
// it compares the itemized total (mortgage + charity + deductible medical)
// against the standard deduction and takes whichever is larger, so a
// classifier misprediction can never leave the filer worse off than the
// standard deduction. The returned flag reports whether the itemized total
// actually won.
func (dr *DeductionResolver) Resolve(status domain.FilingStatus, grossIncome, mortgage, charity, medical decimal.Decimal, attemptItemize bool) (decimal.Decimal, bool) {
	standard := dr.policy.StandardDeduction(status)
	if !attemptItemize {
		return standard, false
	}

	itemized := mortgage.Add(charity).Add(dr.DeductibleMedical(grossIncome, medical))
	if itemized.GreaterThan(standard) {
		return itemized, true
	}
	return standard, false
}
