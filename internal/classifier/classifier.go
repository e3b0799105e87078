// Package classifier decides whether a filer should attempt to itemize
// deductions. The decision is advisory: the deduction resolver re-derives the
// exact floor comparison regardless, so a misprediction can never reduce the
// final deduction below the standard amount.
package classifier

import (
	"fmt"

	"taxfile/internal/domain"
)

// NumFeatures is the expected feature-vector length: gross income, mortgage
// interest, charitable donations, deductible medical, filing-status code.
const NumFeatures = 5

// Predictor is the swappable itemize/standard decision strategy.
type Predictor interface {
	// Predict reports whether itemizing looks advantageous for the given
	// feature vector.
	Predict(features []float64) (bool, error)
	// Name identifies the strategy for logs and configuration.
	Name() string
}

// New constructs the predictor selected by configuration name.
func New(name string, policy *domain.TaxPolicy) (Predictor, error) {
	switch name {
	case "", "tree":
		return NewTree(TrainingSamples()), nil
	case "rule":
		return NewRule(policy), nil
	}
	return nil, fmt.Errorf("unknown classifier %q (valid: tree, rule)", name)
}

func checkFeatures(features []float64) error {
	if len(features) != NumFeatures {
		return fmt.Errorf("%w: expected %d features, got %d", domain.ErrInvalidFeatures, NumFeatures, len(features))
	}
	return nil
}

// Rule is the deterministic strategy: itemize when the raw itemizable total
// exceeds the standard deduction for the encoded filing status.
type Rule struct {
	policy *domain.TaxPolicy
}

// NewRule creates the deterministic comparison strategy.
func NewRule(policy *domain.TaxPolicy) *Rule {
	return &Rule{policy: policy}
}

// Name implements Predictor.
func (r *Rule) Name() string { return "rule" }

// Predict implements Predictor.
func (r *Rule) Predict(features []float64) (bool, error) {
	if err := checkFeatures(features); err != nil {
		return false, err
	}
	status := statusFromCode(features[4])
	standard, _ := r.policy.StandardDeduction(status).Float64()
	itemizable := features[1] + features[2] + features[3]
	return itemizable > standard, nil
}

func statusFromCode(code float64) domain.FilingStatus {
	switch int(code) {
	case 1:
		return domain.StatusMarriedSeparate
	case 2:
		return domain.StatusJoint
	default:
		return domain.StatusSingle
	}
}
