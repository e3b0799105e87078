package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"taxfile/internal/classifier"
	"taxfile/internal/domain"
)

// Logger is an optional debug sink for the engine. The CLI installs a
// log-backed implementation under --debug; by default nothing is logged.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Engine orchestrates the per-filing pipeline: validation, feature
// derivation, classification, deduction resolution, and tax calculation.
// All of its collaborators are immutable after construction.
type Engine struct {
	policy    *domain.TaxPolicy
	taxCalc   *Calculator
	deduction *DeductionResolver
	predictor classifier.Predictor
	logger    Logger
}

// NewEngine creates a filing engine over the given policy and predictor.
func NewEngine(policy *domain.TaxPolicy, predictor classifier.Predictor) *Engine {
	return &Engine{
		policy:    policy,
		taxCalc:   NewCalculator(policy),
		deduction: NewDeductionResolver(policy),
		predictor: predictor,
	}
}

// SetLogger installs a debug logger.
func (e *Engine) SetLogger(l Logger) { e.logger = l }

func (e *Engine) debugf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Debugf(format, args...)
	}
}

// Features derives the classifier input for a record: gross income, mortgage
// interest, charitable donations, deductible medical, filing-status code.
func (e *Engine) Features(record *domain.FilingRecord) []float64 {
	gross, _ := record.GrossIncome.Float64()
	mortgage, _ := record.MortgageInterest.Float64()
	charity, _ := record.CharitableDonations.Float64()
	medical, _ := e.deduction.DeductibleMedical(record.GrossIncome, record.MedicalExpenses).Float64()
	return []float64{gross, mortgage, charity, medical, float64(record.Status.Code())}
}

// Process computes the result for a single filing. The record is validated
// before any computation; identical input always yields an identical result.
func (e *Engine) Process(record domain.FilingRecord) (domain.ResultRecord, error) {
	if err := record.Validate(); err != nil {
		return domain.ResultRecord{}, err
	}

	attemptItemize, err := e.predictor.Predict(e.Features(&record))
	if err != nil {
		return domain.ResultRecord{}, fmt.Errorf("classification failed: %w", err)
	}
	e.debugf("classifier %s: attempt itemize=%v for %s filer with gross %s",
		e.predictor.Name(), attemptItemize, record.Status, record.GrossIncome.StringFixed(2))

	deductions, itemized := e.deduction.Resolve(record.Status,
		record.GrossIncome, record.MortgageInterest, record.CharitableDonations, record.MedicalExpenses,
		attemptItemize)

	taxableIncome := record.GrossIncome.Sub(deductions)
	if taxableIncome.LessThan(decimal.Zero) {
		taxableIncome = decimal.Zero
	}

	taxOwed, err := e.taxCalc.Tax(record.Status, taxableIncome)
	if err != nil {
		return domain.ResultRecord{}, err
	}
	e.debugf("deductions=%s taxable=%s tax=%s itemized=%v",
		deductions.StringFixed(2), taxableIncome.StringFixed(2), taxOwed.StringFixed(2), itemized)

	return domain.ResultRecord{
		Status:        record.Status,
		GrossIncome:   record.GrossIncome,
		Deductions:    deductions,
		TaxableIncome: taxableIncome,
		TaxOwed:       taxOwed,
		Itemized:      itemized,
	}, nil
}

// ProcessBatch processes records sequentially, preserving input order in the
// returned slice. The first invalid record aborts the whole batch; its index
// is included in the error.
func (e *Engine) ProcessBatch(records []domain.FilingRecord) ([]domain.ResultRecord, error) {
	results := make([]domain.ResultRecord, 0, len(records))
	for i, record := range records {
		result, err := e.Process(record)
		if err != nil {
			return nil, fmt.Errorf("filing %d: %w", i, err)
		}
		results = append(results, result)
	}
	return results, nil
}
