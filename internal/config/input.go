package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"taxfile/internal/domain"
)

// Batch is the parsed shape of an input file: an optional policy override, a
// classifier selector, and the filings to process.
type Batch struct {
	Classifier string                `yaml:"classifier" json:"classifier"`
	Policy     *domain.TaxPolicy     `yaml:"policy" json:"policy"`
	Filings    []domain.FilingRecord `yaml:"filings" json:"filings"`
}

// rawBatch mirrors Batch with pointer-typed filing fields so that an omitted
// field is distinguishable from an explicit zero.
type rawBatch struct {
	Classifier string            `yaml:"classifier"`
	Policy     *domain.TaxPolicy `yaml:"policy"`
	Filings    []rawFiling       `yaml:"filings"`
}

type rawFiling struct {
	Status              *string          `yaml:"status"`
	GrossIncome         *decimal.Decimal `yaml:"gross_income"`
	MortgageInterest    *decimal.Decimal `yaml:"mortgage_interest"`
	CharitableDonations *decimal.Decimal `yaml:"charitable_donations"`
	MedicalExpenses     *decimal.Decimal `yaml:"medical_expenses"`
}

// toRecord rejects filings with an absent required field before the value
// checks in FilingRecord.Validate ever see them.
func (rf *rawFiling) toRecord() (domain.FilingRecord, error) {
	if rf.Status == nil {
		return domain.FilingRecord{}, fmt.Errorf("%w: missing required field %q", domain.ErrInvalidFilingData, "status")
	}
	status, err := domain.ParseFilingStatus(*rf.Status)
	if err != nil {
		return domain.FilingRecord{}, err
	}

	fields := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"gross_income", rf.GrossIncome},
		{"mortgage_interest", rf.MortgageInterest},
		{"charitable_donations", rf.CharitableDonations},
		{"medical_expenses", rf.MedicalExpenses},
	}
	for _, f := range fields {
		if f.value == nil {
			return domain.FilingRecord{}, fmt.Errorf("%w: missing required field %q", domain.ErrInvalidFilingData, f.name)
		}
	}

	return domain.FilingRecord{
		Status:              status,
		GrossIncome:         *rf.GrossIncome,
		MortgageInterest:    *rf.MortgageInterest,
		CharitableDonations: *rf.CharitableDonations,
		MedicalExpenses:     *rf.MedicalExpenses,
	}, nil
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a batch of filings from a YAML file. When the file
// carries no inline policy, the built-in 2025 configuration is used.
func (ip *InputParser) LoadFromFile(filename string) (*Batch, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var raw rawBatch
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	batch := &Batch{
		Classifier: raw.Classifier,
		Policy:     raw.Policy,
		Filings:    make([]domain.FilingRecord, 0, len(raw.Filings)),
	}
	for i, rf := range raw.Filings {
		record, err := rf.toRecord()
		if err != nil {
			return nil, fmt.Errorf("input validation failed: filing %d: %w", i, err)
		}
		batch.Filings = append(batch.Filings, record)
	}

	if batch.Policy == nil {
		batch.Policy = domain.Policy2025()
	}

	if err := ip.ValidateBatch(batch); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return batch, nil
}

// LoadPolicy loads a standalone tax-policy file, for running a different
// year's tables against the same filings.
func (ip *InputParser) LoadPolicy(filename string) (*domain.TaxPolicy, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", filename, err)
	}

	var policy domain.TaxPolicy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to parse policy YAML: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("policy validation failed: %w", err)
	}
	return &policy, nil
}

// ValidateBatch validates the policy shape and every filing record. The
// first bad record fails the whole batch, with its index in the error.
func (ip *InputParser) ValidateBatch(batch *Batch) error {
	if err := batch.Policy.Validate(); err != nil {
		return fmt.Errorf("policy validation failed: %w", err)
	}
	if len(batch.Filings) == 0 {
		return fmt.Errorf("no filings provided")
	}
	for i, filing := range batch.Filings {
		if err := filing.Validate(); err != nil {
			return fmt.Errorf("filing %d: %w", i, err)
		}
	}
	return nil
}
