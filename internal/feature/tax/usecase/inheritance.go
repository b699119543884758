package usecase

import (
	"moajim/internal/feature/tax/domain"
	"moajim/internal/feature/tax/domain/entity"
)

const (
	basicDeduction     = 2 * eok
	lumpSumDeduction   = 5 * eok
	childDeduction     = 5 * cheon
	minorPerYear       = 1 * cheon
	elderlyDeduction   = 5 * cheon
	adultAge           = 19
	funeralMin         = 500 * man
	funeralMax         = 1500 * man
	spouseDeductionMin = 5 * eok
	spouseDeductionMax = 30 * eok
)

// InheritanceTax computes inheritance tax on the net estate after debts,
// funeral expenses and the larger of itemized or lump-sum deductions.
func InheritanceTax(in entity.InheritanceInput) (*entity.InheritanceResult, error) {
	if anyNegative(in.Estate, in.Debts, in.FuneralExpenses, in.SpouseShare, int64(in.Children), int64(in.Elderly)) {
		return nil, domain.ErrNegativeAmount
	}
	for _, age := range in.MinorAges {
		if age < 0 {
			return nil, domain.ErrNegativeAmount
		}
	}

	// The minimum is deductible even when no expense is declared.
	funeral := min(max(in.FuneralExpenses, funeralMin), funeralMax)
	net := max(0, in.Estate-in.Debts-funeral)

	personal := int64(in.Children)*childDeduction + int64(in.Elderly)*elderlyDeduction
	for _, age := range in.MinorAges {
		if age < adultAge {
			personal += int64(adultAge-age) * minorPerYear
		}
	}
	applied := max(basicDeduction+personal, lumpSumDeduction)

	var spouse int64
	if in.HasSpouse {
		spouse = min(max(in.SpouseShare, spouseDeductionMin), spouseDeductionMax)
	}

	base := max(0, net-applied-spouse)
	tax, br := ComputeBracketTax(base)

	var credit int64
	if in.FiledOnTime {
		credit = percentOf(tax, filingCreditRate)
	}

	return &entity.InheritanceResult{
		Estate:               in.Estate,
		Debts:                in.Debts,
		FuneralExpenses:      funeral,
		BasicDeduction:       basicDeduction,
		PersonalDeductions:   personal,
		LumpSumDeduction:     lumpSumDeduction,
		AppliedDeduction:     applied,
		SpouseDeduction:      spouse,
		TaxableBase:          base,
		Rate:                 br.Rate,
		ProgressiveDeduction: br.ProgressiveDeduction,
		CalculatedTax:        tax,
		FilingCredit:         credit,
		FinalTax:             tax - credit,
	}, nil
}
