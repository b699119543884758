package usecase

import (
	"moajim/internal/feature/tax/domain"
	"moajim/internal/feature/tax/domain/entity"
)

// giftDeductions is the 10-year deduction per donor relationship.
var giftDeductions = map[entity.Relationship]int64{
	entity.Spouse:               6 * eok,
	entity.LinealAscendant:      5 * cheon,
	entity.LinealAscendantMinor: 2 * cheon,
	entity.LinealDescendant:     5 * cheon,
	entity.OtherRelative:        1 * cheon,
	entity.None:                 0,
}

// minorSkipThreshold is the gift size above which a minor's generation-skip
// surcharge rises to 40%.
const minorSkipThreshold = 20 * eok

// GiftDeduction returns the deduction for rel.
func GiftDeduction(rel entity.Relationship) (int64, error) {
	d, ok := giftDeductions[rel]
	if !ok {
		return 0, domain.ErrUnknownRelationship
	}
	return d, nil
}

// GiftDeductions returns the whole deduction table.
func GiftDeductions() map[entity.Relationship]int64 {
	out := make(map[entity.Relationship]int64, len(giftDeductions))
	for k, v := range giftDeductions {
		out[k] = v
	}
	return out
}

// GiftTax computes gift tax for one gift plus prior gifts in the same window.
func GiftTax(in entity.GiftInput) (*entity.GiftResult, error) {
	if anyNegative(in.Amount, in.PriorGifts, in.PriorDeductionUsed) {
		return nil, domain.ErrNegativeAmount
	}
	deduction, err := GiftDeduction(in.Relationship)
	if err != nil {
		return nil, err
	}

	remaining := max(0, deduction-in.PriorDeductionUsed)
	base := max(0, in.Amount+in.PriorGifts-remaining)
	tax, br := ComputeBracketTax(base)

	var surcharge int64
	if in.GenerationSkip {
		rate := skipRate
		if in.RecipientMinor && in.Amount > minorSkipThreshold {
			rate = skipRateMinor
		}
		surcharge = percentOf(tax, rate)
	}

	var credit int64
	if in.FiledOnTime {
		credit = percentOf(tax+surcharge, filingCreditRate)
	}

	return &entity.GiftResult{
		GiftAmount:              in.Amount,
		PriorGifts:              in.PriorGifts,
		Deduction:               remaining,
		TaxableBase:             base,
		Rate:                    br.Rate,
		ProgressiveDeduction:    br.ProgressiveDeduction,
		CalculatedTax:           tax,
		GenerationSkipSurcharge: surcharge,
		FilingCredit:            credit,
		FinalTax:                tax + surcharge - credit,
	}, nil
}
