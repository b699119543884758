// Package usecase implements the Korean gift and inheritance tax calculators.
package usecase

import (
	"github.com/shopspring/decimal"

	"moajim/internal/feature/tax/domain/entity"
)

const (
	man   = 10_000
	cheon = 1_000 * man
	eok   = 100_000_000
)

// brackets is the ladder shared by gift and inheritance tax.
var brackets = []entity.Bracket{
	{UpTo: 1 * eok, Rate: decimal.RequireFromString("0.10"), ProgressiveDeduction: 0},
	{UpTo: 5 * eok, Rate: decimal.RequireFromString("0.20"), ProgressiveDeduction: 1 * cheon},
	{UpTo: 10 * eok, Rate: decimal.RequireFromString("0.30"), ProgressiveDeduction: 6 * cheon},
	{UpTo: 30 * eok, Rate: decimal.RequireFromString("0.40"), ProgressiveDeduction: 16 * cheon},
	{UpTo: 0, Rate: decimal.RequireFromString("0.50"), ProgressiveDeduction: 46 * cheon},
}

var (
	filingCreditRate = decimal.RequireFromString("0.03")
	skipRate         = decimal.RequireFromString("0.30")
	skipRateMinor    = decimal.RequireFromString("0.40")
)

// Brackets returns a copy of the progressive ladder.
func Brackets() []entity.Bracket {
	out := make([]entity.Bracket, len(brackets))
	copy(out, brackets)
	return out
}

// ComputeBracketTax applies the ladder to base: base × rate − progressive
// deduction of the first bracket whose cap is not exceeded, floored to whole
// won and never negative.
func ComputeBracketTax(base int64) (int64, entity.Bracket) {
	b := brackets[len(brackets)-1]
	for _, br := range brackets {
		if br.UpTo == 0 || base <= br.UpTo {
			b = br
			break
		}
	}
	if base <= 0 {
		return 0, b
	}
	tax := decimal.NewFromInt(base).Mul(b.Rate).Sub(decimal.NewFromInt(b.ProgressiveDeduction)).Floor()
	if tax.IsNegative() {
		return 0, b
	}
	return tax.IntPart(), b
}

// percentOf floors amount × rate to whole won.
func percentOf(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Floor().IntPart()
}

func anyNegative(vs ...int64) bool {
	for _, v := range vs {
		if v < 0 {
			return true
		}
	}
	return false
}
