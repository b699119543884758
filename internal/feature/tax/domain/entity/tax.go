// Package entity defines inputs and results of the gift and inheritance tax calculators.
// All amounts are in won.
package entity

import "github.com/shopspring/decimal"

// Relationship is the donor's relation to the gift recipient.
type Relationship string

const (
	Spouse               Relationship = "spouse"
	LinealAscendant      Relationship = "lineal_ascendant"       // parent/grandparent to adult child
	LinealAscendantMinor Relationship = "lineal_ascendant_minor" // parent/grandparent to minor child
	LinealDescendant     Relationship = "lineal_descendant"      // child to parent
	OtherRelative        Relationship = "other_relative"
	None                 Relationship = "none"
)

// Bracket is one rung of the progressive ladder. UpTo is 0 for the top rung.
type Bracket struct {
	UpTo                 int64
	Rate                 decimal.Decimal
	ProgressiveDeduction int64
}

type GiftInput struct {
	Amount             int64
	PriorGifts         int64 // gifts from the same donor group in the last 10 years
	PriorDeductionUsed int64
	Relationship       Relationship
	GenerationSkip     bool // gift from a grandparent skipping the parent
	RecipientMinor     bool
	FiledOnTime        bool
}

type GiftResult struct {
	GiftAmount              int64
	PriorGifts              int64
	Deduction               int64
	TaxableBase             int64
	Rate                    decimal.Decimal
	ProgressiveDeduction    int64
	CalculatedTax           int64
	GenerationSkipSurcharge int64
	FilingCredit            int64
	FinalTax                int64
}

type InheritanceInput struct {
	Estate          int64
	Debts           int64
	FuneralExpenses int64
	Children        int
	MinorAges       []int // ages of minor heirs
	Elderly         int   // heirs aged 65 or older
	HasSpouse       bool
	SpouseShare     int64
	FiledOnTime     bool
}

type InheritanceResult struct {
	Estate               int64
	Debts                int64
	FuneralExpenses      int64
	BasicDeduction       int64
	PersonalDeductions   int64
	LumpSumDeduction     int64
	AppliedDeduction     int64
	SpouseDeduction      int64
	TaxableBase          int64
	Rate                 decimal.Decimal
	ProgressiveDeduction int64
	CalculatedTax        int64
	FilingCredit         int64
	FinalTax             int64
}
