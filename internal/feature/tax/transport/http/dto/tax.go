// Package dto defines request and response bodies for the tax endpoints.
// Amounts are whole won; rates are fractions (0.2 = 20%).
package dto

type Bracket struct {
	UpTo                 *int64  `json:"upTo"` // null for the top bracket
	Rate                 float64 `json:"rate"`
	ProgressiveDeduction int64   `json:"progressiveDeduction"`
}

type BracketsResponse struct {
	Brackets []Bracket `json:"brackets"`
}

type DeductionsResponse struct {
	Deductions map[string]int64 `json:"deductions"`
}

// GiftRequest is the body of POST /api/tax/gift. FiledOnTime defaults to true.
type GiftRequest struct {
	GiftAmount         int64  `json:"giftAmount"`
	PriorGifts         int64  `json:"priorGifts"`
	PriorDeductionUsed int64  `json:"priorDeductionUsed"`
	Relationship       string `json:"relationship" binding:"required"`
	GenerationSkip     bool   `json:"generationSkip"`
	RecipientMinor     bool   `json:"recipientMinor"`
	FiledOnTime        *bool  `json:"filedOnTime"`
}

type GiftResponse struct {
	GiftAmount              int64   `json:"giftAmount"`
	PriorGifts              int64   `json:"priorGifts"`
	Deduction               int64   `json:"deduction"`
	TaxableBase             int64   `json:"taxableBase"`
	Rate                    float64 `json:"rate"`
	ProgressiveDeduction    int64   `json:"progressiveDeduction"`
	CalculatedTax           int64   `json:"calculatedTax"`
	GenerationSkipSurcharge int64   `json:"generationSkipSurcharge"`
	FilingCredit            int64   `json:"filingCredit"`
	FinalTax                int64   `json:"finalTax"`
}

// InheritanceRequest is the body of POST /api/tax/inheritance. FiledOnTime defaults to true.
type InheritanceRequest struct {
	Estate          int64 `json:"estate"`
	Debts           int64 `json:"debts"`
	FuneralExpenses int64 `json:"funeralExpenses"`
	Children        int   `json:"children"`
	MinorAges       []int `json:"minorAges"`
	Elderly         int   `json:"elderly"`
	HasSpouse       bool  `json:"hasSpouse"`
	SpouseShare     int64 `json:"spouseShare"`
	FiledOnTime     *bool `json:"filedOnTime"`
}

type InheritanceResponse struct {
	Estate               int64   `json:"estate"`
	Debts                int64   `json:"debts"`
	FuneralExpenses      int64   `json:"funeralExpenses"`
	BasicDeduction       int64   `json:"basicDeduction"`
	PersonalDeductions   int64   `json:"personalDeductions"`
	LumpSumDeduction     int64   `json:"lumpSumDeduction"`
	AppliedDeduction     int64   `json:"appliedDeduction"`
	SpouseDeduction      int64   `json:"spouseDeduction"`
	TaxableBase          int64   `json:"taxableBase"`
	Rate                 float64 `json:"rate"`
	ProgressiveDeduction int64   `json:"progressiveDeduction"`
	CalculatedTax        int64   `json:"calculatedTax"`
	FilingCredit         int64   `json:"filingCredit"`
	FinalTax             int64   `json:"finalTax"`
}
