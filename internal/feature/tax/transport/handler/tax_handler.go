// Package handler provides HTTP handlers for the tax calculators.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"moajim/internal/api"
	"moajim/internal/feature/tax/domain"
	"moajim/internal/feature/tax/domain/entity"
	"moajim/internal/feature/tax/transport/http/dto"
)

// TaxCalculator is the calculator consumed by the handler.
type TaxCalculator interface {
	Brackets() []entity.Bracket
	GiftDeductions() map[entity.Relationship]int64
	GiftTax(in entity.GiftInput) (*entity.GiftResult, error)
	InheritanceTax(in entity.InheritanceInput) (*entity.InheritanceResult, error)
}

type TaxHandler struct {
	calc TaxCalculator
}

func NewTaxHandler(calc TaxCalculator) *TaxHandler {
	return &TaxHandler{calc: calc}
}

// Brackets handles GET /api/tax/brackets.
func (h *TaxHandler) Brackets(c *gin.Context) {
	bs := h.calc.Brackets()
	out := make([]dto.Bracket, 0, len(bs))
	for _, b := range bs {
		var upTo *int64
		if b.UpTo > 0 {
			v := b.UpTo
			upTo = &v
		}
		out = append(out, dto.Bracket{UpTo: upTo, Rate: b.Rate.InexactFloat64(), ProgressiveDeduction: b.ProgressiveDeduction})
	}
	c.JSON(http.StatusOK, dto.BracketsResponse{Brackets: out})
}

// GiftDeductions handles GET /api/tax/gift/deductions.
func (h *TaxHandler) GiftDeductions(c *gin.Context) {
	ds := h.calc.GiftDeductions()
	out := make(map[string]int64, len(ds))
	for k, v := range ds {
		out[string(k)] = v
	}
	c.JSON(http.StatusOK, dto.DeductionsResponse{Deductions: out})
}

// Gift handles POST /api/tax/gift.
func (h *TaxHandler) Gift(c *gin.Context) {
	var req dto.GiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.MsgInvalidRequestBody})
		return
	}
	res, err := h.calc.GiftTax(entity.GiftInput{
		Amount:             req.GiftAmount,
		PriorGifts:         req.PriorGifts,
		PriorDeductionUsed: req.PriorDeductionUsed,
		Relationship:       entity.Relationship(req.Relationship),
		GenerationSkip:     req.GenerationSkip,
		RecipientMinor:     req.RecipientMinor,
		FiledOnTime:        req.FiledOnTime == nil || *req.FiledOnTime,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GiftResponse{
		GiftAmount:              res.GiftAmount,
		PriorGifts:              res.PriorGifts,
		Deduction:               res.Deduction,
		TaxableBase:             res.TaxableBase,
		Rate:                    res.Rate.InexactFloat64(),
		ProgressiveDeduction:    res.ProgressiveDeduction,
		CalculatedTax:           res.CalculatedTax,
		GenerationSkipSurcharge: res.GenerationSkipSurcharge,
		FilingCredit:            res.FilingCredit,
		FinalTax:                res.FinalTax,
	})
}

// Inheritance handles POST /api/tax/inheritance.
func (h *TaxHandler) Inheritance(c *gin.Context) {
	var req dto.InheritanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.MsgInvalidRequestBody})
		return
	}
	res, err := h.calc.InheritanceTax(entity.InheritanceInput{
		Estate:          req.Estate,
		Debts:           req.Debts,
		FuneralExpenses: req.FuneralExpenses,
		Children:        req.Children,
		MinorAges:       req.MinorAges,
		Elderly:         req.Elderly,
		HasSpouse:       req.HasSpouse,
		SpouseShare:     req.SpouseShare,
		FiledOnTime:     req.FiledOnTime == nil || *req.FiledOnTime,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.InheritanceResponse{
		Estate:               res.Estate,
		Debts:                res.Debts,
		FuneralExpenses:      res.FuneralExpenses,
		BasicDeduction:       res.BasicDeduction,
		PersonalDeductions:   res.PersonalDeductions,
		LumpSumDeduction:     res.LumpSumDeduction,
		AppliedDeduction:     res.AppliedDeduction,
		SpouseDeduction:      res.SpouseDeduction,
		TaxableBase:          res.TaxableBase,
		Rate:                 res.Rate.InexactFloat64(),
		ProgressiveDeduction: res.ProgressiveDeduction,
		CalculatedTax:        res.CalculatedTax,
		FilingCredit:         res.FilingCredit,
		FinalTax:             res.FinalTax,
	})
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrUnknownRelationship) || errors.Is(err, domain.ErrNegativeAmount) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
}
