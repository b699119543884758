package usecase

import "moajim/internal/feature/tax/domain/entity"

// Calculator exposes the tax functions behind one value for the HTTP layer.
type Calculator struct{}

func NewCalculator() *Calculator { return &Calculator{} }

func (*Calculator) Brackets() []entity.Bracket { return Brackets() }

func (*Calculator) GiftDeductions() map[entity.Relationship]int64 { return GiftDeductions() }

func (*Calculator) GiftTax(in entity.GiftInput) (*entity.GiftResult, error) { return GiftTax(in) }

func (*Calculator) InheritanceTax(in entity.InheritanceInput) (*entity.InheritanceResult, error) {
	return InheritanceTax(in)
}
