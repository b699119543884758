package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moajim/internal/feature/tax/domain"
	"moajim/internal/feature/tax/domain/entity"
)

func TestInheritanceTax_Full(t *testing.T) {
	t.Parallel()

	got, err := InheritanceTax(entity.InheritanceInput{
		Estate:          3_000_000_000,
		Debts:           200_000_000,
		FuneralExpenses: 10_000_000,
		Children:        2,
		MinorAges:       []int{10},
		HasSpouse:       true,
		SpouseShare:     1_000_000_000,
		FiledOnTime:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10_000_000), got.FuneralExpenses)
	assert.Equal(t, int64(190_000_000), got.PersonalDeductions)
	assert.Equal(t, int64(500_000_000), got.AppliedDeduction)
	assert.Equal(t, int64(1_000_000_000), got.SpouseDeduction)
	assert.Equal(t, int64(1_290_000_000), got.TaxableBase)
	assert.Equal(t, int64(356_000_000), got.CalculatedTax)
	assert.Equal(t, int64(10_680_000), got.FilingCredit)
	assert.Equal(t, int64(345_320_000), got.FinalTax)
}

func TestInheritanceTax_Deductions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      entity.InheritanceInput
		funeral int64
		applied int64
		spouse  int64
		base    int64
	}{
		{
			name:    "small estate owes nothing",
			in:      entity.InheritanceInput{Estate: 400_000_000},
			funeral: 5_000_000, applied: 500_000_000, base: 0,
		},
		{
			name:    "undeclared funeral still deducts minimum",
			in:      entity.InheritanceInput{Estate: 1_000_000_000},
			funeral: 5_000_000, applied: 500_000_000, base: 495_000_000,
		},
		{
			name:    "funeral raised to minimum",
			in:      entity.InheritanceInput{Estate: 1_000_000_000, FuneralExpenses: 1_000_000},
			funeral: 5_000_000, applied: 500_000_000, base: 495_000_000,
		},
		{
			name:    "funeral capped",
			in:      entity.InheritanceInput{Estate: 1_000_000_000, FuneralExpenses: 30_000_000},
			funeral: 15_000_000, applied: 500_000_000, base: 485_000_000,
		},
		{
			name:    "itemized beats lump sum",
			in:      entity.InheritanceInput{Estate: 2_000_000_000, Children: 5, Elderly: 2},
			funeral: 5_000_000, applied: 550_000_000, base: 1_445_000_000,
		},
		{
			name:    "adult in minor list adds nothing",
			in:      entity.InheritanceInput{Estate: 1_000_000_000, MinorAges: []int{19, 25}},
			funeral: 5_000_000, applied: 500_000_000, base: 495_000_000,
		},
		{
			name:    "spouse share raised to minimum",
			in:      entity.InheritanceInput{Estate: 2_000_000_000, HasSpouse: true, SpouseShare: 100_000_000},
			funeral: 5_000_000, applied: 500_000_000, spouse: 500_000_000, base: 995_000_000,
		},
		{
			name:    "spouse share capped",
			in:      entity.InheritanceInput{Estate: 50_000_000_000, HasSpouse: true, SpouseShare: 40_000_000_000},
			funeral: 5_000_000, applied: 500_000_000, spouse: 3_000_000_000, base: 46_495_000_000,
		},
		{
			name:    "debts exceed estate",
			in:      entity.InheritanceInput{Estate: 100_000_000, Debts: 300_000_000},
			funeral: 5_000_000, applied: 500_000_000, base: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := InheritanceTax(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.funeral, got.FuneralExpenses, "funeral")
			assert.Equal(t, tt.applied, got.AppliedDeduction, "applied")
			assert.Equal(t, tt.spouse, got.SpouseDeduction, "spouse")
			assert.Equal(t, tt.base, got.TaxableBase, "base")
			assert.Equal(t, int64(0), got.FilingCredit)
			assert.Equal(t, got.CalculatedTax, got.FinalTax)
		})
	}
}

func TestInheritanceTax_Errors(t *testing.T) {
	t.Parallel()

	bad := []entity.InheritanceInput{
		{Estate: -1},
		{Estate: 1, Debts: -1},
		{Estate: 1, Children: -1},
		{Estate: 1, MinorAges: []int{-3}},
		{Estate: 1, HasSpouse: true, SpouseShare: -1},
	}
	for _, in := range bad {
		_, err := InheritanceTax(in)
		assert.ErrorIs(t, err, domain.ErrNegativeAmount, "%+v", in)
	}
}
