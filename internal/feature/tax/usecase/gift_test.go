package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moajim/internal/feature/tax/domain"
	"moajim/internal/feature/tax/domain/entity"
)

func TestGiftTax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        entity.GiftInput
		deduction int64
		base      int64
		calc      int64
		surcharge int64
		credit    int64
		final     int64
	}{
		{
			name:      "parent to adult child, filed on time",
			in:        entity.GiftInput{Amount: 100_000_000, Relationship: entity.LinealAscendant, FiledOnTime: true},
			deduction: 50_000_000, base: 50_000_000, calc: 5_000_000, credit: 150_000, final: 4_850_000,
		},
		{
			name:      "within deduction",
			in:        entity.GiftInput{Amount: 500_000_000, Relationship: entity.Spouse, FiledOnTime: true},
			deduction: 600_000_000, base: 0, calc: 0, final: 0,
		},
		{
			name:      "generation skip adds 30%",
			in:        entity.GiftInput{Amount: 100_000_000, Relationship: entity.LinealAscendant, GenerationSkip: true, FiledOnTime: true},
			deduction: 50_000_000, base: 50_000_000, calc: 5_000_000, surcharge: 1_500_000, credit: 195_000, final: 6_305_000,
		},
		{
			name: "generation skip to minor above 20억 adds 40%",
			in: entity.GiftInput{Amount: 3_000_000_000, Relationship: entity.LinealAscendantMinor,
				GenerationSkip: true, RecipientMinor: true},
			deduction: 20_000_000, base: 2_980_000_000, calc: 1_032_000_000, surcharge: 412_800_000, final: 1_444_800_000,
		},
		{
			name:      "prior gifts and used deduction",
			in:        entity.GiftInput{Amount: 200_000_000, PriorGifts: 500_000_000, PriorDeductionUsed: 500_000_000, Relationship: entity.Spouse},
			deduction: 100_000_000, base: 600_000_000, calc: 120_000_000, final: 120_000_000,
		},
		{
			name:      "deduction fully used earlier",
			in:        entity.GiftInput{Amount: 10_000_000, PriorDeductionUsed: 80_000_000, Relationship: entity.LinealAscendant},
			deduction: 0, base: 10_000_000, calc: 1_000_000, final: 1_000_000,
		},
		{
			name:      "no relationship",
			in:        entity.GiftInput{Amount: 10_000_000, Relationship: entity.None},
			deduction: 0, base: 10_000_000, calc: 1_000_000, final: 1_000_000,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := GiftTax(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.deduction, got.Deduction, "deduction")
			assert.Equal(t, tt.base, got.TaxableBase, "base")
			assert.Equal(t, tt.calc, got.CalculatedTax, "calculated")
			assert.Equal(t, tt.surcharge, got.GenerationSkipSurcharge, "surcharge")
			assert.Equal(t, tt.credit, got.FilingCredit, "credit")
			assert.Equal(t, tt.final, got.FinalTax, "final")
			assert.Equal(t, tt.in.Amount, got.GiftAmount)
		})
	}
}

func TestGiftTax_Errors(t *testing.T) {
	t.Parallel()

	_, err := GiftTax(entity.GiftInput{Amount: 1, Relationship: "cousin"})
	assert.ErrorIs(t, err, domain.ErrUnknownRelationship)

	_, err = GiftTax(entity.GiftInput{Amount: -1, Relationship: entity.Spouse})
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)

	_, err = GiftTax(entity.GiftInput{Amount: 1, PriorGifts: -1, Relationship: entity.Spouse})
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestGiftDeductions(t *testing.T) {
	t.Parallel()

	d := GiftDeductions()
	assert.Len(t, d, 6)
	assert.Equal(t, int64(600_000_000), d[entity.Spouse])
	assert.Equal(t, int64(20_000_000), d[entity.LinealAscendantMinor])

	d[entity.Spouse] = 0
	v, err := GiftDeduction(entity.Spouse)
	require.NoError(t, err)
	assert.Equal(t, int64(600_000_000), v)
}
