package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"moajim/internal/feature/realestate/domain/entity"
)

func trade(name, dong, floor, y, m, d, amount string) entity.Trade {
	return entity.Trade{
		AptName: name, AptDong: dong, Floor: floor,
		DealYear: y, DealMonth: m, DealDay: d, DealAmount: amount,
	}
}

func TestFindRecentTrade(t *testing.T) {
	t.Parallel()

	trades := []entity.Trade{
		trade("래미안대치팰리스", "101", "12", "2024", "3", "5", "250,000"),
		trade("래미안대치팰리스", "102", "7", "2024", "5", "20", "245,000"),
		trade("은마", "", "3", "2024", "6", "1", "210,000"),
		trade("래미안대치팰리스", "101", "7", "2024", "4", "11", "248,000"),
	}

	tests := []struct {
		name       string
		aptName    string
		dong       string
		floor      string
		wantOK     bool
		wantAmount string
	}{
		{name: "latest by name", aptName: "래미안", wantOK: true, wantAmount: "245,000"},
		{name: "query contains apartment name", aptName: "대치 은마아파트 은마", wantOK: true, wantAmount: "210,000"},
		{name: "dong narrows", aptName: "래미안대치팰리스", dong: "101", wantOK: true, wantAmount: "248,000"},
		{name: "dong and floor narrow", aptName: "래미안대치팰리스", dong: "101", floor: "12", wantOK: true, wantAmount: "250,000"},
		{name: "dong with no match is ignored", aptName: "래미안대치팰리스", dong: "999", wantOK: true, wantAmount: "245,000"},
		{name: "floor with no match is ignored", aptName: "래미안대치팰리스", dong: "101", floor: "30", wantOK: true, wantAmount: "248,000"},
		{name: "no name match", aptName: "타워팰리스", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := FindRecentTrade(trades, tt.aptName, tt.dong, tt.floor)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantAmount, got.DealAmount)
			}
		})
	}
}

func TestFindRecentTrade_SingleCandidateSkipsFilters(t *testing.T) {
	t.Parallel()

	trades := []entity.Trade{trade("은마", "", "3", "2024", "6", "1", "210,000")}
	got, ok := FindRecentTrade(trades, "은마", "105", "9")
	assert.True(t, ok)
	assert.Equal(t, "210,000", got.DealAmount)
}

func TestFindRecentTrade_TieKeepsFirst(t *testing.T) {
	t.Parallel()

	trades := []entity.Trade{
		trade("은마", "", "3", "2024", "6", "1", "first"),
		trade("은마", "", "4", "2024", "6", "1", "second"),
	}
	got, ok := FindRecentTrade(trades, "은마", "", "")
	assert.True(t, ok)
	assert.Equal(t, "first", got.DealAmount)
}

func TestFindRecentTrade_ReturnsMaxDateKey(t *testing.T) {
	t.Parallel()

	trades := []entity.Trade{
		trade("A", "", "", "2023", "12", "31", "1"),
		trade("A", "", "", "2024", "1", "2", "2"),
		trade("A", "", "", "2024", "1", "10", "3"),
		trade("A", "", "", "2022", "11", "30", "4"),
	}
	got, ok := FindRecentTrade(trades, "A", "", "")
	assert.True(t, ok)
	for _, tr := range trades {
		assert.LessOrEqual(t, tr.DateKey(), got.DateKey())
	}
	assert.Equal(t, "3", got.DealAmount)
}

func TestRecentMonths(t *testing.T) {
	t.Parallel()

	// 2025-03-31 16:00 UTC is already April 1st in Seoul.
	now := time.Date(2025, 3, 31, 16, 0, 0, 0, time.UTC)
	got := RecentMonths(now, 5)
	assert.Equal(t, []string{"202504", "202503", "202502", "202501", "202412"}, got)
}

func TestRecentMonths_Count(t *testing.T) {
	t.Parallel()

	got := RecentMonths(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 60)
	assert.Len(t, got, 60)
	assert.Equal(t, "202501", got[0])
	assert.Equal(t, "202002", got[59])
}
