package usecase

import (
	"fmt"
	"time"

	"moajim/internal/feature/realestate/domain/entity"
)

// seoul is the calendar the MOLIT API files deals under.
var seoul = loadSeoul()

func loadSeoul() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// FindRecentTrade returns the latest trade for aptName, optionally narrowed by
// building (dong) and floor. Each narrowing step applies only when more than one
// candidate remains and only if it keeps at least one. Equal dates resolve to
// the candidate that appears first in trades.
func FindRecentTrade(trades []entity.Trade, aptName, dong, floor string) (entity.Trade, bool) {
	var candidates []entity.Trade
	for _, t := range trades {
		if t.MatchesName(aptName) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return entity.Trade{}, false
	}

	if dong != "" && len(candidates) > 1 {
		candidates = narrow(candidates, func(t entity.Trade) bool { return t.AptDong == dong })
	}
	if floor != "" && len(candidates) > 1 {
		candidates = narrow(candidates, func(t entity.Trade) bool { return t.Floor == floor })
	}

	best := candidates[0]
	bestKey := best.DateKey()
	for _, t := range candidates[1:] {
		if k := t.DateKey(); k > bestKey {
			best, bestKey = t, k
		}
	}
	return best, true
}

func narrow(in []entity.Trade, keep func(entity.Trade) bool) []entity.Trade {
	var out []entity.Trade
	for _, t := range in {
		if keep(t) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return in
	}
	return out
}

// RecentMonths returns n YYYYMM strings ending at now's month, newest first.
func RecentMonths(now time.Time, n int) []string {
	now = now.In(seoul)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, seoul)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		m := first.AddDate(0, -i, 0)
		out = append(out, fmt.Sprintf("%04d%02d", m.Year(), int(m.Month())))
	}
	return out
}
