package cache

import (
	"strconv"
	"time"
)

// refreshHour is when MOLIT publishes the previous day's filings (KST).
const refreshHour = 6

var kst = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}()

// TimeUntilNextRefresh returns the duration from now until the next 06:00 KST.
func TimeUntilNextRefresh(now time.Time) time.Duration {
	now = now.In(kst)
	next := time.Date(now.Year(), now.Month(), now.Day(), refreshHour, 0, 0, 0, kst)
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// IsOpenMonth reports whether trades for dealYmd (YYYYMM) can still be filed
// as of now. Deals must be reported within 30 days, so the current and the
// previous month keep growing.
func IsOpenMonth(dealYmd string, now time.Time) bool {
	n, err := strconv.Atoi(dealYmd)
	if err != nil || len(dealYmd) != 6 {
		return false
	}
	now = now.In(kst)
	cur := now.Year()*12 + int(now.Month()) - 1
	ym := (n/100)*12 + n%100 - 1
	return cur-ym <= 1
}
