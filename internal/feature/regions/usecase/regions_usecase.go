// Package usecase implements the cascading region lookup and its on-demand population.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	realestate "moajim/internal/feature/realestate/domain/entity"
	"moajim/internal/feature/regions/domain"
	"moajim/internal/feature/regions/domain/entity"
)

const (
	// ListingMonths is the trade window used to fill dongs and apartments.
	ListingMonths = 12
	// AreaMonths is the wider window used to fill areas; sizes trade less often.
	AreaMonths = 24
)

// RegionRepository stores the lookup tables.
type RegionRepository interface {
	SeedRegions(ctx context.Context, districts []entity.District) error
	Cities(ctx context.Context) ([]string, error)
	Districts(ctx context.Context, city string) ([]entity.District, error)
	Dongs(ctx context.Context, lawdCd string) ([]string, error)
	Apartments(ctx context.Context, lawdCd, dong string) ([]string, error)
	Areas(ctx context.Context, lawdCd, dong, aptName string) ([]string, error)
	SaveListings(ctx context.Context, lawdCd string, listings []entity.Listing) error
	CountDongs(ctx context.Context) (int64, error)
}

// TradeSource lists the trades for one district and month.
type TradeSource interface {
	FetchTrades(ctx context.Context, lawdCd, dealYmd string) ([]realestate.Trade, error)
}

// Limiter throttles upstream calls.
type Limiter interface {
	Wait(ctx context.Context) error
}

// MonthsFunc returns n YYYYMM strings ending at now, newest first.
type MonthsFunc func(now time.Time, n int) []string

// RegionsUsecase serves the dropdown chain city → district → dong → apartment → area.
type RegionsUsecase struct {
	repo    RegionRepository
	source  TradeSource
	limiter Limiter
	months  MonthsFunc
	now     func() time.Time
	group   singleflight.Group
}

// NewRegionsUsecase wires a RegionsUsecase. limiter may be nil.
func NewRegionsUsecase(repo RegionRepository, source TradeSource, limiter Limiter, months MonthsFunc) *RegionsUsecase {
	return &RegionsUsecase{repo: repo, source: source, limiter: limiter, months: months, now: time.Now}
}

// Seed loads the district table.
func (uc *RegionsUsecase) Seed(ctx context.Context, districts []entity.District) error {
	return uc.repo.SeedRegions(ctx, districts)
}

func (uc *RegionsUsecase) Cities(ctx context.Context) ([]string, error) {
	return nonNil(uc.repo.Cities(ctx))
}

func (uc *RegionsUsecase) Districts(ctx context.Context, city string) ([]entity.District, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, domain.ErrCityRequired
	}
	ds, err := uc.repo.Districts(ctx, city)
	if err != nil {
		return nil, err
	}
	if ds == nil {
		ds = []entity.District{}
	}
	return ds, nil
}

// Dongs lists the legal-dongs of a district, filling the table from recent
// trades when it has nothing for lawdCd.
func (uc *RegionsUsecase) Dongs(ctx context.Context, lawdCd string) ([]string, error) {
	if err := validateLawdCd(lawdCd); err != nil {
		return nil, err
	}
	return uc.readThrough(ctx, lawdCd, ListingMonths, func() ([]string, error) {
		return uc.repo.Dongs(ctx, lawdCd)
	})
}

func (uc *RegionsUsecase) Apartments(ctx context.Context, lawdCd, dong string) ([]string, error) {
	if err := validateLawdCd(lawdCd); err != nil {
		return nil, err
	}
	if strings.TrimSpace(dong) == "" {
		return nil, domain.ErrDongRequired
	}
	return uc.readThrough(ctx, lawdCd, ListingMonths, func() ([]string, error) {
		return uc.repo.Apartments(ctx, lawdCd, dong)
	})
}

func (uc *RegionsUsecase) Areas(ctx context.Context, lawdCd, dong, aptName string) ([]string, error) {
	if err := validateLawdCd(lawdCd); err != nil {
		return nil, err
	}
	if strings.TrimSpace(dong) == "" {
		return nil, domain.ErrDongRequired
	}
	if strings.TrimSpace(aptName) == "" {
		return nil, domain.ErrAptRequired
	}
	return uc.readThrough(ctx, lawdCd, AreaMonths, func() ([]string, error) {
		return uc.repo.Areas(ctx, lawdCd, dong, aptName)
	})
}

// RecordTrades stores the dongs, apartments and areas seen in trades.
func (uc *RegionsUsecase) RecordTrades(ctx context.Context, lawdCd string, trades []realestate.Trade) error {
	listings := toListings(trades)
	if len(listings) == 0 {
		return nil
	}
	return uc.repo.SaveListings(ctx, lawdCd, listings)
}

// Refresh repopulates a district from the trailing ListingMonths regardless of
// what is stored and returns its dong list.
func (uc *RegionsUsecase) Refresh(ctx context.Context, lawdCd string) ([]string, error) {
	if err := validateLawdCd(lawdCd); err != nil {
		return nil, err
	}
	if err := uc.populate(ctx, lawdCd, ListingMonths); err != nil {
		return nil, err
	}
	return nonNil(uc.repo.Dongs(ctx, lawdCd))
}

func (uc *RegionsUsecase) DongCount(ctx context.Context) (int64, error) {
	return uc.repo.CountDongs(ctx)
}

// readThrough reads, populates on an empty result, and reads again.
// A failed populate is logged and the (possibly empty) list is returned.
func (uc *RegionsUsecase) readThrough(ctx context.Context, lawdCd string, months int, read func() ([]string, error)) ([]string, error) {
	out, err := read()
	if err != nil {
		return nil, err
	}
	if len(out) > 0 {
		return out, nil
	}
	if err := uc.populate(ctx, lawdCd, months); err != nil {
		slog.Warn("region populate failed", "lawd_cd", lawdCd, "months", months, "error", err)
	}
	return nonNil(read())
}

// populate fetches the trailing months one at a time and records what it saw.
// Concurrent populates of the same district and window share one run.
func (uc *RegionsUsecase) populate(ctx context.Context, lawdCd string, months int) error {
	key := fmt.Sprintf("%s:%d", lawdCd, months)
	_, err, _ := uc.group.Do(key, func() (any, error) {
		var (
			trades []realestate.Trade
			failed int
		)
		yms := uc.months(uc.now(), months)
		for _, ym := range yms {
			if uc.limiter != nil {
				if err := uc.limiter.Wait(ctx); err != nil {
					return nil, err
				}
			}
			ts, err := uc.source.FetchTrades(ctx, lawdCd, ym)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				failed++
				slog.Warn("trade fetch failed", "lawd_cd", lawdCd, "deal_ymd", ym, "error", err)
				continue
			}
			trades = append(trades, ts...)
		}
		if failed == len(yms) && failed > 0 {
			return nil, fmt.Errorf("all %d months failed for %s", failed, lawdCd)
		}
		slog.Info("region populated", "lawd_cd", lawdCd, "months", months, "trades", len(trades))
		return nil, uc.RecordTrades(ctx, lawdCd, trades)
	})
	return err
}

func toListings(trades []realestate.Trade) []entity.Listing {
	out := make([]entity.Listing, 0, len(trades))
	for _, t := range trades {
		dong := strings.TrimSpace(t.UmdName)
		if dong == "" {
			continue
		}
		out = append(out, entity.Listing{
			Dong:    dong,
			AptName: strings.TrimSpace(t.AptName),
			Area:    strings.TrimSpace(t.ExclusiveArea),
		})
	}
	return out
}

func validateLawdCd(lawdCd string) error {
	if lawdCd == "" {
		return domain.ErrLawdCdRequired
	}
	if len(lawdCd) != 5 {
		return domain.ErrInvalidLawdCd
	}
	for _, r := range lawdCd {
		if r < '0' || r > '9' {
			return domain.ErrInvalidLawdCd
		}
	}
	return nil
}

func nonNil(s []string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	if s == nil {
		return []string{}, nil
	}
	return s, nil
}
