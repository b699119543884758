// Package usecase looks up crypto and stock prices. Upstream failures never
// fail a request: missing prices come back as 0.
package usecase

import (
	"context"
	"log/slog"
	"strings"

	"moajim/internal/feature/prices/domain"
	"moajim/internal/feature/prices/domain/entity"
)

const (
	// USDKRW is the fixed conversion rate offered to clients.
	USDKRW = 1300.0
	// MaxSymbols caps one request.
	MaxSymbols = 30
)

// CryptoQuoter returns KRW prices keyed by coin id.
type CryptoQuoter interface {
	SimplePrices(ctx context.Context, ids []string) (map[string]float64, error)
}

// StockQuoter returns the current USD price of one ticker.
type StockQuoter interface {
	Quote(ctx context.Context, symbol string) (float64, error)
}

// Limiter throttles upstream calls.
type Limiter interface {
	Wait(ctx context.Context) error
}

type PricesUsecase struct {
	crypto  CryptoQuoter
	stocks  StockQuoter
	limiter Limiter
}

// NewPricesUsecase wires a PricesUsecase. limiter throttles stock quotes and may be nil.
func NewPricesUsecase(crypto CryptoQuoter, stocks StockQuoter, limiter Limiter) *PricesUsecase {
	return &PricesUsecase{crypto: crypto, stocks: stocks, limiter: limiter}
}

// CryptoPrices returns a KRW price for every requested id, 0 for unknown ids.
// An empty list quotes the whole catalog. An upstream failure yields an empty map.
func (uc *PricesUsecase) CryptoPrices(ctx context.Context, ids []string) (map[string]float64, error) {
	ids = normalize(ids, false)
	if len(ids) == 0 {
		for _, c := range entity.Coins {
			ids = append(ids, c.ID)
		}
	}
	if len(ids) > MaxSymbols {
		return nil, domain.ErrTooManySymbols
	}

	quotes, err := uc.crypto.SimplePrices(ctx, ids)
	if err != nil {
		slog.Warn("crypto price lookup failed", "ids", ids, "error", err)
		return map[string]float64{}, nil
	}
	out := make(map[string]float64, len(ids))
	for _, id := range ids {
		out[id] = quotes[id]
	}
	return out, nil
}

// StockPrices quotes tickers one at a time through the limiter. A failed
// ticker is 0. An empty list quotes the whole catalog.
func (uc *PricesUsecase) StockPrices(ctx context.Context, tickers []string) (map[string]float64, error) {
	tickers = normalize(tickers, true)
	if len(tickers) == 0 {
		for _, s := range entity.Stocks {
			tickers = append(tickers, s.Ticker)
		}
	}
	if len(tickers) > MaxSymbols {
		return nil, domain.ErrTooManySymbols
	}

	out := make(map[string]float64, len(tickers))
	for _, t := range tickers {
		if uc.limiter != nil {
			if err := uc.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		p, err := uc.stocks.Quote(ctx, t)
		if err != nil {
			slog.Warn("stock quote failed", "ticker", t, "error", err)
			p = 0
		}
		out[t] = p
	}
	return out, nil
}

// ExchangeRate returns KRW per USD.
func (uc *PricesUsecase) ExchangeRate() float64 {
	return USDKRW
}

// Catalog lists the supported coins and stocks.
func (uc *PricesUsecase) Catalog() ([]entity.Coin, []entity.Stock) {
	coins := make([]entity.Coin, len(entity.Coins))
	copy(coins, entity.Coins)
	stocks := make([]entity.Stock, len(entity.Stocks))
	copy(stocks, entity.Stocks)
	return coins, stocks
}

// normalize trims, drops empties and duplicates, and optionally upper-cases.
func normalize(in []string, upper bool) []string {
	var out []string
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if upper {
			s = strings.ToUpper(s)
		} else {
			s = strings.ToLower(s)
		}
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
