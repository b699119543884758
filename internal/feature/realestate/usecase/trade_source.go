// Package usecase implements trade search over the MOLIT apartment trade API.
package usecase

import (
	"context"

	"moajim/internal/feature/realestate/domain/entity"
)

// TradeSource lists the apartment trades reported for one district and month.
// Implemented by the MOLIT client and by the caching decorator in platform/cache.
type TradeSource interface {
	FetchTrades(ctx context.Context, lawdCd, dealYmd string) ([]entity.Trade, error)
}

// TradeRecorder persists what a search saw so region dropdowns fill up over time.
type TradeRecorder interface {
	RecordTrades(ctx context.Context, lawdCd string, trades []entity.Trade) error
}

// Limiter throttles upstream calls.
type Limiter interface {
	Wait(ctx context.Context) error
}
