package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"moajim/internal/feature/realestate/domain"
	"moajim/internal/feature/realestate/domain/entity"
)

const (
	// DefaultSearchMonths is how far back a search without dealYmd looks.
	DefaultSearchMonths = 60
	// MaxSimilarTrades caps similarTrades when an apartment name is given.
	MaxSimilarTrades = 10

	recordTimeout = 30 * time.Second
)

// SearchQuery is a trade lookup for one district.
type SearchQuery struct {
	LawdCd  string
	AptName string
	Dong    string
	Floor   string
	DealYmd string // YYYYMM; empty searches the trailing DefaultSearchMonths
}

// SearchResult holds the best match (nil when nothing matched) and related trades.
type SearchResult struct {
	Trade         *entity.Trade
	SimilarTrades []entity.Trade
}

// SearchUsecase resolves a most-recent transaction from monthly trade listings.
type SearchUsecase struct {
	source   TradeSource
	limiter  Limiter
	recorder TradeRecorder // optional
	now      func() time.Time
	pending  sync.WaitGroup
}

// NewSearchUsecase wires a SearchUsecase. recorder may be nil.
func NewSearchUsecase(source TradeSource, limiter Limiter, recorder TradeRecorder) *SearchUsecase {
	return &SearchUsecase{source: source, limiter: limiter, recorder: recorder, now: time.Now}
}

// Search walks the requested months newest first, one upstream call at a time.
// A month that fails is logged and skipped.
func (uc *SearchUsecase) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	q.LawdCd = strings.TrimSpace(q.LawdCd)
	if q.LawdCd == "" {
		return nil, domain.ErrLawdCdRequired
	}

	months := []string{q.DealYmd}
	if q.DealYmd == "" {
		months = RecentMonths(uc.now(), DefaultSearchMonths)
	}

	var (
		all  []entity.Trade
		best *entity.Trade
	)
	for _, ym := range months {
		if uc.limiter != nil {
			if err := uc.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		trades, err := uc.source.FetchTrades(ctx, q.LawdCd, ym)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.Warn("trade fetch failed", "lawd_cd", q.LawdCd, "deal_ymd", ym, "error", err)
			continue
		}
		all = append(all, trades...)

		if q.AptName != "" && best == nil {
			if t, ok := FindRecentTrade(trades, q.AptName, q.Dong, q.Floor); ok {
				best = &t
			}
		}
	}

	res := &SearchResult{Trade: best, SimilarTrades: all}
	if q.AptName != "" {
		similar := make([]entity.Trade, 0, MaxSimilarTrades)
		for _, t := range all {
			if !t.MatchesName(q.AptName) {
				continue
			}
			if res.Trade == nil {
				t := t
				res.Trade = &t
			}
			if len(similar) < MaxSimilarTrades {
				similar = append(similar, t)
			}
		}
		res.SimilarTrades = similar
	}
	if res.SimilarTrades == nil {
		res.SimilarTrades = []entity.Trade{}
	}

	uc.record(ctx, q.LawdCd, all)
	return res, nil
}

// record hands trades to the recorder without waiting for it.
func (uc *SearchUsecase) record(ctx context.Context, lawdCd string, trades []entity.Trade) {
	if uc.recorder == nil || len(trades) == 0 {
		return
	}
	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
		defer cancel()
		if err := uc.recorder.RecordTrades(ctx, lawdCd, trades); err != nil {
			slog.Warn("record trades failed", "lawd_cd", lawdCd, "count", len(trades), "error", err)
		}
	}()
}

// Wait blocks until every in-flight recording has finished.
func (uc *SearchUsecase) Wait() {
	uc.pending.Wait()
}
