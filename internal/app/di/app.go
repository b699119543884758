package di

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"moajim/internal/app/router"
	adminhandler "moajim/internal/feature/admin/transport/handler"
	adminusecase "moajim/internal/feature/admin/usecase"
	portfolioadapters "moajim/internal/feature/portfolio/adapters"
	portfoliohandler "moajim/internal/feature/portfolio/transport/handler"
	portfoliousecase "moajim/internal/feature/portfolio/usecase"
	priceshandler "moajim/internal/feature/prices/transport/handler"
	pricesusecase "moajim/internal/feature/prices/usecase"
	realestatehandler "moajim/internal/feature/realestate/transport/handler"
	realestateusecase "moajim/internal/feature/realestate/usecase"
	regionsadapters "moajim/internal/feature/regions/adapters"
	regionshandler "moajim/internal/feature/regions/transport/handler"
	regionsusecase "moajim/internal/feature/regions/usecase"
	taxhandler "moajim/internal/feature/tax/transport/handler"
	taxusecase "moajim/internal/feature/tax/usecase"
	"moajim/internal/platform/cache"
	platformhandler "moajim/internal/platform/http/handler"
	jwtmw "moajim/internal/platform/jwt"
)

const adminTokenTTL = 12 * time.Hour

// App holds the wired components main needs beyond the router.
type App struct {
	Handlers router.Handlers
	Regions  *regionsusecase.RegionsUsecase
	// Search is kept so shutdown can drain its background recordings.
	Search *realestateusecase.SearchUsecase
}

// NewTradeSource wraps the MOLIT client with the listing cache. rdb may be nil.
func NewTradeSource(rdb *redis.Client) *cache.CachingTradeSource {
	return cache.NewCachingTradeSource(rdb, 0, NewTradeClient(), "trades")
}

// NewRegionsUsecase wires the regions usecase over db and seeds the district table.
func NewRegionsUsecase(ctx context.Context, db *gorm.DB, source regionsusecase.TradeSource, limiter regionsusecase.Limiter) (*regionsusecase.RegionsUsecase, error) {
	uc := regionsusecase.NewRegionsUsecase(regionsadapters.NewRegionRepository(db), source, limiter, realestateusecase.RecentMonths)

	districts, err := regionsadapters.LoadSeed()
	if err != nil {
		return nil, fmt.Errorf("load region seed: %w", err)
	}
	if err := uc.Seed(ctx, districts); err != nil {
		return nil, fmt.Errorf("seed regions: %w", err)
	}
	return uc, nil
}

// NewApp builds every usecase and handler.
func NewApp(ctx context.Context, db *gorm.DB, rdb *redis.Client) (*App, error) {
	trades := NewTradeSource(rdb)
	molitLimiter := NewMolitLimiter()

	regionsUC, err := NewRegionsUsecase(ctx, db, trades, molitLimiter)
	if err != nil {
		return nil, err
	}
	searchUC := realestateusecase.NewSearchUsecase(trades, molitLimiter, regionsUC)

	investors, err := portfolioadapters.LoadInvestorCatalog()
	if err != nil {
		return nil, fmt.Errorf("load investor catalog: %w", err)
	}
	portfolioUC := portfoliousecase.NewPortfolioUsecase(investors)

	stocks, stockLimiter := NewFinnhubClient()
	pricesUC := pricesusecase.NewPricesUsecase(NewCoinGeckoClient(), stocks, stockLimiter)

	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		slog.Warn("JWT_SECRET is not set. Admin endpoints will reject every token.")
	}
	adminUC := adminusecase.NewAdminUsecaseFromEnv(jwtmw.NewGenerator(secret, adminTokenTTL))

	var ready platformhandler.Pinger
	if sqlDB, err := db.DB(); err == nil {
		ready = sqlDB
	}

	return &App{
		Regions: regionsUC,
		Search:  searchUC,
		Handlers: router.Handlers{
			Search:    realestatehandler.NewSearchHandler(searchUC),
			Regions:   regionshandler.NewRegionsHandler(regionsUC),
			Portfolio: portfoliohandler.NewPortfolioHandler(portfolioUC),
			Tax:       taxhandler.NewTaxHandler(taxusecase.NewCalculator()),
			Prices:    priceshandler.NewPricesHandler(pricesUC),
			Admin:     adminhandler.NewAdminHandler(adminUC),
			Ready:     ready,
		},
	}, nil
}
