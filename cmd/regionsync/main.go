// Command regionsync refreshes the dong/apartment/area tables for the given
// districts once and exits. Without arguments it uses REGION_WARM_LAWD_CODES.
//
//	go run ./cmd/regionsync 11680 11650
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"moajim/internal/app/di"
	regionsadapters "moajim/internal/feature/regions/adapters"
	"moajim/internal/platform/db"
	"moajim/internal/platform/logger"
	"moajim/internal/platform/scheduler"
)

func main() {
	_ = godotenv.Load()
	logger.Setup()

	gdb, err := db.OpenDB(db.LoadConfigFromEnv(), regionsadapters.Models()...)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	regionsUC, err := di.NewRegionsUsecase(ctx, gdb, di.NewTradeSource(nil), di.NewMolitLimiter())
	if err != nil {
		slog.Error("failed to prepare regions", "error", err)
		os.Exit(1)
	}

	cfg := scheduler.LoadConfig()
	if len(os.Args) > 1 {
		cfg.LawdCodes = os.Args[1:]
	}
	if len(cfg.LawdCodes) == 0 {
		slog.Error("no district codes given")
		os.Exit(2)
	}

	ok := scheduler.NewScheduler(ctx, regionsUC, cfg).RefreshAll(ctx)
	slog.Info("region sync finished", "refreshed", ok, "requested", len(cfg.LawdCodes))
	if ok < len(cfg.LawdCodes) {
		os.Exit(1)
	}
}
